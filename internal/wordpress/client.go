// ABOUTME: HTTP client for the WordPress REST v2 API using application passwords.
// ABOUTME: Implements the post, tag, and media resource interfaces.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client talks to a WordPress site's REST v2 API.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// NewClient creates a client for the given site. siteURL is the site root;
// the /wp-json/wp/v2 prefix is appended here.
func NewClient(siteURL, username, appPassword string) *Client {
	siteURL = strings.TrimRight(siteURL, "/")
	siteURL = strings.TrimSuffix(siteURL, "/wp-json/wp/v2")
	siteURL = strings.TrimSuffix(siteURL, "/wp-json")
	return &Client{
		baseURL:  siteURL + "/wp-json/wp/v2",
		username: username,
		password: appPassword,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	return req, nil
}

// do executes the request and decodes a 2xx JSON response into out.
// Non-2xx responses surface as an error carrying the status and body.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("wordpress API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return fmt.Errorf("wordpress API returned %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListPosts fetches posts with context=edit so raw title/content are included.
func (c *Client) ListPosts(ctx context.Context, opts PostListOptions) ([]*Post, error) {
	req, err := c.newRequest(ctx, "GET", "/posts", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("context", "edit")
	if len(opts.Statuses) > 0 {
		q.Set("status", strings.Join(opts.Statuses, ","))
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	req.URL.RawQuery = q.Encode()

	var posts []*Post
	if err := c.do(req, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id. A 404 is reported as a nil post, not
// an error, so callers can distinguish absence from backend failure.
func (c *Client) GetPost(ctx context.Context, id int) (*Post, error) {
	req, err := c.newRequest(ctx, "GET", "/posts/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("context", "edit")
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordpress API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("wordpress API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &post, nil
}

// CreatePost creates a post from a partial record.
func (c *Client) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	return c.writePost(ctx, "/posts", post)
}

// UpdatePost applies a partial record to an existing post.
func (c *Client) UpdatePost(ctx context.Context, id int, post *Post) (*Post, error) {
	return c.writePost(ctx, "/posts/"+strconv.Itoa(id), post)
}

func (c *Client) writePost(ctx context.Context, path string, post *Post) (*Post, error) {
	body, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post: %w", err)
	}

	req, err := c.newRequest(ctx, "POST", path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	q.Set("context", "edit")
	req.URL.RawQuery = q.Encode()

	var created Post
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTags searches tags by name. WordPress's search is substring matching;
// exact-name selection is the caller's responsibility.
func (c *Client) ListTags(ctx context.Context, opts TagListOptions) ([]*Tag, error) {
	req, err := c.newRequest(ctx, "GET", "/tags", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	req.URL.RawQuery = q.Encode()

	var tags []*Tag
	if err := c.do(req, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag with the given name, preserving its case.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag: %w", err)
	}

	req, err := c.newRequest(ctx, "POST", "/tags", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var tag Tag
	if err := c.do(req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateMedia uploads raw bytes to the media library.
func (c *Client) CreateMedia(ctx context.Context, filename string, data []byte) (*Media, error) {
	req, err := c.newRequest(ctx, "POST", "/media", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	req.Header.Set("Content-Type", http.DetectContentType(data))

	var media Media
	if err := c.do(req, &media); err != nil {
		return nil, err
	}
	return &media, nil
}
