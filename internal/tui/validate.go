// ABOUTME: HTTP connection validation for the WordPress REST API.
// ABOUTME: Tests credentials by fetching a single post in the edit context.
package tui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ValidateConnection tests the site connection by fetching one post with the
// given credentials. The edit context forces authentication, so a bad
// application password fails here instead of at first write.
// The context allows cancellation when the user quits during validation.
func ValidateConnection(ctx context.Context, siteURL, username, appPassword string) error {
	client := &http.Client{Timeout: 10 * time.Second}

	siteURL = strings.TrimRight(siteURL, "/")
	siteURL = strings.TrimSuffix(siteURL, "/wp-json/wp/v2")
	siteURL = strings.TrimSuffix(siteURL, "/wp-json")

	req, err := http.NewRequestWithContext(ctx, "GET", siteURL+"/wp-json/wp/v2/posts", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(username, appPassword)

	q := req.URL.Query()
	q.Set("per_page", "1")
	q.Set("context", "edit")
	req.URL.RawQuery = q.Encode()

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
