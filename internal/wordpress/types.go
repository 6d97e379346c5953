// ABOUTME: Native WordPress REST v2 wire types for posts, tags, and media.
// ABOUTME: Defines the backend status vocabulary and the three resource interfaces.
package wordpress

import "context"

// Native post statuses as WordPress reports them.
const (
	StatusPublish = "publish"
	StatusFuture  = "future"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
)

// AllStatuses lists every native status, in the order used for list queries.
var AllStatuses = []string{StatusPublish, StatusFuture, StatusDraft, StatusPending, StatusPrivate}

// RenderedField wraps WordPress's rendered-text object for titles.
// Raw is only populated when posts are fetched with context=edit.
type RenderedField struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered,omitempty"`
}

// ContentField is RenderedField plus the password-protection flag content carries.
type ContentField struct {
	Raw       string `json:"raw,omitempty"`
	Rendered  string `json:"rendered,omitempty"`
	Protected bool   `json:"protected,omitempty"`
}

// Post is the backend's own post record. Title and Content are pointers so a
// partial record used for create/update omits them cleanly, and so translation
// can tell "absent" apart from "empty".
type Post struct {
	ID            int            `json:"id,omitempty"`
	Date          string         `json:"date,omitempty"`
	Modified      string         `json:"modified,omitempty"`
	Status        string         `json:"status,omitempty"`
	Title         *RenderedField `json:"title,omitempty"`
	Content       *ContentField  `json:"content,omitempty"`
	Tags          []int          `json:"tags,omitzero"`
	FeaturedMedia int            `json:"featured_media,omitempty"`
}

// Tag is the backend's tag record. Name identity is case-insensitive for lookup.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Media is the record returned by a media library upload.
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// PostListOptions filters a post list query.
type PostListOptions struct {
	Statuses []string
	PerPage  int
}

// TagListOptions filters a tag list query.
type TagListOptions struct {
	Search  string
	PerPage int
}

// PostResource is the post endpoint consumed by the provider.
type PostResource interface {
	// ListPosts returns posts matching the given options.
	ListPosts(ctx context.Context, opts PostListOptions) ([]*Post, error)

	// GetPost fetches one post by id. Returns nil (no error) when the id
	// does not exist.
	GetPost(ctx context.Context, id int) (*Post, error)

	// CreatePost creates a post from a partial record and returns the full record.
	CreatePost(ctx context.Context, post *Post) (*Post, error)

	// UpdatePost applies a partial record to the post with the given id.
	UpdatePost(ctx context.Context, id int, post *Post) (*Post, error)
}

// TagResource is the tag endpoint consumed by the tag resolver.
type TagResource interface {
	// ListTags returns tags matching the given options.
	ListTags(ctx context.Context, opts TagListOptions) ([]*Tag, error)

	// CreateTag creates a tag with the given name.
	CreateTag(ctx context.Context, name string) (*Tag, error)
}

// MediaResource is the media library endpoint.
type MediaResource interface {
	// CreateMedia uploads raw bytes as a named attachment.
	CreateMedia(ctx context.Context, filename string, data []byte) (*Media, error)
}
