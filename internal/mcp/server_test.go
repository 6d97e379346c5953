// ABOUTME: Tests for MCP server creation and validation.
// ABOUTME: Verifies required dependencies and checkpoint restore on startup.
package mcp

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/2389-research/quill/internal/provider"
	"github.com/2389-research/quill/internal/session"
	"github.com/2389-research/quill/internal/wordpress"
)

// memPosts is an in-memory post resource backing the tool handler tests.
type memPosts struct {
	posts  map[int]*wordpress.Post
	nextID int
}

func newMemPosts() *memPosts {
	return &memPosts{posts: make(map[int]*wordpress.Post), nextID: 1}
}

func (m *memPosts) ListPosts(ctx context.Context, opts wordpress.PostListOptions) ([]*wordpress.Post, error) {
	var out []*wordpress.Post
	for _, p := range m.posts {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPosts) GetPost(ctx context.Context, id int) (*wordpress.Post, error) {
	return m.posts[id], nil
}

func (m *memPosts) CreatePost(ctx context.Context, post *wordpress.Post) (*wordpress.Post, error) {
	stored := *post
	stored.ID = m.nextID
	stored.Modified = "2024-06-01T12:00:00"
	if stored.Title != nil {
		stored.Title.Rendered = stored.Title.Raw
	}
	if stored.Content != nil {
		stored.Content.Rendered = stored.Content.Raw
	}
	m.nextID++
	m.posts[stored.ID] = &stored
	return &stored, nil
}

func (m *memPosts) UpdatePost(ctx context.Context, id int, post *wordpress.Post) (*wordpress.Post, error) {
	existing := m.posts[id]
	updated := *existing
	if post.Title != nil {
		updated.Title = &wordpress.RenderedField{Raw: post.Title.Raw, Rendered: post.Title.Raw}
	}
	if post.Content != nil {
		updated.Content = &wordpress.ContentField{Raw: post.Content.Raw, Rendered: post.Content.Raw}
	}
	if post.Status != "" {
		updated.Status = post.Status
	}
	if post.Tags != nil {
		updated.Tags = post.Tags
	}
	m.posts[id] = &updated
	return &updated, nil
}

// memTags finds or creates tags by name.
type memTags struct {
	tags   []*wordpress.Tag
	nextID int
}

func (m *memTags) ListTags(ctx context.Context, opts wordpress.TagListOptions) ([]*wordpress.Tag, error) {
	return m.tags, nil
}

func (m *memTags) CreateTag(ctx context.Context, name string) (*wordpress.Tag, error) {
	if m.nextID == 0 {
		m.nextID = 1
	}
	tag := &wordpress.Tag{ID: m.nextID, Name: name}
	m.nextID++
	m.tags = append(m.tags, tag)
	return tag, nil
}

// memMedia records uploads.
type memMedia struct {
	uploads []string
}

func (m *memMedia) CreateMedia(ctx context.Context, filename string, data []byte) (*wordpress.Media, error) {
	m.uploads = append(m.uploads, filename)
	return &wordpress.Media{ID: 99, SourceURL: "https://example.com/" + filename}, nil
}

func testDeps(t *testing.T) (*provider.Provider, *provider.State, *session.Store, *memPosts) {
	t.Helper()
	posts := newMemPosts()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	render := func(md string) (string, error) { return "<p>" + md + "</p>", nil }
	prov := provider.New(posts, &memTags{}, render, logger)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "checkpoint.json"))
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	return prov, provider.NewState(), store, posts
}

func TestNewServerRequiresProvider(t *testing.T) {
	_, state, store, _ := testDeps(t)

	_, err := NewServer(nil, state, store)
	if err == nil {
		t.Error("expected error when provider is nil")
	}
}

func TestNewServerRequiresState(t *testing.T) {
	prov, _, store, _ := testDeps(t)

	_, err := NewServer(prov, nil, store)
	if err == nil {
		t.Error("expected error when state is nil")
	}
}

func TestNewServerRequiresCheckpointStore(t *testing.T) {
	prov, state, _, _ := testDeps(t)

	_, err := NewServer(prov, state, nil)
	if err == nil {
		t.Error("expected error when checkpoint store is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	prov, state, store, _ := testDeps(t)

	server, err := NewServer(prov, state, store)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server == nil {
		t.Error("expected non-nil server")
	}
}

func TestNewServerWithMediaResource(t *testing.T) {
	prov, state, store, _ := testDeps(t)

	server, err := NewServer(prov, state, store, WithMediaResource(&memMedia{}))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server.media == nil {
		t.Error("expected media resource to be set")
	}
}

func TestNewServerRestoresCheckpoint(t *testing.T) {
	prov, state, store, _ := testDeps(t)

	saved := provider.NewState()
	saved.SetCurrent(&wordpress.Post{
		ID:      7,
		Status:  "draft",
		Title:   &wordpress.RenderedField{Raw: "Saved"},
		Content: &wordpress.ContentField{Raw: "<p>body</p>"},
	})
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	_, err := NewServer(prov, state, store)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if state.Current() == nil || state.Current().ID != 7 {
		t.Errorf("expected slot restored with post 7, got %+v", state.Current())
	}
}
