// ABOUTME: Provider orchestrating post operations against the backend resources.
// ABOUTME: Enforces the empty/selected state machine over the current-post slot.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/2389-research/quill/internal/models"
	"github.com/2389-research/quill/internal/wordpress"
)

// RenderFunc converts markdown to markup. Injected so tests can substitute a
// passthrough renderer.
type RenderFunc func(markdown string) (string, error)

// Provider exposes the normalized post operations. All mutable session
// context lives in the State handle passed into each call; the provider
// itself is stateless and safe to share.
type Provider struct {
	posts  wordpress.PostResource
	tags   *TagResolver
	render RenderFunc
	logger *slog.Logger
}

// New creates a provider over the given backend resources.
func New(posts wordpress.PostResource, tags wordpress.TagResource, render RenderFunc, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		posts:  posts,
		tags:   NewTagResolver(tags, logger),
		render: render,
		logger: logger,
	}
}

// CreateInput carries the fields for creating a post. Content is markdown;
// FeatureImage, when set, must reference a numeric attachment id.
type CreateInput struct {
	Title        string
	Content      string
	Tags         []string
	FeatureImage string
}

// UpdateInput carries a partial update. Nil fields are left untouched on the
// backend; a nil Tags slice means "don't change tags" while an empty non-nil
// slice clears them.
type UpdateInput struct {
	Title        *string
	Content      *string
	Tags         []string
	FeatureImage *string
	Status       *models.Status
}

// ListAll fetches every post across all native statuses and translates each.
// Null entries and untranslatable records are skipped.
func (p *Provider) ListAll(ctx context.Context) ([]*models.Post, error) {
	native, err := p.posts.ListPosts(ctx, wordpress.PostListOptions{Statuses: wordpress.AllStatuses})
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(native))
	for _, n := range native {
		if n == nil {
			continue
		}
		post, err := TranslatePost(n)
		if err != nil {
			p.logger.Warn("skipping untranslatable post", "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// GetCurrent returns the translation of the selected post, or nil when the
// slot is empty. A malformed stored record surfaces as a translation error.
func (p *Provider) GetCurrent(state *State) (*models.Post, error) {
	current := state.Current()
	if current == nil {
		return nil, nil
	}
	return TranslatePost(current)
}

// Create makes a new draft post and selects it. Fails without touching the
// backend when a post is already selected or the feature-image reference is
// not a numeric attachment id.
func (p *Provider) Create(ctx context.Context, state *State, in CreateInput) (*models.Post, error) {
	if state.Current() != nil {
		return nil, ErrPostAlreadySelected
	}

	featuredMedia, err := parseFeatureImage(in.FeatureImage)
	if err != nil {
		return nil, err
	}

	markup, err := p.render(in.Content)
	if err != nil {
		return nil, err
	}

	post := &wordpress.Post{
		Title:         &wordpress.RenderedField{Raw: in.Title},
		Content:       &wordpress.ContentField{Raw: markup},
		Status:        wordpress.StatusDraft,
		FeaturedMedia: featuredMedia,
	}
	if len(in.Tags) > 0 {
		res := p.tags.Resolve(ctx, in.Tags)
		post.Tags = res.IDs
	}

	created, err := p.posts.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("backend returned no post from create")
	}

	state.SetCurrent(created)
	return TranslatePost(created)
}

// Update applies a partial patch to the selected post and refreshes the slot
// with the backend's result.
func (p *Provider) Update(ctx context.Context, state *State, in UpdateInput) (*models.Post, error) {
	current := state.Current()
	if current == nil {
		return nil, ErrNoPostSelected
	}

	patch := &wordpress.Post{}
	if in.Title != nil {
		patch.Title = &wordpress.RenderedField{Raw: *in.Title}
	}
	if in.Content != nil {
		patch.Content = &wordpress.ContentField{Raw: *in.Content}
	}
	if in.Status != nil {
		native, err := StatusToNative(*in.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = native
	}
	if in.FeatureImage != nil {
		featuredMedia, err := parseFeatureImage(*in.FeatureImage)
		if err != nil {
			return nil, err
		}
		patch.FeaturedMedia = featuredMedia
	}
	if in.Tags != nil {
		res := p.tags.Resolve(ctx, in.Tags)
		// Non-nil so an explicit empty list clears tags on the backend.
		patch.Tags = res.IDs
		if patch.Tags == nil {
			patch.Tags = []int{}
		}
	}

	updated, err := p.posts.UpdatePost(ctx, current.ID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("backend returned no post from update")
	}

	state.SetCurrent(updated)
	return TranslatePost(updated)
}

// SelectByID fetches a post by id and selects it.
func (p *Provider) SelectByID(ctx context.Context, state *State, id string) (*models.Post, error) {
	postID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post id %q: %w", id, err)
	}

	found, err := p.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: id %s", ErrPostNotFound, id)
	}

	state.SetCurrent(found)
	return TranslatePost(found)
}

// Clear empties the slot. Idempotent.
func (p *Provider) Clear(state *State) {
	state.Clear()
}

// parseFeatureImage validates an optional feature-image reference. An empty
// reference means no featured media.
func parseFeatureImage(ref string) (int, error) {
	if ref == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(ref)
	if err != nil || id <= 0 {
		return 0, &FeatureImageError{Ref: ref}
	}
	return id, nil
}
