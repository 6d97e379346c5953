// ABOUTME: Find-or-create resolution of tag names to backend tag ids.
// ABOUTME: Best-effort per name; failures are recorded and skipped, never fatal.
package provider

import (
	"context"
	"log/slog"
	"strings"

	"github.com/2389-research/quill/internal/wordpress"
)

// SkippedTag records a tag name that could not be resolved and why.
type SkippedTag struct {
	Name string
	Err  error
}

// TagResolution is the outcome of resolving a batch of tag names. IDs may be
// shorter than the input when names were skipped; Skipped carries the reasons.
type TagResolution struct {
	IDs     []int
	Skipped []SkippedTag
}

// TagResolver converts human-readable tag names to backend tag ids, creating
// missing tags and reusing existing ones.
type TagResolver struct {
	tags   wordpress.TagResource
	logger *slog.Logger
}

// NewTagResolver creates a resolver over the given tag resource.
func NewTagResolver(tags wordpress.TagResource, logger *slog.Logger) *TagResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagResolver{tags: tags, logger: logger}
}

// Resolve looks up each name case-insensitively and creates a tag with the
// exact given name when no match exists. A lookup or create failure skips
// that name without aborting the batch. Duplicate names (ignoring case)
// within one call resolve to a single id.
func (r *TagResolver) Resolve(ctx context.Context, names []string) TagResolution {
	var res TagResolution
	seen := make(map[string]bool)

	for _, name := range names {
		key := strings.ToLower(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		id, err := r.resolveOne(ctx, name)
		if err != nil {
			r.logger.Warn("failed to resolve tag", "name", name, "error", err)
			res.Skipped = append(res.Skipped, SkippedTag{Name: name, Err: err})
			continue
		}
		res.IDs = append(res.IDs, id)
	}

	return res
}

// resolveOne finds an existing tag whose name matches case-insensitively, or
// creates one. The backend's name search is substring matching, so exact
// comparison happens here; the first exact match wins.
func (r *TagResolver) resolveOne(ctx context.Context, name string) (int, error) {
	found, err := r.tags.ListTags(ctx, wordpress.TagListOptions{Search: name})
	if err != nil {
		return 0, err
	}

	for _, tag := range found {
		if tag != nil && strings.EqualFold(tag.Name, name) {
			return tag.ID, nil
		}
	}

	created, err := r.tags.CreateTag(ctx, name)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}
