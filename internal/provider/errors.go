// ABOUTME: Error taxonomy for provider operations.
// ABOUTME: Typed validation errors plus precondition and not-found sentinels.
package provider

import (
	"errors"
	"fmt"
)

// Precondition and not-found sentinels. Backend failures are never wrapped in
// these; they propagate unchanged from the resource call that produced them.
var (
	// ErrPostAlreadySelected is returned by Create while a post is selected.
	ErrPostAlreadySelected = errors.New("a post is already selected - clear it before creating a new one")

	// ErrNoPostSelected is returned by Update while no post is selected.
	ErrNoPostSelected = errors.New("no post selected - create or select one first")

	// ErrPostNotFound is returned by SelectByID when the backend has no match.
	ErrPostNotFound = errors.New("post not found")
)

// MissingFieldError reports a native record that cannot be translated because
// a mandatory field is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("post record is missing required field %q", e.Field)
}

// FeatureImageError reports a feature-image reference that is not a numeric
// attachment id, which usually means media uploads are landing on an external
// CDN instead of the backend's media library.
type FeatureImageError struct {
	Ref string
}

func (e *FeatureImageError) Error() string {
	return fmt.Sprintf("feature image reference %q is not a numeric attachment id - check that media uploads target the media library rather than an external CDN", e.Ref)
}
