// ABOUTME: Translation from the native post record to the normalized domain post.
// ABOUTME: Validates mandatory fields and applies the timestamp policy.
package provider

import (
	"strconv"
	"time"

	"github.com/2389-research/quill/internal/models"
	"github.com/2389-research/quill/internal/wordpress"
)

// nativeTimeLayout is the local-time layout WordPress uses for date fields.
const nativeTimeLayout = "2006-01-02T15:04:05"

// TranslatePost converts a native record to a normalized post. Identifier,
// title, content, and status must all be present; a record missing any of
// them is rejected with a MissingFieldError naming the field.
//
// Both created-at and updated-at derive from the modified timestamp: the
// backend does not expose an immutable creation time distinct from
// last-modified in the edit context, so the modification time stands in for
// both. The publish date becomes published-at. Missing timestamps default to
// the translation-time clock.
func TranslatePost(native *wordpress.Post) (*models.Post, error) {
	if native.ID == 0 {
		return nil, &MissingFieldError{Field: "id"}
	}
	if native.Title == nil {
		return nil, &MissingFieldError{Field: "title"}
	}
	if native.Content == nil {
		return nil, &MissingFieldError{Field: "content"}
	}
	if native.Status == "" {
		return nil, &MissingFieldError{Field: "status"}
	}

	now := time.Now()
	modified := parseNativeTime(native.Modified, now)
	published := parseNativeTime(native.Date, now)

	return &models.Post{
		ID:          strconv.Itoa(native.ID),
		Title:       native.Title.Rendered,
		Content:     native.Content.Rendered,
		Status:      StatusToDomain(native.Status),
		CreatedAt:   modified,
		UpdatedAt:   modified,
		PublishedAt: published,
	}, nil
}

func parseNativeTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.ParseInLocation(nativeTimeLayout, value, time.Local)
	if err != nil {
		return fallback
	}
	return t
}
