// ABOUTME: Normalized, backend-agnostic data models exposed to callers.
// ABOUTME: Defines the domain post and the closed domain status vocabulary.
package models

import "time"

// Status is the domain-level publishing status of a post.
type Status string

const (
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPrivate   Status = "private"
)

// AllStatuses lists every domain status.
var AllStatuses = []Status{StatusPublished, StatusScheduled, StatusDraft, StatusPending, StatusPrivate}

// IsValidStatus returns true if s is one of the domain statuses.
func IsValidStatus(s Status) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Post is the normalized view of a backend post. It is only ever produced by
// translating a native record; callers never construct one themselves.
type Post struct {
	ID          string
	Title       string
	Content     string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt time.Time
}
