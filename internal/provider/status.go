// ABOUTME: Bidirectional status translation between native and domain vocabularies.
// ABOUTME: Lenient toward unknown native statuses, strict toward domain ones.
package provider

import (
	"fmt"

	"github.com/2389-research/quill/internal/models"
	"github.com/2389-research/quill/internal/wordpress"
)

var nativeToDomain = map[string]models.Status{
	wordpress.StatusPublish: models.StatusPublished,
	wordpress.StatusFuture:  models.StatusScheduled,
	wordpress.StatusDraft:   models.StatusDraft,
	wordpress.StatusPending: models.StatusPending,
	wordpress.StatusPrivate: models.StatusPrivate,
}

var domainToNative = map[models.Status]string{
	models.StatusPublished: wordpress.StatusPublish,
	models.StatusScheduled: wordpress.StatusFuture,
	models.StatusDraft:     wordpress.StatusDraft,
	models.StatusPending:   wordpress.StatusPending,
	models.StatusPrivate:   wordpress.StatusPrivate,
}

// StatusToDomain maps a native status to the domain vocabulary. Unrecognized
// native statuses fall back to draft rather than failing, so list/read
// translation survives statuses this adapter does not know about.
func StatusToDomain(native string) models.Status {
	if s, ok := nativeToDomain[native]; ok {
		return s
	}
	return models.StatusDraft
}

// StatusToNative maps a domain status to the native vocabulary. The domain
// vocabulary is closed and fully covered, so anything else is a programming
// error by the caller.
func StatusToNative(domain models.Status) (string, error) {
	if s, ok := domainToNative[domain]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", domain)
}
