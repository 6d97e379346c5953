// ABOUTME: Tests for bidirectional status translation.
// ABOUTME: Covers the full mapping, the draft fallback, and round-trip stability.
package provider

import (
	"testing"

	"github.com/2389-research/quill/internal/models"
)

func TestStatusToDomain(t *testing.T) {
	tests := []struct {
		native string
		want   models.Status
	}{
		{"publish", models.StatusPublished},
		{"future", models.StatusScheduled},
		{"draft", models.StatusDraft},
		{"pending", models.StatusPending},
		{"private", models.StatusPrivate},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			if got := StatusToDomain(tt.native); got != tt.want {
				t.Errorf("StatusToDomain(%q) = %q, want %q", tt.native, got, tt.want)
			}
		})
	}
}

func TestStatusToDomainUnknownFallsBackToDraft(t *testing.T) {
	for _, native := range []string{"", "trash", "auto-draft", "some-future-status"} {
		if got := StatusToDomain(native); got != models.StatusDraft {
			t.Errorf("StatusToDomain(%q) = %q, want draft fallback", native, got)
		}
	}
}

func TestStatusToNative(t *testing.T) {
	tests := []struct {
		domain models.Status
		want   string
	}{
		{models.StatusPublished, "publish"},
		{models.StatusScheduled, "future"},
		{models.StatusDraft, "draft"},
		{models.StatusPending, "pending"},
		{models.StatusPrivate, "private"},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			got, err := StatusToNative(tt.domain)
			if err != nil {
				t.Fatalf("StatusToNative(%q) error: %v", tt.domain, err)
			}
			if got != tt.want {
				t.Errorf("StatusToNative(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestStatusToNativeUnknownFailsFast(t *testing.T) {
	if _, err := StatusToNative(models.Status("published-ish")); err == nil {
		t.Error("expected error for unknown domain status")
	}
}

func TestStatusRoundTrip(t *testing.T) {
	// toNative(toDomain(toNative(s))) == toNative(s) for the whole domain vocabulary
	for _, s := range models.AllStatuses {
		native, err := StatusToNative(s)
		if err != nil {
			t.Fatalf("StatusToNative(%q) error: %v", s, err)
		}
		again, err := StatusToNative(StatusToDomain(native))
		if err != nil {
			t.Fatalf("round trip of %q error: %v", s, err)
		}
		if again != native {
			t.Errorf("round trip of %q: got %q, want %q", s, again, native)
		}
	}
}
