// ABOUTME: Session-scoped current-post slot with checkpoint serialization.
// ABOUTME: Holds at most one native post; resets on the chat scope marker.
package provider

import (
	"fmt"

	"github.com/2389-research/quill/internal/wordpress"
)

// ScopeChat is the reset scope marking a chat boundary.
const ScopeChat = "chat"

// Checkpoint is the persisted shape of the state slice: the verbatim native
// post last held in the slot, or null.
type Checkpoint struct {
	CurrentPost *wordpress.Post `json:"currentPost"`
}

// State is the single-slot session state holding the currently selected
// native post. One instance per session; the provider is the only mutator
// outside of reset and checkpoint restore.
type State struct {
	current *wordpress.Post
}

// NewState creates an empty state.
func NewState() *State {
	return &State{}
}

// Current returns the selected native post, or nil when the slot is empty.
func (s *State) Current() *wordpress.Post {
	return s.current
}

// SetCurrent replaces the slot contents.
func (s *State) SetCurrent(post *wordpress.Post) {
	s.current = post
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (s *State) Clear() {
	s.current = nil
}

// Reset empties the slot when the scope set contains the chat marker.
// Any other scope set leaves the slot untouched.
func (s *State) Reset(scopes []string) {
	for _, scope := range scopes {
		if scope == ScopeChat {
			s.current = nil
			return
		}
	}
}

// Serialize snapshots the slot for checkpointing.
func (s *State) Serialize() Checkpoint {
	return Checkpoint{CurrentPost: s.current}
}

// Deserialize restores the slot from a checkpoint. A null current post
// restores an empty slot.
func (s *State) Deserialize(cp Checkpoint) {
	s.current = cp.CurrentPost
}

// Show returns display lines describing the slot.
func (s *State) Show() []string {
	if s.current == nil {
		return []string{"Current post: None"}
	}
	title := ""
	if s.current.Title != nil {
		title = s.current.Title.Rendered
		if title == "" {
			title = s.current.Title.Raw
		}
	}
	return []string{fmt.Sprintf("Current post: %s (ID: %d)", title, s.current.ID)}
}
