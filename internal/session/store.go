// ABOUTME: On-disk persistence of the session checkpoint between runs.
// ABOUTME: Stores the current-post slot snapshot as JSON with atomic writes.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/2389-research/quill/internal/provider"
)

// checkpointFile is the JSON structure written to disk: the state slice's
// checkpoint plus a session id identifying the owning session.
type checkpointFile struct {
	SessionID   string          `json:"session_id"`
	CurrentPost json.RawMessage `json:"currentPost"`
}

// Store persists session checkpoints at a fixed path.
type Store struct {
	path      string
	sessionID uuid.UUID
}

// NewStore creates a checkpoint store at the given path. A fresh session id
// is generated; Restore replaces it with the persisted one when a checkpoint
// exists.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("checkpoint path is required")
	}
	return &Store{path: path, sessionID: uuid.New()}, nil
}

// Path returns the checkpoint file location.
func (s *Store) Path() string {
	return s.path
}

// SessionID returns the id of the session this store belongs to.
func (s *Store) SessionID() uuid.UUID {
	return s.sessionID
}

// Save writes the state's checkpoint to disk atomically.
func (s *Store) Save(state *provider.State) error {
	cp := state.Serialize()

	current, err := json.Marshal(cp.CurrentPost)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}

	data, err := json.MarshalIndent(checkpointFile{
		SessionID:   s.sessionID.String(),
		CurrentPost: current,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}

	return atomicWrite(s.path, append(data, '\n'))
}

// Restore loads the checkpoint into the state. A missing file leaves the
// state empty; that is the first run of a new session.
func (s *Store) Restore(state *provider.State) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}

	var file checkpointFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse checkpoint: %w", err)
	}

	if id, err := uuid.Parse(file.SessionID); err == nil {
		s.sessionID = id
	}

	var cp provider.Checkpoint
	if len(file.CurrentPost) > 0 {
		if err := json.Unmarshal(file.CurrentPost, &cp.CurrentPost); err != nil {
			return fmt.Errorf("failed to parse checkpoint: %w", err)
		}
	}
	state.Deserialize(cp)
	return nil
}

// atomicWrite writes via a temp file and rename so a crash mid-write never
// leaves a truncated checkpoint.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create checkpoint dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".checkpoint-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}
