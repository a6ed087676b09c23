package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/spacedrep"
)

// StorageName is the fixed key the persisted blob is stored under.
const StorageName = "hsk-storage"

// ErrCorrupt is returned alongside default state when a stored blob cannot
// be decoded.
var ErrCorrupt = errors.New("corrupt persisted state")

// State is the durable subset of the session. No other field is persisted.
//
// UserProgress records carry a "weight" key next to "interval" and "reviews"
// on purpose; blobs without it still decode, see spacedrep.Record.
type State struct {
	Score        int                      `json:"score"`
	Streak       int                      `json:"streak"`
	UserProgress map[int]spacedrep.Record `json:"userProgress"`
	DarkMode     bool                     `json:"darkMode"`
	AudioEnabled bool                     `json:"audioEnabled"`
}

// DefaultState is what a first run starts from.
func DefaultState() State {
	return State{
		UserProgress: make(map[int]spacedrep.Record),
		DarkMode:     true,
		AudioEnabled: true,
	}
}

// Encode serializes st to its JSON blob.
func Encode(st State) ([]byte, error) {
	if st.UserProgress == nil {
		st.UserProgress = map[int]spacedrep.Record{}
	}
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return b, nil
}

// Decode parses a stored blob. Keys missing from the blob keep their
// defaults. A blob that is not a JSON object yields DefaultState and an
// error wrapping ErrCorrupt.
func Decode(blob []byte) (State, error) {
	st := DefaultState()
	if err := json.Unmarshal(blob, &st); err != nil {
		return DefaultState(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if st.UserProgress == nil {
		st.UserProgress = make(map[int]spacedrep.Record)
	}
	for id, rec := range st.UserProgress {
		if id < 0 || rec.Reviews < 0 || rec.Interval < 0 {
			delete(st.UserProgress, id)
		}
	}
	return st, nil
}

// StateRepo persists the State blob.
type StateRepo interface {
	// Load returns the stored state, or DefaultState if nothing is stored.
	// On a corrupt blob it returns DefaultState together with ErrCorrupt.
	Load(ctx context.Context) (State, error)

	// Save replaces the stored state.
	Save(ctx context.Context, st State) error

	// Reset deletes the stored state so the next Load returns defaults.
	Reset(ctx context.Context) error
}
