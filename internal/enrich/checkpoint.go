package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrCorruptCheckpoint marks a checkpoint that contradicts its input file,
// for example one claiming more records than the input holds. The owning
// journal-year is skipped; other files keep processing.
var ErrCorruptCheckpoint = errors.New("corrupt checkpoint")

// State is the lifecycle of one journal-year's enrichment.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Checkpoint records durable progress for one journal-year file. Written
// counts records already appended to the output; resumption starts at the
// record with that index.
type Checkpoint struct {
	Written   int       `json:"records_written"`
	Input     int       `json:"input_records"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// readCheckpoint loads a checkpoint sidecar. A missing sidecar means the
// file was never started. inputLen is the current input record count used
// for corruption checks.
func readCheckpoint(path string, inputLen int) (Checkpoint, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Checkpoint{State: StateNotStarted}, nil
	}
	if err != nil {
		return Checkpoint{}, fmt.Errorf("reading checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return Checkpoint{}, fmt.Errorf("%w: %s: %v", ErrCorruptCheckpoint, path, err)
	}
	if cp.Written < 0 || cp.Written > inputLen {
		return Checkpoint{}, fmt.Errorf("%w: %s claims %d of %d records",
			ErrCorruptCheckpoint, path, cp.Written, inputLen)
	}
	return cp, nil
}

// writeCheckpoint persists a checkpoint atomically (write to a temp file,
// then rename) so a crash never leaves a half-written sidecar. The parent
// directory may not exist yet: an empty journal-year completes without
// ever appending output.
func writeCheckpoint(path string, cp Checkpoint) error {
	cp.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating checkpoint dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("committing checkpoint: %w", err)
	}
	return nil
}
