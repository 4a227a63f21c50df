package session

import (
	"fmt"

	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/store"
)

// defaultIntensity is applied when an emotion selection opens the draft.
const defaultIntensity = 5

// MoodSnapshot is the read-only view of the mood-log flow.
type MoodSnapshot struct {
	Drafting  bool          `json:"drafting"`
	Emotion   entry.Emotion `json:"emotion,omitempty"`
	Intensity int           `json:"intensity,omitempty"`
	Notes     string        `json:"notes,omitempty"`

	// EntryID is set on the snapshot returned by a successful commit.
	EntryID string `json:"entry_id,omitempty"`
}

// MoodState returns the current mood snapshot without transitioning.
func (c *Controller) MoodState() *MoodSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moodSnapshotLocked("")
}

// SelectEmotion enters (or updates) the mood draft. Intensity and notes
// start at their defaults when the selection opens the draft and persist
// across emotion switches.
func (c *Controller) SelectEmotion(e entry.Emotion) (*MoodSnapshot, error) {
	if !entry.ValidEmotion(e) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown emotion: %q", e))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.moodEmotion == "" {
		c.moodIntensity = defaultIntensity
		c.moodNotes = ""
	}
	c.moodEmotion = e

	return c.moodSnapshotLocked(""), nil
}

// SetIntensity updates the draft intensity. Mutable only while drafting; a
// call with no draft open is a guarded no-op.
func (c *Controller) SetIntensity(n int) (*MoodSnapshot, error) {
	if n < 1 || n > 10 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("intensity must be 1..10, got %d", n))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.moodEmotion != "" {
		c.moodIntensity = n
	}
	return c.moodSnapshotLocked(""), nil
}

// SetNotes updates the draft notes. A call with no draft open is a guarded
// no-op.
func (c *Controller) SetNotes(s string) *MoodSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.moodEmotion != "" {
		c.moodNotes = s
	}
	return c.moodSnapshotLocked("")
}

// CommitMood appends the drafted mood entry and returns the flow to Idle.
// Commit without a selected emotion is a guarded no-op, mirroring the
// guarded availability of the commit action.
func (c *Controller) CommitMood() (*MoodSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.moodEmotion == "" {
		return c.moodSnapshotLocked(""), nil
	}

	out, err := store.Append(c.db, store.AppendInput{Entry: entry.Entry{
		Kind:      entry.KindMood,
		CreatedAt: c.now().Unix(),
		Emotion:   c.moodEmotion,
		Intensity: c.moodIntensity,
		Notes:     c.moodNotes,
	}})
	if err != nil {
		return nil, err
	}

	c.moodEmotion = ""
	c.moodIntensity = 0
	c.moodNotes = ""

	return c.moodSnapshotLocked(out.ID), nil
}

// ResetMood discards the draft without committing.
func (c *Controller) ResetMood() *MoodSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.moodEmotion = ""
	c.moodIntensity = 0
	c.moodNotes = ""

	return c.moodSnapshotLocked("")
}

func (c *Controller) moodSnapshotLocked(committedID string) *MoodSnapshot {
	return &MoodSnapshot{
		Drafting:  c.moodEmotion != "",
		Emotion:   c.moodEmotion,
		Intensity: c.moodIntensity,
		Notes:     c.moodNotes,
		EntryID:   committedID,
	}
}
