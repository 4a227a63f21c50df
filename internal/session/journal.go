package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/insight"
	"github.com/ameara/reverie/internal/store"
)

// JournalSnapshot is the read-only view of the journal flow.
type JournalSnapshot struct {
	Content   string `json:"content,omitempty"`
	Mood      string `json:"mood,omitempty"`
	WordCount int    `json:"word_count"`

	// Set on the snapshot returned by a successful commit
	EntryID  string   `json:"entry_id,omitempty"`
	Insights []string `json:"insights,omitempty"`
}

// JournalState returns the current journal snapshot without transitioning.
func (c *Controller) JournalState() *JournalSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journalSnapshotLocked("", nil)
}

// SetJournalDraft replaces the draft content and mood label. The mood is a
// free label; empty means the default is applied at commit.
func (c *Controller) SetJournalDraft(content, mood string) *JournalSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.journalContent = content
	c.journalMood = mood

	return c.journalSnapshotLocked("", nil)
}

// CommitJournal runs the draft through the insight generator, appends the
// journal entry, and returns the flow to Idle. Empty or whitespace-only
// content is a guarded no-op. Word count and insights are computed here,
// once, and never recomputed after commit.
func (c *Controller) CommitJournal() (*JournalSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(c.journalContent) == "" {
		return c.journalSnapshotLocked("", nil), nil
	}

	if max := c.cfg.JournalMaxChars; max > 0 {
		if chars := utf8.RuneCountInString(c.journalContent); chars > max {
			return nil, errors.NewInvalidRequest(fmt.Sprintf(
				"journal content exceeds maximum size: %d chars (max %d)", chars, max))
		}
	}

	mood := c.journalMood
	if mood == "" {
		mood = entry.DefaultJournalMood
	}
	insights := insight.Analyze(c.journalContent)

	out, err := store.Append(c.db, store.AppendInput{Entry: entry.Entry{
		Kind:      entry.KindJournal,
		CreatedAt: c.now().Unix(),
		Content:   c.journalContent,
		MoodLabel: mood,
		Insights:  insights,
		WordCount: entry.CountWords(c.journalContent),
	}})
	if err != nil {
		return nil, err
	}

	c.journalContent = ""
	c.journalMood = ""

	return c.journalSnapshotLocked(out.ID, insights), nil
}

// ResetJournal discards the draft without committing.
func (c *Controller) ResetJournal() *JournalSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.journalContent = ""
	c.journalMood = ""

	return c.journalSnapshotLocked("", nil)
}

func (c *Controller) journalSnapshotLocked(committedID string, insights []string) *JournalSnapshot {
	return &JournalSnapshot{
		Content:   c.journalContent,
		Mood:      c.journalMood,
		WordCount: entry.CountWords(c.journalContent),
		EntryID:   committedID,
		Insights:  insights,
	}
}
