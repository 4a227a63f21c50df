// Package session tracks in-progress reflection flows (quiz progression,
// mood draft, journal draft, active recording) and their transition into
// committed entry store records. Each flow is an explicit state machine;
// drafts are ephemeral, owned by the controller, and reach the store only
// on an explicit commit.
package session

import (
	"database/sql"
	"sync"
	"time"

	"github.com/ameara/reverie/internal/analysis"
	"github.com/ameara/reverie/internal/capture"
	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/score"
	"github.com/ameara/reverie/internal/store"
)

// ticker abstracts time.Ticker so tests can drive recording time manually.
type ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Controller owns the four independent flows of one logical session. All
// state transitions run to completion under one mutex; the flows share
// nothing beyond the entry store.
type Controller struct {
	db       *sql.DB
	cfg      *config.Config
	capture  capture.Adapter
	analysis analysis.Provider

	questions []score.Question

	now       func() time.Time
	newTicker func() ticker

	mu sync.Mutex

	// Quiz flow: InProgress(index, answers) -> Complete(result)
	quizAnswers  []int
	quizResult   *score.Result
	quizEntryID  string
	quizComplete bool

	// Mood-log flow: Idle -> Drafting(emotion, intensity, notes)
	moodEmotion   entry.Emotion // empty means Idle
	moodIntensity int
	moodNotes     string

	// Journal flow: Idle -> Drafting(content, mood)
	journalContent string
	journalMood    string

	// Recording flow: Idle -> Recording(elapsed)
	rec *recordingState
}

// NewController creates a controller over the given store and boundaries.
func NewController(database *sql.DB, cfg *config.Config, cap capture.Adapter, provider analysis.Provider) *Controller {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Controller{
		db:        database,
		cfg:       cfg,
		capture:   cap,
		analysis:  provider,
		questions: score.DefaultQuestions,
		now:       time.Now,
		newTicker: func() ticker { return realTicker{t: time.NewTicker(time.Second)} },
	}
}

// Close aborts any active recording, releasing its capture handle without
// committing an entry. Safe to call more than once.
func (c *Controller) Close() error {
	return c.AbortRecording()
}

// DeleteEntry removes a committed entry by id. Missing ids are an
// idempotent no-op reported through the output, not an error.
func (c *Controller) DeleteEntry(id string) (*store.RemoveOutput, error) {
	return store.Remove(c.db, store.RemoveInput{ID: id})
}

// ListRecent exposes the newest-first read view of the entry store.
func (c *Controller) ListRecent(kind entry.Kind, limit int) (*store.ListRecentOutput, error) {
	if limit <= 0 {
		limit = c.cfg.HistoryLimit
	}
	return store.ListRecent(c.db, store.ListRecentInput{Kind: kind, Limit: limit})
}

// Count exposes the entry count read view.
func (c *Controller) Count(kind entry.Kind) (*store.CountOutput, error) {
	return store.CountEntries(c.db, store.CountInput{Kind: kind})
}

// FetchEntry retrieves a single committed entry for detail views.
func (c *Controller) FetchEntry(id string) (*entry.Entry, error) {
	return store.Fetch(c.db, store.FetchInput{ID: id})
}
