package session

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ameara/reverie/internal/analysis"
	"github.com/ameara/reverie/internal/capture"
	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/db"
)

// manualTicker lets tests drive recording time tick by tick.
type manualTicker struct {
	ch chan time.Time
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time)}
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

// Tick delivers one tick and returns once the timer loop has received it.
func (m *manualTicker) Tick() { m.ch <- time.Time{} }

type testEnv struct {
	controller *Controller
	database   *sql.DB
	capture    *capture.Simulated
	ticker     *manualTicker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.InitMemory()
	if err != nil {
		t.Fatalf("db.InitMemory() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })

	sim := capture.NewSimulated()
	provider := &analysis.Static{
		Frame: analysis.FrameAnalysis{
			DominantEmotion: "calm",
			Confidence:      85,
			Suggestions:     []string{"Take 3 deep breaths to center yourself"},
		},
		Voice: analysis.VoiceAnalysis{
			Transcript: analysis.PlaceholderTranscript,
			Emotions:   []string{"reflective", "thoughtful"},
		},
	}

	mt := newManualTicker()
	controller := NewController(database, config.DefaultConfig(), sim, provider)
	controller.now = func() time.Time { return time.Unix(1700000000, 0) }
	controller.newTicker = func() ticker { return mt }
	t.Cleanup(func() { controller.Close() })

	return &testEnv{
		controller: controller,
		database:   database,
		capture:    sim,
		ticker:     mt,
	}
}
