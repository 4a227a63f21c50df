package session

import (
	"context"
	"testing"
	"time"

	"github.com/ameara/reverie/internal/analysis"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
)

func TestRecording_ThreeTicksThenStop(t *testing.T) {
	env := newTestEnv(t)

	snap, err := env.controller.StartRecording(context.Background())
	if err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	if !snap.Recording || snap.ElapsedSeconds != 0 {
		t.Errorf("start snapshot = %+v, want recording at 0s", snap)
	}

	env.ticker.Tick()
	env.ticker.Tick()
	env.ticker.Tick()

	snap, err = env.controller.StopRecording()
	if err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}
	if snap.Recording {
		t.Error("flow should be Idle after stop")
	}
	if snap.EntryID == "" {
		t.Fatal("EntryID missing on stop snapshot")
	}

	stored, err := env.controller.FetchEntry(snap.EntryID)
	if err != nil {
		t.Fatalf("FetchEntry() error = %v", err)
	}
	if stored.Kind != entry.KindVoice {
		t.Errorf("Kind = %q, want voice", stored.Kind)
	}
	if stored.DurationSeconds != 3 {
		t.Errorf("DurationSeconds = %d, want 3", stored.DurationSeconds)
	}
	if stored.AudioRef == "" {
		t.Error("AudioRef missing")
	}
	if stored.Transcript == nil || *stored.Transcript != analysis.PlaceholderTranscript {
		t.Errorf("Transcript = %v, want placeholder", stored.Transcript)
	}
	if len(stored.Emotions) != 2 {
		t.Errorf("Emotions = %v, want two labels", stored.Emotions)
	}

	// Capture session finalized, none left open
	if env.capture.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0 after stop", env.capture.OpenCount())
	}
	if len(env.capture.Finalized()) != 1 {
		t.Errorf("Finalized = %v, want one session", env.capture.Finalized())
	}
}

func TestRecording_AcquireFailureStaysIdle(t *testing.T) {
	env := newTestEnv(t)
	env.capture.AcquireErr = errors.NewPermissionDenied("audio")

	_, err := env.controller.StartRecording(context.Background())
	if !errors.Is(err, errors.ErrPermissionDenied) {
		t.Fatalf("StartRecording() error = %v, want PERMISSION_DENIED", err)
	}

	if snap := env.controller.RecordingState(); snap.Recording {
		t.Error("flow should stay Idle after acquire failure")
	}

	count, err := env.controller.Count(entry.KindVoice)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count.Count != 0 {
		t.Errorf("voice count = %d, want 0", count.Count)
	}
}

func TestRecording_StopWhileIdleIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	snap, err := env.controller.StopRecording()
	if err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}
	if snap.Recording || snap.EntryID != "" {
		t.Errorf("idle stop snapshot = %+v, want empty", snap)
	}
}

func TestRecording_StartWhileRecordingIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.controller.StartRecording(context.Background()); err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	env.ticker.Tick()

	snap, err := env.controller.StartRecording(context.Background())
	if err != nil {
		t.Fatalf("second StartRecording() error = %v", err)
	}
	if !snap.Recording || snap.ElapsedSeconds != 1 {
		t.Errorf("snapshot = %+v, want original recording untouched", snap)
	}

	if _, err := env.controller.StopRecording(); err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}
	// The original session plus any spare handle must both be closed.
	if env.capture.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0", env.capture.OpenCount())
	}
}

func TestRecording_AbortReleasesWithoutEntry(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.controller.StartRecording(context.Background()); err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	env.ticker.Tick()

	if err := env.controller.AbortRecording(); err != nil {
		t.Fatalf("AbortRecording() error = %v", err)
	}

	if env.capture.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0 after abort", env.capture.OpenCount())
	}
	if len(env.capture.Released()) != 1 {
		t.Errorf("Released = %v, want one session", env.capture.Released())
	}

	count, err := env.controller.Count(entry.KindVoice)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count.Count != 0 {
		t.Errorf("voice count = %d, want 0 after abort", count.Count)
	}
}

func TestRecording_NoTicksCountedAfterStop(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.controller.StartRecording(context.Background()); err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	env.ticker.Tick()
	env.ticker.Tick()

	snap, err := env.controller.StopRecording()
	if err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}

	stored, err := env.controller.FetchEntry(snap.EntryID)
	if err != nil {
		t.Fatalf("FetchEntry() error = %v", err)
	}
	if stored.DurationSeconds != 2 {
		t.Errorf("DurationSeconds = %d, want 2", stored.DurationSeconds)
	}

	// A tick delivered after stop must not be received by anything: the
	// timer loop has exited. Verify via a non-blocking send.
	select {
	case env.ticker.ch <- time.Time{}:
		t.Error("tick accepted after stop; timer loop still running")
	default:
	}
}
