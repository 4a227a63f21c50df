package capture

import (
	"context"
	"testing"

	"github.com/ameara/reverie/internal/errors"
)

func TestSimulated_AudioLifecycle(t *testing.T) {
	sim := NewSimulated()

	h, err := sim.Acquire(context.Background(), Audio)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if sim.OpenCount() != 1 {
		t.Errorf("OpenCount = %d, want 1", sim.OpenCount())
	}

	ref, err := sim.StopAndFinalize(h)
	if err != nil {
		t.Fatalf("StopAndFinalize() error = %v", err)
	}
	if ref == "" {
		t.Error("blob ref should not be empty")
	}
	if sim.OpenCount() != 0 {
		t.Errorf("OpenCount after finalize = %d, want 0", sim.OpenCount())
	}
}

func TestSimulated_VideoFrame(t *testing.T) {
	sim := NewSimulated()

	h, err := sim.Acquire(context.Background(), Video)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	frame, err := sim.CaptureFrame(h)
	if err != nil {
		t.Fatalf("CaptureFrame() error = %v", err)
	}
	if len(frame) == 0 {
		t.Error("frame should not be empty")
	}

	if err := sim.Release(h); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if sim.OpenCount() != 0 {
		t.Errorf("OpenCount after release = %d, want 0", sim.OpenCount())
	}
}

func TestSimulated_KindMismatch(t *testing.T) {
	sim := NewSimulated()

	audio, _ := sim.Acquire(context.Background(), Audio)
	if _, err := sim.CaptureFrame(audio); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("CaptureFrame(audio) error = %v, want INVALID_REQUEST", err)
	}

	video, _ := sim.Acquire(context.Background(), Video)
	if _, err := sim.StopAndFinalize(video); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("StopAndFinalize(video) error = %v, want INVALID_REQUEST", err)
	}
}

func TestSimulated_ScriptedAcquireFailure(t *testing.T) {
	sim := NewSimulated()
	sim.AcquireErr = errors.NewPermissionDenied("audio")

	_, err := sim.Acquire(context.Background(), Audio)
	if !errors.Is(err, errors.ErrPermissionDenied) {
		t.Errorf("Acquire() error = %v, want PERMISSION_DENIED", err)
	}
	if sim.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0 after failed acquire", sim.OpenCount())
	}
}
