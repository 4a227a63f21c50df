package session

import (
	"context"
	"testing"

	"github.com/ameara/reverie/internal/errors"
)

func TestAnalyzeFrame_ReleasesHandle(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.controller.AnalyzeFrame(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeFrame() error = %v", err)
	}
	if result.DominantEmotion != "calm" || result.Confidence != 85 {
		t.Errorf("result = %+v, want static provider values", result)
	}

	if env.capture.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0 after analysis", env.capture.OpenCount())
	}
	if len(env.capture.Released()) != 1 {
		t.Errorf("Released = %v, want one session", env.capture.Released())
	}
}

func TestAnalyzeFrame_AcquireFailure(t *testing.T) {
	env := newTestEnv(t)
	env.capture.AcquireErr = errors.NewDeviceUnavailable("video")

	_, err := env.controller.AnalyzeFrame(context.Background())
	if !errors.Is(err, errors.ErrDeviceUnavailable) {
		t.Errorf("AnalyzeFrame() error = %v, want DEVICE_UNAVAILABLE", err)
	}
}
