package session

import (
	"context"

	"github.com/ameara/reverie/internal/analysis"
	"github.com/ameara/reverie/internal/capture"
)

// AnalyzeFrame acquires a video capture session, grabs one frame, runs it
// through the analysis provider, and releases the session. The handle is
// released on every exit path; capture failures surface as typed capture
// errors. No entry is committed: frame analysis is advisory, not history.
func (c *Controller) AnalyzeFrame(ctx context.Context) (*analysis.FrameAnalysis, error) {
	handle, err := c.capture.Acquire(ctx, capture.Video)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.capture.Release(handle) }()

	frame, err := c.capture.CaptureFrame(handle)
	if err != nil {
		return nil, err
	}

	result := c.analysis.AnalyzeFrame(frame)
	return &result, nil
}
