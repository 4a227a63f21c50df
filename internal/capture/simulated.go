package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/ameara/reverie/internal/errors"
)

// Simulated is an in-process capture adapter. It stands in for real device
// plumbing in the demo surfaces and doubles as the deterministic fake in
// tests: AcquireErr scripts a capture failure, and the released/finalized
// bookkeeping lets tests assert the release-on-all-exit-paths guarantee.
type Simulated struct {
	// AcquireErr, when set, is returned by every Acquire call.
	AcquireErr error

	mu        sync.Mutex
	nextID    int
	open      map[string]Kind
	released  []string
	finalized []string
}

// NewSimulated creates a simulated capture adapter that always succeeds.
func NewSimulated() *Simulated {
	return &Simulated{open: make(map[string]Kind)}
}

// Acquire opens a simulated session.
func (s *Simulated) Acquire(_ context.Context, kind Kind) (Handle, error) {
	if kind != Audio && kind != Video {
		return Handle{}, errors.NewInvalidRequest(fmt.Sprintf("unknown capture kind: %q", kind))
	}
	if s.AcquireErr != nil {
		return Handle{}, s.AcquireErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	h := Handle{ID: fmt.Sprintf("sim-%d", s.nextID), Kind: kind}
	s.open[h.ID] = kind
	return h, nil
}

// Release closes a session without output.
func (s *Simulated) Release(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, h.ID)
	s.released = append(s.released, h.ID)
	return nil
}

// CaptureFrame returns a fixed opaque frame for video sessions.
func (s *Simulated) CaptureFrame(h Handle) ([]byte, error) {
	if h.Kind != Video {
		return nil, errors.NewInvalidRequest("capture_frame requires a video session")
	}
	return []byte("simulated-frame:" + h.ID), nil
}

// StopAndFinalize closes an audio session and returns an opaque blob ref.
func (s *Simulated) StopAndFinalize(h Handle) (string, error) {
	if h.Kind != Audio {
		return "", errors.NewInvalidRequest("stop_and_finalize requires an audio session")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, h.ID)
	s.finalized = append(s.finalized, h.ID)
	return "mem://audio/" + h.ID, nil
}

// OpenCount reports sessions acquired but not yet released or finalized.
func (s *Simulated) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

// Released returns the ids passed to Release, in order.
func (s *Simulated) Released() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.released...)
}

// Finalized returns the ids passed to StopAndFinalize, in order.
func (s *Simulated) Finalized() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.finalized...)
}
