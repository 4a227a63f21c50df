package session

import (
	"context"
	"sync"

	"github.com/ameara/reverie/internal/capture"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/store"
)

// recordingState is the Recording(elapsed) flow state. elapsed is guarded
// by its own mutex so the once-per-second timer goroutine never contends
// with the controller mutex.
type recordingState struct {
	handle capture.Handle
	tick   ticker
	stop   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	elapsed int
}

func (r *recordingState) seconds() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

// RecordingSnapshot is the read-only view of the recording flow.
type RecordingSnapshot struct {
	Recording      bool `json:"recording"`
	ElapsedSeconds int  `json:"elapsed_seconds"`

	// Set on the snapshot returned by a successful stop
	EntryID string `json:"entry_id,omitempty"`
}

// RecordingState returns the current recording snapshot without
// transitioning.
func (c *Controller) RecordingState() *RecordingSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recordingSnapshotLocked("")
}

// StartRecording acquires an audio capture session and starts the
// per-second timer. An acquire failure keeps the flow at Idle and surfaces
// the capture error so the caller can offer a retry. Starting while already
// recording is a guarded no-op.
func (c *Controller) StartRecording(ctx context.Context) (*RecordingSnapshot, error) {
	c.mu.Lock()
	if c.rec != nil {
		defer c.mu.Unlock()
		return c.recordingSnapshotLocked(""), nil
	}
	c.mu.Unlock()

	// Acquire outside the controller lock: it is the flow's one
	// asynchronous suspension point and must not block the other flows.
	handle, err := c.capture.Acquire(ctx, capture.Audio)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rec != nil {
		// A concurrent start won the race; give the spare handle back.
		_ = c.capture.Release(handle)
		return c.recordingSnapshotLocked(""), nil
	}

	r := &recordingState{
		handle: handle,
		tick:   c.newTicker(),
		stop:   make(chan struct{}),
	}
	r.wg.Add(1)
	go runRecordingTimer(r)
	c.rec = r

	return c.recordingSnapshotLocked(""), nil
}

// runRecordingTimer counts whole seconds until stopped. Every tick received
// before stop is counted; cancellation guarantees no increments after the
// flow returns to Idle.
func runRecordingTimer(r *recordingState) {
	defer r.wg.Done()
	for {
		select {
		case <-r.stop:
			return
		case <-r.tick.C():
			r.mu.Lock()
			r.elapsed++
			r.mu.Unlock()
		}
	}
}

// StopRecording cancels the timer, finalizes the capture session, and
// appends a voice entry carrying the duration at the last observed tick
// plus the analysis provider's transcript and emotion labels. Stopping
// while Idle is a guarded no-op.
func (c *Controller) StopRecording() (*RecordingSnapshot, error) {
	c.mu.Lock()
	r := c.rec
	c.rec = nil
	c.mu.Unlock()

	if r == nil {
		return &RecordingSnapshot{}, nil
	}

	close(r.stop)
	r.tick.Stop()
	r.wg.Wait()

	audioRef, err := c.capture.StopAndFinalize(r.handle)
	if err != nil {
		// The session produced no output; still release the handle.
		_ = c.capture.Release(r.handle)
		return nil, err
	}

	voice := c.analysis.AnalyzeVoice(audioRef)
	transcript := voice.Transcript

	out, err := store.Append(c.db, store.AppendInput{Entry: entry.Entry{
		Kind:            entry.KindVoice,
		CreatedAt:       c.now().Unix(),
		DurationSeconds: r.seconds(),
		AudioRef:        audioRef,
		Transcript:      &transcript,
		Emotions:        voice.Emotions,
	}})
	if err != nil {
		return nil, err
	}

	return &RecordingSnapshot{EntryID: out.ID}, nil
}

// AbortRecording terminates an active recording without committing an
// entry, releasing the capture handle. This is the abnormal-exit path
// (e.g. the session ends mid-recording). Idle is a no-op.
func (c *Controller) AbortRecording() error {
	c.mu.Lock()
	r := c.rec
	c.rec = nil
	c.mu.Unlock()

	if r == nil {
		return nil
	}

	close(r.stop)
	r.tick.Stop()
	r.wg.Wait()

	return c.capture.Release(r.handle)
}

func (c *Controller) recordingSnapshotLocked(committedID string) *RecordingSnapshot {
	snap := &RecordingSnapshot{EntryID: committedID}
	if c.rec != nil {
		snap.Recording = true
		snap.ElapsedSeconds = c.rec.seconds()
	}
	return snap
}
