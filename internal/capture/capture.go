// Package capture defines the boundary to external audio/video capture
// services. The core never touches device APIs directly; it acquires a
// handle, reacts uniformly to success or failure, and releases the handle
// on every exit path.
package capture

import "context"

// Kind selects the capture device class.
type Kind string

const (
	Audio Kind = "audio"
	Video Kind = "video"
)

// Handle is an acquired capture session. It is exclusively owned by the
// caller between Acquire and Release/StopAndFinalize.
type Handle struct {
	ID   string
	Kind Kind
}

// Adapter is the external capture service boundary.
type Adapter interface {
	// Acquire opens a capture session of the given kind. Failures are
	// reported as capture errors (PERMISSION_DENIED, DEVICE_UNAVAILABLE);
	// they are user-facing and recoverable by retry.
	Acquire(ctx context.Context, kind Kind) (Handle, error)

	// Release closes a session without producing output. Safe to call on a
	// session already finalized.
	Release(h Handle) error

	// CaptureFrame grabs one opaque image frame. Video sessions only.
	CaptureFrame(h Handle) ([]byte, error)

	// StopAndFinalize closes an audio session and returns an opaque blob
	// reference for the recorded audio.
	StopAndFinalize(h Handle) (string, error)
}
