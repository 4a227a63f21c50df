package errors

import "testing"

func TestReverieError_Error(t *testing.T) {
	err := &ReverieError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "entry not found",
	}

	expected := "NOT_FOUND: entry not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("answers must not be empty")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "answers must not be empty" {
		t.Errorf("Message = %q, want %q", err.Message, "answers must not be empty")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01ABC")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Details["id"] != "01ABC" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "01ABC")
	}
}

func TestCaptureErrors(t *testing.T) {
	denied := NewPermissionDenied("audio")
	if denied.Code != ErrPermissionDenied {
		t.Errorf("Code = %q, want %q", denied.Code, ErrPermissionDenied)
	}
	if denied.Details["kind"] != "audio" {
		t.Errorf("Details[kind] = %v, want %q", denied.Details["kind"], "audio")
	}

	unavailable := NewDeviceUnavailable("video")
	if unavailable.Status != 503 {
		t.Errorf("Status = %d, want 503", unavailable.Status)
	}

	if !IsCapture(denied) || !IsCapture(unavailable) {
		t.Error("IsCapture should be true for both capture codes")
	}
	if IsCapture(NewInvalidRequest("nope")) {
		t.Error("IsCapture should be false for INVALID_REQUEST")
	}
}

func TestIs(t *testing.T) {
	err := NewInternal(nil)

	if !Is(err, ErrInternal) {
		t.Error("Is() should match ErrInternal")
	}
	if Is(err, ErrNotFound) {
		t.Error("Is() should not match ErrNotFound")
	}
	if Is(nil, ErrInternal) {
		t.Error("Is(nil) should be false")
	}
}
