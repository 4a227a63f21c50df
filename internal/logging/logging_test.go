package logging

import "testing"

func TestNew(t *testing.T) {
	l, err := New("info", "json")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Core().Enabled(-1) { // debug
		t.Error("debug should be disabled at info level")
	}
	if !l.Core().Enabled(0) { // info
		t.Error("info should be enabled at info level")
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	if _, err := New("debug", "console"); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Error("New(loud) should fail")
	}
}
