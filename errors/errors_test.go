package errors

import (
	"fmt"
	"testing"
)

func TestConsoleError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeConnectionFailed, "connection failed")
	if err.Code != ErrCodeConnectionFailed {
		t.Errorf("expected code %s, got %s", ErrCodeConnectionFailed, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConnectionLost, "connection lost")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConnectionLost) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConnectionFailed) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("url", "ws://radio.local/api").WithDetail("attempt", 1)
	if detailed.Details["url"] != "ws://radio.local/api" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test ConnectionFailed
	err := ConnectionFailed("ws://radio.local/api", fmt.Errorf("refused"))
	if err.Code != ErrCodeConnectionFailed {
		t.Errorf("expected code %s, got %s", ErrCodeConnectionFailed, err.Code)
	}
	if err.Details["url"] != "ws://radio.local/api" {
		t.Error("ConnectionFailed should include url detail")
	}

	// Test InvalidInput
	err = InvalidInput("volume", "loud")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Details["value"] != "loud" {
		t.Error("InvalidInput should include value detail")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode of nil should be empty")
	}

	err := fmt.Errorf("outer: %w", DecodeFailed(fmt.Errorf("bad frame")))
	if GetCode(err) != ErrCodeDecodeFailed {
		t.Errorf("GetCode should unwrap, got %s", GetCode(err))
	}
}
