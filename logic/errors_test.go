package logic

import (
	"fmt"
	"testing"

	"github.com/go-faster/errors"
)

func TestNewInvalidArgument_setsCodeAndMessage(t *testing.T) {
	err := NewInvalidArgument("bad input")
	if err.Code != StatusInvalidArgument {
		t.Errorf("expected StatusInvalidArgument, got %v", err.Code)
	}
	if err.Error() != "bad input" {
		t.Errorf("expected 'bad input', got %q", err.Error())
	}
}

func TestStatusCode_String_returnsLabel(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusInvalidArgument, "INVALID_ARGUMENT"},
		{StatusCode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("StatusCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsInvalidArgument(t *testing.T) {
	if !IsInvalidArgument(NewInvalidArgument("x")) {
		t.Error("expected direct CommandError to match")
	}
	wrapped := fmt.Errorf("loading cart: %w", NewInvalidArgument("x"))
	if !IsInvalidArgument(wrapped) {
		t.Error("expected wrapped CommandError to match")
	}
	if !IsInvalidArgument(errors.Wrap(NewInvalidArgument("x"), "apply discount")) {
		t.Error("expected CommandError wrapped with context to match")
	}
	if IsInvalidArgument(&CommandError{Code: StatusCode(99), Message: "x"}) {
		t.Error("expected a non INVALID_ARGUMENT code not to match")
	}
	if IsInvalidArgument(fmt.Errorf("plain")) {
		t.Error("expected plain error not to match")
	}
	if IsInvalidArgument(nil) {
		t.Error("expected nil not to match")
	}
}
