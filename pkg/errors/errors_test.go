package errors

import (
	"errors"
	"fmt"
	"testing"
)

// codedError mimics the domain error types that expose a Code method.
type codedError struct{ code Code }

func (e codedError) Error() string { return "coded" }
func (e codedError) Code() Code    { return e.code }

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTile, "bad header: %s", "Tile x:")

	if err.Code != ErrCodeInvalidTile {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidTile)
	}

	if err.Message != "bad header: Tile x:" {
		t.Errorf("Message = %v, want %v", err.Message, "bad header: Tile x:")
	}

	expected := "INVALID_TILE: bad header: Tile x:"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "open tiles.txt")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeAssembly, false},
		{"outermost wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal, true},
		{"inner hidden", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidInput, false},
		{"domain type", codedError{ErrCodeAmbiguousMatch}, ErrCodeAmbiguousMatch, true},
		{"domain type behind fmt wrap", fmt.Errorf("resolve: %w", codedError{ErrCodeAssembly}), ErrCodeAssembly, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeAssembly, "x")); got != ErrCodeAssembly {
		t.Errorf("GetCode(*Error) = %q, want %q", got, ErrCodeAssembly)
	}
	if got := GetCode(fmt.Errorf("stage: %w", codedError{ErrCodeInvalidTile})); got != ErrCodeInvalidTile {
		t.Errorf("GetCode(wrapped domain) = %q, want %q", got, ErrCodeInvalidTile)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidFormat, "unknown format %q", "gif")); got != `unknown format "gif"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
