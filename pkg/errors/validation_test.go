package errors

import (
	"strings"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	allowed := []string{"txt", "png"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid txt", "txt", false},
		{"valid png", "png", false},

		{"empty", "", true},
		{"unknown", "pdf", true},
		{"case sensitive", "PNG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateCacheKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid flat", "solution_abc123", false},
		{"valid nested", "solution/ab/abc123.json", false},
		{"valid dots in name", "v1..2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 201), true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "a/../../b", true},
		{"leading traversal", "../b", true},
		{"colon traversal", "solution:..:b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCacheKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCacheKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
