package app

import (
	"errors"
	"strings"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open", Target: "/path/file.txt"},
			expected: "open /path/file.txt",
		},
		{
			name:     "full error chain",
			err:      NewOperationError("open", "/path/file.txt", errors.New("io error")).WithContext("read failed"),
			expected: "open /path/file.txt (read failed): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	base := errors.New("disk full")
	err := error(NewOperationError("save", "f", base))
	if !errors.Is(err, base) {
		t.Error("errors.Is failed through OperationError")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "stack")
	if got := err.Error(); got != "panic: boom\nstack" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewRecoveredPanicError(1, "").Error(); got != "panic: 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorList(t *testing.T) {
	list := NewErrorList()
	if list.AsError() != nil {
		t.Error("empty list should be nil error")
	}

	first := errors.New("first")
	list.Add(nil)
	list.Add(first)
	list.Add(errors.New("second"))

	if list.Len() != 2 {
		t.Errorf("Len = %d, want 2", list.Len())
	}
	err := list.AsError()
	if !strings.HasPrefix(err.Error(), "2 errors: first: first") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, first) {
		t.Error("errors.Is did not find member")
	}
}
