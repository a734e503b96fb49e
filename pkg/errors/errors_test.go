package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeMissingLocalFile, "missing files: %v", []string{"a.py", "b.py"})
	if err.Code != ErrCodeMissingLocalFile {
		t.Errorf("expected code %s, got %s", ErrCodeMissingLocalFile, err.Code)
	}
	if err.Message != "missing files: [a.py b.py]" {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("exit status 1")
	ctx := map[string]interface{}{
		"command": "rsync -az sim.py alpine:scratch/submit/",
		"cluster": "alpine",
	}

	err := WrapWithContext(ErrCodeExecutionFailure, "sync failed", cause, ctx)

	if err.Code != ErrCodeExecutionFailure {
		t.Errorf("expected code %s, got %s", ErrCodeExecutionFailure, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["cluster"] != "alpine" {
		t.Errorf("expected cluster to be alpine")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeConfigParse, "bad yaml")); got != ErrCodeConfigParse {
		t.Errorf("expected %s, got %s", ErrCodeConfigParse, got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
	wrapped := Wrap(ErrCodeResourceCountMismatch, "count", errors.New("inner"))
	if got := CodeOf(wrapped); got != ErrCodeResourceCountMismatch {
		t.Errorf("expected %s, got %s", ErrCodeResourceCountMismatch, got)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeConfigParse,
		ErrCodeInvalidRequest,
		ErrCodeResourceCountMismatch,
		ErrCodeMissingLocalFile,
		ErrCodeTemplateFormat,
		ErrCodeExecutionFailure,
		ErrCodeNotFound,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
