package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessageFallbacks(t *testing.T) {
	cause := stderrors.New("boom")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{name: "message wins", err: New(CodeNotFound, "theme missing", cause), want: "theme missing"},
		{name: "wrapped error", err: New(CodeObserverFailed, "", cause), want: "boom"},
		{name: "code only", err: New(CodeConfigurationError, "", nil), want: "configuration_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := fmt.Errorf("dispatch: %w", New(CodeObserverFailed, "observer failed", cause))

	if got := CodeOf(wrapped); got != CodeObserverFailed {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeObserverFailed)
	}
	if !IsCode(wrapped, CodeObserverFailed) {
		t.Fatalf("expected IsCode to match %q", CodeObserverFailed)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if got := CodeOf(cause); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
}
