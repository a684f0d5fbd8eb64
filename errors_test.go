package halfloop

import (
	"errors"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without value",
			err:  &ValidationError{Field: "pt", Reason: "plaintext exceeds 24 bits"},
			want: "validation: pt: plaintext exceeds 24 bits",
		},
		{
			name: "with value",
			err:  &ValidationError{Field: "pt", Value: "0x1000000", Reason: "plaintext exceeds 24 bits"},
			want: "validation: pt=0x1000000: plaintext exceeds 24 bits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrorExitCode(t *testing.T) {
	if (&ValidationError{}).ExitCode() != ExitBadArgument {
		t.Error("ValidationError{}.ExitCode() != ExitBadArgument")
	}
	if (&ValidationError{Format: true}).ExitCode() != ExitFormatError {
		t.Error("ValidationError{Format: true}.ExitCode() != ExitFormatError")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	base := errors.New("permission denied")
	err := &IOError{Path: "/tuples.txt", Op: "open", Err: base}
	if !errors.Is(err, base) {
		t.Error("errors.Is(IOError, base) = false, want true")
	}
	if err.ExitCode() != ExitFileError {
		t.Error("IOError.ExitCode() != ExitFileError")
	}
}

func TestAttackErrorExitCode(t *testing.T) {
	err := &AttackError{Stage: "intersection", Reason: "good pairs do not have a common key"}
	if err.ExitCode() != ExitFailure {
		t.Error("AttackError.ExitCode() != ExitFailure")
	}
	want := "attack failed at intersection: good pairs do not have a common key"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInternalErrorExitCode(t *testing.T) {
	err := &InternalError{Reason: "S-box is not an involution with its inverse"}
	if err.ExitCode() != ExitMemoryError {
		t.Error("InternalError.ExitCode() != ExitMemoryError")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", &ValidationError{}, ExitBadArgument},
		{"format validation", &ValidationError{Format: true}, ExitFormatError},
		{"io", &IOError{}, ExitFileError},
		{"attack", &AttackError{}, ExitFailure},
		{"internal", &InternalError{}, ExitMemoryError},
		{"plain error", errors.New("boom"), ExitBadArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
