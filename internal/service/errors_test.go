package service

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Message: "Temperature must be between 0.0 and 1.0"}
	if got := err.Error(); got != "Temperature must be between 0.0 and 1.0" {
		t.Errorf("ValidationError.Error() = %v, want the message verbatim", got)
	}
}

func TestMissingKeyError_Error(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "prompt",
			key:  "prompt",
			want: "Missing key in request JSON: 'prompt'",
		},
		{
			name: "conversation",
			key:  "conversation",
			want: "Missing key in request JSON: 'conversation'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &MissingKeyError{Key: tt.key}
			if got := err.Error(); got != tt.want {
				t.Errorf("MissingKeyError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantNil: false,
			wantMsg: "context: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("WrapError() = nil, want error")
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("WrapError() should preserve the original error for errors.Is")
			}
		})
	}
}
