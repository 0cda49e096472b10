package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownClass, "not a RiC-O class: %s", "Wizard")

	if err.Code != ErrCodeUnknownClass {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownClass)
	}

	if err.Message != "not a RiC-O class: Wizard" {
		t.Errorf("Message = %v, want %v", err.Message, "not a RiC-O class: Wizard")
	}

	expected := "UNKNOWN_CLASS: not a RiC-O class: Wizard"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeMalformedDiagram, cause, "decode draw.io XML")

	if err.Code != ErrCodeMalformedDiagram {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedDiagram)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
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
		{
			name:     "matching code",
			err:      New(ErrCodeNoSource, "test"),
			code:     ErrCodeNoSource,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNoSource, "test"),
			code:     ErrCodeNoTarget,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeMalformedDiagram, New(ErrCodeEmptyDiagram, "inner"), "outer"),
			code:     ErrCodeMalformedDiagram,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeNoSource,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeNoSource,
			expected: false,
		},
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUntreatedSpace, "test"), ErrCodeUntreatedSpace},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeUntreatedMetacharacter, "the label contains a comma")
	if got := UserMessage(structured); got != "the label contains a comma" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
