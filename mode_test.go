package convolve

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"t", Sharpen},
		{"f", Blur},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseMode_Invalid(t *testing.T) {
	inputs := []string{
		"", "y", "true", "tf",
		"T", "F", " t", "t ", "f\r\n",
		"sharpen", "blur", "Blur",
	}
	for _, in := range inputs {
		if _, err := ParseMode(in); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", in, err)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Sharpen, "sharpen"},
		{Blur, "blur"},
		{Mode(5), "Mode(5)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
}

func TestModeIsValid(t *testing.T) {
	if !Sharpen.IsValid() || !Blur.IsValid() {
		t.Error("Sharpen and Blur must be valid")
	}
	if Mode(2).IsValid() {
		t.Error("Mode(2) must be invalid")
	}
}
