package convolve

import (
	"errors"
	"fmt"
)

// Mode selects the kernel pair and how the weighted sum is combined with the
// source pixel.
type Mode uint8

const (
	// Sharpen adds the weighted sum to the source channel value.
	Sharpen Mode = iota

	// Blur divides the weighted sum by the kernel divisor.
	Blur

	modeCount
)

// ErrInvalidMode is returned for a Mode outside {Sharpen, Blur} and by
// ParseMode for an unrecognized selector.
var ErrInvalidMode = errors.New("convolve: invalid mode")

// String returns "sharpen" or "blur".
func (m Mode) String() string {
	switch m {
	case Sharpen:
		return "sharpen"
	case Blur:
		return "blur"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// IsValid reports whether m is Sharpen or Blur.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// ParseMode parses the interactive mode selector: exactly "t" for Sharpen or
// "f" for Blur. Anything else, including other case or surrounding spaces, is
// rejected with ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "t":
		return Sharpen, nil
	case "f":
		return Blur, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}
