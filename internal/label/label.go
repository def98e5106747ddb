// Package label draws short captions onto comparison panels.
//
// Captions use the Go Regular font bundled with golang.org/x/image, so no
// font files are needed at runtime.
package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSize is the caption size in points at 72 DPI, i.e. pixels.
const DefaultSize = 14

// Padding is the gap in pixels between the panel corner and the caption.
const Padding = 4

// Labeler draws captions with one font face.
//
// Thread safety: a Labeler is NOT safe for concurrent use because font
// faces cache glyphs internally.
type Labeler struct {
	face font.Face
}

// New creates a Labeler with a Go Regular face of the given size.
// A non-positive size means DefaultSize.
func New(size float64) (*Labeler, error) {
	if size <= 0 {
		size = DefaultSize
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("label: parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("label: create face: %w", err)
	}

	return &Labeler{face: face}, nil
}

// Close releases the font face.
func (l *Labeler) Close() error {
	return l.face.Close()
}

// Size returns the pixel size text would occupy, padding included.
func (l *Labeler) Size(text string) image.Point {
	m := l.face.Metrics()
	width := font.MeasureString(l.face, text).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	// +1 for the shadow offset.
	return image.Pt(width+2*Padding+1, height+2*Padding+1)
}

// Fits reports whether text fits inside a panel of the given size.
func (l *Labeler) Fits(panel image.Point, text string) bool {
	s := l.Size(text)
	return s.X <= panel.X && s.Y <= panel.Y
}

// Draw writes text at the top-left corner of the rectangle starting at
// origin: white glyphs over a one-pixel black shadow so the caption reads on
// light and dark images alike.
func (l *Labeler) Draw(dst draw.Image, origin image.Point, text string) {
	baseline := origin.Y + Padding + l.face.Metrics().Ascent.Ceil()
	x := origin.X + Padding

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: l.face,
		Dot:  fixed.P(x+1, baseline+1),
	}
	d.DrawString(text)

	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}

// Caption returns the panel caption: "Original" for radius 0, otherwise the
// title-cased mode name and radius, e.g. "Blur r=2".
func Caption(mode string, radius int) string {
	if radius == 0 {
		return "Original"
	}
	return fmt.Sprintf("%s r=%d", cases.Title(language.English).String(mode), radius)
}
