package convolve

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// BytesPerPixel is the size of one Raster pixel: red, green, blue.
const BytesPerPixel = 3

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("convolve: invalid dimensions")

// Raster is an 8-bit RGB image stored row-major without padding.
//
// Raster implements image.Image and draw.Image, so it can be handed to the
// standard codecs and drawing helpers directly. Alpha is not stored; every
// pixel reads back fully opaque.
//
// Thread safety: concurrent reads are safe. Writes need external
// synchronization, except that goroutines may write disjoint rows.
type Raster struct {
	pix    []byte
	width  int
	height int
}

// NewRaster creates a black raster.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		pix:    make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// newRasterLike allocates a zeroed raster with the dimensions of r.
func newRasterLike(r *Raster) *Raster {
	return &Raster{
		pix:    make([]byte, len(r.pix)),
		width:  r.width,
		height: r.height,
	}
}

// Width returns the width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the height in pixels.
func (r *Raster) Height() int { return r.height }

// Pix returns the underlying pixel data.
func (r *Raster) Pix() []byte { return r.pix }

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int { return r.width * BytesPerPixel }

// PixOffset returns the index of the first byte of pixel (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.width + x) * BytesPerPixel
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// RGBAt returns the channels of pixel (x, y), or zeros outside the raster.
func (r *Raster) RGBAt(x, y int) (red, green, blue uint8) {
	if !r.inBounds(x, y) {
		return 0, 0, 0
	}
	i := r.PixOffset(x, y)
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// SetRGB sets pixel (x, y). Coordinates outside the raster are ignored.
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	if !r.inBounds(x, y) {
		return
	}
	i := r.PixOffset(x, y)
	r.pix[i] = red
	r.pix[i+1] = green
	r.pix[i+2] = blue
}

// Fill sets every pixel to the same color.
func (r *Raster) Fill(red, green, blue uint8) {
	for i := 0; i < len(r.pix); i += BytesPerPixel {
		r.pix[i] = red
		r.pix[i+1] = green
		r.pix[i+2] = blue
	}
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	c := newRasterLike(r)
	copy(c.pix, r.pix)
	return c
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Paste copies src into r with its top-left corner at (x0, y0).
// Parts of src that fall outside r are clipped.
func (r *Raster) Paste(src *Raster, x0, y0 int) {
	sx0, sy0 := max(0, -x0), max(0, -y0)
	sx1, sy1 := min(src.width, r.width-x0), min(src.height, r.height-y0)
	if sx0 >= sx1 || sy0 >= sy1 {
		return
	}

	n := (sx1 - sx0) * BytesPerPixel
	for sy := sy0; sy < sy1; sy++ {
		s := src.PixOffset(sx0, sy)
		d := r.PixOffset(x0+sx0, y0+sy)
		copy(r.pix[d:d+n], src.pix[s:s+n])
	}
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image. The origin is always (0, 0).
func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.width, r.height) }

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color {
	red, green, blue := r.RGBAt(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Set implements draw.Image. Alpha is discarded after un-premultiplying.
func (r *Raster) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.SetRGB(x, y, n.R, n.G, n.B)
}

// FromImage converts any image to a Raster, keeping the straight
// (non-premultiplied) color channels and dropping alpha.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	if b.Empty() {
		return &Raster{}
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}

	r := &Raster{
		pix:    make([]byte, b.Dx()*b.Dy()*BytesPerPixel),
		width:  b.Dx(),
		height: b.Dy(),
	}
	for y := range r.height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+r.width*4]
		dst := r.pix[y*r.Stride() : (y+1)*r.Stride()]
		for x := range r.width {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return r
}

// ToImage converts the raster to an opaque *image.NRGBA.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(r.Bounds())
	for y := range r.height {
		src := r.pix[y*r.Stride() : (y+1)*r.Stride()]
		dst := img.Pix[y*img.Stride:]
		for x := range r.width {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}
