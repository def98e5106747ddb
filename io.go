package convolve

import (
	"io"

	imageio "github.com/gogpu/convolve/internal/image"
)

// SaveOption configures Save and Encode.
type SaveOption func(*imageio.EncodeOptions)

// WithJPEGQuality sets the JPEG quality (1-100) for .jpg/.jpeg output.
func WithJPEGQuality(q int) SaveOption {
	return func(o *imageio.EncodeOptions) {
		o.JPEGQuality = q
	}
}

// Load decodes an image file into a Raster. PNG, JPEG, GIF, BMP, TIFF and
// WebP are recognized from the file content.
func Load(path string) (*Raster, error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Decode decodes an image stream into a Raster.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := imageio.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Save writes the raster to path in the format named by its extension
// (.png, .jpg, .jpeg, .bmp, .tif, .tiff). Missing parent directories are
// created.
func (r *Raster) Save(path string, opts ...SaveOption) error {
	return imageio.Save(path, r.ToImage(), encodeOptions(opts))
}

// EncodePNG writes the raster to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return imageio.Encode(w, r.ToImage(), imageio.FormatPNG, imageio.EncodeOptions{})
}

// EncodeJPEG writes the raster to w as JPEG.
func (r *Raster) EncodeJPEG(w io.Writer, opts ...SaveOption) error {
	return imageio.Encode(w, r.ToImage(), imageio.FormatJPEG, encodeOptions(opts))
}

func encodeOptions(opts []SaveOption) imageio.EncodeOptions {
	var o imageio.EncodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
