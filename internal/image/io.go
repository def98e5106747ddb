package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the format cannot be encoded.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used when EncodeOptions.JPEGQuality is zero.
const DefaultJPEGQuality = 90

// EncodeOptions tunes encoders that have knobs.
type EncodeOptions struct {
	// JPEGQuality is 1-100. Zero means DefaultJPEGQuality.
	JPEGQuality int
}

// Load decodes the image file at path, detecting the format from content.
// An empty file fails with ErrEmptyData.
func Load(path string) (image.Image, Format, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: read file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes decodes an image held in memory.
func LoadFromBytes(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, detecting the format from content.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: decode: %w", err)
	}
	return img, FormatFromName(name), nil
}

// Save writes img to path. The format comes from the path's extension and the
// parent directory is created if missing.
func Save(path string, img image.Image, opts EncodeOptions) error {
	format := FormatFromPath(path)
	if !format.CanEncode() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("image: create directory: %w", err)
		}
	}

	// A failed encode leaves no file behind.
	data, err := EncodeToBytes(img, format, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality(opts.JPEGQuality)})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// EncodeToBytes encodes img in the given format and returns the bytes.
func EncodeToBytes(img image.Image, format Format, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jpegQuality(q int) int {
	switch {
	case q == 0:
		return DefaultJPEGQuality
	case q < 1:
		return 1
	case q > 100:
		return 100
	default:
		return q
	}
}
