// Package image provides image file decoding and encoding for convolve.
//
// Decoding accepts PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Encoding writes PNG, JPEG, BMP or
// TIFF, selected by file extension.
package image

import (
	"path/filepath"
	"strings"
)

// Format is an image file format.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota

	// FormatPNG is Portable Network Graphics. The default output format.
	FormatPNG

	// FormatJPEG is baseline JPEG. Lossy; quality is configurable.
	FormatJPEG

	// FormatGIF is decode-only.
	FormatGIF

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is Tagged Image File Format.
	FormatTIFF

	// FormatWebP is decode-only (x/image has no WebP encoder).
	FormatWebP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the name image.Decode reports for the format.
	Name string

	// Extensions lists lower-case file extensions, including the dot.
	Extensions []string

	// CanEncode indicates if the format can be written.
	CanEncode bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {Name: "unknown"},
	FormatPNG:     {Name: "png", Extensions: []string{".png"}, CanEncode: true},
	FormatJPEG:    {Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}, CanEncode: true},
	FormatGIF:     {Name: "gif", Extensions: []string{".gif"}},
	FormatBMP:     {Name: "bmp", Extensions: []string{".bmp"}, CanEncode: true},
	FormatTIFF:    {Name: "tiff", Extensions: []string{".tif", ".tiff"}, CanEncode: true},
	FormatWebP:    {Name: "webp", Extensions: []string{".webp"}},
}

// Info returns metadata for the format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return formatInfoTable[FormatUnknown]
	}
	return formatInfoTable[f]
}

// String returns the format name.
func (f Format) String() string {
	return f.Info().Name
}

// CanEncode reports whether the format can be written.
func (f Format) CanEncode() bool {
	return f.Info().CanEncode
}

// FormatFromName maps a name reported by image.Decode to a Format.
func FormatFromName(name string) Format {
	for f := FormatPNG; f < formatCount; f++ {
		if formatInfoTable[f].Name == name {
			return f
		}
	}
	return FormatUnknown
}

// FormatFromPath picks a Format from the extension of path.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for f := FormatPNG; f < formatCount; f++ {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}
