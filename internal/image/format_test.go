package image

import "testing"

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"images/comparison.png", FormatPNG},
		{"OUT.PNG", FormatPNG},
		{"photo.jpg", FormatJPEG},
		{"photo.JPEG", FormatJPEG},
		{"anim.gif", FormatGIF},
		{"scan.bmp", FormatBMP},
		{"scan.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
		{"web.webp", FormatWebP},
		{"noext", FormatUnknown},
		{"archive.tar.gz", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatFromName(t *testing.T) {
	for f := FormatPNG; f < formatCount; f++ {
		if got := FormatFromName(f.String()); got != f {
			t.Errorf("FormatFromName(%q) = %s, want %s", f.String(), got, f)
		}
	}
	if got := FormatFromName("xcf"); got != FormatUnknown {
		t.Errorf("FormatFromName(xcf) = %s, want unknown", got)
	}
}

func TestFormatCanEncode(t *testing.T) {
	want := map[Format]bool{
		FormatUnknown: false,
		FormatPNG:     true,
		FormatJPEG:    true,
		FormatGIF:     false,
		FormatBMP:     true,
		FormatTIFF:    true,
		FormatWebP:    false,
	}
	for f, w := range want {
		if got := f.CanEncode(); got != w {
			t.Errorf("%s.CanEncode() = %v, want %v", f, got, w)
		}
	}
}

func TestFormatInfo_OutOfRange(t *testing.T) {
	f := Format(200)
	if f.String() != "unknown" {
		t.Errorf("Format(200).String() = %q, want unknown", f.String())
	}
	if f.CanEncode() {
		t.Error("Format(200).CanEncode() = true")
	}
}
