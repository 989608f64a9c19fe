package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, FormatJPEG},
		{"jpeg exif", []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00, 0x10}, FormatJPEG},
		{"png", append(append([]byte{}, pngSignature...), 0, 0, 0, 13, 'I', 'H', 'D', 'R'), FormatPNG},
		{"tiff little-endian", []byte("II*\x00\x08\x00\x00\x00"), FormatTIFF},
		{"tiff big-endian", []byte("MM\x00*\x00\x00\x00\x08"), FormatTIFF},
		{"webp", []byte("RIFF\x20\x00\x00\x00WEBPVP8X"), FormatWebP},
		{"exif blob", []byte("Exif\x00\x00MM\x00*\x00\x00\x00\x08"), FormatEXIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := DetectFormat(r, int64(len(tt.data)), "test")
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", []byte("abc")},
		{"text", []byte("hello, world")},
		{"riff wave", []byte("RIFF\x00\x00\x00\x00WAVEfmt ")},
		{"flac", []byte("fLaC\x00\x00\x00\x22")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			format, err := DetectFormat(r, int64(len(tt.data)), "test.bin")
			if err == nil {
				t.Fatalf("DetectFormat() = %v, want error", format)
			}
			var ufErr *UnsupportedFormatError
			if !errors.As(err, &ufErr) {
				t.Errorf("error = %T, want *UnsupportedFormatError", err)
			}
			if format != FormatUnknown {
				t.Errorf("format = %v, want FormatUnknown", format)
			}
		})
	}
}

func TestFormat_Extensions(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatJPEG, []string{".jpg", ".jpeg", ".jpe", ".jfif"}},
		{FormatPNG, []string{".png"}},
		{FormatTIFF, []string{".tif", ".tiff"}},
		{FormatWebP, []string{".webp"}},
		{FormatEXIF, []string{".exif"}},
		{FormatUnknown, nil},
	}

	for _, tc := range tests {
		got := tc.format.Extensions()
		if len(got) != len(tc.want) {
			t.Errorf("%v.Extensions() = %v, want %v", tc.format, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%v.Extensions()[%d] = %q, want %q", tc.format, i, got[i], tc.want[i])
			}
		}
	}
}

func TestFormat_String(t *testing.T) {
	if got := FormatWebP.String(); got != "WebP" {
		t.Errorf("FormatWebP.String() = %q, want %q", got, "WebP")
	}
	if got := Format(42).String(); got != "Unknown" {
		t.Errorf("Format(42).String() = %q, want %q", got, "Unknown")
	}
}
