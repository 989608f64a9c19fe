package types

import (
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
)

// Format represents the detected image container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota // Unknown
	// FormatJPEG represents JPEG/JFIF images with an APP1 Exif segment.
	FormatJPEG // JPEG
	// FormatPNG represents PNG images with an eXIf chunk.
	FormatPNG // PNG
	// FormatTIFF represents TIFF images, whose IFD0 is the EXIF IFD0.
	FormatTIFF // TIFF
	// FormatWebP represents WebP images with a RIFF EXIF chunk.
	FormatWebP // WebP
	// FormatEXIF represents a bare EXIF block starting with "Exif\0\0".
	FormatEXIF // EXIF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatTIFF:
		return "TIFF"
	case FormatWebP:
		return "WebP"
	case FormatEXIF:
		return "EXIF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg", ".jpe", ".jfif"}
	case FormatPNG:
		return []string{".png"}
	case FormatTIFF:
		return []string{".tif", ".tiff"}
	case FormatWebP:
		return []string{".webp"}
	case FormatEXIF:
		return []string{".exif"}
	default:
		return nil
	}
}

// ExifHeader prefixes the TIFF structure in a JPEG APP1 segment and in
// bare EXIF blobs.
const ExifHeader = "Exif\x00\x00"

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// DetectFormat determines the image format by examining magic bytes.
//
// Supported formats: JPEG, PNG, TIFF, WebP and bare EXIF blobs.
//
// Detection is based on file signatures at the beginning of the file and
// does not validate the rest of the container.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	n := min(size, 12)
	magic, err := sr.Bytes(0, int(n), "file magic bytes")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	// JPEG: SOI followed by the first marker prefix
	if magic[0] == 0xFF && magic[1] == 0xD8 && magic[2] == 0xFF {
		return FormatJPEG, nil
	}

	if len(magic) >= 8 && string(magic[:8]) == string(pngSignature) {
		return FormatPNG, nil
	}

	if string(magic[:4]) == "II*\x00" || string(magic[:4]) == "MM\x00*" {
		return FormatTIFF, nil
	}

	if len(magic) >= 12 && string(magic[:4]) == "RIFF" && string(magic[8:12]) == "WEBP" {
		return FormatWebP, nil
	}

	if len(magic) >= 6 && string(magic[:6]) == ExifHeader {
		return FormatEXIF, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file format",
	}
}
