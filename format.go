package exifmeta

import (
	"io"

	"github.com/simonhull/exifmeta/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatJPEG    = types.FormatJPEG
	FormatPNG     = types.FormatPNG
	FormatTIFF    = types.FormatTIFF
	FormatWebP    = types.FormatWebP
	FormatEXIF    = types.FormatEXIF
)

// ExifHeader prefixes the TIFF structure in JPEG APP1 segments and bare
// EXIF blobs.
const ExifHeader = types.ExifHeader

// DetectFormat is a wrapper around types.DetectFormat.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
