package cli

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/simonhull/exifmeta"
)

// dimensions decodes the image header of f. ok is false for bare EXIF
// blobs and for images the registered decoders cannot read.
func dimensions(f *exifmeta.File) (width, height int, ok bool) {
	if f.Reader_ == nil || f.Format == exifmeta.FormatEXIF {
		return 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(io.NewSectionReader(f.Reader_, 0, f.Size))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
