package exifmeta

// Format packages register their parsers and writers in init.
import (
	_ "github.com/simonhull/exifmeta/internal/jpeg"
	_ "github.com/simonhull/exifmeta/internal/png"
	_ "github.com/simonhull/exifmeta/internal/tiff"
	_ "github.com/simonhull/exifmeta/internal/webp"
)
