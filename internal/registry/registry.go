// Package registry manages format-specific parsers and writers for image
// container types.
package registry

import (
	"io"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/types"
)

// ParseOptions carries the open-time settings a parser needs.
type ParseOptions struct {
	// Logger receives debug records about skipped entries and fixes.
	// Parsers must treat nil as a discarding logger.
	Logger *slog.Logger

	// DataOptions are set on the decoded Data before it is processed.
	DataOptions types.DataOption
}

// Log returns the configured logger or a discarding one.
func (o ParseOptions) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// FormatParser is the interface all format parsers implement.
type FormatParser interface {
	// Parse extracts the EXIF block from an image.
	// Returns a partially initialized File (Path, Format, Size set by caller).
	Parse(r io.ReaderAt, size int64, path string, opts ParseOptions) (*types.File, error)
}

// FormatWriter is the interface format writers implement.
type FormatWriter interface {
	// Write writes the image with file.Data as its EXIF block to w.
	// original provides read access to the source file for copying image data.
	Write(w io.Writer, file *types.File, original io.ReaderAt, originalSize int64) error
}

// parsers maps formats to their parsers.
var parsers = make(map[types.Format]FormatParser)

// writers maps formats to their writers.
var writers = make(map[types.Format]FormatWriter)

// Register registers a parser for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, parser FormatParser) {
	parsers[format] = parser
}

// Get returns the parser for a given format.
// Returns nil if no parser is registered for the format.
func Get(format types.Format) FormatParser {
	return parsers[format]
}

// RegisterWriter registers a writer for a format.
// This is called by format packages during initialization (init functions).
func RegisterWriter(format types.Format, writer FormatWriter) {
	writers[format] = writer
}

// GetWriter returns the writer for a given format.
// Returns nil if no writer is registered for the format.
func GetWriter(format types.Format) FormatWriter {
	return writers[format]
}
