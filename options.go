package exifmeta

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// Option configures behavior when opening images.
//
// Example:
//
//	file, err := exifmeta.Open("photo.jpg",
//	    exifmeta.WithStrictParsing(),
//	    exifmeta.WithLogger(slog.Default()),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	logger         *slog.Logger
	dataOptions    types.DataOption
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger: slog.New(slog.DiscardHandler),
	}
}

func (o *openOptions) parseOptions() registry.ParseOptions {
	return registry.ParseOptions{
		Logger:      o.logger,
		DataOptions: o.dataOptions,
	}
}

// checkWarnings fails in strict mode when any warning was raised.
func (o *openOptions) checkWarnings(warnings []Warning) error {
	if o.strictParsing && len(warnings) > 0 {
		return fmt.Errorf("strict parsing failed: %s", warnings[0].Message)
	}
	return nil
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, exifmeta skips broken entries, unreadable sub-IFDs and
// similar problems, returning warnings alongside the parsed data. A JPEG
// or PNG without EXIF data also produces a warning, so strict parsing
// rejects it.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithIgnoreUnknownTags drops entries whose tag is not known for the IFD
// they appear in, or is not recorded there.
func WithIgnoreUnknownTags() Option {
	return func(o *openOptions) {
		o.dataOptions |= types.OptionIgnoreUnknownTags
	}
}

// WithFollowSpecification runs Data.Fix after decoding: entries the
// EXIF standard forbids for the image encoding are removed and missing
// mandatory entries are added with their default values.
func WithFollowSpecification() Option {
	return func(o *openOptions) {
		o.dataOptions |= types.OptionFollowSpecification
	}
}

// WithProtectedMakerNote prevents the maker note from being changed or
// removed through the opened Data.
func WithProtectedMakerNote() Option {
	return func(o *openOptions) {
		o.dataOptions |= types.OptionDontChangeMakerNote
	}
}

// WithLogger routes debug records about parsing to logger.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
