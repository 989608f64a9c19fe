package exifmeta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// File represents an opened image with its parsed EXIF metadata.
//
// Data holds the EXIF container. Changes made to it are written back by
// Save or SaveAs, which copy the image data from the original file.
//
// Always call Close() when done to release file resources:
//
//	file, err := exifmeta.Open("photo.jpg")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	types.File
}

// Open opens an image file and reads its EXIF metadata.
//
// Supported formats: JPEG, PNG, TIFF (read-only), WebP (read-only) and
// bare EXIF blobs starting with "Exif\0\0".
//
// A missing or unreadable file returns the wrapped os error. A file that
// is not a supported image returns *UnsupportedFormatError, and a broken
// container or TIFF header returns *CorruptedFileError. An image without
// EXIF data opens fine: Data is empty and Warnings says so.
//
// Options can be provided to customize parsing behavior:
//
//	file, err := exifmeta.Open("photo.jpg",
//	    exifmeta.WithStrictParsing(),
//	    exifmeta.WithFollowSpecification(),
//	)
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	return file, nil
}

// OpenReader reads EXIF metadata from an in-memory or otherwise
// non-file source. name is used for format detection and messages.
//
// Close does nothing unless r implements io.Closer.
func OpenReader(r io.ReaderAt, size int64, name string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return openReader(r, size, name, options)
}

// openReader runs format detection and the registered parser.
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	parser := registry.Get(format)
	if parser == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no parser available for format %s", format),
		}
	}

	options.logger.Debug("parsing file",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.Int64("size", size))

	parsed, err := parser.Parse(r, size, path, options.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	file := &File{File: *parsed}
	file.Path = path
	file.Format = format
	file.Size = size
	file.Reader_ = r

	if err := options.checkWarnings(file.Warnings); err != nil {
		return nil, err
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}
	for _, w := range file.Warnings {
		options.logger.Debug("parse warning", slog.String("path", path), slog.String("warning", w.String()))
	}

	return file, nil
}

// Load parses a bare EXIF block: either a TIFF structure or one preceded
// by "Exif\0\0", such as the payload of a JPEG APP1 segment.
//
// Warnings are dropped unless WithStrictParsing turns them into an error.
func Load(b []byte, opts ...Option) (*Data, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	const name = "<bytes>"
	r := bytes.NewReader(b)
	format, err := DetectFormat(r, int64(len(b)), name)
	if err != nil {
		return nil, err
	}
	if format != FormatEXIF && format != FormatTIFF {
		return nil, &UnsupportedFormatError{Path: name, Reason: fmt.Sprintf("expected an EXIF block, found %s", format)}
	}

	parsed, err := registry.Get(format).Parse(r, int64(len(b)), name, options.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("parse EXIF: %w", err)
	}
	if err := options.checkWarnings(parsed.Warnings); err != nil {
		return nil, err
	}
	return parsed.Data, nil
}

// NewData returns an empty big-endian EXIF container.
func NewData() *Data {
	return types.NewData()
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be saved.
func (f *File) Close() error {
	if closer, ok := f.Reader_.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is opened; parsing itself reads
// only the metadata segments and is not interruptible.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	file, err := exifmeta.OpenContext(ctx, "photo.jpg")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple images concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened files are closed
// and an error is returned.
//
// Example:
//
//	files, err := exifmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
