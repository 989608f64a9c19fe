package exifmeta

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// Save writes the modified EXIF data back to the original file.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
//	err := file.Save(
//	    exifmeta.WithBackup(".bak"),
//	    exifmeta.WithValidation(),
//	)
//
// Returns UnsupportedWriteError if no writer is registered for the format.
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the image with the current EXIF data to a new location.
//
// The image data is copied from the original file, so the File must
// still be open. The write is atomic: a temporary file in the output
// directory is synced and then renamed over outputPath.
//
// WithByteOrder converts f.Data only once the new file is in place; a
// failed save leaves the container as it was.
//
// Returns UnsupportedWriteError if no writer is registered for the format.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	writer := registry.GetWriter(f.Format)
	if writer == nil {
		return &types.UnsupportedWriteError{
			Format: f.Format,
			Reason: "no writer registered",
		}
	}

	if f.Reader_ == nil {
		return fmt.Errorf("file not open: reader is nil")
	}
	if f.Data == nil {
		return fmt.Errorf("file has no EXIF container")
	}

	target := &f.File
	if options.byteOrder != nil && *options.byteOrder != f.Data.ByteOrder() {
		converted := f.File
		converted.Data = f.Data.Clone()
		converted.Data.SetByteOrder(*options.byteOrder)
		target = &converted
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(f.Path); err == nil {
			origInfo = info
		}
	}

	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".exifmeta-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := writer.Write(tempFile, target, f.Reader_, f.Size); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if origInfo != nil {
		_ = os.Chmod(tempPath, origInfo.Mode().Perm()) //nolint:errcheck // Non-fatal: keep CreateTemp's mode
	}

	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if target != &f.File {
		f.Data.SetByteOrder(target.Data.ByteOrder())
	}

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the file and compares every entry and the
// thumbnail with the in-memory container.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer written.Close() //nolint:errcheck // Best effort close

	if written.Data.ByteOrder() != f.Data.ByteOrder() {
		return fmt.Errorf("byte order mismatch: got %s, want %s", written.Data.ByteOrder(), f.Data.ByteOrder())
	}

	for c := range f.Data.Contents() {
		got := written.Data.Content(c.IFD())
		if got.Len() != c.Len() {
			return fmt.Errorf("%s IFD: got %d entries, want %d", c.IFD(), got.Len(), c.Len())
		}
		for want := range c.Entries() {
			e, ok := got.Entry(want.Tag())
			if !ok {
				return fmt.Errorf("%s IFD: entry %s missing", c.IFD(), want.Tag())
			}
			if e.DataType() != want.DataType() || !bytes.Equal(e.RawData(), want.RawData()) {
				return fmt.Errorf("%s IFD: entry %s differs", c.IFD(), want.Tag())
			}
		}
	}

	if !bytes.Equal(written.Data.Thumbnail(), f.Data.Thumbnail()) {
		return fmt.Errorf("thumbnail mismatch: got %d bytes, want %d", len(written.Data.Thumbnail()), len(f.Data.Thumbnail()))
	}

	return nil
}
