package types

import (
	"errors"
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
)

// ErrEntryNotFound is matched by EntryNotFoundError via errors.Is.
var ErrEntryNotFound = errors.New("entry not found")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError = binary.OutOfBoundsError

// UnsupportedFormatError is returned when the file is not a supported image container.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when the container or TIFF structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// UnsupportedWriteError indicates write is not supported for this format.
type UnsupportedWriteError struct {
	Reason string
	Format Format
}

func (e *UnsupportedWriteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("write not supported for %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("write not supported for %s", e.Format)
}

// EntryNotFoundError is returned when an IFD has no entry for a tag.
type EntryNotFoundError struct {
	IFD IFD
	Tag Tag
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("%s IFD: no entry for tag %s (%s)", e.IFD, e.Tag, e.Tag.Name(e.IFD))
}

// Is reports whether target is ErrEntryNotFound.
func (e *EntryNotFoundError) Is(target error) bool {
	return target == ErrEntryNotFound
}

// InvalidValueError is returned when a value cannot be stored in or read
// from an entry.
type InvalidValueError struct {
	IFD    IFD
	Tag    Tag
	Reason string
}

func (e *InvalidValueError) Error() string {
	if !e.IFD.Valid() {
		return "invalid value: " + e.Reason
	}
	return fmt.Sprintf("%s IFD: invalid value for tag %s: %s", e.IFD, e.Tag, e.Reason)
}

// TypeMismatchError is returned by ValueAs when a value has another type.
type TypeMismatchError struct {
	Want DataType
	Got  DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value is %s, not %s", e.Got, e.Want)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - Entries with unknown field types
//   - Values pointing outside the EXIF block
//   - IFD offset loops
//   - A truncated thumbnail
//
// Warnings are collected in File.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "ifd", "entry", "thumbnail", "container"

	// Warning message
	Message string

	// Offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
