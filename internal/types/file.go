// Package types provides the core data structures for EXIF metadata.
//
// This package defines the Data container with its per-IFD Content and
// Entry values, the tag table, typed values and the File type that
// represents a parsed image.
package types

import (
	"io"
)

// File represents an opened image file with parsed EXIF metadata.
//
// File keeps the underlying reader so the image data can be copied when
// the metadata is saved. Always call Close() when done:
//
//	file, err := exifmeta.Open("photo.jpg")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	Reader_  io.ReaderAt //nolint:revive // Underscore indicates internal/unexported semantics
	Data     *Data
	Path     string
	Warnings []Warning
	Format   Format
	Size     int64
}
