package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// ErrEntryNotFound matches any *EntryNotFoundError via errors.Is.
var ErrEntryNotFound = types.ErrEntryNotFound

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// UnsupportedWriteError is an alias to types.UnsupportedWriteError.
type UnsupportedWriteError = types.UnsupportedWriteError

// EntryNotFoundError is an alias to types.EntryNotFoundError.
type EntryNotFoundError = types.EntryNotFoundError

// InvalidValueError is an alias to types.InvalidValueError.
type InvalidValueError = types.InvalidValueError

// TypeMismatchError is an alias to types.TypeMismatchError.
type TypeMismatchError = types.TypeMismatchError

// Warning is an alias to types.Warning.
type Warning = types.Warning
