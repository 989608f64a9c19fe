package types

import "github.com/simonhull/exifmeta/internal/binary"

// ByteOrder defines the byte order of multi-byte values in an EXIF block.
type ByteOrder = binary.Endianness

const (
	// BigEndian ("MM", Motorola): 0x1234ABCD is stored as 12 34 AB CD.
	BigEndian = binary.BigEndian
	// LittleEndian ("II", Intel): 0x1234ABCD is stored as CD AB 34 12.
	LittleEndian = binary.LittleEndian
)
