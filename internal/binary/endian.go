package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: TIFF "MM" (Motorola) headers, JPEG marker lengths, PNG chunks.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: TIFF "II" (Intel) headers, WebP RIFF chunk sizes.
	LittleEndian
)

// byteOrder is implemented by binary.BigEndian and binary.LittleEndian.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Order returns the encoding/binary implementation of e.
func (e Endianness) Order() binary.ByteOrder {
	return order(e)
}

// String returns "big-endian" or "little-endian".
func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// This is the low-level function used by Read and Reader.
//
// Example:
//
//	count, err := binary.ReadEndian[uint16](sr, ifdOffset, "IFD entry count", binary.LittleEndian)
func ReadEndian[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}
	return Decode[T](buf, endian), nil
}

// Decode converts the leading bytes of buf to T in the given byte order.
// buf must hold at least sizeof(T) bytes.
func Decode[T uint8 | uint16 | uint32 | uint64](buf []byte, endian Endianness) T {
	var zero T
	o := order(endian)
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(o.Uint16(buf))
	case uint32:
		return T(o.Uint32(buf))
	default:
		return T(o.Uint64(buf))
	}
}

// Encode appends val to dst in the given byte order.
func Encode[T uint8 | uint16 | uint32 | uint64](dst []byte, val T, endian Endianness) []byte {
	var zero T
	o := order(endian)
	switch any(zero).(type) {
	case uint8:
		return append(dst, byte(val))
	case uint16:
		return o.AppendUint16(dst, uint16(val))
	case uint32:
		return o.AppendUint32(dst, uint32(val))
	default:
		return o.AppendUint64(dst, uint64(val))
	}
}
