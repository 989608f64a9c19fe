package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/simonhull/exifmeta/internal/binary"
)

// Rational is an unsigned fraction, such as an exposure time of 1/125.
type Rational struct {
	Num uint32
	Den uint32
}

// Float64 returns Num/Den, or NaN when Den is zero.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// SRational is a signed fraction, such as an exposure bias of -1/3.
type SRational struct {
	Num int32
	Den int32
}

// Float64 returns Num/Den, or NaN when Den is zero.
func (r SRational) Float64() float64 {
	if r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Value is the decoded payload of an entry. The concrete type matches the
// entry's DataType:
//
//	Text       ASCII
//	U8         Byte
//	I8         SByte
//	U16        Short
//	I16        SShort
//	U32        Long
//	I32        SLong
//	URational  Rational
//	IRational  SRational
//	F32        Float
//	F64        Double
//	Undefined  Undefined
type Value interface {
	// DataType returns the TIFF field type used to store the value.
	DataType() DataType
	// Components returns the TIFF component count of the value.
	Components() int

	appendTo(dst []byte, order ByteOrder) []byte
}

type (
	// Text is an ASCII value. It is stored NUL-terminated.
	Text string
	// U8 is a sequence of unsigned bytes.
	U8 []uint8
	// I8 is a sequence of signed bytes.
	I8 []int8
	// U16 is a sequence of unsigned 16-bit integers.
	U16 []uint16
	// I16 is a sequence of signed 16-bit integers.
	I16 []int16
	// U32 is a sequence of unsigned 32-bit integers.
	U32 []uint32
	// I32 is a sequence of signed 32-bit integers.
	I32 []int32
	// URational is a sequence of unsigned fractions.
	URational []Rational
	// IRational is a sequence of signed fractions.
	IRational []SRational
	// F32 is a sequence of IEEE 754 single precision floats.
	F32 []float32
	// F64 is a sequence of IEEE 754 double precision floats.
	F64 []float64
	// Undefined is an opaque sequence of bytes.
	Undefined []byte
)

func (Text) DataType() DataType      { return TypeASCII }
func (U8) DataType() DataType        { return TypeByte }
func (I8) DataType() DataType        { return TypeSByte }
func (U16) DataType() DataType       { return TypeShort }
func (I16) DataType() DataType       { return TypeSShort }
func (U32) DataType() DataType       { return TypeLong }
func (I32) DataType() DataType       { return TypeSLong }
func (URational) DataType() DataType { return TypeRational }
func (IRational) DataType() DataType { return TypeSRational }
func (F32) DataType() DataType       { return TypeFloat }
func (F64) DataType() DataType       { return TypeDouble }
func (Undefined) DataType() DataType { return TypeUndefined }

func (v Text) Components() int      { return len(v) + 1 }
func (v U8) Components() int        { return len(v) }
func (v I8) Components() int        { return len(v) }
func (v U16) Components() int       { return len(v) }
func (v I16) Components() int       { return len(v) }
func (v U32) Components() int       { return len(v) }
func (v I32) Components() int       { return len(v) }
func (v URational) Components() int { return len(v) }
func (v IRational) Components() int { return len(v) }
func (v F32) Components() int       { return len(v) }
func (v F64) Components() int       { return len(v) }
func (v Undefined) Components() int { return len(v) }

func (v Text) appendTo(dst []byte, _ ByteOrder) []byte {
	dst = append(dst, v...)
	return append(dst, 0)
}

func (v U8) appendTo(dst []byte, _ ByteOrder) []byte {
	return append(dst, v...)
}

func (v I8) appendTo(dst []byte, _ ByteOrder) []byte {
	for _, x := range v {
		dst = append(dst, byte(x))
	}
	return dst
}

func (v U16) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, x, order)
	}
	return dst
}

func (v I16) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, uint16(x), order)
	}
	return dst
}

func (v U32) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, x, order)
	}
	return dst
}

func (v I32) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, uint32(x), order)
	}
	return dst
}

func (v URational) appendTo(dst []byte, order ByteOrder) []byte {
	for _, r := range v {
		dst = binary.Encode(dst, r.Num, order)
		dst = binary.Encode(dst, r.Den, order)
	}
	return dst
}

func (v IRational) appendTo(dst []byte, order ByteOrder) []byte {
	for _, r := range v {
		dst = binary.Encode(dst, uint32(r.Num), order)
		dst = binary.Encode(dst, uint32(r.Den), order)
	}
	return dst
}

func (v F32) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, math.Float32bits(x), order)
	}
	return dst
}

func (v F64) appendTo(dst []byte, order ByteOrder) []byte {
	for _, x := range v {
		dst = binary.Encode(dst, math.Float64bits(x), order)
	}
	return dst
}

func (v Undefined) appendTo(dst []byte, _ ByteOrder) []byte {
	return append(dst, v...)
}

// EncodeValue serializes v in the given byte order.
func EncodeValue(v Value, order ByteOrder) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value")
	}
	if s, ok := v.(Text); ok && strings.IndexByte(string(s), 0) >= 0 {
		return nil, fmt.Errorf("text contains a NUL byte")
	}
	return v.appendTo(make([]byte, 0, v.Components()*v.DataType().Size()), order), nil
}

// DecodeValue interprets raw as components values of type dt.
//
// raw must be exactly dt.Size()*components bytes long. Text is cut at
// the first NUL byte.
func DecodeValue(raw []byte, dt DataType, components int, order ByteOrder) (Value, error) {
	size := dt.Size()
	if size == 0 {
		return nil, fmt.Errorf("unknown data type %d", uint16(dt))
	}
	if components < 0 || len(raw) != size*components {
		return nil, fmt.Errorf("%d bytes cannot hold %d %s components", len(raw), components, dt)
	}

	switch dt {
	case TypeASCII:
		if i := strings.IndexByte(string(raw), 0); i >= 0 {
			raw = raw[:i]
		}
		return Text(raw), nil
	case TypeByte:
		return U8(clone(raw)), nil
	case TypeUndefined:
		return Undefined(clone(raw)), nil
	case TypeSByte:
		out := make(I8, components)
		for i := range out {
			out[i] = int8(raw[i])
		}
		return out, nil
	case TypeShort:
		out := make(U16, components)
		for i := range out {
			out[i] = binary.Decode[uint16](raw[i*2:], order)
		}
		return out, nil
	case TypeSShort:
		out := make(I16, components)
		for i := range out {
			out[i] = int16(binary.Decode[uint16](raw[i*2:], order))
		}
		return out, nil
	case TypeLong:
		out := make(U32, components)
		for i := range out {
			out[i] = binary.Decode[uint32](raw[i*4:], order)
		}
		return out, nil
	case TypeSLong:
		out := make(I32, components)
		for i := range out {
			out[i] = int32(binary.Decode[uint32](raw[i*4:], order))
		}
		return out, nil
	case TypeRational:
		out := make(URational, components)
		for i := range out {
			out[i] = Rational{
				Num: binary.Decode[uint32](raw[i*8:], order),
				Den: binary.Decode[uint32](raw[i*8+4:], order),
			}
		}
		return out, nil
	case TypeSRational:
		out := make(IRational, components)
		for i := range out {
			out[i] = SRational{
				Num: int32(binary.Decode[uint32](raw[i*8:], order)),
				Den: int32(binary.Decode[uint32](raw[i*8+4:], order)),
			}
		}
		return out, nil
	case TypeFloat:
		out := make(F32, components)
		for i := range out {
			out[i] = math.Float32frombits(binary.Decode[uint32](raw[i*4:], order))
		}
		return out, nil
	default: // TypeDouble
		out := make(F64, components)
		for i := range out {
			out[i] = math.Float64frombits(binary.Decode[uint64](raw[i*8:], order))
		}
		return out, nil
	}
}

// ValueAs returns v as the concrete value type T.
//
// Example:
//
//	orientation, err := types.ValueAs[types.U16](v)
func ValueAs[T Value](v Value) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	err := &TypeMismatchError{Want: zero.DataType()}
	if v != nil {
		err.Got = v.DataType()
	}
	return zero, err
}

// UintAt returns component i of an unsigned integer value (U8, U16 or
// U32) widened to uint32.
func UintAt(v Value, i int) (uint32, bool) {
	switch x := v.(type) {
	case U8:
		if i < len(x) {
			return uint32(x[i]), true
		}
	case U16:
		if i < len(x) {
			return uint32(x[i]), true
		}
	case U32:
		if i < len(x) {
			return x[i], true
		}
	}
	return 0, false
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
