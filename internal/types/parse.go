package types

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue builds a value of type dt from command-line style arguments.
//
// Numeric types take one argument per component. Rationals are written
// "num/den" or as a whole number. ASCII joins the arguments with spaces.
// Undefined takes the literal bytes of the joined arguments, or hex
// digits after a "hex:" prefix.
func ParseValue(dt DataType, args []string) (Value, error) {
	switch dt {
	case TypeASCII:
		return Text(strings.Join(args, " ")), nil
	case TypeUndefined:
		s := strings.Join(args, " ")
		if h, ok := strings.CutPrefix(s, "hex:"); ok {
			b, err := hex.DecodeString(strings.ReplaceAll(h, " ", ""))
			if err != nil {
				return nil, fmt.Errorf("parse undefined: %w", err)
			}
			return Undefined(b), nil
		}
		return Undefined(s), nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%s value needs at least one component", dt)
	}

	switch dt {
	case TypeByte:
		v, err := parseInts[uint8](args, 8, false)
		if err != nil {
			return nil, err
		}
		return U8(v), nil
	case TypeSByte:
		v, err := parseInts[int8](args, 8, true)
		if err != nil {
			return nil, err
		}
		return I8(v), nil
	case TypeShort:
		v, err := parseInts[uint16](args, 16, false)
		if err != nil {
			return nil, err
		}
		return U16(v), nil
	case TypeSShort:
		v, err := parseInts[int16](args, 16, true)
		if err != nil {
			return nil, err
		}
		return I16(v), nil
	case TypeLong:
		v, err := parseInts[uint32](args, 32, false)
		if err != nil {
			return nil, err
		}
		return U32(v), nil
	case TypeSLong:
		v, err := parseInts[int32](args, 32, true)
		if err != nil {
			return nil, err
		}
		return I32(v), nil
	case TypeRational:
		v := make(URational, len(args))
		for i, a := range args {
			num, den, err := splitRational(a)
			if err != nil {
				return nil, err
			}
			n, err1 := strconv.ParseUint(num, 10, 32)
			d, err2 := strconv.ParseUint(den, 10, 32)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("invalid rational %q", a)
			}
			v[i] = Rational{Num: uint32(n), Den: uint32(d)}
		}
		return v, nil
	case TypeSRational:
		v := make(IRational, len(args))
		for i, a := range args {
			num, den, err := splitRational(a)
			if err != nil {
				return nil, err
			}
			n, err1 := strconv.ParseInt(num, 10, 32)
			d, err2 := strconv.ParseInt(den, 10, 32)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("invalid signed rational %q", a)
			}
			v[i] = SRational{Num: int32(n), Den: int32(d)}
		}
		return v, nil
	case TypeFloat:
		v := make(F32, len(args))
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid float %q", a)
			}
			v[i] = float32(f)
		}
		return v, nil
	case TypeDouble:
		v := make(F64, len(args))
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid double %q", a)
			}
			v[i] = f
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported data type %s", dt)
}

// parseInts parses one integer per argument. Prefixes such as 0x are
// honored.
func parseInts[T uint8 | int8 | uint16 | int16 | uint32 | int32](args []string, bits int, signed bool) ([]T, error) {
	out := make([]T, len(args))
	for i, a := range args {
		var err error
		if signed {
			var n int64
			n, err = strconv.ParseInt(a, 0, bits)
			out[i] = T(n)
		} else {
			var n uint64
			n, err = strconv.ParseUint(a, 0, bits)
			out[i] = T(n)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid %d-bit integer %q", bits, a)
		}
	}
	return out, nil
}

func splitRational(s string) (num, den string, err error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return s, "1", nil
	}
	if num == "" || den == "" {
		return "", "", fmt.Errorf("invalid rational %q", s)
	}
	return num, den, nil
}
