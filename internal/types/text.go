package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/simonhull/exifmeta/internal/binary"
)

// maxHexBytes limits how much undefined data Text renders.
const maxHexBytes = 16

// Text renders the entry's value for humans, decoding it with the byte
// order of the owning Data.
//
// Enumerated values are replaced by their labels, version tags are spelled
// out, rationals become decimals and undefined data is shown as hex.
func (e *Entry) Text() string {
	order := e.order()
	v, err := e.Value(order)
	if err != nil {
		return fmt.Sprintf("(invalid %s value, %d bytes)", e.dataType, len(e.raw))
	}

	ifd := e.IFD()
	switch {
	case e.tag == TagExifVersion && ifd == IFDExif:
		return versionText("Exif Version", e.raw)
	case e.tag == TagFlashPixVersion && ifd == IFDExif:
		return versionText("FlashPix Version", e.raw)
	case e.tag == TagInteroperabilityVersion && ifd == IFDInteroperability:
		return string(bytes.TrimRight(e.raw, "\x00"))
	case e.tag == TagGPSVersionID && ifd == IFDGPS:
		return joinValues(v, ".")
	case e.tag == TagUserComment && ifd == IFDExif:
		return userCommentText(e.raw, order)
	case e.tag == TagComponentsConfiguration && ifd == IFDExif:
		return componentsText(e.raw)
	case e.tag == TagExposureTime && ifd == IFDExif:
		return exposureText(v)
	case e.tag == TagFNumber && ifd == IFDExif:
		if r, ok := v.(URational); ok && len(r) == 1 && r[0].Den != 0 {
			return "f/" + decimal(r[0].Float64())
		}
	case (e.tag == TagFocalLength && ifd == IFDExif) || (e.tag == TagGPSAltitude && ifd == IFDGPS):
		if r, ok := v.(URational); ok && len(r) == 1 && r[0].Den != 0 {
			unit := " mm"
			if ifd == IFDGPS {
				unit = " m"
			}
			return decimal(r[0].Float64()) + unit
		}
	}

	if info, ok := LookupTag(ifd, e.tag); ok && info.Labels != nil && e.components == 1 {
		n, ok := UintAt(v, 0)
		if u, isUndef := v.(Undefined); isUndef && len(u) == 1 {
			n, ok = uint32(u[0]), true
		}
		if ok {
			if label, found := info.Labels[n]; found {
				return label
			}
			return fmt.Sprintf("Unknown value %d", n)
		}
	}

	return valueText(v)
}

func valueText(v Value) string {
	switch x := v.(type) {
	case Text:
		return string(x)
	case Undefined:
		return hexText(x)
	default:
		return joinValues(v, ", ")
	}
}

func joinValues(v Value, sep string) string {
	var parts []string
	switch x := v.(type) {
	case U8:
		for _, n := range x {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case I8:
		for _, n := range x {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case U16:
		for _, n := range x {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case I16:
		for _, n := range x {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case U32:
		for _, n := range x {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case I32:
		for _, n := range x {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case URational:
		for _, r := range x {
			parts = append(parts, rationalText(r.Float64(), r.String()))
		}
	case IRational:
		for _, r := range x {
			parts = append(parts, rationalText(r.Float64(), r.String()))
		}
	case F32:
		for _, f := range x {
			parts = append(parts, strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
	case F64:
		for _, f := range x {
			parts = append(parts, strconv.FormatFloat(f, 'g', -1, 64))
		}
	case Text:
		return string(x)
	case Undefined:
		return hexText(x)
	}
	return strings.Join(parts, sep)
}

func rationalText(f float64, fallback string) string {
	if math.IsNaN(f) {
		return fallback
	}
	return decimal(f)
}

// decimal formats f with at most four fractional digits.
func decimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e4)/1e4, 'f', -1, 64)
}

func hexText(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, c := range b {
		if i == maxHexBytes {
			fmt.Fprintf(&sb, " ... (%d bytes)", len(b))
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

// versionText renders four ASCII digits "0230" as "<prefix> 2.3".
func versionText(prefix string, raw []byte) string {
	if len(raw) != 4 {
		return hexText(raw)
	}
	major, err := strconv.Atoi(string(raw[:2]))
	if err != nil {
		return hexText(raw)
	}
	minor := strings.TrimRight(string(raw[2:]), "0")
	if minor == "" {
		minor = "0"
	}
	return fmt.Sprintf("%s %d.%s", prefix, major, minor)
}

func componentsText(raw []byte) string {
	parts := make([]string, len(raw))
	for i, c := range raw {
		if label, ok := labelsComponents[uint32(c)]; ok {
			parts[i] = label
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, " ")
}

func exposureText(v Value) string {
	r, ok := v.(URational)
	if !ok || len(r) != 1 || r[0].Den == 0 {
		return valueText(v)
	}
	f := r[0].Float64()
	if f > 0 && f < 1 {
		return fmt.Sprintf("1/%d sec.", int(math.Round(1/f)))
	}
	return decimal(f) + " sec."
}

// userCommentText decodes a UserComment: an 8-byte character code followed
// by the comment.
func userCommentText(raw []byte, order ByteOrder) string {
	if len(raw) < 8 {
		return string(bytes.TrimRight(raw, "\x00 "))
	}
	code, body := string(raw[:8]), raw[8:]
	switch code {
	case "UNICODE\x00":
		units := make([]uint16, 0, len(body)/2)
		for i := 0; i+1 < len(body); i += 2 {
			units = append(units, binary.Decode[uint16](body[i:], order))
		}
		return strings.TrimRight(string(utf16.Decode(units)), "\x00 ")
	case "ASCII\x00\x00\x00", "\x00\x00\x00\x00\x00\x00\x00\x00":
		return string(bytes.TrimRight(body, "\x00 "))
	default:
		if bytes.IndexFunc(body, func(r rune) bool { return r < 0x20 && r != 0 && r != '\n' }) >= 0 {
			return hexText(raw)
		}
		return string(bytes.TrimRight(body, "\x00 "))
	}
}
