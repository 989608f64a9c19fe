package types

import (
	"fmt"
	"strings"
)

// DataType is the TIFF field type of an entry.
type DataType uint16

// TIFF 6.0 field types.
const (
	TypeByte      DataType = 1
	TypeASCII     DataType = 2
	TypeShort     DataType = 3
	TypeLong      DataType = 4
	TypeRational  DataType = 5
	TypeSByte     DataType = 6
	TypeUndefined DataType = 7
	TypeSShort    DataType = 8
	TypeSLong     DataType = 9
	TypeSRational DataType = 10
	TypeFloat     DataType = 11
	TypeDouble    DataType = 12
)

var dataTypeNames = map[DataType]string{
	TypeByte:      "Byte",
	TypeASCII:     "ASCII",
	TypeShort:     "Short",
	TypeLong:      "Long",
	TypeRational:  "Rational",
	TypeSByte:     "SByte",
	TypeUndefined: "Undefined",
	TypeSShort:    "SShort",
	TypeSLong:     "SLong",
	TypeSRational: "SRational",
	TypeFloat:     "Float",
	TypeDouble:    "Double",
}

// Size returns the size in bytes of one component, or 0 for unknown types.
func (t DataType) Size() int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the twelve TIFF field types.
func (t DataType) Valid() bool {
	return t.Size() > 0
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", uint16(t))
}

// ParseDataType parses a type name such as "short" or "rational".
// The short aliases u8, i8, u16, i16, u32, i32, text, urational and
// irational are accepted as well.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(name) {
	case "byte", "u8":
		return TypeByte, nil
	case "ascii", "text", "string":
		return TypeASCII, nil
	case "short", "u16":
		return TypeShort, nil
	case "long", "u32":
		return TypeLong, nil
	case "rational", "urational":
		return TypeRational, nil
	case "sbyte", "i8":
		return TypeSByte, nil
	case "undefined":
		return TypeUndefined, nil
	case "sshort", "i16":
		return TypeSShort, nil
	case "slong", "i32":
		return TypeSLong, nil
	case "srational", "irational":
		return TypeSRational, nil
	case "float", "f32":
		return TypeFloat, nil
	case "double", "f64":
		return TypeDouble, nil
	}
	return 0, fmt.Errorf("unknown data type %q", name)
}

// DataEncoding describes how the primary image data is laid out. It
// decides which tags the EXIF standard requires or forbids.
type DataEncoding int

const (
	// EncodingUnknown is used when the container does not reveal the layout.
	EncodingUnknown DataEncoding = iota
	// EncodingChunky is uncompressed, interleaved (PlanarConfiguration 1).
	EncodingChunky
	// EncodingPlanar is uncompressed, one plane per component.
	EncodingPlanar
	// EncodingYCC is uncompressed YCbCr.
	EncodingYCC
	// EncodingCompressed is JPEG or other compressed image data.
	EncodingCompressed
)

func (e DataEncoding) String() string {
	switch e {
	case EncodingChunky:
		return "Chunky"
	case EncodingPlanar:
		return "Planar"
	case EncodingYCC:
		return "YCC"
	case EncodingCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}

// DataOption toggles processing behavior of a Data container.
type DataOption uint8

const (
	// OptionIgnoreUnknownTags drops tags that are not known for their IFD
	// while decoding.
	OptionIgnoreUnknownTags DataOption = 1 << iota
	// OptionFollowSpecification runs Fix after decoding.
	OptionFollowSpecification
	// OptionDontChangeMakerNote leaves the maker note alone: it cannot be
	// set or removed, and Fix never touches it.
	OptionDontChangeMakerNote
)

func (o DataOption) String() string {
	var names []string
	if o&OptionIgnoreUnknownTags != 0 {
		names = append(names, "IgnoreUnknownTags")
	}
	if o&OptionFollowSpecification != 0 {
		names = append(names, "FollowSpecification")
	}
	if o&OptionDontChangeMakerNote != 0 {
		names = append(names, "DontChangeMakerNote")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// SupportLevel says whether the EXIF standard requires a tag in an IFD.
type SupportLevel int

const (
	// SupportUnknown means the tag is not in the tag table.
	SupportUnknown SupportLevel = iota
	// SupportNotRecorded means the tag must not appear in the IFD.
	SupportNotRecorded
	// SupportOptional means the tag may appear in the IFD.
	SupportOptional
	// SupportMandatory means the tag must appear in the IFD.
	SupportMandatory
)

func (l SupportLevel) String() string {
	switch l {
	case SupportNotRecorded:
		return "Not recorded"
	case SupportOptional:
		return "Optional"
	case SupportMandatory:
		return "Mandatory"
	default:
		return "Unknown"
	}
}

// IFD selects one of the image file directories of an EXIF block.
type IFD int

const (
	// IFDImage (IFD0) describes the primary image.
	IFDImage IFD = iota
	// IFDThumbnail (IFD1) describes the embedded thumbnail.
	IFDThumbnail
	// IFDExif holds EXIF-specific attributes.
	IFDExif
	// IFDGPS holds GPS data.
	IFDGPS
	// IFDInteroperability holds interoperability tags.
	IFDInteroperability
	// IFDCount is the number of IFDs; it is not a valid selector.
	IFDCount
)

// IFDs lists every valid IFD in storage order.
var IFDs = [IFDCount]IFD{IFDImage, IFDThumbnail, IFDExif, IFDGPS, IFDInteroperability}

// Valid reports whether i selects a real IFD.
func (i IFD) Valid() bool {
	return i >= IFDImage && i < IFDCount
}

func (i IFD) String() string {
	switch i {
	case IFDImage:
		return "Image"
	case IFDThumbnail:
		return "Thumbnail"
	case IFDExif:
		return "EXIF"
	case IFDGPS:
		return "GPS"
	case IFDInteroperability:
		return "Interoperability"
	default:
		return fmt.Sprintf("IFD(%d)", int(i))
	}
}

// ParseIFD parses an IFD name. Matching is case-insensitive.
func ParseIFD(name string) (IFD, error) {
	switch strings.ToLower(name) {
	case "0", "ifd0", "image":
		return IFDImage, nil
	case "1", "ifd1", "thumbnail":
		return IFDThumbnail, nil
	case "exif":
		return IFDExif, nil
	case "gps":
		return IFDGPS, nil
	case "interop", "interoperability":
		return IFDInteroperability, nil
	}
	return IFDCount, fmt.Errorf("unknown IFD %q", name)
}
