package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// Data is the EXIF container: five IFDs of entries, a thumbnail and the
// byte order all multi-byte values are stored in.
type Data = types.Data

// Content is the set of entries of one IFD.
type Content = types.Content

// Entry is one tagged value of an IFD.
type Entry = types.Entry

// Tag identifies an EXIF field within an IFD.
type Tag = types.Tag

// TagInfo describes a tag from the built-in tag table.
type TagInfo = types.TagInfo

// IFD selects one of the image file directories of an EXIF block.
type IFD = types.IFD

// Re-export all IFD constants.
const (
	IFDImage            = types.IFDImage
	IFDThumbnail        = types.IFDThumbnail
	IFDExif             = types.IFDExif
	IFDGPS              = types.IFDGPS
	IFDInteroperability = types.IFDInteroperability
	IFDCount            = types.IFDCount
)

// ByteOrder is the byte order of multi-byte values.
type ByteOrder = types.ByteOrder

// Re-export the byte orders.
const (
	BigEndian    = types.BigEndian
	LittleEndian = types.LittleEndian
)

// DataType is the TIFF field type of an entry.
type DataType = types.DataType

// Re-export all data type constants.
const (
	TypeByte      = types.TypeByte
	TypeASCII     = types.TypeASCII
	TypeShort     = types.TypeShort
	TypeLong      = types.TypeLong
	TypeRational  = types.TypeRational
	TypeSByte     = types.TypeSByte
	TypeUndefined = types.TypeUndefined
	TypeSShort    = types.TypeSShort
	TypeSLong     = types.TypeSLong
	TypeSRational = types.TypeSRational
	TypeFloat     = types.TypeFloat
	TypeDouble    = types.TypeDouble
)

// DataEncoding describes how the primary image data is laid out.
type DataEncoding = types.DataEncoding

// Re-export all data encoding constants.
const (
	EncodingUnknown    = types.EncodingUnknown
	EncodingChunky     = types.EncodingChunky
	EncodingPlanar     = types.EncodingPlanar
	EncodingYCC        = types.EncodingYCC
	EncodingCompressed = types.EncodingCompressed
)

// DataOption toggles processing behavior of a Data container.
type DataOption = types.DataOption

// Re-export all data options.
const (
	OptionIgnoreUnknownTags   = types.OptionIgnoreUnknownTags
	OptionFollowSpecification = types.OptionFollowSpecification
	OptionDontChangeMakerNote = types.OptionDontChangeMakerNote
)

// SupportLevel says whether the EXIF standard requires a tag in an IFD.
type SupportLevel = types.SupportLevel

// Re-export all support levels.
const (
	SupportUnknown     = types.SupportUnknown
	SupportNotRecorded = types.SupportNotRecorded
	SupportOptional    = types.SupportOptional
	SupportMandatory   = types.SupportMandatory
)

// Value is the decoded payload of an entry.
type Value = types.Value

// Value types, one per TIFF field type.
type (
	Text      = types.Text
	U8        = types.U8
	I8        = types.I8
	U16       = types.U16
	I16       = types.I16
	U32       = types.U32
	I32       = types.I32
	URational = types.URational
	IRational = types.IRational
	F32       = types.F32
	F64       = types.F64
	Undefined = types.Undefined
	Rational  = types.Rational
	SRational = types.SRational
)

// ValueAs returns v as the concrete value type T, or a
// *TypeMismatchError:
//
//	o, err := exifmeta.ValueAs[exifmeta.U16](v)
func ValueAs[T Value](v Value) (T, error) {
	return types.ValueAs[T](v)
}

// LookupTag returns the table entry for tag as found in ifd.
func LookupTag(ifd IFD, tag Tag) (*TagInfo, bool) {
	return types.LookupTag(ifd, tag)
}

// TagByName finds a tag by name and returns the IFD it is primarily
// recorded in.
func TagByName(name string) (Tag, IFD, bool) {
	return types.TagByName(name)
}

// ParseIFD parses an IFD name such as "exif", "gps" or "0".
func ParseIFD(name string) (IFD, error) {
	return types.ParseIFD(name)
}

// ParseDataType parses a data type name such as "short" or "rational".
func ParseDataType(name string) (DataType, error) {
	return types.ParseDataType(name)
}

// ParseValue builds a value of type dt from string arguments, one per
// component. Rationals are written "num/den"; ASCII arguments are joined
// with spaces; Undefined accepts hex digits after a "hex:" prefix.
func ParseValue(dt DataType, args []string) (Value, error) {
	return types.ParseValue(dt, args)
}
