package types

import (
	"fmt"
	"slices"
	"strings"
)

// Tag identifies an EXIF field within an IFD.
//
// Tag numbers are only unique within a tag group: GPS and Interoperability
// tags reuse small numbers, so every lookup takes the IFD the tag lives in.
type Tag uint16

// String formats the tag number as 0x%04X.
func (t Tag) String() string {
	return fmt.Sprintf("0x%04X", uint16(t))
}

// Name returns the tag's identifier (e.g. "Orientation") when found in
// ifd, or "" if the tag is unknown there.
func (t Tag) Name(ifd IFD) string {
	if info, ok := LookupTag(ifd, t); ok {
		return info.Name
	}
	return ""
}

// Title returns the tag's human-readable title (e.g. "X-Resolution").
func (t Tag) Title(ifd IFD) string {
	if info, ok := LookupTag(ifd, t); ok {
		return info.Title
	}
	return ""
}

// Description returns a verbose description of the tag.
func (t Tag) Description(ifd IFD) string {
	if info, ok := LookupTag(ifd, t); ok {
		return info.Description
	}
	return ""
}

// SupportLevel returns whether the EXIF standard requires the tag in ifd
// for image data stored with encoding enc.
func (t Tag) SupportLevel(ifd IFD, enc DataEncoding) SupportLevel {
	if info, ok := LookupTag(ifd, t); ok {
		return info.SupportLevel(ifd, enc)
	}
	return SupportUnknown
}

// supportSpec holds a support level per encoding: chunky, planar, YCC,
// compressed.
type supportSpec [4]SupportLevel

// TagInfo describes a tag from the tag table.
type TagInfo struct {
	// Default is the value Fix inserts for a missing mandatory entry.
	// Nil means Fix cannot synthesize the entry.
	Default Value

	// Labels maps enumerated values to their text.
	Labels map[uint32]string

	support map[IFD]supportSpec

	Name        string
	Title       string
	Description string

	// Formats lists the allowed data types; nil allows any.
	Formats []DataType

	// Components is the fixed component count; 0 allows any.
	Components int

	Tag Tag
}

// SupportLevel returns the support level of the tag in ifd for encoding enc.
//
// With EncodingUnknown the level is only definite when it is the same for
// every encoding; otherwise SupportUnknown is returned.
func (i *TagInfo) SupportLevel(ifd IFD, enc DataEncoding) SupportLevel {
	levels, ok := i.support[ifd]
	if !ok {
		return SupportNotRecorded
	}
	switch enc {
	case EncodingChunky:
		return levels[0]
	case EncodingPlanar:
		return levels[1]
	case EncodingYCC:
		return levels[2]
	case EncodingCompressed:
		return levels[3]
	}
	if levels[0] == levels[1] && levels[1] == levels[2] && levels[2] == levels[3] {
		return levels[0]
	}
	return SupportUnknown
}

// RecordedIn reports whether the tag is listed for ifd at all.
func (i *TagInfo) RecordedIn(ifd IFD) bool {
	_, ok := i.support[ifd]
	return ok
}

// PrimaryIFD returns the first IFD (in storage order) the tag is listed for.
func (i *TagInfo) PrimaryIFD() IFD {
	for _, ifd := range IFDs {
		if i.RecordedIn(ifd) {
			return ifd
		}
	}
	return IFDImage
}

// AllowsFormat reports whether values of type dt may be stored in the tag.
func (i *TagInfo) AllowsFormat(dt DataType) bool {
	return len(i.Formats) == 0 || slices.Contains(i.Formats, dt)
}

type tagGroup int

const (
	groupMain tagGroup = iota
	groupGPS
	groupInterop
)

func groupOf(ifd IFD) tagGroup {
	switch ifd {
	case IFDGPS:
		return groupGPS
	case IFDInteroperability:
		return groupInterop
	default:
		return groupMain
	}
}

var tagIndex = map[tagGroup]map[Tag]*TagInfo{}

func init() {
	for group, table := range map[tagGroup][]TagInfo{
		groupMain:    mainTags,
		groupGPS:     gpsTags,
		groupInterop: interopTags,
	} {
		index := make(map[Tag]*TagInfo, len(table))
		for i := range table {
			index[table[i].Tag] = &table[i]
		}
		tagIndex[group] = index
	}
}

// LookupTag returns the table entry for tag as found in ifd.
//
// IFD0, IFD1 and the EXIF IFD share a tag group; a tag from that group is
// returned even for an IFD it is not recorded in (see TagInfo.RecordedIn).
func LookupTag(ifd IFD, tag Tag) (*TagInfo, bool) {
	info, ok := tagIndex[groupOf(ifd)][tag]
	return info, ok
}

// TagByName finds a tag by Name, case-insensitively, and returns it
// together with the IFD it is primarily recorded in.
func TagByName(name string) (Tag, IFD, bool) {
	for _, table := range [][]TagInfo{mainTags, gpsTags, interopTags} {
		for i := range table {
			if strings.EqualFold(table[i].Name, name) {
				return table[i].Tag, table[i].PrimaryIFD(), true
			}
		}
	}
	return 0, IFDImage, false
}

// TagsIn returns the table entries of the tag group ifd belongs to that are
// recorded in ifd, in ascending tag order.
func TagsIn(ifd IFD) []*TagInfo {
	var out []*TagInfo
	for _, info := range tagIndex[groupOf(ifd)] {
		if info.RecordedIn(ifd) {
			out = append(out, info)
		}
	}
	slices.SortFunc(out, func(a, b *TagInfo) int { return int(a.Tag) - int(b.Tag) })
	return out
}

// IsStructural reports whether tag is managed by the codec rather than
// stored as an entry: the IFD pointers and the thumbnail location. The
// encoder derives them from the layout, so they are never entries in any
// IFD.
func IsStructural(tag Tag) bool {
	switch tag {
	case TagExifIFDPointer, TagGPSInfoIFDPointer, TagInteroperabilityIFDPointer,
		TagJPEGInterchangeFormat, TagJPEGInterchangeFormatLength:
		return true
	}
	return false
}
