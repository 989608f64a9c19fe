package types

import (
	"testing"
)

func TestLookupTag_PerIFD(t *testing.T) {
	tests := []struct {
		name string
		ifd  IFD
		tag  Tag
		want string
	}{
		{"orientation", IFDImage, TagOrientation, "Orientation"},
		{"thumbnail shares main group", IFDThumbnail, TagXResolution, "XResolution"},
		{"exif", IFDExif, TagExposureTime, "ExposureTime"},
		{"gps 0x0001", IFDGPS, 0x0001, "GPSLatitudeRef"},
		{"interop 0x0001", IFDInteroperability, 0x0001, "InteroperabilityIndex"},
		{"gps 0x0002", IFDGPS, 0x0002, "GPSLatitude"},
		{"interop 0x0002", IFDInteroperability, 0x0002, "InteroperabilityVersion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := LookupTag(tt.ifd, tt.tag)
			if !ok {
				t.Fatalf("LookupTag(%v, %v) not found", tt.ifd, tt.tag)
			}
			if info.Name != tt.want {
				t.Errorf("Name = %q, want %q", info.Name, tt.want)
			}
			if got := tt.tag.Name(tt.ifd); got != tt.want {
				t.Errorf("Tag.Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupTag_Unknown(t *testing.T) {
	if _, ok := LookupTag(IFDImage, 0xBEEF); ok {
		t.Error("LookupTag(0xBEEF) found, want unknown")
	}
	if got := Tag(0xBEEF).Name(IFDImage); got != "" {
		t.Errorf("Name() = %q, want empty", got)
	}
	if got := Tag(0xBEEF).SupportLevel(IFDImage, EncodingChunky); got != SupportUnknown {
		t.Errorf("SupportLevel() = %v, want SupportUnknown", got)
	}
}

func TestTag_String(t *testing.T) {
	if got := TagOrientation.String(); got != "0x0112" {
		t.Errorf("String() = %q, want %q", got, "0x0112")
	}
	if got := TagExifIFDPointer.String(); got != "0x8769" {
		t.Errorf("String() = %q, want %q", got, "0x8769")
	}
}

func TestTag_SupportLevel(t *testing.T) {
	tests := []struct {
		name string
		ifd  IFD
		tag  Tag
		enc  DataEncoding
		want SupportLevel
	}{
		{"xres mandatory everywhere", IFDImage, TagXResolution, EncodingUnknown, SupportMandatory},
		{"width chunky", IFDImage, TagImageWidth, EncodingChunky, SupportMandatory},
		{"width compressed", IFDImage, TagImageWidth, EncodingCompressed, SupportNotRecorded},
		{"width unknown encoding", IFDImage, TagImageWidth, EncodingUnknown, SupportUnknown},
		{"planar config planar", IFDImage, TagPlanarConfiguration, EncodingPlanar, SupportMandatory},
		{"planar config chunky", IFDImage, TagPlanarConfiguration, EncodingChunky, SupportOptional},
		{"exif tag in IFD0", IFDImage, TagExposureTime, EncodingChunky, SupportNotRecorded},
		{"orientation optional", IFDImage, TagOrientation, EncodingUnknown, SupportOptional},
		{"exif version", IFDExif, TagExifVersion, EncodingUnknown, SupportMandatory},
		{"gps version", IFDGPS, TagGPSVersionID, EncodingCompressed, SupportMandatory},
		{"thumbnail offset in IFD1", IFDThumbnail, TagJPEGInterchangeFormat, EncodingCompressed, SupportMandatory},
		{"thumbnail offset in IFD0", IFDImage, TagJPEGInterchangeFormat, EncodingCompressed, SupportNotRecorded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.SupportLevel(tt.ifd, tt.enc); got != tt.want {
				t.Errorf("SupportLevel(%v, %v) = %v, want %v", tt.ifd, tt.enc, got, tt.want)
			}
		})
	}
}

func TestTagByName(t *testing.T) {
	tests := []struct {
		name    string
		wantTag Tag
		wantIFD IFD
	}{
		{"Orientation", TagOrientation, IFDImage},
		{"orientation", TagOrientation, IFDImage},
		{"DateTimeOriginal", TagDateTimeOriginal, IFDExif},
		{"GPSLatitude", TagGPSLatitude, IFDGPS},
		{"InteroperabilityIndex", TagInteroperabilityIndex, IFDInteroperability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ifd, ok := TagByName(tt.name)
			if !ok {
				t.Fatalf("TagByName(%q) not found", tt.name)
			}
			if tag != tt.wantTag || ifd != tt.wantIFD {
				t.Errorf("TagByName(%q) = %v/%v, want %v/%v", tt.name, tag, ifd, tt.wantTag, tt.wantIFD)
			}
		})
	}

	if _, _, ok := TagByName("NoSuchTag"); ok {
		t.Error("TagByName(NoSuchTag) found, want false")
	}
}

func TestTagsIn(t *testing.T) {
	for _, ifd := range IFDs {
		tags := TagsIn(ifd)
		if len(tags) == 0 {
			t.Errorf("TagsIn(%v) is empty", ifd)
			continue
		}
		for i := 1; i < len(tags); i++ {
			if tags[i-1].Tag >= tags[i].Tag {
				t.Errorf("TagsIn(%v) not sorted at %d: %v >= %v", ifd, i, tags[i-1].Tag, tags[i].Tag)
			}
		}
		for _, info := range tags {
			if !info.RecordedIn(ifd) {
				t.Errorf("TagsIn(%v) returned %s, not recorded there", ifd, info.Name)
			}
		}
	}
}

func TestTagTable_Consistency(t *testing.T) {
	for _, table := range [][]TagInfo{mainTags, gpsTags, interopTags} {
		seen := make(map[Tag]bool)
		for _, info := range table {
			if seen[info.Tag] {
				t.Errorf("duplicate tag %v (%s)", info.Tag, info.Name)
			}
			seen[info.Tag] = true
			if info.Name == "" || info.Title == "" {
				t.Errorf("tag %v has no name or title", info.Tag)
			}
			if info.Default == nil {
				continue
			}
			if !info.AllowsFormat(info.Default.DataType()) {
				t.Errorf("%s: default type %v not allowed", info.Name, info.Default.DataType())
			}
			if info.Components > 0 && info.Default.Components() != info.Components {
				t.Errorf("%s: default has %d components, want %d", info.Name, info.Default.Components(), info.Components)
			}
		}
	}
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		tag  Tag
		want bool
	}{
		{TagExifIFDPointer, true},
		{TagGPSInfoIFDPointer, true},
		{TagInteroperabilityIFDPointer, true},
		{TagJPEGInterchangeFormat, true},
		{TagJPEGInterchangeFormatLength, true},
		{TagOrientation, false},
		{TagGPSLatitude, false},
		{TagCompression, false},
	}

	for _, tt := range tests {
		if got := IsStructural(tt.tag); got != tt.want {
			t.Errorf("IsStructural(%v) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestParseIFD(t *testing.T) {
	tests := []struct {
		in   string
		want IFD
	}{
		{"0", IFDImage},
		{"Image", IFDImage},
		{"thumbnail", IFDThumbnail},
		{"EXIF", IFDExif},
		{"gps", IFDGPS},
		{"interop", IFDInteroperability},
	}
	for _, tt := range tests {
		got, err := ParseIFD(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseIFD(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseIFD("maker"); err == nil {
		t.Error("ParseIFD(maker) should fail")
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"short", TypeShort},
		{"u16", TypeShort},
		{"Rational", TypeRational},
		{"irational", TypeSRational},
		{"text", TypeASCII},
		{"undefined", TypeUndefined},
	}
	for _, tt := range tests {
		got, err := ParseDataType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDataType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseDataType("int128"); err == nil {
		t.Error("ParseDataType(int128) should fail")
	}
}
