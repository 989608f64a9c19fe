package tiff

import (
	"bytes"
	stdbinary "encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// sampleTIFF builds IFD0 {Make, Orientation, ExifIFDPointer} and an EXIF
// IFD {ExposureTime}.
func sampleTIFF(bo stdbinary.ByteOrder) []byte {
	exifOff := uint32(8 + 42 + 6)
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x010F, typ: 2, count: 6, value: []byte("Canon\x00")},
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 6)},
		{tag: 0x8769, typ: 4, count: 1, value: u32(bo, exifOff)},
	}, 0)...)
	out = append(out, buildIFD(bo, exifOff, []rawEntry{
		{tag: 0x829A, typ: 5, count: 1, value: rational(bo, 1, 125)},
	}, 0)...)
	return out
}

func TestDecode_Sample(t *testing.T) {
	tests := []struct {
		name  string
		bo    stdbinary.ByteOrder
		order types.ByteOrder
	}{
		{"little-endian", stdbinary.LittleEndian, types.LittleEndian},
		{"big-endian", stdbinary.BigEndian, types.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, warnings := decodeBytes(t, sampleTIFF(tt.bo), DecodeOptions{})
			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
			if d.ByteOrder() != tt.order {
				t.Errorf("ByteOrder() = %v, want %v", d.ByteOrder(), tt.order)
			}

			if v := mustGet(t, d, types.IFDImage, types.TagMake); v.(types.Text) != "Canon" {
				t.Errorf("Make = %q, want Canon", v)
			}
			if v := mustGet(t, d, types.IFDImage, types.TagOrientation); v.(types.U16)[0] != 6 {
				t.Errorf("Orientation = %v, want [6]", v)
			}
			v := mustGet(t, d, types.IFDExif, types.TagExposureTime)
			if r := v.(types.URational)[0]; r.Num != 1 || r.Den != 125 {
				t.Errorf("ExposureTime = %v, want 1/125", r)
			}

			// The pointer is structural and never kept as an entry
			if _, err := d.Entry(types.IFDImage, types.TagExifIFDPointer); !errors.Is(err, types.ErrEntryNotFound) {
				t.Errorf("ExifIFDPointer kept as entry: %v", err)
			}
		})
	}
}

func TestDecode_ExifPrefix(t *testing.T) {
	blob := append([]byte(types.ExifHeader), sampleTIFF(stdbinary.BigEndian)...)
	d, _ := decodeBytes(t, blob, DecodeOptions{})
	if d.Content(types.IFDImage).Len() != 2 {
		t.Errorf("IFD0 has %d entries, want 2", d.Content(types.IFDImage).Len())
	}
}

func TestDecode_BadHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", []byte("II*\x00")},
		{"bad byte order", []byte("XX*\x00\x08\x00\x00\x00")},
		{"bad magic", []byte("II\x2B\x00\x08\x00\x00\x00")},
		{"ifd0 out of bounds", []byte("II*\x00\x00\x10\x00\x00")},
		{"ifd0 entries truncated", append([]byte("II*\x00\x08\x00\x00\x00"), 0x05, 0x00, 0x01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := binary.NewSafeReader(bytes.NewReader(tt.data), int64(len(tt.data)), "bad.tif")
			_, _, err := Decode(sr, DecodeOptions{})
			var cfErr *types.CorruptedFileError
			if !errors.As(err, &cfErr) {
				t.Fatalf("Decode() error = %v, want *CorruptedFileError", err)
			}
		})
	}
}

func TestDecode_IFDLoop(t *testing.T) {
	bo := stdbinary.LittleEndian
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 1)},
		{tag: 0x8769, typ: 4, count: 1, value: u32(bo, 8)}, // EXIF IFD is IFD0 again
	}, 8)...) // and so is IFD1

	d, warnings := decodeBytes(t, out, DecodeOptions{})
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2 loop warnings", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w.Message, "already visited") {
			t.Errorf("warning = %q, want loop warning", w.Message)
		}
	}
	if !d.Content(types.IFDThumbnail).IsEmpty() || !d.Content(types.IFDExif).IsEmpty() {
		t.Error("looped IFDs should stay empty")
	}
	if d.Content(types.IFDImage).Len() != 1 {
		t.Errorf("IFD0 has %d entries, want 1", d.Content(types.IFDImage).Len())
	}
}

func TestDecode_DropsMisplacedStructuralTags(t *testing.T) {
	bo := stdbinary.BigEndian
	ifd1 := uint32(8 + 2 + 2*12 + 4)
	exifOff := ifd1 + 2 + 2*12 + 4
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 1)},
		{tag: 0x0201, typ: 4, count: 1, value: u32(bo, 1234)}, // thumbnail offset in IFD0
	}, ifd1)...)
	out = append(out, buildIFD(bo, ifd1, []rawEntry{
		{tag: 0x0103, typ: 3, count: 1, value: u16(bo, 6)},
		{tag: 0x8769, typ: 4, count: 1, value: u32(bo, exifOff)}, // EXIF pointer in IFD1
	}, 0)...)
	out = append(out, buildIFD(bo, exifOff, []rawEntry{
		{tag: 0x829A, typ: 5, count: 1, value: rational(bo, 1, 60)},
	}, 0)...)

	d, warnings := decodeBytes(t, out, DecodeOptions{})
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if n := d.Content(types.IFDImage).Len(); n != 1 {
		t.Errorf("IFD0 has %d entries, want only Orientation", n)
	}
	if n := d.Content(types.IFDThumbnail).Len(); n != 1 {
		t.Errorf("IFD1 has %d entries, want only Compression", n)
	}
	if !d.Content(types.IFDExif).IsEmpty() {
		t.Error("EXIF IFD should not be reached through IFD1")
	}
}

func TestDecode_SkipsBadEntries(t *testing.T) {
	bo := stdbinary.BigEndian
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x010F, typ: 2, count: 100, value: u32(bo, 5000)}, // data beyond the block
		{tag: 0x0110, typ: 99, count: 1, value: []byte{1}},       // unknown type
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 3)},
	}, 0)...)

	d, warnings := decodeBytes(t, out, DecodeOptions{})
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", warnings)
	}
	for _, w := range warnings {
		if w.Stage != "entry" {
			t.Errorf("warning stage = %q, want entry", w.Stage)
		}
	}
	if d.Content(types.IFDImage).Len() != 1 {
		t.Errorf("IFD0 has %d entries, want only Orientation", d.Content(types.IFDImage).Len())
	}
}

func TestDecode_BrokenSubIFD(t *testing.T) {
	bo := stdbinary.LittleEndian
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 1)},
		{tag: 0x8825, typ: 4, count: 1, value: u32(bo, 9000)},
	}, 0)...)

	d, warnings := decodeBytes(t, out, DecodeOptions{})
	if len(warnings) != 1 || warnings[0].Stage != "ifd" {
		t.Fatalf("warnings = %v, want one ifd warning", warnings)
	}
	if d.Content(types.IFDImage).Len() != 1 {
		t.Error("IFD0 lost entries because of a broken GPS IFD")
	}
}

func TestDecode_ThumbnailOutOfBounds(t *testing.T) {
	bo := stdbinary.BigEndian
	ifd1Off := uint32(8 + 18)
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 1)},
	}, ifd1Off)...)
	out = append(out, buildIFD(bo, ifd1Off, []rawEntry{
		{tag: 0x0201, typ: 4, count: 1, value: u32(bo, 100)},
		{tag: 0x0202, typ: 4, count: 1, value: u32(bo, 5000)},
	}, 0)...)

	d, warnings := decodeBytes(t, out, DecodeOptions{})
	if len(warnings) != 1 || warnings[0].Stage != "thumbnail" {
		t.Fatalf("warnings = %v, want one thumbnail warning", warnings)
	}
	if d.Thumbnail() != nil {
		t.Error("Thumbnail() should be nil")
	}
}

func TestDecode_IgnoreUnknownTags(t *testing.T) {
	bo := stdbinary.LittleEndian
	out := tiffHeader(bo, 8)
	out = append(out, buildIFD(bo, 8, []rawEntry{
		{tag: 0x0112, typ: 3, count: 1, value: u16(bo, 1)},
		{tag: 0x829A, typ: 5, count: 1, value: rational(bo, 1, 60)}, // EXIF tag in IFD0
		{tag: 0xC000, typ: 3, count: 1, value: u16(bo, 7)},          // unknown
	}, 0)...)

	d, _ := decodeBytes(t, out, DecodeOptions{})
	if n := d.Content(types.IFDImage).Len(); n != 3 {
		t.Errorf("without option: %d entries, want 3", n)
	}

	d, _ = decodeBytes(t, out, DecodeOptions{Options: types.OptionIgnoreUnknownTags})
	if n := d.Content(types.IFDImage).Len(); n != 1 {
		t.Errorf("with IgnoreUnknownTags: %d entries, want 1", n)
	}
	if !d.HasOption(types.OptionIgnoreUnknownTags) {
		t.Error("option not set on decoded data")
	}
}

func TestDecode_FollowSpecification(t *testing.T) {
	d, _ := decodeBytes(t, sampleTIFF(stdbinary.BigEndian), DecodeOptions{
		Options:  types.OptionFollowSpecification,
		Encoding: types.EncodingCompressed,
	})

	for _, tag := range []types.Tag{types.TagXResolution, types.TagYResolution, types.TagResolutionUnit} {
		if _, err := d.Entry(types.IFDImage, tag); err != nil {
			t.Errorf("Fix did not add %v: %v", tag, err)
		}
	}
	if _, err := d.Entry(types.IFDExif, types.TagExifVersion); err != nil {
		t.Errorf("Fix did not add ExifVersion: %v", err)
	}
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		tag  types.Tag
		v    types.Value
		want types.DataEncoding
	}{
		{"jpeg compression", types.TagCompression, types.U16{6}, types.EncodingCompressed},
		{"lzw stays chunky", types.TagCompression, types.U16{5}, types.EncodingChunky},
		{"ycbcr", types.TagPhotometricInterpretation, types.U16{6}, types.EncodingYCC},
		{"planar", types.TagPlanarConfiguration, types.U16{2}, types.EncodingPlanar},
		{"rgb", types.TagPhotometricInterpretation, types.U16{2}, types.EncodingChunky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := types.NewData()
			if err := d.Set(types.IFDImage, tt.tag, tt.v); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if got := DetectEncoding(d); got != tt.want {
				t.Errorf("DetectEncoding() = %v, want %v", got, tt.want)
			}
		})
	}
}
