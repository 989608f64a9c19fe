package tiff

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

type outEntry struct {
	raw        []byte
	components uint32
	tag        types.Tag
	dataType   types.DataType
}

type block struct {
	entries []outEntry
	offset  uint32
	ifd     types.IFD
}

// size returns the IFD size including its data area.
func (b *block) size() int64 {
	n := int64(2 + len(b.entries)*entrySize + 4)
	for _, e := range b.entries {
		if len(e.raw) > 4 {
			n += int64(len(e.raw) + len(e.raw)%2)
		}
	}
	return n
}

// Encode serializes d as a TIFF structure without the "Exif\0\0" header.
//
// The layout is: header, IFD0, EXIF, Interoperability, GPS, IFD1, then
// the thumbnail. Each IFD is followed by its data area, with values
// aligned to even offsets. Pointer and thumbnail tags are generated from
// the IFDs that are actually written.
func Encode(d *types.Data) ([]byte, error) {
	order := d.ByteOrder()

	exif := collect(d, types.IFDExif)
	interop := collect(d, types.IFDInteroperability)
	gps := collect(d, types.IFDGPS)
	ifd1 := collect(d, types.IFDThumbnail)
	ifd0 := collect(d, types.IFDImage)
	thumb := d.Thumbnail()

	writeInterop := len(interop.entries) > 0
	writeExif := len(exif.entries) > 0 || writeInterop
	writeGPS := len(gps.entries) > 0
	writeIFD1 := len(ifd1.entries) > 0 || len(thumb) > 0

	// Placeholders so sizes are right before offsets are known
	if writeExif {
		ifd0.add(types.TagExifIFDPointer, types.TypeLong, 1, make([]byte, 4))
	}
	if writeGPS {
		ifd0.add(types.TagGPSInfoIFDPointer, types.TypeLong, 1, make([]byte, 4))
	}
	if writeInterop {
		exif.add(types.TagInteroperabilityIFDPointer, types.TypeLong, 1, make([]byte, 4))
	}
	if len(thumb) > 0 {
		ifd1.add(types.TagJPEGInterchangeFormat, types.TypeLong, 1, make([]byte, 4))
		ifd1.add(types.TagJPEGInterchangeFormatLength, types.TypeLong, 1, make([]byte, 4))
	}

	blocks := []*block{ifd0}
	if writeExif {
		blocks = append(blocks, exif)
	}
	if writeInterop {
		blocks = append(blocks, interop)
	}
	if writeGPS {
		blocks = append(blocks, gps)
	}
	if writeIFD1 {
		blocks = append(blocks, ifd1)
	}

	offset := int64(headerSize)
	for _, b := range blocks {
		b.offset = uint32(offset)
		offset += b.size()
	}
	thumbOff := offset
	if thumbOff+int64(len(thumb)) > math.MaxUint32 {
		return nil, fmt.Errorf("EXIF block of %d bytes exceeds 4 GiB", thumbOff+int64(len(thumb)))
	}

	u32 := func(v int64) []byte { return binary.Encode(nil, uint32(v), order) }
	ifd0.set(types.TagExifIFDPointer, u32(int64(exif.offset)))
	ifd0.set(types.TagGPSInfoIFDPointer, u32(int64(gps.offset)))
	exif.set(types.TagInteroperabilityIFDPointer, u32(int64(interop.offset)))
	ifd1.set(types.TagJPEGInterchangeFormat, u32(thumbOff))
	ifd1.set(types.TagJPEGInterchangeFormatLength, u32(int64(len(thumb))))

	var buf bytes.Buffer
	buf.Grow(int(thumbOff) + len(thumb))
	sw := binary.NewSafeWriter(&buf)

	if order == types.LittleEndian {
		_ = sw.WriteString("II")
	} else {
		_ = sw.WriteString("MM")
	}
	_ = binary.WriteEndian(sw, uint16(42), order)
	_ = binary.WriteEndian(sw, uint32(headerSize), order)

	for _, b := range blocks {
		var next uint32
		if b.ifd == types.IFDImage && writeIFD1 {
			next = ifd1.offset
		}
		if err := writeBlock(sw, b, next, order); err != nil {
			return nil, fmt.Errorf("write %s IFD: %w", b.ifd, err)
		}
	}
	if err := sw.WriteBytes(thumb); err != nil {
		return nil, fmt.Errorf("write thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeAPP1Payload returns the "Exif\0\0" header followed by Encode(d),
// as stored in a JPEG APP1 segment.
func EncodeAPP1Payload(d *types.Data) ([]byte, error) {
	body, err := Encode(d)
	if err != nil {
		return nil, err
	}
	return append([]byte(types.ExifHeader), body...), nil
}

func collect(d *types.Data, ifd types.IFD) *block {
	b := &block{ifd: ifd}
	for e := range d.Content(ifd).Entries() {
		b.add(e.Tag(), e.DataType(), uint32(e.Components()), e.RawData())
	}
	return b
}

func (b *block) add(tag types.Tag, dt types.DataType, components uint32, raw []byte) {
	e := outEntry{tag: tag, dataType: dt, components: components, raw: raw}
	i, found := slices.BinarySearchFunc(b.entries, tag, func(e outEntry, t types.Tag) int {
		return int(e.tag) - int(t)
	})
	if found {
		b.entries[i] = e
		return
	}
	b.entries = slices.Insert(b.entries, i, e)
}

func (b *block) set(tag types.Tag, raw []byte) {
	for i := range b.entries {
		if b.entries[i].tag == tag {
			b.entries[i].raw = raw
			return
		}
	}
}

func writeBlock(sw *binary.SafeWriter, b *block, next uint32, order types.ByteOrder) error {
	start := sw.Offset()
	dataOff := start + int64(2+len(b.entries)*entrySize+4)

	if err := binary.WriteEndian(sw, uint16(len(b.entries)), order); err != nil {
		return err
	}
	var data [][]byte
	for _, e := range b.entries {
		if err := binary.WriteEndian(sw, uint16(e.tag), order); err != nil {
			return err
		}
		if err := binary.WriteEndian(sw, uint16(e.dataType), order); err != nil {
			return err
		}
		if err := binary.WriteEndian(sw, e.components, order); err != nil {
			return err
		}
		if len(e.raw) <= 4 {
			field := make([]byte, 4)
			copy(field, e.raw)
			if err := sw.WriteBytes(field); err != nil {
				return err
			}
			continue
		}
		if err := binary.WriteEndian(sw, uint32(dataOff), order); err != nil {
			return err
		}
		data = append(data, e.raw)
		dataOff += int64(len(e.raw) + len(e.raw)%2)
	}
	if err := binary.WriteEndian(sw, next, order); err != nil {
		return err
	}

	for _, raw := range data {
		if err := sw.WriteBytes(raw); err != nil {
			return err
		}
		if err := sw.Pad(2); err != nil {
			return err
		}
	}
	return nil
}
