package tiff

import (
	"bytes"
	stdbinary "encoding/binary"
	"testing"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// rawEntry is a 12-byte IFD entry for handcrafted fixtures. Values of up
// to 4 bytes are stored inline, longer ones in the IFD's data area.
type rawEntry struct {
	value []byte
	count uint32
	tag   uint16
	typ   uint16
}

// buildIFD encodes an IFD that starts at offset start, followed by its
// data area.
func buildIFD(bo stdbinary.ByteOrder, start uint32, entries []rawEntry, next uint32) []byte {
	var ifd, data bytes.Buffer
	dataOff := start + 2 + uint32(len(entries))*12 + 4

	_ = stdbinary.Write(&ifd, bo, uint16(len(entries)))
	for _, e := range entries {
		_ = stdbinary.Write(&ifd, bo, e.tag)
		_ = stdbinary.Write(&ifd, bo, e.typ)
		_ = stdbinary.Write(&ifd, bo, e.count)
		if len(e.value) <= 4 {
			field := make([]byte, 4)
			copy(field, e.value)
			ifd.Write(field)
			continue
		}
		_ = stdbinary.Write(&ifd, bo, dataOff+uint32(data.Len()))
		data.Write(e.value)
		if data.Len()%2 == 1 {
			data.WriteByte(0)
		}
	}
	_ = stdbinary.Write(&ifd, bo, next)
	return append(ifd.Bytes(), data.Bytes()...)
}

func tiffHeader(bo stdbinary.ByteOrder, ifd0 uint32) []byte {
	var buf bytes.Buffer
	if bo == stdbinary.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	_ = stdbinary.Write(&buf, bo, uint16(42))
	_ = stdbinary.Write(&buf, bo, ifd0)
	return buf.Bytes()
}

func u16(bo stdbinary.ByteOrder, v uint16) []byte {
	b := make([]byte, 2)
	bo.PutUint16(b, v)
	return b
}

func u32(bo stdbinary.ByteOrder, v uint32) []byte {
	b := make([]byte, 4)
	bo.PutUint32(b, v)
	return b
}

func rational(bo stdbinary.ByteOrder, num, den uint32) []byte {
	return append(u32(bo, num), u32(bo, den)...)
}

func decodeBytes(t *testing.T, b []byte, opts DecodeOptions) (*types.Data, []types.Warning) {
	t.Helper()
	data, warnings, err := Decode(binary.NewSafeReader(bytes.NewReader(b), int64(len(b)), "test.exif"), opts)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return data, warnings
}

func mustGet(t *testing.T, d *types.Data, ifd types.IFD, tag types.Tag) types.Value {
	t.Helper()
	v, err := d.Get(ifd, tag)
	if err != nil {
		t.Fatalf("Get(%v, %v) error = %v", ifd, tag, err)
	}
	return v
}
