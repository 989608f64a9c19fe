package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReadEndian_TIFFHeaders(t *testing.T) {
	// The same IFD0 offset (8) encoded in both TIFF byte orders.
	intel := []byte{'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00}
	motorola := []byte{'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08}

	tests := []struct {
		name   string
		data   []byte
		endian Endianness
	}{
		{name: "intel", data: intel, endian: LittleEndian},
		{name: "motorola", data: motorola, endian: BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := NewSafeReader(bytes.NewReader(tt.data), int64(len(tt.data)), "test.tif")

			magic, err := ReadEndian[uint16](sr, 2, "magic", tt.endian)
			if err != nil {
				t.Fatalf("ReadEndian failed: %v", err)
			}
			if magic != 42 {
				t.Errorf("magic = %d, want 42", magic)
			}

			ifd0, err := ReadEndian[uint32](sr, 4, "IFD0 offset", tt.endian)
			if err != nil {
				t.Fatalf("ReadEndian failed: %v", err)
			}
			if ifd0 != 8 {
				t.Errorf("IFD0 offset = %d, want 8", ifd0)
			}
		})
	}
}

func TestReadEndian_Uint8(t *testing.T) {
	data := []byte{0x42}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test")

	beByte, err := ReadEndian[uint8](sr, 0, "byte", BigEndian)
	if err != nil {
		t.Fatalf("ReadEndian uint8 failed: %v", err)
	}

	leByte, err := ReadEndian[uint8](sr, 0, "byte", LittleEndian)
	if err != nil {
		t.Fatalf("ReadEndian uint8 failed: %v", err)
	}

	if beByte != 0x42 || leByte != 0x42 {
		t.Errorf("uint8 values should be 0x42, got BE=%d, LE=%d", beByte, leByte)
	}
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		endian Endianness
		want   []byte
	}{
		{name: "big-endian", endian: BigEndian, want: []byte{0x12, 0x34, 0x56, 0x78}},
		{name: "little-endian", endian: LittleEndian, want: []byte{0x78, 0x56, 0x34, 0x12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode[uint32](nil, 0x12345678, tt.endian)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode() = %x, want %x", got, tt.want)
			}
			if v := Decode[uint32](got, tt.endian); v != 0x12345678 {
				t.Errorf("Decode() = 0x%08x, want 0x12345678", v)
			}
		})
	}
}

func TestEncode_Widths(t *testing.T) {
	tests := []struct {
		name   string
		encode func(Endianness) []byte
		be, le []byte
	}{
		{"uint8", func(e Endianness) []byte { return Encode[uint8](nil, 0x01, e) }, []byte{0x01}, []byte{0x01}},
		{"uint16", func(e Endianness) []byte { return Encode[uint16](nil, 0x0102, e) }, []byte{0x01, 0x02}, []byte{0x02, 0x01}},
		{"uint64", func(e Endianness) []byte { return Encode[uint64](nil, 0x0102030405060708, e) },
			[]byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.encode(BigEndian); !bytes.Equal(got, tt.be) {
				t.Errorf("big-endian = %x, want %x", got, tt.be)
			}
			if got := tt.encode(LittleEndian); !bytes.Equal(got, tt.le) {
				t.Errorf("little-endian = %x, want %x", got, tt.le)
			}
		})
	}
}

func TestEndianness_String(t *testing.T) {
	if BigEndian.String() != "big-endian" {
		t.Errorf("BigEndian.String() = %q", BigEndian.String())
	}
	if LittleEndian.String() != "little-endian" {
		t.Errorf("LittleEndian.String() = %q", LittleEndian.String())
	}
	if LittleEndian.Order() != binary.LittleEndian {
		t.Error("LittleEndian.Order() should be binary.LittleEndian")
	}
}

func BenchmarkReadEndian_Uint32(b *testing.B) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReadEndian[uint32](sr, 0, "uint32", LittleEndian)
	}
}
