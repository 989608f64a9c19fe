package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// Debug tool: prints the raw IFD chain of a TIFF, EXIF blob or JPEG as
// stored, including pointer tags the library hides.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ifd-dump <file.jpg|file.tif|file.exif>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tiff, err := findTIFF(data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if len(tiff) < 8 {
		fmt.Println("Error: TIFF header truncated")
		os.Exit(1)
	}

	var order binary.Endianness
	switch string(tiff[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		fmt.Printf("Error: bad byte order mark %q\n", tiff[:2])
		os.Exit(1)
	}

	sr := binary.NewSafeReader(bytes.NewReader(tiff), int64(len(tiff)), os.Args[1])
	fmt.Printf("TIFF header: %s, %d bytes\n", order, len(tiff))

	first, err := binary.ReadEndian[uint32](sr, 4, "IFD0 offset", order)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	visited := map[uint32]bool{}
	dumpChain(sr, order, first, visited)
}

// findTIFF returns the TIFF structure inside data.
func findTIFF(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, []byte(types.ExifHeader)):
		return data[len(types.ExifHeader):], nil
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return data, nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		// Walk markers to the Exif APP1 segment
		off := 2
		for off+4 <= len(data) && data[off] == 0xFF {
			marker := data[off+1]
			if marker == 0xDA || marker == 0xD9 {
				break
			}
			length := int(data[off+2])<<8 | int(data[off+3])
			if length < 2 {
				break
			}
			payload := data[off+4 : min(off+2+length, len(data))]
			if marker == 0xE1 && bytes.HasPrefix(payload, []byte(types.ExifHeader)) {
				return payload[len(types.ExifHeader):], nil
			}
			off += 2 + length
		}
		return nil, fmt.Errorf("no Exif APP1 segment")
	}
	return nil, fmt.Errorf("not a TIFF, EXIF blob or JPEG")
}

// dumpChain follows the IFD0 -> IFD1 -> ... chain.
func dumpChain(sr *binary.SafeReader, order binary.Endianness, off uint32, visited map[uint32]bool) {
	for i := 0; off != 0; i++ {
		off = dumpIFD(sr, order, off, fmt.Sprintf("IFD%d", i), 0, visited)
	}
}

func dumpIFD(sr *binary.SafeReader, order binary.Endianness, off uint32, name string, depth int, visited map[uint32]bool) uint32 {
	indent := strings.Repeat("  ", depth)
	if visited[off] {
		fmt.Printf("%s%s at %d: already visited (loop)\n", indent, name, off)
		return 0
	}
	visited[off] = true

	r := binary.NewReader(sr, int64(off), order)
	count, err := binary.ReadValue[uint16](r, "entry count")
	if err != nil {
		fmt.Printf("%s%s at %d: %v\n", indent, name, off, err)
		return 0
	}
	fmt.Printf("%s%s (offset: %d, entries: %d)\n", indent, name, off, count)

	type child struct {
		name string
		off  uint32
	}
	var children []child

	group := types.IFDImage
	switch name {
	case "Exif":
		group = types.IFDExif
	case "GPS":
		group = types.IFDGPS
	case "Interop":
		group = types.IFDInteroperability
	}

	for range count {
		cr := binary.NewChainReader(r)
		tag := binary.ReadChained[uint16](cr, "tag")
		typ := binary.ReadChained[uint16](cr, "type")
		n := binary.ReadChained[uint32](cr, "count")
		val := cr.Bytes(4, "value")
		if err := cr.Error(); err != nil {
			fmt.Printf("%s  %v\n", indent, err)
			return 0
		}

		dt := types.DataType(typ)
		tagName := types.Tag(tag).Name(group)
		if tagName == "" {
			tagName = "?"
		}
		size := int64(dt.Size()) * int64(n)
		where := "inline"
		if size > 4 {
			where = fmt.Sprintf("at %d", binary.Decode[uint32](val, order))
		}
		fmt.Printf("%s  0x%04X %-28s %-9s count: %-6d %s\n", indent, tag, tagName, dt, n, where)

		ptr := binary.Decode[uint32](val, order)
		switch {
		case group == types.IFDImage && types.Tag(tag) == types.TagExifIFDPointer:
			children = append(children, child{"Exif", ptr})
		case group == types.IFDImage && types.Tag(tag) == types.TagGPSInfoIFDPointer:
			children = append(children, child{"GPS", ptr})
		case group == types.IFDExif && types.Tag(tag) == types.TagInteroperabilityIFDPointer:
			children = append(children, child{"Interop", ptr})
		}
	}

	next, err := binary.ReadValue[uint32](r, "next IFD offset")
	if err != nil {
		fmt.Printf("%s  %v\n", indent, err)
		next = 0
	}

	for _, c := range children {
		dumpIFD(sr, order, c.off, c.name, depth+1, visited)
	}
	return next
}
