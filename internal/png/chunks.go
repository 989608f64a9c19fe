// Package png reads and rewrites the eXIf chunk of PNG files.
package png

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

const signatureLen = 8

// Chunk types
const (
	chunkEXIF = "eXIf"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
)

// chunk is one length-type-data-CRC record.
type chunk struct {
	typ   string
	start int64 // offset of the length field
	data  int64
	size  uint32
	crc   uint32
}

// end returns the offset just past the CRC.
func (c chunk) end() int64 {
	return c.data + int64(c.size) + 4
}

// scanChunks walks the chunk list up to and including IEND. On a
// structural error it returns the chunks read so far along with the error.
func scanChunks(sr *binary.SafeReader) ([]chunk, error) {
	sig, err := sr.Bytes(0, signatureLen, "PNG signature")
	if err != nil {
		return nil, err
	}
	if string(sig) != "\x89PNG\r\n\x1a\n" {
		return nil, &types.CorruptedFileError{Path: sr.Path(), Reason: "missing PNG signature"}
	}

	var chunks []chunk
	off := int64(signatureLen)
	for off < sr.Size() {
		r := binary.NewReader(sr, off, binary.BigEndian)
		cr := binary.NewChainReader(r)
		size := binary.ReadChained[uint32](cr, "chunk length")
		typ := cr.Bytes(4, "chunk type")
		if err := cr.Error(); err != nil {
			return chunks, fmt.Errorf("truncated chunk header at offset %d", off)
		}

		c := chunk{typ: string(typ), start: off, data: off + 8, size: size}
		if !sr.InBounds(c.data, int64(size)+4) {
			return chunks, fmt.Errorf("chunk %q at offset %d runs past end of file", c.typ, off)
		}
		c.crc, err = binary.Read[uint32](sr, c.data+int64(size), "chunk CRC")
		if err != nil {
			return chunks, err
		}

		chunks = append(chunks, c)
		if c.typ == chunkIEND {
			return chunks, nil
		}
		off = c.end()
	}
	return chunks, fmt.Errorf("no IEND chunk before end of file")
}

// checksum computes the CRC-32 of a chunk's type and data as stored in sr.
func checksum(sr *binary.SafeReader, c chunk) (uint32, error) {
	body, err := sr.Bytes(c.start+4, int(c.size)+4, "chunk body")
	if err != nil {
		return 0, err
	}
	return crc32.ChecksumIEEE(body), nil
}

// writeChunk emits a complete chunk with its CRC.
func writeChunk(sw *binary.SafeWriter, typ string, data []byte) error {
	if err := binary.Write(sw, uint32(len(data))); err != nil {
		return err
	}
	h := crc32.NewIEEE()
	_, _ = io.WriteString(h, typ)
	_, _ = h.Write(data)
	if err := sw.WriteString(typ); err != nil {
		return err
	}
	if err := sw.WriteBytes(data); err != nil {
		return err
	}
	return binary.Write(sw, h.Sum32())
}
