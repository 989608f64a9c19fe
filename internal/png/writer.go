package png

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

// writer implements registry.FormatWriter for PNG files.
type writer struct{}

// Write copies the original PNG to w with file.Data as its only eXIf
// chunk, placed before the first IDAT. The chunk holds the bare TIFF
// structure. An empty container removes the chunk.
func (wr *writer) Write(w io.Writer, file *types.File, original io.ReaderAt, originalSize int64) error {
	sr := binary.NewSafeReader(original, originalSize, file.Path)

	chunks, err := scanChunks(sr)
	if err != nil {
		return fmt.Errorf("scan PNG chunks: %w", err)
	}

	var payload []byte
	if !file.Data.IsEmpty() {
		payload, err = tiff.Encode(file.Data)
		if err != nil {
			return fmt.Errorf("encode EXIF: %w", err)
		}
	}

	sw := binary.NewSafeWriter(w)
	if err := copyRange(sw, original, 0, signatureLen); err != nil {
		return fmt.Errorf("copy signature: %w", err)
	}

	for _, c := range chunks {
		if c.typ == chunkEXIF {
			continue
		}
		if payload != nil && (c.typ == chunkIDAT || c.typ == chunkIEND) {
			if err := writeChunk(sw, chunkEXIF, payload); err != nil {
				return fmt.Errorf("write eXIf chunk: %w", err)
			}
			payload = nil
		}
		if err := copyRange(sw, original, c.start, c.end()); err != nil {
			return fmt.Errorf("copy %s chunk: %w", c.typ, err)
		}
	}
	return nil
}

func copyRange(sw *binary.SafeWriter, r io.ReaderAt, start, end int64) error {
	_, err := io.Copy(sw, io.NewSectionReader(r, start, end-start))
	return err
}
