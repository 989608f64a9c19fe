package jpeg

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

// writer implements registry.FormatWriter for JPEG files.
type writer struct{}

// Write copies the original JPEG to w with file.Data as its only APP1
// Exif segment.
//
// The segment goes right after SOI, or after a leading APP0 JFIF segment.
// Other segments and the entropy-coded data are copied unchanged. An
// empty container removes the EXIF segment.
func (wr *writer) Write(w io.Writer, file *types.File, original io.ReaderAt, originalSize int64) error {
	sr := binary.NewSafeReader(original, originalSize, file.Path)

	l, err := scan(sr)
	if err != nil {
		return fmt.Errorf("scan JPEG segments: %w", err)
	}

	var payload []byte
	if !file.Data.IsEmpty() {
		payload, err = tiff.EncodeAPP1Payload(file.Data)
		if err != nil {
			return fmt.Errorf("encode EXIF: %w", err)
		}
		if len(payload) > maxPayload {
			return &types.InvalidValueError{
				IFD:    types.IFDCount,
				Reason: fmt.Sprintf("EXIF data of %d bytes exceeds the APP1 limit of %d bytes", len(payload), maxPayload),
			}
		}
	}

	sw := binary.NewSafeWriter(w)
	if err := sw.WriteBytes([]byte{markerPrefix, markerSOI}); err != nil {
		return fmt.Errorf("write SOI: %w", err)
	}

	segments := l.segments
	if len(segments) > 0 && isJFIF(sr, segments[0]) {
		if err := copyRange(sw, original, segments[0].start, segments[0].end); err != nil {
			return fmt.Errorf("copy APP0: %w", err)
		}
		segments = segments[1:]
	}

	if payload != nil {
		if err := sw.WriteBytes([]byte{markerPrefix, markerAPP1}); err != nil {
			return fmt.Errorf("write APP1 marker: %w", err)
		}
		if err := binary.Write(sw, uint16(len(payload)+2)); err != nil {
			return fmt.Errorf("write APP1 length: %w", err)
		}
		if err := sw.WriteBytes(payload); err != nil {
			return fmt.Errorf("write APP1 payload: %w", err)
		}
	}

	for _, seg := range segments {
		if isExif(sr, seg) {
			continue
		}
		if err := copyRange(sw, original, seg.start, seg.end); err != nil {
			return fmt.Errorf("copy segment 0x%02X: %w", seg.marker, err)
		}
	}

	if err := copyRange(sw, original, l.rest, originalSize); err != nil {
		return fmt.Errorf("copy image data: %w", err)
	}
	return nil
}

func copyRange(sw *binary.SafeWriter, r io.ReaderAt, start, end int64) error {
	if end <= start {
		return nil
	}
	_, err := io.Copy(sw, io.NewSectionReader(r, start, end-start))
	return err
}
