// Package jpeg reads and rewrites the APP1 Exif segment of JPEG files.
package jpeg

import (
	"bytes"
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// JPEG markers
const (
	markerPrefix = 0xFF
	markerTEM    = 0x01
	markerRST0   = 0xD0
	markerRST7   = 0xD7
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP0   = 0xE0
	markerAPP1   = 0xE1
)

// maxPayload is the largest APP1 payload: the 16-bit length field counts
// itself.
const maxPayload = 0xFFFF - 2

// segment is a marker segment with a length field.
type segment struct {
	start  int64 // offset of the 0xFF prefix
	end    int64 // offset after the payload
	data   int64 // offset of the payload
	marker byte
}

func (s segment) payloadLen() int {
	return int(s.end - s.data)
}

// layout is the header part of a JPEG: everything before the scan data.
type layout struct {
	segments []segment
	// rest is where the entropy-coded data (SOS) or EOI begins.
	// Everything from rest on is copied verbatim when rewriting.
	rest int64
}

// scan walks the marker segments that precede the first SOS or EOI.
//
// On a structural error the segments found so far are returned together
// with the error, and rest is the offset where scanning stopped.
func scan(sr *binary.SafeReader) (*layout, error) {
	soi, err := sr.Bytes(0, 2, "SOI marker")
	if err != nil {
		return nil, err
	}
	if soi[0] != markerPrefix || soi[1] != markerSOI {
		return nil, &types.CorruptedFileError{Path: sr.Path(), Reason: "missing SOI marker"}
	}

	l := &layout{}
	off := int64(2)
	for {
		l.rest = off
		prefix, err := binary.Read[uint8](sr, off, "marker prefix")
		if err != nil {
			return l, fmt.Errorf("no SOS marker before end of file")
		}
		if prefix != markerPrefix {
			return l, &types.CorruptedFileError{
				Path:   sr.Path(),
				Reason: fmt.Sprintf("expected marker, found byte 0x%02X", prefix),
				Offset: off,
			}
		}

		// Any number of 0xFF fill bytes may precede a marker
		markerOff := off + 1
		marker := byte(markerPrefix)
		for marker == markerPrefix {
			marker, err = binary.Read[uint8](sr, markerOff, "marker")
			if err != nil {
				return l, fmt.Errorf("truncated marker at offset %d", off)
			}
			markerOff++
		}
		start := markerOff - 2

		switch {
		case marker == markerSOS || marker == markerEOI:
			l.rest = start
			return l, nil
		case marker == markerTEM || marker == markerSOI || (marker >= markerRST0 && marker <= markerRST7):
			off = markerOff
			continue
		}

		length, err := binary.Read[uint16](sr, markerOff, "segment length")
		if err != nil {
			return l, err
		}
		if length < 2 {
			return l, &types.CorruptedFileError{
				Path:   sr.Path(),
				Reason: fmt.Sprintf("segment 0x%02X has invalid length %d", marker, length),
				Offset: start,
			}
		}
		end := markerOff + int64(length)
		if end > sr.Size() {
			return l, &types.CorruptedFileError{
				Path:   sr.Path(),
				Reason: fmt.Sprintf("segment 0x%02X runs past end of file", marker),
				Offset: start,
			}
		}

		l.segments = append(l.segments, segment{
			marker: marker,
			start:  start,
			data:   markerOff + 2,
			end:    end,
		})
		off = end
	}
}

// isExif reports whether s is an APP1 segment holding EXIF data.
func isExif(sr *binary.SafeReader, s segment) bool {
	if s.marker != markerAPP1 || s.payloadLen() < len(types.ExifHeader) {
		return false
	}
	head, err := sr.Bytes(s.data, len(types.ExifHeader), "APP1 identifier")
	return err == nil && string(head) == types.ExifHeader
}

// isJFIF reports whether s is an APP0 JFIF segment.
func isJFIF(sr *binary.SafeReader, s segment) bool {
	if s.marker != markerAPP0 || s.payloadLen() < 5 {
		return false
	}
	head, err := sr.Bytes(s.data, 5, "APP0 identifier")
	return err == nil && bytes.Equal(head, []byte("JFIF\x00"))
}
