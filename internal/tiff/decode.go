// Package tiff implements the EXIF codec: the TIFF header and IFD tree
// that every container embeds, plus parsers for TIFF files and bare EXIF
// blobs.
package tiff

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

const (
	headerSize = 8
	entrySize  = 12
)

// DecodeOptions controls how an EXIF block is decoded.
type DecodeOptions struct {
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger

	// Options are set on the decoded Data before decoding starts.
	Options types.DataOption

	// Encoding is the layout of the primary image, as known from the
	// container.
	Encoding types.DataEncoding

	// DeriveEncoding replaces Encoding with DetectEncoding of the decoded
	// IFD0. Used for TIFF files, where IFD0 describes the image itself.
	DeriveEncoding bool
}

type decoder struct {
	sr       *binary.SafeReader
	data     *types.Data
	log      *slog.Logger
	visited  map[uint32]bool
	warnings []types.Warning
	base     int64
	thumbOff uint32
	thumbLen uint32
	order    types.ByteOrder
}

// Decode reads an EXIF block from sr.
//
// The block may start with the "Exif\0\0" header; the TIFF header must
// follow. A damaged IFD other than IFD0 is skipped with a warning. A bad
// header or unreadable IFD0 returns a *types.CorruptedFileError.
func Decode(sr *binary.SafeReader, opts DecodeOptions) (*types.Data, []types.Warning, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var base int64
	if prefix, err := sr.Bytes(0, len(types.ExifHeader), "EXIF header"); err == nil && string(prefix) == types.ExifHeader {
		base = int64(len(types.ExifHeader))
	}

	tsr, err := sr.Section(base, sr.Size()-base, "TIFF structure")
	if err != nil {
		return nil, nil, &types.CorruptedFileError{Path: sr.Path(), Reason: "EXIF block too small", Offset: base}
	}

	order, ifd0, err := readHeader(tsr)
	if err != nil {
		return nil, nil, &types.CorruptedFileError{Path: sr.Path(), Reason: err.Error(), Offset: base}
	}

	d := types.NewData()
	d.SetByteOrder(order)
	d.SetOption(opts.Options)
	d.SetEncoding(opts.Encoding)

	dec := &decoder{
		sr:      tsr,
		data:    d,
		log:     log,
		visited: make(map[uint32]bool),
		base:    base,
		order:   order,
	}

	log.Debug("decoding EXIF block",
		slog.String("path", sr.Path()),
		slog.String("byte_order", order.String()),
		slog.Int64("size", tsr.Size()))

	next, err := dec.readIFD(types.IFDImage, ifd0)
	if err != nil {
		return nil, nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Reason: fmt.Sprintf("cannot read IFD0: %v", err),
			Offset: base + int64(ifd0),
		}
	}

	if next != 0 {
		if _, err := dec.readIFD(types.IFDThumbnail, next); err != nil {
			dec.warn("ifd", next, "skipping IFD1: %v", err)
		}
	}

	dec.readThumbnail()

	if opts.DeriveEncoding {
		d.SetEncoding(DetectEncoding(d))
	}
	if d.HasOption(types.OptionFollowSpecification) {
		if n := d.Fix(); n > 0 {
			log.Debug("fixed EXIF data", slog.Int("changes", n), slog.String("encoding", d.Encoding().String()))
		}
	}

	return d, dec.warnings, nil
}

// readHeader validates the 8-byte TIFF header and returns the byte order
// and the offset of IFD0.
func readHeader(sr *binary.SafeReader) (types.ByteOrder, uint32, error) {
	header, err := sr.Bytes(0, headerSize, "TIFF header")
	if err != nil {
		return 0, 0, fmt.Errorf("TIFF header truncated")
	}

	var order types.ByteOrder
	switch string(header[:2]) {
	case "II":
		order = types.LittleEndian
	case "MM":
		order = types.BigEndian
	default:
		return 0, 0, fmt.Errorf("invalid byte order mark %q", header[:2])
	}

	if magic := binary.Decode[uint16](header[2:], order); magic != 42 {
		return 0, 0, fmt.Errorf("invalid TIFF magic %d", magic)
	}

	return order, binary.Decode[uint32](header[4:], order), nil
}

// readIFD decodes the IFD at off into ifd and follows its sub-IFD
// pointers. Nesting is bounded by subIFD; visited breaks offset loops.
func (dec *decoder) readIFD(ifd types.IFD, off uint32) (uint32, error) {
	if dec.visited[off] {
		dec.warn("ifd", off, "%s IFD at offset %d already visited, skipping loop", ifd, off)
		return 0, nil
	}
	dec.visited[off] = true

	r := binary.NewReader(dec.sr, int64(off), dec.order)
	count, err := binary.ReadValue[uint16](r, "IFD entry count")
	if err != nil {
		return 0, err
	}
	if !dec.sr.InBounds(r.Offset(), int64(count)*entrySize) {
		return 0, fmt.Errorf("%d entries at offset %d exceed the EXIF block", count, off)
	}

	type child struct {
		ifd types.IFD
		off uint32
	}
	var children []child

	content := dec.data.Content(ifd)
	for i := 0; i < int(count); i++ {
		entryOff := uint32(r.Offset())
		cr := binary.NewChainReader(r)
		tag := types.Tag(binary.ReadChained[uint16](cr, "entry tag"))
		dt := types.DataType(binary.ReadChained[uint16](cr, "entry type"))
		components := binary.ReadChained[uint32](cr, "entry count")
		field := cr.Bytes(4, "entry value")
		if err := cr.Error(); err != nil {
			return 0, err
		}

		if target, ok := subIFD(ifd, tag); ok {
			if ptr, ok := dec.pointer(dt, components, field); ok && ptr != 0 {
				children = append(children, child{ifd: target, off: ptr})
			} else {
				dec.warn("entry", entryOff, "%s IFD: invalid pointer for tag %s", ifd, tag)
			}
			continue
		}
		if tag == types.TagJPEGInterchangeFormat || tag == types.TagJPEGInterchangeFormatLength {
			if ifd == types.IFDThumbnail {
				v, _ := dec.pointer(dt, components, field)
				if tag == types.TagJPEGInterchangeFormat {
					dec.thumbOff = v
				} else {
					dec.thumbLen = v
				}
			} else {
				dec.log.Debug("dropping thumbnail location outside IFD1", slog.String("ifd", ifd.String()), slog.String("tag", tag.String()))
			}
			continue
		}
		if types.IsStructural(tag) {
			dec.log.Debug("dropping IFD pointer outside its parent IFD", slog.String("ifd", ifd.String()), slog.String("tag", tag.String()))
			continue
		}

		if !dt.Valid() {
			dec.warn("entry", entryOff, "%s IFD: tag %s has unknown data type %d", ifd, tag, uint16(dt))
			continue
		}

		size := int64(dt.Size()) * int64(components)
		var raw []byte
		if size <= 4 {
			raw = append([]byte(nil), field[:size]...)
		} else {
			valueOff := int64(binary.Decode[uint32](field, dec.order))
			if !dec.sr.InBounds(valueOff, size) {
				dec.warn("entry", entryOff, "%s IFD: data of tag %s lies outside the EXIF block", ifd, tag)
				continue
			}
			raw, err = dec.sr.Bytes(valueOff, int(size), "entry data")
			if err != nil {
				dec.warn("entry", entryOff, "%s IFD: cannot read tag %s: %v", ifd, tag, err)
				continue
			}
		}

		if dec.data.HasOption(types.OptionIgnoreUnknownTags) {
			if info, known := types.LookupTag(ifd, tag); !known || !info.RecordedIn(ifd) {
				dec.log.Debug("ignoring unknown tag", slog.String("ifd", ifd.String()), slog.String("tag", tag.String()))
				continue
			}
		}
		if _, dup := content.Entry(tag); dup {
			dec.log.Debug("ignoring duplicate entry", slog.String("ifd", ifd.String()), slog.String("tag", tag.String()))
			continue
		}

		content.Add(types.NewRawEntry(tag, dt, int(components), raw))
	}

	next, err := binary.ReadValue[uint32](r, "next IFD offset")
	if err != nil {
		// Some writers omit the trailing offset of the last IFD
		next = 0
	}

	for _, c := range children {
		if _, err := dec.readIFD(c.ifd, c.off); err != nil {
			dec.warn("ifd", c.off, "skipping %s IFD: %v", c.ifd, err)
		}
	}

	return next, nil
}

// pointer interprets an entry holding a single offset. Writers use LONG,
// SHORT or the TIFF IFD type (13) for pointers.
func (dec *decoder) pointer(dt types.DataType, components uint32, field []byte) (uint32, bool) {
	if components != 1 {
		return 0, false
	}
	switch dt {
	case types.TypeLong, types.TypeSLong, typeIFD:
		return binary.Decode[uint32](field, dec.order), true
	case types.TypeShort:
		return uint32(binary.Decode[uint16](field, dec.order)), true
	}
	return 0, false
}

// typeIFD is the TIFF 6.0 supplement type for IFD offsets.
const typeIFD types.DataType = 13

func (dec *decoder) readThumbnail() {
	if dec.thumbLen == 0 {
		return
	}
	if !dec.sr.InBounds(int64(dec.thumbOff), int64(dec.thumbLen)) {
		dec.warn("thumbnail", dec.thumbOff, "thumbnail of %d bytes lies outside the EXIF block", dec.thumbLen)
		return
	}
	thumb, err := dec.sr.Bytes(int64(dec.thumbOff), int(dec.thumbLen), "thumbnail")
	if err != nil {
		dec.warn("thumbnail", dec.thumbOff, "thumbnail of %d bytes lies outside the EXIF block", dec.thumbLen)
		return
	}
	dec.data.SetThumbnail(thumb)
}

func subIFD(ifd types.IFD, tag types.Tag) (types.IFD, bool) {
	switch {
	case ifd == types.IFDImage && tag == types.TagExifIFDPointer:
		return types.IFDExif, true
	case ifd == types.IFDImage && tag == types.TagGPSInfoIFDPointer:
		return types.IFDGPS, true
	case ifd == types.IFDExif && tag == types.TagInteroperabilityIFDPointer:
		return types.IFDInteroperability, true
	}
	return types.IFDCount, false
}

func (dec *decoder) warn(stage string, off uint32, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	dec.log.Debug("EXIF warning", slog.String("stage", stage), slog.String("message", msg))
	dec.warnings = append(dec.warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  dec.base + int64(off),
	})
}

// DetectEncoding derives the image data layout of a TIFF file from IFD0.
func DetectEncoding(d *types.Data) types.DataEncoding {
	if v, err := d.Get(types.IFDImage, types.TagCompression); err == nil {
		if c, ok := types.UintAt(v, 0); ok && (c == 6 || c == 7) {
			return types.EncodingCompressed
		}
	}
	if v, err := d.Get(types.IFDImage, types.TagPhotometricInterpretation); err == nil {
		if p, ok := types.UintAt(v, 0); ok && p == 6 {
			return types.EncodingYCC
		}
	}
	if v, err := d.Get(types.IFDImage, types.TagPlanarConfiguration); err == nil {
		if p, ok := types.UintAt(v, 0); ok && p == 2 {
			return types.EncodingPlanar
		}
	}
	return types.EncodingChunky
}
