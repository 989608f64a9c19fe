package types

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Data is an EXIF block: five IFDs of entries, an optional thumbnail and
// the byte order all multi-byte values are stored in.
//
// The zero value is not usable; create one with NewData or by decoding.
// Data is not safe for concurrent mutation.
type Data struct {
	contents  [IFDCount]*Content
	thumbnail []byte
	order     ByteOrder
	encoding  DataEncoding
	options   DataOption
}

// NewData returns an empty container using big-endian byte order.
func NewData() *Data {
	d := &Data{order: BigEndian}
	for _, ifd := range IFDs {
		d.contents[ifd] = &Content{data: d, ifd: ifd}
	}
	return d
}

// ByteOrder returns the byte order entries are stored in.
func (d *Data) ByteOrder() ByteOrder { return d.order }

// SetByteOrder converts every entry to order.
//
// Entries with one-byte components (text, bytes, undefined data and the
// maker note) are byte-order independent and stay untouched.
func (d *Data) SetByteOrder(order ByteOrder) {
	if order == d.order {
		return
	}
	for _, c := range d.contents {
		for _, e := range c.entries {
			if e.dataType.Size() <= 1 {
				continue
			}
			v, err := DecodeValue(e.raw, e.dataType, e.components, d.order)
			if err != nil {
				continue
			}
			e.raw = v.appendTo(make([]byte, 0, len(e.raw)), order)
		}
	}
	d.order = order
}

// Encoding returns the layout of the primary image data.
func (d *Data) Encoding() DataEncoding { return d.encoding }

// SetEncoding sets the layout of the primary image data. It decides what
// Fix considers mandatory.
func (d *Data) SetEncoding(enc DataEncoding) { d.encoding = enc }

// Options returns the active processing options.
func (d *Data) Options() DataOption { return d.options }

// SetOption enables opt.
func (d *Data) SetOption(opt DataOption) { d.options |= opt }

// UnsetOption disables opt.
func (d *Data) UnsetOption(opt DataOption) { d.options &^= opt }

// HasOption reports whether opt is enabled.
func (d *Data) HasOption(opt DataOption) bool { return d.options&opt == opt }

// Content returns the entries of ifd, or nil for an invalid IFD.
func (d *Data) Content(ifd IFD) *Content {
	if !ifd.Valid() {
		return nil
	}
	return d.contents[ifd]
}

// Contents yields the content of every IFD in storage order, including
// empty ones.
func (d *Data) Contents() iter.Seq[*Content] {
	return func(yield func(*Content) bool) {
		for _, c := range d.contents {
			if !yield(c) {
				return
			}
		}
	}
}

// Entry returns the entry for tag in ifd.
//
// A missing entry yields an *EntryNotFoundError, which matches
// ErrEntryNotFound:
//
//	if errors.Is(err, types.ErrEntryNotFound) { ... }
func (d *Data) Entry(ifd IFD, tag Tag) (*Entry, error) {
	if c := d.Content(ifd); c != nil {
		if e, ok := c.Entry(tag); ok {
			return e, nil
		}
	}
	return nil, &EntryNotFoundError{IFD: ifd, Tag: tag}
}

// Get decodes the value of tag in ifd using the container's byte order.
func (d *Data) Get(ifd IFD, tag Tag) (Value, error) {
	e, err := d.Entry(ifd, tag)
	if err != nil {
		return nil, err
	}
	return e.Value(d.order)
}

// Set stores v as the value of tag in ifd, creating the entry if needed.
//
// Known tags are checked against the tag table: the value's type must be
// one of the allowed formats and its component count must match a fixed
// count. IFD pointers and the thumbnail location cannot be set.
func (d *Data) Set(ifd IFD, tag Tag, v Value) error {
	if err := d.validate(ifd, tag, v); err != nil {
		return err
	}
	raw, err := EncodeValue(v, d.order)
	if err != nil {
		return &InvalidValueError{IFD: ifd, Tag: tag, Reason: err.Error()}
	}
	d.contents[ifd].Add(&Entry{
		tag:        tag,
		dataType:   v.DataType(),
		components: v.Components(),
		raw:        raw,
	})
	return nil
}

// Remove deletes the entry for tag in ifd and reports whether it existed.
func (d *Data) Remove(ifd IFD, tag Tag) (bool, error) {
	if !ifd.Valid() {
		return false, &InvalidValueError{IFD: ifd, Tag: tag, Reason: "invalid IFD"}
	}
	if d.protected(ifd, tag) {
		return false, &InvalidValueError{IFD: ifd, Tag: tag, Reason: "maker note is protected"}
	}
	return d.contents[ifd].Remove(tag), nil
}

// Thumbnail returns the embedded thumbnail (usually a JPEG), or nil.
// The returned slice must not be modified.
func (d *Data) Thumbnail() []byte { return d.thumbnail }

// SetThumbnail replaces the thumbnail. nil removes it. d keeps b.
func (d *Data) SetThumbnail(b []byte) {
	if len(b) == 0 {
		b = nil
	}
	d.thumbnail = b
}

// Fix brings the container in line with the EXIF standard for its
// encoding.
//
// Entries the standard forbids in their IFD are removed. Missing mandatory
// entries that have a default value are added to IFD0 and to every other
// IFD that holds entries. Fix returns the number of entries changed.
func (d *Data) Fix() int {
	changed := 0
	for _, ifd := range IFDs {
		c := d.contents[ifd]
		for i := 0; i < len(c.entries); {
			e := c.entries[i]
			if d.forbidden(ifd, e.tag) {
				c.Remove(e.tag)
				changed++
				continue
			}
			i++
		}

		if ifd != IFDImage && c.IsEmpty() {
			continue
		}
		for _, info := range TagsIn(ifd) {
			if info.Default == nil || info.SupportLevel(ifd, d.encoding) != SupportMandatory {
				continue
			}
			if _, ok := c.Entry(info.Tag); ok {
				continue
			}
			if err := d.Set(ifd, info.Tag, info.Default); err == nil {
				changed++
			}
		}
	}
	return changed
}

func (d *Data) forbidden(ifd IFD, tag Tag) bool {
	if d.protected(ifd, tag) {
		return false
	}
	info, ok := LookupTag(ifd, tag)
	if !ok {
		return false
	}
	return info.SupportLevel(ifd, d.encoding) == SupportNotRecorded
}

// Dump writes a human-readable listing of every non-empty IFD.
func (d *Data) Dump(w io.Writer) error {
	dw := &dumpWriter{w: w}
	dw.printf("EXIF data (%s, encoding %s)\n", d.order, d.encoding)
	for _, c := range d.contents {
		if c.IsEmpty() {
			continue
		}
		dw.printf("\n%s IFD (%d entries)\n", c.ifd, c.Len())
		for _, e := range c.entries {
			title := e.tag.Title(c.ifd)
			if title == "" {
				title = "Unknown tag " + e.tag.String()
			}
			dw.printf("  %s %-34s %s\n", e.tag, title, strings.ReplaceAll(e.Text(), "\n", " "))
		}
	}
	if len(d.thumbnail) > 0 {
		dw.printf("\nThumbnail: %d bytes\n", len(d.thumbnail))
	}
	return dw.err
}

type dumpWriter struct {
	w   io.Writer
	err error
}

func (dw *dumpWriter) printf(format string, args ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

// Clone returns a deep copy of d.
func (d *Data) Clone() *Data {
	out := NewData()
	out.order = d.order
	out.encoding = d.encoding
	out.options = d.options
	if d.thumbnail != nil {
		out.thumbnail = clone(d.thumbnail)
	}
	for i, c := range d.contents {
		for _, e := range c.entries {
			out.contents[i].Add(e.clone())
		}
	}
	return out
}

// Len returns the total number of entries across all IFDs.
func (d *Data) Len() int {
	n := 0
	for _, c := range d.contents {
		n += c.Len()
	}
	return n
}

// IsEmpty reports whether d has no entries and no thumbnail.
func (d *Data) IsEmpty() bool {
	return d.Len() == 0 && len(d.thumbnail) == 0
}

func (d *Data) protected(ifd IFD, tag Tag) bool {
	return ifd == IFDExif && tag == TagMakerNote && d.HasOption(OptionDontChangeMakerNote)
}

func (d *Data) validate(ifd IFD, tag Tag, v Value) error {
	if !ifd.Valid() {
		return &InvalidValueError{IFD: ifd, Tag: tag, Reason: "invalid IFD"}
	}
	if v == nil {
		return &InvalidValueError{IFD: ifd, Tag: tag, Reason: "nil value"}
	}
	if IsStructural(tag) {
		return &InvalidValueError{IFD: ifd, Tag: tag, Reason: "tag is managed by the encoder"}
	}
	if d.protected(ifd, tag) {
		return &InvalidValueError{IFD: ifd, Tag: tag, Reason: "maker note is protected"}
	}

	info, ok := LookupTag(ifd, tag)
	if !ok {
		return nil
	}
	if !info.AllowsFormat(v.DataType()) {
		return &InvalidValueError{
			IFD:    ifd,
			Tag:    tag,
			Reason: fmt.Sprintf("%s does not allow type %s (allowed: %s)", info.Name, v.DataType(), formatList(info.Formats)),
		}
	}
	if info.Components > 0 && v.Components() != info.Components {
		return &InvalidValueError{
			IFD:    ifd,
			Tag:    tag,
			Reason: fmt.Sprintf("%s needs %d components, got %d", info.Name, info.Components, v.Components()),
		}
	}
	return nil
}

func formatList(formats []DataType) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
