package types

import (
	"fmt"
)

// Entry is a single tagged field of an IFD.
//
// The value is kept in its stored form: raw bytes in the byte order of the
// owning Data. Value decodes it on demand.
type Entry struct {
	parent     *Content
	raw        []byte
	components int
	tag        Tag
	dataType   DataType
}

// NewRawEntry creates a detached entry from stored bytes. raw must be
// dt.Size()*components bytes long, in the byte order of the Data the entry
// will be added to.
func NewRawEntry(tag Tag, dt DataType, components int, raw []byte) *Entry {
	return &Entry{
		tag:        tag,
		dataType:   dt,
		components: components,
		raw:        raw,
	}
}

// Tag returns the entry's tag.
func (e *Entry) Tag() Tag { return e.tag }

// IFD returns the IFD the entry belongs to, or IFDCount for a detached
// entry.
func (e *Entry) IFD() IFD {
	if e.parent == nil {
		return IFDCount
	}
	return e.parent.ifd
}

// DataType returns the stored TIFF field type.
func (e *Entry) DataType() DataType { return e.dataType }

// Components returns the stored component count.
func (e *Entry) Components() int { return e.components }

// Size returns the size of the stored value in bytes.
func (e *Entry) Size() int { return len(e.raw) }

// RawData returns a copy of the stored bytes.
func (e *Entry) RawData() []byte {
	return clone(e.raw)
}

// Value decodes the entry using order.
//
// The stored bytes are always in the byte order of the owning Data, so
// passing anything but Data.ByteOrder() reinterprets them. That is
// occasionally useful for broken files written with the wrong order.
func (e *Entry) Value(order ByteOrder) (Value, error) {
	v, err := DecodeValue(e.raw, e.dataType, e.components, order)
	if err != nil {
		return nil, &InvalidValueError{IFD: e.IFD(), Tag: e.tag, Reason: err.Error()}
	}
	return v, nil
}

// SetValue replaces the entry's value. The value is validated against the
// tag table and encoded in the byte order of the owning Data.
func (e *Entry) SetValue(v Value) error {
	order := BigEndian
	if d := e.data(); d != nil {
		if err := d.validate(e.IFD(), e.tag, v); err != nil {
			return err
		}
		order = d.order
	}
	raw, err := EncodeValue(v, order)
	if err != nil {
		return &InvalidValueError{IFD: e.IFD(), Tag: e.tag, Reason: err.Error()}
	}
	e.raw = raw
	e.dataType = v.DataType()
	e.components = v.Components()
	return nil
}

// String returns a one-line description such as
// "0x0112 Orientation: Top-left".
func (e *Entry) String() string {
	name := e.tag.Name(e.IFD())
	if name == "" {
		name = "Unknown"
	}
	return fmt.Sprintf("%s %s: %s", e.tag, name, e.Text())
}

func (e *Entry) data() *Data {
	if e.parent == nil {
		return nil
	}
	return e.parent.data
}

func (e *Entry) order() ByteOrder {
	if d := e.data(); d != nil {
		return d.order
	}
	return BigEndian
}

func (e *Entry) clone() *Entry {
	return &Entry{
		tag:        e.tag,
		dataType:   e.dataType,
		components: e.components,
		raw:        clone(e.raw),
	}
}
