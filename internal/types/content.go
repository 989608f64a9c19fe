package types

import (
	"iter"
	"slices"
)

// Content holds the entries of one IFD, sorted by tag.
type Content struct {
	data    *Data
	entries []*Entry
	ifd     IFD
}

// IFD returns the IFD this content belongs to.
func (c *Content) IFD() IFD { return c.ifd }

// Len returns the number of entries.
func (c *Content) Len() int { return len(c.entries) }

// IsEmpty reports whether the IFD has no entries.
func (c *Content) IsEmpty() bool { return len(c.entries) == 0 }

// Entries yields the entries in ascending tag order.
func (c *Content) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entry returns the entry for tag.
func (c *Content) Entry(tag Tag) (*Entry, bool) {
	i, found := c.search(tag)
	if !found {
		return nil, false
	}
	return c.entries[i], true
}

// Add inserts e, replacing any entry with the same tag. The entry's raw
// bytes must already be in the byte order of the owning Data.
func (c *Content) Add(e *Entry) {
	e.parent = c
	i, found := c.search(e.tag)
	if found {
		c.entries[i].parent = nil
		c.entries[i] = e
		return
	}
	c.entries = slices.Insert(c.entries, i, e)
}

// Remove deletes the entry for tag and reports whether it existed.
func (c *Content) Remove(tag Tag) bool {
	i, found := c.search(tag)
	if !found {
		return false
	}
	c.entries[i].parent = nil
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}

func (c *Content) search(tag Tag) (int, bool) {
	return slices.BinarySearchFunc(c.entries, tag, func(e *Entry, t Tag) int {
		return int(e.tag) - int(t)
	})
}
