// Package kvconf implements the line-oriented key/value configuration format
// used by project definition (.rpc) and tool preference files.
//
// A document is an ordered list of entries, each a key with either a quoted
// text value or a bare integer value and an optional trailing description:
//
//	# free comment line
//	PROJECT_INTERNAL_NAME            "coolgame"   # Project internal name
//	BUILD_FLAG_ASSETS_PACKAGING      0            # Request assets packaging
//
// Entry order is preserved across load/save round trips.
package kvconf

import (
	"fmt"
	"strconv"
)

const (
	// MaxEntries is the hard cap on entries per document.
	MaxEntries = 256

	// DefaultCapacity pre-sizes documents built from scratch.
	DefaultCapacity = 32

	// CommentPrefix starts a comment line.
	CommentPrefix = "#"
)

var (
	ErrNotFound = fmt.Errorf("file not found")
	ErrCapacity = fmt.Errorf("document is at entry capacity")
)

// Entry is one key/value/description triple. Text holds the value for quoted
// (textual) entries; Value holds it for bare integer entries. IsText records
// which form the entry was written in.
type Entry struct {
	Key   string
	Text  string
	Value int
	Desc  string

	IsText bool
}

// Doc is an ordered key/value document plus its leading comment lines.
type Doc struct {
	Comments []string
	Entries  []*Entry
}

// New returns an empty document pre-sized for capacity entries. A
// non-positive capacity selects DefaultCapacity.
func New(capacity int) *Doc {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity > MaxEntries {
		capacity = MaxEntries
	}

	return &Doc{
		Comments: make([]string, 0),
		Entries:  make([]*Entry, 0, capacity),
	}
}

// SetComment appends a comment line. An empty string produces a bare comment
// separator line.
func (d *Doc) SetComment(text string) {
	d.Comments = append(d.Comments, text)
}

// SetValue inserts or updates an integer entry. The stringified form is
// refreshed alongside the numeric value so the two representations never
// drift apart.
func (d *Doc) SetValue(key string, value int, desc string) error {
	if entry, ok := d.Lookup(key); ok {
		entry.Value = value
		entry.Text = strconv.Itoa(value)
		entry.IsText = false
		if desc != "" {
			entry.Desc = desc
		}
		return nil
	}

	if len(d.Entries) >= MaxEntries {
		return fmt.Errorf("%w: cannot add %q", ErrCapacity, key)
	}

	d.Entries = append(d.Entries, &Entry{
		Key:   key,
		Text:  strconv.Itoa(value),
		Value: value,
		Desc:  desc,
	})
	return nil
}

// SetText inserts or updates a text entry.
func (d *Doc) SetText(key, text, desc string) error {
	if entry, ok := d.Lookup(key); ok {
		entry.Text = text
		entry.Value = 0
		entry.IsText = true
		if desc != "" {
			entry.Desc = desc
		}
		return nil
	}

	if len(d.Entries) >= MaxEntries {
		return fmt.Errorf("%w: cannot add %q", ErrCapacity, key)
	}

	d.Entries = append(d.Entries, &Entry{
		Key:    key,
		Text:   text,
		Desc:   desc,
		IsText: true,
	})
	return nil
}

// Value returns the integer value for key, or 0 when the key is absent.
// Unknown keys default silently; callers that need presence use Lookup.
func (d *Doc) Value(key string) int {
	if entry, ok := d.Lookup(key); ok {
		return entry.Value
	}
	return 0
}

// Text returns the text value for key, or "" when the key is absent.
func (d *Doc) Text(key string) string {
	if entry, ok := d.Lookup(key); ok {
		return entry.Text
	}
	return ""
}

// Lookup finds an entry by key.
func (d *Doc) Lookup(key string) (*Entry, bool) {
	for _, entry := range d.Entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (d *Doc) Len() int {
	return len(d.Entries)
}
