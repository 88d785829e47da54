package kvconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olimci/rayforge/pkg/fileutils"
)

// keyColumn aligns values for readability; longer keys degrade gracefully.
const keyColumn = 36

// Save serializes the document to path: comment lines first, then entries in
// insertion order. Intermediate directories are created; an existing file is
// overwritten.
func (d *Doc) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating parent directory for %s: %w", path, err)
		}
	}

	if err := fileutils.AtomicWrite(path, d.Encode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Encode writes the document in its on-disk form.
func (d *Doc) Encode(w io.Writer) error {
	for _, comment := range d.Comments {
		if comment == "" {
			if _, err := fmt.Fprintln(w, CommentPrefix); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", CommentPrefix, comment); err != nil {
			return err
		}
	}

	if len(d.Comments) > 0 && len(d.Entries) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	for _, entry := range d.Entries {
		if err := encodeEntry(w, entry); err != nil {
			return err
		}
	}

	return nil
}

func encodeEntry(w io.Writer, entry *Entry) error {
	value := entry.Text
	if entry.IsText {
		// Values are written verbatim between plain quotes; the format does
		// not support embedded quote characters.
		value = `"` + entry.Text + `"`
	}

	line := fmt.Sprintf("%-*s %s", keyColumn, entry.Key, value)
	if entry.Desc != "" {
		line = fmt.Sprintf("%s   %s %s", line, CommentPrefix, entry.Desc)
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
