package kvconf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/olimci/rayforge/pkg/events"
)

type options struct {
	handler events.Handler
}

func defaultOptions() *options {
	return &options{
		handler: events.NoopHandler{},
	}
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// WithHandler routes parse warnings to handler instead of discarding them.
func WithHandler(handler events.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.handler = handler
		}
	}
}

// Load reads a document from path. A missing file reports ErrNotFound;
// callers decide whether that is fatal. Malformed lines are skipped with a
// warning, never aborting the load.
func Load(path string, opts ...Option) (*Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a document from r.
func Parse(r io.Reader, opts ...Option) (*Doc, error) {
	o := defaultOptions().apply(opts...)
	doc := New(DefaultCapacity)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, CommentPrefix):
			text := strings.TrimPrefix(line, CommentPrefix)
			text = strings.TrimPrefix(text, " ")
			doc.SetComment(text)
		default:
			entry, err := parseEntry(line)
			if err != nil {
				o.handler.Handle(events.Event{
					Level:   events.Warning,
					Source:  fmt.Sprintf("line %d", lineNo),
					Message: "skipping malformed entry",
					Error:   err,
				})
				continue
			}

			if len(doc.Entries) >= MaxEntries {
				return doc, fmt.Errorf("%w: more than %d entries", ErrCapacity, MaxEntries)
			}
			doc.Entries = append(doc.Entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}

// parseEntry parses `KEY "text"` or `KEY 42`, each with an optional trailing
// `# description`.
func parseEntry(line string) (*Entry, error) {
	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		return nil, fmt.Errorf("no value on line %q", line)
	}

	key := line[:cut]
	rest := strings.TrimSpace(line[cut:])
	if rest == "" {
		return nil, fmt.Errorf("no value for key %q", key)
	}

	entry := &Entry{Key: key}

	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return nil, fmt.Errorf("unterminated text value for key %q", key)
		}

		entry.Text = rest[1 : end+1]
		entry.IsText = true
		rest = strings.TrimSpace(rest[end+2:])
	} else {
		value := rest
		if cut := strings.IndexFunc(rest, unicode.IsSpace); cut >= 0 {
			value = rest[:cut]
			rest = strings.TrimSpace(rest[cut:])
		} else {
			rest = ""
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for key %q", value, key)
		}

		entry.Value = n
		entry.Text = value
		rest = strings.TrimSpace(rest)
	}

	if rest != "" {
		if !strings.HasPrefix(rest, CommentPrefix) {
			return nil, fmt.Errorf("trailing garbage %q for key %q", rest, key)
		}
		entry.Desc = strings.TrimSpace(strings.TrimPrefix(rest, CommentPrefix))
	}

	return entry, nil
}
