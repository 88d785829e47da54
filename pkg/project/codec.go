package project

import "github.com/olimci/rayforge/pkg/kvconf"

// ParseStore maps a flat document onto a fresh typed configuration.
// Unmapped keys are ignored; fields without a matching entry keep their
// zero value. The function never fails: malformed documents were already
// filtered at parse time.
func ParseStore(doc *kvconf.Doc) *Config {
	cfg := &Config{}
	ApplyStore(cfg, doc)
	return cfg
}

// ApplyStore overwrites cfg fields from the entries present in doc.
// Entries without a typed binding leave cfg untouched.
func ApplyStore(cfg *Config, doc *kvconf.Doc) {
	for _, entry := range doc.Entries {
		b, ok := bindingFor(entry.Key)
		if !ok {
			continue
		}

		switch {
		case b.text != nil:
			*b.text(cfg) = entry.Text
		case b.flag != nil:
			*b.flag(cfg) = entry.Value != 0
		case b.num != nil:
			*b.num(cfg) = entry.Value
		}
	}
}

// SyncStore pushes cfg fields back into doc, updating only entries the
// document already holds. Unmapped entries and entries for keys the
// document never had are left untouched; numeric updates refresh both the
// value and its text form.
func SyncStore(cfg *Config, doc *kvconf.Doc) {
	for _, entry := range doc.Entries {
		b, ok := bindingFor(entry.Key)
		if !ok {
			continue
		}

		switch {
		case b.text != nil:
			doc.SetText(entry.Key, *b.text(cfg), "")
		case b.flag != nil:
			doc.SetValue(entry.Key, boolInt(*b.flag(cfg)), "")
		case b.num != nil:
			doc.SetValue(entry.Key, *b.num(cfg), "")
		}
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
