package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Manifest carries optional per-template customization, read from a
// template.toml (or .yaml/.yml/.json) file at the template root. A template
// without a manifest behaves as if the manifest were empty.
type Manifest struct {
	// Tokens defines extra substitutions applied after the built-in chain
	// on every substituted file.
	Tokens map[string]string `toml:"tokens" yaml:"tokens" json:"tokens"`

	// Copies maps extra template-relative files to output-relative
	// destinations, copied without substitution.
	Copies map[string]string `toml:"copies" yaml:"copies" json:"copies"`
}

var manifestNames = []string{
	"template.toml",
	"template.yaml",
	"template.yml",
	"template.json",
}

// LoadManifest reads the template manifest from templateRoot, trying each
// supported format in order. Absence of a manifest is not an error.
func LoadManifest(templateRoot string) (*Manifest, error) {
	for _, name := range manifestNames {
		path := filepath.Join(templateRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		m := &Manifest{}
		if err := decodeFile(path, m); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return m, nil
	}

	return &Manifest{}, nil
}

// chain converts the manifest tokens into a replacement chain. Iteration
// order is made deterministic by sorting keys longest-first, so a token
// that is a prefix of another cannot clip it.
func (m *Manifest) chain() Chain {
	if len(m.Tokens) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m.Tokens))
	for k := range m.Tokens {
		keys = append(keys, k)
	}
	sortTokens(keys)

	chain := make(Chain, 0, len(keys))
	for _, k := range keys {
		chain = append(chain, Replacement{Find: k, Replace: m.Tokens[k]})
	}
	return chain
}

func sortTokens(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

func decodeFile(path string, v any) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".toml":
		_, err := toml.DecodeFile(path, v)
		return err
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra YAML document")
			}
			return err
		}
		return nil
	case ".json":
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		dec := json.NewDecoder(bytes.NewReader(b))
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra content after JSON document")
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported manifest file type %q (supported: .toml, .yaml, .yml, .json)", ext)
	}
}
