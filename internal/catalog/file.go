package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a catalog. Glyphs are strings so that a
// validator can report glyphs that are not exactly one character.
type File struct {
	Catalog FileHeader  `toml:"catalog" yaml:"catalog"`
	Ranks   []FileEntry `toml:"ranks" yaml:"ranks"`
	Suits   []FileEntry `toml:"suits" yaml:"suits"`
}

type FileHeader struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
}

type FileEntry struct {
	ID      string   `toml:"id" yaml:"id"`
	Index   string   `toml:"index" yaml:"index"`
	Symbol  string   `toml:"symbol" yaml:"symbol"`
	Aliases []string `toml:"aliases" yaml:"aliases"`
}

// DecodeFile reads a catalog file. The format is chosen by extension:
// .yaml and .yml are YAML, anything else is TOML.
func DecodeFile(path string) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrapf(err, "parse catalog YAML %s", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, errors.Wrapf(err, "parse catalog TOML %s", path)
		}
	}
	if f.Catalog.Name == "" {
		f.Catalog.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &f, nil
}

// Build converts the file into a Catalog. Glyph strings contribute their
// first character only; callers that need strictness validate first.
func (f *File) Build() *Catalog {
	return New(f.Catalog.Name, toEntries(f.Ranks), toEntries(f.Suits))
}

func toEntries(in []FileEntry) []Entry {
	out := make([]Entry, 0, len(in))
	for _, fe := range in {
		e := Entry{
			ID:     fe.ID,
			Index:  firstRune(fe.Index),
			Symbol: firstRune(fe.Symbol),
		}
		for _, a := range fe.Aliases {
			if r := firstRune(a); r != 0 {
				e.Aliases = append(e.Aliases, r)
			}
		}
		out = append(out, e)
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
