package validator

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arcanaland/cardpack/internal/catalog"
	"github.com/arcanaland/cardpack/internal/locale"
)

const (
	primeLimit    = 20
	rankFlagLimit = 16
	suitFlagLimit = 4
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults

	file *catalog.File
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate checks a catalog file. The error is only set when the file cannot
// be read or decoded; problems with its content go into the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateHeader()
	v.validateEntries("ranks", v.file.Ranks)
	v.validateEntries("suits", v.file.Suits)
	v.validateCodecLimits()
	v.validateNames()

	return v.Results, nil
}

// Load validates a catalog file and builds it. Any validation error fails the load.
func Load(catalogPath string) (*catalog.Catalog, error) {
	v := NewValidator(catalogPath)
	results, err := v.Validate()
	if err != nil {
		return nil, err
	}
	if len(results.Errors) > 0 {
		return nil, fmt.Errorf("invalid catalog %s: %s", catalogPath, strings.Join(results.Errors, "; "))
	}
	return v.file.Build(), nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.CatalogPath); os.IsNotExist(err) {
		return fmt.Errorf("catalog file not found: %s", v.CatalogPath)
	}

	f, err := catalog.DecodeFile(v.CatalogPath)
	if err != nil {
		return fmt.Errorf("error decoding catalog: %v", err)
	}
	v.file = f
	return nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateHeader checks the catalog section
func (v *Validator) validateHeader() {
	if _, ok := catalog.Lookup(v.file.Catalog.Name); ok {
		v.warnf("catalog name %s shadows a built-in catalog", v.file.Catalog.Name)
	}
	if strings.ContainsAny(v.file.Catalog.Name, " \t.") {
		v.errorf("catalog.name must not contain spaces or dots: %q", v.file.Catalog.Name)
	}
}

// validateEntries checks identifiers and glyphs of one table
func (v *Validator) validateEntries(table string, entries []catalog.FileEntry) {
	if len(entries) == 0 {
		v.errorf("%s: at least one entry is required", table)
		return
	}

	ids := map[string]int{}
	glyphs := map[rune]string{}

	claim := func(i int, id, field, glyph string, required bool) {
		if glyph == "" {
			if required {
				v.errorf("%s[%d].%s is required", table, i, field)
			}
			return
		}
		if utf8.RuneCountInString(glyph) != 1 {
			v.errorf("%s[%d].%s must be exactly one character: %q", table, i, field, glyph)
			return
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		if unicode.IsSpace(r) || r == catalog.BlankIndex {
			v.errorf("%s[%d].%s uses a reserved character: %q", table, i, field, glyph)
			return
		}
		key := unicode.ToUpper(r)
		if owner, ok := glyphs[key]; ok && owner != id {
			v.errorf("%s: glyph %q is used by both %s and %s", table, glyph, owner, id)
			return
		}
		glyphs[key] = id
	}

	for i, e := range entries {
		switch {
		case e.ID == "":
			v.errorf("%s[%d].id is required", table, i)
		case e.ID == catalog.Blank:
			v.errorf("%s[%d].id %q is reserved for blank cards", table, i, e.ID)
		case strings.Contains(e.ID, "."):
			v.errorf("%s[%d].id must not contain dots: %q", table, i, e.ID)
		default:
			if prev, ok := ids[e.ID]; ok {
				v.errorf("%s: duplicate id %s at positions %d and %d", table, e.ID, prev, i)
			}
			ids[e.ID] = i
		}

		claim(i, e.ID, "index", e.Index, true)
		claim(i, e.ID, "symbol", e.Symbol, false)
		for _, a := range e.Aliases {
			claim(i, e.ID, "aliases", a, true)
		}
	}
}

// validateCodecLimits warns where the card number loses information
func (v *Validator) validateCodecLimits() {
	n := len(v.file.Ranks)
	if n > rankFlagLimit {
		v.warnf("ranks: %d ranks, ranks from position %d on have no rank flag in the card number", n, rankFlagLimit)
	}
	if n > primeLimit {
		v.warnf("ranks: %d ranks, ranks from position %d on have prime 0", n, primeLimit)
	}
	if s := len(v.file.Suits); s > suitFlagLimit {
		v.warnf("suits: %d suits, suits from position %d on have no suit flag in the card number", s, suitFlagLimit)
	}
}

// validateNames checks that every identifier has an English name
func (v *Validator) validateNames() {
	names, err := locale.Load(locale.Default)
	if err != nil {
		v.errorf("error loading names: %v", err)
		return
	}

	var missing []string
	for _, e := range v.file.Ranks {
		if e.ID != "" && !names.HasRank(e.ID) {
			missing = append(missing, "ranks."+e.ID)
		}
	}
	for _, e := range v.file.Suits {
		if e.ID != "" && !names.HasSuit(e.ID) {
			missing = append(missing, "suits."+e.ID)
		}
	}
	if len(missing) > 0 {
		v.warnf("no name for %s, identifiers will be title-cased", strings.Join(missing, ", "))
	}
}
