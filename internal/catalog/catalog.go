package catalog

import (
	"unicode"
)

// Blank is the reserved identifier for an absent rank or suit.
const Blank = "_"

// BlankIndex is the glyph printed for a blank rank or suit.
const BlankIndex = '_'

// Entry describes one rank or suit of a catalog
type Entry struct {
	ID      string
	Index   rune
	Symbol  rune
	Aliases []rune
}

// Display returns the symbol glyph, falling back to the index glyph
func (e Entry) Display() rune {
	if e.Symbol != 0 {
		return e.Symbol
	}
	return e.Index
}

// matches reports whether r names this entry. Letters compare case-insensitively.
func (e Entry) matches(r rune) bool {
	if sameGlyph(e.Index, r) || (e.Symbol != 0 && sameGlyph(e.Symbol, r)) {
		return true
	}
	for _, a := range e.Aliases {
		if sameGlyph(a, r) {
			return true
		}
	}
	return false
}

func sameGlyph(a, b rune) bool {
	return a == b || unicode.ToUpper(a) == unicode.ToUpper(b)
}

// Catalog represents the closed, ordered set of ranks and suits of one card game.
// Both lists run from the lowest weight to the highest.
type Catalog struct {
	name  string
	ranks []Entry
	suits []Entry
}

// New creates a catalog from rank and suit tables. It does not validate; see Validate.
func New(name string, ranks, suits []Entry) *Catalog {
	return &Catalog{
		name:  name,
		ranks: append([]Entry(nil), ranks...),
		suits: append([]Entry(nil), suits...),
	}
}

// Ranks returns a copy of the rank table
func (c *Catalog) Ranks() []Entry {
	return append([]Entry(nil), c.ranks...)
}

// Suits returns a copy of the suit table
func (c *Catalog) Suits() []Entry {
	return append([]Entry(nil), c.suits...)
}

// RankIdentifiers returns the rank identifiers in weight order
func (c *Catalog) RankIdentifiers() []string {
	return identifiers(c.ranks)
}

// SuitIdentifiers returns the suit identifiers in weight order
func (c *Catalog) SuitIdentifiers() []string {
	return identifiers(c.suits)
}

// HasRank reports whether id is a rank of this catalog
func (c *Catalog) HasRank(id string) bool {
	_, ok := c.RankByID(id)
	return ok
}

// HasSuit reports whether id is a suit of this catalog
func (c *Catalog) HasSuit(id string) bool {
	_, ok := c.SuitByID(id)
	return ok
}

// RankByID returns the position of the rank with the given identifier
func (c *Catalog) RankByID(id string) (int, bool) {
	return positionByID(c.ranks, id)
}

// SuitByID returns the position of the suit with the given identifier
func (c *Catalog) SuitByID(id string) (int, bool) {
	return positionByID(c.suits, id)
}

// RankPosition returns the position of the rank named by glyph r
func (c *Catalog) RankPosition(r rune) (int, bool) {
	return positionByGlyph(c.ranks, r)
}

// SuitPosition returns the position of the suit named by glyph r
func (c *Catalog) SuitPosition(r rune) (int, bool) {
	return positionByGlyph(c.suits, r)
}

// Rank returns the rank entry at position i
func (c *Catalog) Rank(i int) Entry {
	return c.ranks[i]
}

// Suit returns the suit entry at position i
func (c *Catalog) Suit(i int) Entry {
	return c.suits[i]
}

// RankCount returns the number of ranks
func (c *Catalog) RankCount() int {
	return len(c.ranks)
}

// SuitCount returns the number of suits
func (c *Catalog) SuitCount() int {
	return len(c.suits)
}

// Name returns the catalog name
func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) String() string {
	return c.name
}

func identifiers(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func positionByID(entries []Entry, id string) (int, bool) {
	if id == "" || id == Blank {
		return 0, false
	}
	for i, e := range entries {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}

func positionByGlyph(entries []Entry, r rune) (int, bool) {
	if r == BlankIndex {
		return 0, false
	}
	for i, e := range entries {
		if e.matches(r) {
			return i, true
		}
	}
	return 0, false
}
