package card

import (
	"unicode/utf8"

	"github.com/arcanaland/cardpack/internal/catalog"
	"github.com/pkg/errors"
)

// Suit is a suit of one catalog. The zero value is the blank suit.
type Suit struct {
	catalog *catalog.Catalog
	weight  uint32
	id      string
}

// BlankSuit returns the blank suit of c
func BlankSuit(c *catalog.Catalog) Suit {
	return Suit{catalog: c, id: catalog.Blank}
}

func suitAt(c *catalog.Catalog, pos int) Suit {
	return Suit{catalog: c, weight: uint32(pos), id: c.Suit(pos).ID}
}

// SuitFromID looks up a suit by identifier, yielding the blank suit on a miss.
func SuitFromID(c *catalog.Catalog, id string) Suit {
	pos, ok := c.SuitByID(id)
	if !ok {
		return BlankSuit(c)
	}
	return suitAt(c, pos)
}

// SuitFromChar looks up a suit by letter or symbol, yielding the blank suit on a miss.
func SuitFromChar(c *catalog.Catalog, r rune) Suit {
	pos, ok := c.SuitPosition(r)
	if !ok {
		return BlankSuit(c)
	}
	return suitAt(c, pos)
}

// ParseSuit parses a single glyph or a suit identifier.
func ParseSuit(c *catalog.Catalog, s string) (Suit, error) {
	var suit Suit
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		suit = SuitFromChar(c, r)
	} else {
		suit = SuitFromID(c, s)
	}
	if suit.IsBlank() {
		return suit, errors.Wrapf(ErrInvalidSuit, "%q in %s", s, c)
	}
	return suit, nil
}

func (s Suit) Weight() uint32 { return s.weight }

func (s Suit) ID() string {
	if s.id == "" {
		return catalog.Blank
	}
	return s.id
}

func (s Suit) Catalog() *catalog.Catalog { return s.catalog }

func (s Suit) IsBlank() bool {
	return s.id == "" || s.id == catalog.Blank
}

func (s Suit) Index() rune {
	if e, ok := s.entry(); ok {
		return e.Index
	}
	return catalog.BlankIndex
}

func (s Suit) Symbol() rune {
	if e, ok := s.entry(); ok {
		return e.Display()
	}
	return catalog.BlankIndex
}

func (s Suit) String() string {
	return string(s.Index())
}

func (s Suit) entry() (catalog.Entry, bool) {
	if s.IsBlank() || s.catalog == nil {
		return catalog.Entry{}, false
	}
	pos, ok := s.catalog.SuitByID(s.id)
	if !ok {
		return catalog.Entry{}, false
	}
	return s.catalog.Suit(pos), true
}
