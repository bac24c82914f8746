package card

import (
	"cmp"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/cardpack/internal/catalog"
	"github.com/pkg/errors"
)

// Card represents a rank and suit pair of one catalog.
//
// Cards are values: weight and index are fixed at construction. The zero
// value is the blank card.
type Card struct {
	rank   Rank
	suit   Suit
	weight uint32
	index  string
}

// blankIndex is the text form of a blank card
const blankIndex = string(catalog.BlankIndex) + string(catalog.BlankIndex)

// New creates a card. Suits dominate ranks: weight = suit*1000 + rank.
func New(rank Rank, suit Suit) Card {
	c := Card{rank: rank, suit: suit}
	if c.IsBlank() {
		c.index = blankIndex
		return c
	}
	c.weight = suit.weight*1000 + rank.weight
	c.index = string(rank.Index()) + string(suit.Index())
	return c
}

// Blank returns the blank card of c
func Blank(c *catalog.Catalog) Card {
	return New(BlankRank(c), BlankSuit(c))
}

// FromChars builds a card from a rank glyph and a suit glyph. It never fails:
// an unknown glyph produces a blank card, which callers detect with IsBlank.
func FromChars(c *catalog.Catalog, rank, suit rune) Card {
	return New(RankFromChar(c, rank), SuitFromChar(c, suit))
}

// Parse parses a two character index such as "AS", "0h" or "K♠".
func Parse(c *catalog.Catalog, s string) (Card, error) {
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) != 2 {
		return Blank(c), errors.Wrapf(ErrInvalidIndex, "%q", s)
	}
	runes := []rune(trimmed)
	rank, err := ParseRank(c, string(runes[0]))
	if err != nil {
		return Blank(c), errors.Wrapf(ErrInvalidIndex, "%q: %v", s, err)
	}
	suit, err := ParseSuit(c, string(runes[1]))
	if err != nil {
		return Blank(c), errors.Wrapf(ErrInvalidIndex, "%q: %v", s, err)
	}
	return New(rank, suit), nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(c *catalog.Catalog, s string) Card {
	card, err := Parse(c, s)
	if err != nil {
		panic(err)
	}
	return card
}

func (c Card) Rank() Rank { return c.rank }

func (c Card) Suit() Suit { return c.suit }

func (c Card) Weight() uint32 { return c.weight }

func (c Card) IsBlank() bool {
	return c.rank.IsBlank() || c.suit.IsBlank()
}

// WithRank returns a card with the same suit and a replaced rank
func (c Card) WithRank(rank Rank) Card {
	return New(rank, c.suit)
}

// WithSuit returns a card with the same rank and a replaced suit
func (c Card) WithSuit(suit Suit) Card {
	return New(c.rank, suit)
}

// Index returns the canonical two character form, e.g. "TS"
func (c Card) Index() string {
	if c.index == "" {
		return blankIndex
	}
	return c.index
}

// Symbol returns the rank glyph followed by the suit symbol, e.g. "T♠"
func (c Card) Symbol() string {
	if c.IsBlank() {
		return blankIndex
	}
	return string(c.rank.Symbol()) + string(c.suit.Symbol())
}

func (c Card) String() string {
	return c.Index()
}

// CKC returns the bit-packed card number. See Encode.
func (c Card) CKC() uint32 {
	return uint32(Encode(c))
}

// Compare orders cards by weight. Cards of equal weight, which re-weighting can
// produce, fall back to their index so only identical cards compare equal.
func Compare(a, b Card) int {
	if n := cmp.Compare(a.weight, b.weight); n != 0 {
		return n
	}
	return cmp.Compare(a.index, b.index)
}

// Less reports whether c sorts before o
func (c Card) Less(o Card) bool {
	return Compare(c, o) < 0
}
