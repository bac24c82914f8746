package card

import (
	"unicode/utf8"

	"github.com/arcanaland/cardpack/internal/catalog"
	"github.com/pkg/errors"
)

// primes holds the prime assigned to each rank weight. Ranks past the end get 0.
var primes = [...]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71}

func primeFor(weight uint32) uint32 {
	if weight < uint32(len(primes)) {
		return primes[weight]
	}
	return 0
}

// Rank is a rank of one catalog. The zero value is the blank rank.
//
// The catalog pointer is part of the value, so ranks of different catalogs
// never compare equal even when identifier and weight coincide.
type Rank struct {
	catalog *catalog.Catalog
	weight  uint32
	prime   uint32
	id      string
}

// BlankRank returns the blank rank of c
func BlankRank(c *catalog.Catalog) Rank {
	return Rank{catalog: c, id: catalog.Blank}
}

func rankAt(c *catalog.Catalog, pos int) Rank {
	w := uint32(pos)
	return Rank{catalog: c, weight: w, prime: primeFor(w), id: c.Rank(pos).ID}
}

// RankFromID looks up a rank by identifier. An unknown identifier yields the
// blank rank rather than an error; untrusted input belongs in ParseRank.
func RankFromID(c *catalog.Catalog, id string) Rank {
	pos, ok := c.RankByID(id)
	if !ok {
		return BlankRank(c)
	}
	return rankAt(c, pos)
}

// RankFromChar looks up a rank by glyph, letters case-insensitive.
// An unknown glyph yields the blank rank.
func RankFromChar(c *catalog.Catalog, r rune) Rank {
	pos, ok := c.RankPosition(r)
	if !ok {
		return BlankRank(c)
	}
	return rankAt(c, pos)
}

// ParseRank parses a single glyph or a rank identifier.
func ParseRank(c *catalog.Catalog, s string) (Rank, error) {
	var rank Rank
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		rank = RankFromChar(c, r)
	} else {
		rank = RankFromID(c, s)
	}
	if rank.IsBlank() {
		return rank, errors.Wrapf(ErrInvalidRank, "%q in %s", s, c)
	}
	return rank, nil
}

// UpdateWeight returns a copy of r with a new sort weight. Identifier and
// prime are kept; the prime belongs to the rank, not to its position.
func (r Rank) UpdateWeight(weight uint32) Rank {
	r.weight = weight
	return r
}

func (r Rank) Weight() uint32 { return r.weight }

func (r Rank) Prime() uint32 { return r.prime }

func (r Rank) ID() string {
	if r.id == "" {
		return catalog.Blank
	}
	return r.id
}

func (r Rank) Catalog() *catalog.Catalog { return r.catalog }

func (r Rank) IsBlank() bool {
	return r.id == "" || r.id == catalog.Blank
}

// Index returns the canonical glyph
func (r Rank) Index() rune {
	if e, ok := r.entry(); ok {
		return e.Index
	}
	return catalog.BlankIndex
}

// Symbol returns the display glyph
func (r Rank) Symbol() rune {
	if e, ok := r.entry(); ok {
		return e.Display()
	}
	return catalog.BlankIndex
}

func (r Rank) String() string {
	return string(r.Index())
}

func (r Rank) entry() (catalog.Entry, bool) {
	if r.IsBlank() || r.catalog == nil {
		return catalog.Entry{}, false
	}
	pos, ok := r.catalog.RankByID(r.id)
	if !ok {
		return catalog.Entry{}, false
	}
	return r.catalog.Rank(pos), true
}
