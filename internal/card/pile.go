package card

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/arcanaland/cardpack/internal/catalog"
	"github.com/pkg/errors"
)

// Pile is an ordered collection of cards. Duplicates are allowed so that
// multi-deck games can share one pile. The zero value is an empty pile.
//
// A Pile must not be mutated concurrently.
type Pile struct {
	cards []Card
}

// NewPile creates a pile from cards, dropping blanks
func NewPile(cards ...Card) Pile {
	var p Pile
	for _, c := range cards {
		p.Push(c)
	}
	return p
}

// ParsePile parses whitespace separated card indexes. The first invalid
// token aborts the parse, and an input without any token is an error.
func ParsePile(c *catalog.Catalog, s string) (Pile, error) {
	var p Pile
	for _, token := range strings.Fields(s) {
		card, err := Parse(c, token)
		if err != nil {
			return Pile{}, err
		}
		p.cards = append(p.cards, card)
	}
	if p.IsEmpty() {
		return Pile{}, errors.Wrapf(ErrInvalidIndex, "empty pile %q", s)
	}
	return p, nil
}

// MustParsePile is ParsePile for literals known to be valid. It panics on error.
func MustParsePile(c *catalog.Catalog, s string) Pile {
	p, err := ParsePile(c, s)
	if err != nil {
		panic(err)
	}
	return p
}

// Push appends c. Blank cards are refused and Push reports false.
func (p *Pile) Push(c Card) bool {
	if c.IsBlank() {
		return false
	}
	p.cards = append(p.cards, c)
	return true
}

// Extend appends the cards of other
func (p *Pile) Extend(other Pile) {
	p.cards = append(p.cards, other.cards...)
}

// Prepend puts the cards of other in front of p
func (p *Pile) Prepend(other Pile) {
	cards := make([]Card, 0, len(other.cards)+len(p.cards))
	cards = append(cards, other.cards...)
	p.cards = append(cards, p.cards...)
}

func (p Pile) Len() int { return len(p.cards) }

func (p Pile) IsEmpty() bool { return len(p.cards) == 0 }

// Get returns the card at position i
func (p Pile) Get(i int) (Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return Card{}, false
	}
	return p.cards[i], true
}

// Cards returns a copy of the cards in order
func (p Pile) Cards() []Card {
	return slices.Clone(p.cards)
}

func (p Pile) Contains(c Card) bool {
	return slices.Contains(p.cards, c)
}

// ContainsAll reports whether every card of other is in p, counting duplicates
func (p Pile) ContainsAll(other Pile) bool {
	remaining := slices.Clone(p.cards)
	for _, c := range other.cards {
		i := slices.Index(remaining, c)
		if i < 0 {
			return false
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	return true
}

// Clone returns an independent copy of p
func (p Pile) Clone() Pile {
	return Pile{cards: slices.Clone(p.cards)}
}

// Sort returns a sorted copy of p, highest weight first.
func (p Pile) Sort() Pile {
	sorted := p.Clone()
	sorted.SortInPlace()
	return sorted
}

// SortInPlace sorts p with a stable ascending sort by weight, then reverses
// it, leaving the highest card first.
func (p *Pile) SortInPlace() {
	slices.SortStableFunc(p.cards, Compare)
	slices.Reverse(p.cards)
}

// Shuffle returns a shuffled copy of p
func (p Pile) Shuffle() Pile {
	shuffled := p.Clone()
	shuffled.ShuffleInPlace()
	return shuffled
}

// ShuffleInPlace randomizes the order of p using the process-wide source
func (p *Pile) ShuffleInPlace() {
	rand.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

// Draw removes and returns the first n cards
func (p *Pile) Draw(n int) (Pile, bool) {
	if n < 0 || n > len(p.cards) {
		return Pile{}, false
	}
	drawn := Pile{cards: slices.Clone(p.cards[:n])}
	p.cards = slices.Delete(p.cards, 0, n)
	return drawn, true
}

// Remove deletes the first occurrence of c
func (p *Pile) Remove(c Card) bool {
	i := slices.Index(p.cards, c)
	if i < 0 {
		return false
	}
	p.cards = slices.Delete(p.cards, i, i+1)
	return true
}

// RemoveWhere deletes every card matching pred and returns how many went
func (p *Pile) RemoveWhere(pred func(Card) bool) int {
	before := len(p.cards)
	p.cards = slices.DeleteFunc(p.cards, pred)
	return before - len(p.cards)
}

// Retain keeps only the cards matching pred
func (p *Pile) Retain(pred func(Card) bool) {
	p.RemoveWhere(func(c Card) bool { return !pred(c) })
}

// Replace swaps every occurrence of old for replacement. A blank replacement
// is refused, like Push.
func (p *Pile) Replace(old, replacement Card) int {
	if replacement.IsBlank() {
		return 0
	}
	n := 0
	for i, c := range p.cards {
		if c == old {
			p.cards[i] = replacement
			n++
		}
	}
	return n
}

// Filter returns the cards matching pred, in order
func (p Pile) Filter(pred func(Card) bool) Pile {
	var out Pile
	for _, c := range p.cards {
		if pred(c) {
			out.cards = append(out.cards, c)
		}
	}
	return out
}

// Suits returns the distinct suits of p in order of first appearance
func (p Pile) Suits() []Suit {
	var suits []Suit
	for _, c := range p.cards {
		if !slices.Contains(suits, c.suit) {
			suits = append(suits, c.suit)
		}
	}
	return suits
}

// Ranks returns the distinct ranks of p in order of first appearance
func (p Pile) Ranks() []Rank {
	var ranks []Rank
	for _, c := range p.cards {
		if !slices.Contains(ranks, c.rank) {
			ranks = append(ranks, c.rank)
		}
	}
	return ranks
}

// Combinations returns every k card subset of p, each keeping pile order.
func (p Pile) Combinations(k int) []Pile {
	if k < 0 || k > len(p.cards) {
		return nil
	}
	var out []Pile
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			combo := Pile{cards: make([]Card, k)}
			for i, j := range idx {
				combo.cards[i] = p.cards[j]
			}
			out = append(out, combo)
			return
		}
		for i := start; i <= len(p.cards)-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// CKCs returns the card number of every card
func (p Pile) CKCs() []CKC {
	out := make([]CKC, len(p.cards))
	for i, c := range p.cards {
		out[i] = Encode(c)
	}
	return out
}

// Equal reports whether both piles hold the same cards in the same order
func (p Pile) Equal(other Pile) bool {
	return slices.Equal(p.cards, other.cards)
}

// String joins the card indexes with single spaces
func (p Pile) String() string {
	return p.join(Card.Index)
}

// Symbols joins the card symbols with single spaces
func (p Pile) Symbols() string {
	return p.join(Card.Symbol)
}

func (p Pile) join(f func(Card) string) string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		parts[i] = f(c)
	}
	return strings.Join(parts, " ")
}
