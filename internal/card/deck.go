package card

import "github.com/arcanaland/cardpack/internal/catalog"

// Deck returns one of every card of c, suits in the outer loop and ranks in
// the inner loop, both in catalog order.
func Deck(c *catalog.Catalog) Pile {
	p := Pile{cards: make([]Card, 0, c.SuitCount()*c.RankCount())}
	for s := 0; s < c.SuitCount(); s++ {
		suit := suitAt(c, s)
		for r := 0; r < c.RankCount(); r++ {
			p.Push(New(rankAt(c, r), suit))
		}
	}
	return p
}

// Decks returns n copies of Deck(c), concatenated
func Decks(c *catalog.Catalog, n int) Pile {
	var p Pile
	if n <= 0 {
		return p
	}
	one := Deck(c)
	p.cards = make([]Card, 0, one.Len()*n)
	for i := 0; i < n; i++ {
		p.Extend(one)
	}
	return p
}
