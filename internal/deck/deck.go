package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/catalog"
)

// Deck represents the deck of one card game
type Deck struct {
	ID          string
	Description string
	Catalog     *catalog.Catalog

	build func(*catalog.Catalog) card.Pile
}

var registry = map[string]*Deck{}

func register(d *Deck) {
	registry[d.ID] = d
}

func init() {
	register(&Deck{ID: "standard52", Description: "French-suited 52 card deck", Catalog: catalog.Standard52})
	register(&Deck{ID: "short36", Description: "Stripped deck, six through ace", Catalog: catalog.Short36})
	register(&Deck{ID: "euchre24", Description: "Euchre deck, nine through ace", Catalog: catalog.Euchre24})
	register(&Deck{ID: "skat", Description: "32 card Skat deck", Catalog: catalog.Skat})
	register(&Deck{ID: "tarot", Description: "Tarot minor arcana", Catalog: catalog.Tarot})
	register(&Deck{ID: "jokers54", Description: "Standard deck with big and little jokers", Catalog: catalog.Jokers54, build: jokers})
	register(&Deck{ID: "pinochle", Description: "Double 24 card Pinochle deck", Catalog: catalog.Pinochle, build: pinochle})
	register(&Deck{ID: "canasta", Description: "Two joker decks, red threes sorted as bonus cards", Catalog: catalog.Jokers54, build: canasta})
}

// Lookup returns the registered deck with the given ID
func Lookup(id string) (*Deck, bool) {
	d, ok := registry[id]
	return d, ok
}

// IDs returns the registered deck IDs, sorted
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForCatalog wraps a catalog, such as one loaded from a file, in a deck that
// holds one of every card.
func ForCatalog(c *catalog.Catalog) *Deck {
	if d, ok := registry[c.Name()]; ok && d.Catalog == c {
		return d
	}
	return &Deck{ID: c.Name(), Description: "Catalog " + c.Name(), Catalog: c}
}

// Cards returns a fresh, unshuffled pile for the game
func (d *Deck) Cards() card.Pile {
	if d.build != nil {
		return d.build(d.Catalog)
	}
	return card.Deck(d.Catalog)
}

// GetCard gets a card by its canonical ID, "<suit>.<rank>" (e.g. spades.ace)
func (d *Deck) GetCard(cardID string) (card.Card, error) {
	parts := splitCardID(cardID)
	if len(parts) != 2 {
		return card.Blank(d.Catalog), fmt.Errorf("invalid card ID format: %s", cardID)
	}

	suit := card.SuitFromID(d.Catalog, parts[0])
	if suit.IsBlank() {
		return card.Blank(d.Catalog), fmt.Errorf("suit not found: %s", parts[0])
	}
	rank := card.RankFromID(d.Catalog, parts[1])
	if rank.IsBlank() {
		return card.Blank(d.Catalog), fmt.Errorf("rank not found: %s", parts[1])
	}

	if c, ok := d.Resolve(card.New(rank, suit)); ok {
		return c, nil
	}
	return card.Blank(d.Catalog), fmt.Errorf("card not found: %s", cardID)
}

// Resolve returns the game's version of c, matched by index. The game may
// have re-weighted it.
func (d *Deck) Resolve(c card.Card) (card.Card, bool) {
	cards := d.Cards()
	for _, dc := range cards.Cards() {
		if dc.Index() == c.Index() {
			return dc, true
		}
	}
	return card.Blank(d.Catalog), false
}

// CardID returns the canonical ID of c
func CardID(c card.Card) string {
	return c.Suit().ID() + "." + c.Rank().ID()
}

// splitCardID splits a canonical card ID into parts
func splitCardID(cardID string) []string {
	return strings.Split(cardID, ".")
}

func isJokerRank(c card.Card) bool {
	id := c.Rank().ID()
	return id == "big_joker" || id == "little_joker"
}

// jokers keeps the 52 regular cards of the cross product and adds the two
// jokers in the joker suit.
func jokers(c *catalog.Catalog) card.Pile {
	p := card.Deck(c)
	jokerSuit := card.SuitFromID(c, "joker")
	p.Retain(func(x card.Card) bool {
		return !isJokerRank(x) && x.Suit() != jokerSuit
	})
	p.Push(card.New(card.RankFromID(c, "big_joker"), jokerSuit))
	p.Push(card.New(card.RankFromID(c, "little_joker"), jokerSuit))
	return p
}

func pinochle(c *catalog.Catalog) card.Pile {
	return card.Decks(c, 2)
}

// canasta is two joker decks where the red threes sort above every other
// card of their suit.
func canasta(c *catalog.Catalog) card.Pile {
	p := jokers(c)
	p.Extend(jokers(c))

	bonus := uint32(c.RankCount())
	for _, suit := range []string{"hearts", "diamonds"} {
		three := card.New(card.RankFromID(c, "three"), card.SuitFromID(c, suit))
		p.Replace(three, three.WithRank(three.Rank().UpdateWeight(bonus)))
	}
	return p
}
