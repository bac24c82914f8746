package deck

import (
	"testing"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/catalog"
)

func TestDeckSizes(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"standard52", 52},
		{"short36", 36},
		{"euchre24", 24},
		{"skat", 32},
		{"tarot", 56},
		{"jokers54", 54},
		{"pinochle", 48},
		{"canasta", 108},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("deck %s not registered", tt.id)
			}
			if got := d.Cards().Len(); got != tt.want {
				t.Errorf("%s has %d cards, want %d", tt.id, got, tt.want)
			}
		})
	}

	if len(IDs()) != len(tests) {
		t.Errorf("IDs() = %v", IDs())
	}
}

func TestJokersAreOnTop(t *testing.T) {
	d, _ := Lookup("jokers54")
	sorted := d.Cards().Sort()
	if got := sorted.String()[:8]; got != "BJ LJ AS" {
		t.Errorf("sorted deck starts with %q, want \"BJ LJ AS\"", got)
	}
	if sorted.Contains(card.MustParse(catalog.Jokers54, "2J")) {
		t.Error("cross product card 2J leaked into the deck")
	}
}

func TestCanastaRedThreesAreBonusCards(t *testing.T) {
	d, _ := Lookup("canasta")
	p := d.Cards()

	hearts := p.Filter(func(c card.Card) bool { return c.Suit().ID() == "hearts" }).Sort()
	first, _ := hearts.Get(0)
	second, _ := hearts.Get(1)
	if first.Index() != "3H" || second.Index() != "3H" {
		t.Fatalf("hearts start with %s %s, want the red threes", first, second)
	}
	if first.Rank().Prime() != 3 {
		t.Errorf("re-weighted three lost its prime: %d", first.Rank().Prime())
	}

	clubs := p.Filter(func(c card.Card) bool { return c.Suit().ID() == "clubs" }).Sort()
	top, _ := clubs.Get(0)
	if top.Index() != "AC" {
		t.Errorf("black threes must keep their weight, clubs start with %s", top)
	}
}

func TestGetCard(t *testing.T) {
	d, _ := Lookup("standard52")
	c, err := d.GetCard("spades.ace")
	if err != nil {
		t.Fatal(err)
	}
	if c.Index() != "AS" || CardID(c) != "spades.ace" {
		t.Errorf("GetCard(spades.ace) = %s", c)
	}

	for _, id := range []string{"spades", "stars.ace", "spades.joker", "a.b.c"} {
		if _, err := d.GetCard(id); err == nil {
			t.Errorf("GetCard(%q) should fail", id)
		}
	}

	canasta, _ := Lookup("canasta")
	three, err := canasta.GetCard("hearts.three")
	if err != nil {
		t.Fatal(err)
	}
	if three.Rank().Weight() != uint32(catalog.Jokers54.RankCount()) {
		t.Errorf("GetCard should return the re-weighted three, weight %d", three.Rank().Weight())
	}

	jokers, _ := Lookup("jokers54")
	if _, err := jokers.GetCard("joker.two"); err == nil {
		t.Error("joker.two is not part of the jokers deck")
	}
}

func TestResolve(t *testing.T) {
	canasta, _ := Lookup("canasta")
	plain := card.MustParse(catalog.Jokers54, "3D")
	got, ok := canasta.Resolve(plain)
	if !ok {
		t.Fatal("3D should be part of the canasta deck")
	}
	if got == plain || got.Weight() != 1015 {
		t.Errorf("Resolve(3D) weight = %d, want the re-weighted 1015", got.Weight())
	}

	standard, _ := Lookup("standard52")
	if got, ok := standard.Resolve(plain); !ok || got.Index() != "3D" {
		t.Errorf("Resolve(3D) in standard52 = %s, %v", got, ok)
	}

	jokers, _ := Lookup("jokers54")
	if _, ok := jokers.Resolve(card.MustParse(catalog.Jokers54, "2J")); ok {
		t.Error("2J is not part of the jokers deck")
	}
}

func TestForCatalog(t *testing.T) {
	if d := ForCatalog(catalog.Skat); d.ID != "skat" || d.Cards().Len() != 32 {
		t.Errorf("ForCatalog(skat) = %+v", d)
	}
	custom := catalog.New("mini",
		[]catalog.Entry{{ID: "low", Index: 'L'}, {ID: "high", Index: 'H'}},
		[]catalog.Entry{{ID: "stars", Index: 'S'}})
	if d := ForCatalog(custom); d.Cards().String() != "LS HS" {
		t.Errorf("ForCatalog(mini) = %q", d.Cards().String())
	}
}
