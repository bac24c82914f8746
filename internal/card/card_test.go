package card

import (
	"errors"
	"fmt"
	"testing"

	"github.com/arcanaland/cardpack/internal/catalog"
)

var std = catalog.Standard52

func TestParseNormalizesIndex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AS", "AS"},
		{"as", "AS"},
		{"0S", "TS"},
		{"tS", "TS"},
		{" 9d ", "9D"},
		{"K♠", "KS"},
		{"Q♡", "QH"},
		{"2♧", "2C"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(std, tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRoundTripWholeDeck(t *testing.T) {
	for _, name := range catalog.Builtins() {
		c, _ := catalog.Lookup(name)
		deck := Deck(c)
		for _, want := range deck.Cards() {
			got, err := Parse(c, want.Index())
			if err != nil {
				t.Fatalf("%s: Parse(%q): %v", name, want.Index(), err)
			}
			if got != want {
				t.Fatalf("%s: Parse(%q) = %v, want %v", name, want.Index(), got, want)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "A", "ASX", "XS", "AX", "__", "10S"} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			c, err := Parse(std, in)
			if !errors.Is(err, ErrInvalidIndex) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidIndex", in, err)
			}
			if !c.IsBlank() {
				t.Fatalf("Parse(%q) returned non-blank card %v", in, c)
			}
		})
	}
}

func TestLenientConstructorsYieldBlank(t *testing.T) {
	if r := RankFromChar(std, 'X'); !r.IsBlank() {
		t.Fatalf("RankFromChar('X') = %v, want blank", r)
	}
	if s := SuitFromID(std, "stars"); !s.IsBlank() {
		t.Fatalf("SuitFromID(stars) = %v, want blank", s)
	}
	c := FromChars(std, 'A', 'X')
	if !c.IsBlank() {
		t.Fatalf("FromChars('A','X') = %v, want blank", c)
	}
	if c.String() != "__" {
		t.Fatalf("blank card index = %q, want __", c.String())
	}
	if (Card{}).String() != "__" || !(Card{}).IsBlank() {
		t.Fatal("zero Card must be blank")
	}
}

func TestStrictParsers(t *testing.T) {
	if _, err := ParseRank(std, "ace"); err != nil {
		t.Fatalf("ParseRank(ace): %v", err)
	}
	if _, err := ParseRank(std, "joker"); !errors.Is(err, ErrInvalidRank) {
		t.Fatalf("ParseRank(joker) error = %v, want ErrInvalidRank", err)
	}
	if _, err := ParseSuit(std, "♦"); err != nil {
		t.Fatalf("ParseSuit(♦): %v", err)
	}
	if _, err := ParseSuit(std, "x"); !errors.Is(err, ErrInvalidSuit) {
		t.Fatalf("ParseSuit(x) error = %v, want ErrInvalidSuit", err)
	}
}

func TestRankWeightAndPrime(t *testing.T) {
	two := RankFromID(std, "two")
	ace := RankFromID(std, "ace")
	if two.Weight() != 0 || two.Prime() != 2 {
		t.Errorf("two = weight %d prime %d, want 0 and 2", two.Weight(), two.Prime())
	}
	if ace.Weight() != 12 || ace.Prime() != 41 {
		t.Errorf("ace = weight %d prime %d, want 12 and 41", ace.Weight(), ace.Prime())
	}
	if RankFromChar(std, 'a') != ace {
		t.Error("rank must be a pure function of catalog and identifier")
	}

	moved := ace.UpdateWeight(0)
	if moved.Weight() != 0 || moved.Prime() != 41 || moved.ID() != "ace" {
		t.Errorf("UpdateWeight changed identity: %+v", moved)
	}
	if ace.Weight() != 12 {
		t.Error("UpdateWeight must not mutate the receiver")
	}
}

func TestPrimeIsZeroPastTwentyRanks(t *testing.T) {
	var ranks []catalog.Entry
	for i := 0; i < 22; i++ {
		ranks = append(ranks, catalog.Entry{ID: fmt.Sprintf("r%d", i), Index: rune('a' + i)})
	}
	wide := catalog.New("wide", ranks, []catalog.Entry{{ID: "one", Index: '1'}})

	if p := RankFromID(wide, "r19").Prime(); p != 71 {
		t.Errorf("prime of weight 19 = %d, want 71", p)
	}
	r := RankFromID(wide, "r21")
	if r.Prime() != 0 {
		t.Errorf("prime of weight 21 = %d, want 0", r.Prime())
	}
	if n := Encode(New(r, SuitFromID(wide, "one"))); n.RankFlag() != 0 {
		t.Errorf("rank flag of weight 21 = %#x, want 0", n.RankFlag())
	}
}

func TestRanksOfDifferentCatalogsDiffer(t *testing.T) {
	a := RankFromID(catalog.Standard52, "ace")
	b := RankFromID(catalog.Jokers54, "ace")
	if a.Weight() != b.Weight() || a.Prime() != b.Prime() {
		t.Fatal("expected matching weight and prime")
	}
	if a == b {
		t.Fatal("ranks from different catalogs must not compare equal")
	}
}

func TestCardWeightOrdering(t *testing.T) {
	order := []string{"AS", "KS", "QS", "JS", "TS", "9S", "8S", "7S", "6S", "5S", "4S", "3S", "2S", "AH", "2H", "AD", "AC", "2C"}
	for i := 1; i < len(order); i++ {
		hi := MustParse(std, order[i-1])
		lo := MustParse(std, order[i])
		if !lo.Less(hi) || Compare(hi, lo) <= 0 {
			t.Errorf("expected %s > %s (weights %d, %d)", hi, lo, hi.Weight(), lo.Weight())
		}
	}
	if w := MustParse(std, "KH").Weight(); w != 2*1000+11 {
		t.Errorf("KH weight = %d, want 2011", w)
	}
}

func TestSymbol(t *testing.T) {
	if got := MustParse(std, "th").Symbol(); got != "T♥" {
		t.Errorf("Symbol() = %q, want T♥", got)
	}
	tarot := MustParse(catalog.Tarot, "NW")
	if tarot.Symbol() != "NW" {
		t.Errorf("catalog without symbols should fall back to index, got %q", tarot.Symbol())
	}
}

func TestWithRankRecomputesWeight(t *testing.T) {
	c := MustParse(std, "3H")
	moved := c.WithRank(c.Rank().UpdateWeight(20))
	if moved.Weight() != 2020 {
		t.Errorf("weight = %d, want 2020", moved.Weight())
	}
	if moved.Index() != "3H" {
		t.Errorf("index = %q, want 3H", moved.Index())
	}
}
