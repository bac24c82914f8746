package eval

import (
	"errors"
	"testing"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/catalog"
)

func mustEval(t *testing.T, hand string) Result {
	t.Helper()
	res, err := Evaluate(card.MustParsePile(catalog.Standard52, hand))
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", hand, err)
	}
	return res
}

func TestRoyalFlushBeatsLowerStraightFlush(t *testing.T) {
	royal := mustEval(t, "AS KS QS JS TS")
	sf := mustEval(t, "KH QH JH TH 9H")
	if !royal.Beats(sf) {
		t.Fatalf("expected royal flush to beat lower straight flush: %d <= %d", royal.Score, sf.Score)
	}
	if royal.Description == "" {
		t.Error("expected a description for a five card hand")
	}
}

func TestWheelIsLowestStraight(t *testing.T) {
	wheel := mustEval(t, "AS 2H 3C 4D 5S")
	sixHigh := mustEval(t, "2S 3H 4C 5D 6S")
	if !sixHigh.Beats(wheel) {
		t.Fatalf("expected 6-high straight to beat wheel: %d <= %d", sixHigh.Score, wheel.Score)
	}
}

func TestSuitsDoNotMatter(t *testing.T) {
	a := mustEval(t, "AS AH KC KD 2S")
	b := mustEval(t, "AC AD KS KH 2D")
	if a.Score != b.Score {
		t.Fatalf("equal hands scored %d and %d", a.Score, b.Score)
	}
}

func TestSevenCardsMatchBestOfFive(t *testing.T) {
	seven := card.MustParsePile(catalog.Standard52, "AS AH KC KD 2S 3H 4C")
	direct, err := Evaluate(seven)
	if err != nil {
		t.Fatal(err)
	}
	best, err := Best(seven)
	if err != nil {
		t.Fatal(err)
	}
	if direct.Score != best.Score {
		t.Fatalf("Eval7 = %d, best of five = %d", direct.Score, best.Score)
	}
	if best.Hand.Len() != 5 || !seven.ContainsAll(best.Hand) {
		t.Fatalf("best hand %v is not a subset of %v", best.Hand, seven)
	}
}

func TestStrippedDeckCardsEvaluate(t *testing.T) {
	hand := card.MustParsePile(catalog.Euchre24, "9S TS JS QS KS")
	if _, err := Evaluate(hand); err != nil {
		t.Fatalf("euchre cards should evaluate: %v", err)
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := Evaluate(card.MustParsePile(catalog.Standard52, "AS KS QS JS")); !errors.Is(err, card.ErrCardCountMismatch) {
		t.Errorf("four cards: err = %v, want ErrCardCountMismatch", err)
	}
	if _, err := Best(card.MustParsePile(catalog.Standard52, "AS KS")); !errors.Is(err, card.ErrCardCountMismatch) {
		t.Errorf("Best of two: err = %v, want ErrCardCountMismatch", err)
	}
	if _, err := Evaluate(card.MustParsePile(catalog.Jokers54, "BJ AS KS QS JS")); err == nil {
		t.Error("jokers cannot be evaluated")
	}
	if _, err := Evaluate(card.MustParsePile(catalog.Tarot, "NW KW QW PW AW")); err == nil {
		t.Error("tarot suits cannot be evaluated")
	}
}

func TestDuplicateCardsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		c    *catalog.Catalog
		hand string
	}{
		{"pinochle pair of aces", catalog.Pinochle, "AS AS KS QS JS"},
		{"five of one card", catalog.Pinochle, "AS AS AS AS AS"},
		{"seven with a repeat", catalog.Standard52, "AS AS KC KD 2S 3H 4C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := card.MustParsePile(tt.c, tt.hand)
			if _, err := Evaluate(hand); !errors.Is(err, card.ErrInvalidIndex) {
				t.Errorf("Evaluate: err = %v, want ErrInvalidIndex", err)
			}
			if _, err := Best(hand); !errors.Is(err, card.ErrInvalidIndex) {
				t.Errorf("Best: err = %v, want ErrInvalidIndex", err)
			}
		})
	}
}

func TestThreeCardsAreNotAHand(t *testing.T) {
	if _, err := Evaluate(card.MustParsePile(catalog.Standard52, "AS KS QS")); !errors.Is(err, card.ErrCardCountMismatch) {
		t.Errorf("three cards: err = %v, want ErrCardCountMismatch", err)
	}
}
