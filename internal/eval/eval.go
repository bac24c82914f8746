// Package eval scores poker hands made of French-suited cards.
//
// Any catalog whose identifiers are the standard ranks and suits can be
// evaluated, so stripped decks work too. Higher scores are stronger hands.
package eval

import (
	"fmt"

	"github.com/paulhankin/poker"
	"github.com/pkg/errors"

	"github.com/arcanaland/cardpack/internal/card"
)

var suits = map[string]poker.Suit{
	"clubs":    poker.Club,
	"diamonds": poker.Diamond,
	"hearts":   poker.Heart,
	"spades":   poker.Spade,
}

// Library ranks run 1..13 with the ace at 1.
var ranks = map[string]poker.Rank{
	"ace":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
	"jack":  11,
	"queen": 12,
	"king":  13,
}

// Result is a scored hand
type Result struct {
	Hand        card.Pile
	Score       int16
	Description string
}

// Beats reports whether r is stronger than o
func (r Result) Beats(o Result) bool {
	return r.Score > o.Score
}

// Convert maps a card to the evaluator's representation
func Convert(c card.Card) (poker.Card, error) {
	var zero poker.Card
	s, ok := suits[c.Suit().ID()]
	if !ok {
		return zero, fmt.Errorf("card %s: suit %s cannot be evaluated", c, c.Suit().ID())
	}
	r, ok := ranks[c.Rank().ID()]
	if !ok {
		return zero, fmt.Errorf("card %s: rank %s cannot be evaluated", c, c.Rank().ID())
	}
	return poker.MakeCard(s, r)
}

// convertAll converts every card of p. The evaluator only accepts hands
// of distinct cards, so a card seen twice is an error.
func convertAll(p card.Pile) ([]poker.Card, error) {
	out := make([]poker.Card, 0, p.Len())
	seen := make(map[poker.Card]bool, p.Len())
	for _, c := range p.Cards() {
		pc, err := Convert(c)
		if err != nil {
			return nil, err
		}
		if seen[pc] {
			return nil, errors.Wrapf(card.ErrInvalidIndex, "duplicate card %s", c)
		}
		seen[pc] = true
		out = append(out, pc)
	}
	return out, nil
}

// Evaluate scores a hand of exactly 5 or 7 distinct cards. Seven card hands
// score their best five.
func Evaluate(p card.Pile) (Result, error) {
	if n := p.Len(); n != 5 && n != 7 {
		return Result{}, errors.Wrapf(card.ErrCardCountMismatch, "cannot evaluate %d cards", n)
	}
	pcs, err := convertAll(p)
	if err != nil {
		return Result{}, err
	}

	res := Result{Hand: p}
	switch len(pcs) {
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], pcs)
		res.Score = poker.Eval5(&a5)
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], pcs)
		res.Score = poker.Eval7(&a7)
	}

	if d, err := poker.Describe(pcs); err == nil {
		res.Description = d
	}
	return res, nil
}

// Best picks the strongest five card hand out of five to seven distinct cards.
func Best(p card.Pile) (Result, error) {
	if p.Len() < 5 || p.Len() > 7 {
		return Result{}, errors.Wrapf(card.ErrCardCountMismatch, "need 5 to 7 cards, have %d", p.Len())
	}
	if _, err := convertAll(p); err != nil {
		return Result{}, err
	}

	var best Result
	found := false
	for _, hand := range p.Combinations(5) {
		res, err := Evaluate(hand)
		if err != nil {
			return Result{}, err
		}
		if !found || res.Beats(best) {
			best, found = res, true
		}
	}
	best.Hand = best.Hand.Sort()
	return best, nil
}
