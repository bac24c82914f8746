package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/deck"
	"github.com/arcanaland/cardpack/internal/eval"
	"github.com/arcanaland/cardpack/internal/locale"
)

var showCmd = &cobra.Command{
	Use:   "show [cards...]",
	Short: "Display cards with their weight and card number",
	Long: `Show prints each card with its name, sort weight and bit-packed card number.
Cards are given as indexes like 'AS' or 'T♥', or as canonical IDs like 'spades.ace'.

Use --eval to score five to seven standard cards as a poker hand.

Examples:
  cardpack show AS KD 0h
  cardpack show --deck skat clubs.jack
  cardpack show --eval AS KS QS JS TS 2D 3C`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		langFlag, _ := cmd.Flags().GetString("lang")
		evalFlag, _ := cmd.Flags().GetBool("eval")

		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}

		names, err := loadNames(langFlag)
		if err != nil {
			return fmt.Errorf("error loading names: %v", err)
		}

		pile, err := parseCards(d, args)
		if err != nil {
			return err
		}

		for _, c := range pile.Cards() {
			displayCard(c, names)
		}

		if evalFlag {
			return displayHand(pile)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Deck or catalog the cards belong to")
	showCmd.Flags().StringP("lang", "l", "", "Language for card names (e.g. en, de)")
	showCmd.Flags().BoolP("eval", "e", false, "Evaluate the cards as a poker hand")
}

// parseCards reads indexes and canonical IDs. Indexes go through the strict
// parser; every card is then looked up in the deck so that game weights apply.
func parseCards(d *deck.Deck, args []string) (card.Pile, error) {
	var pile card.Pile
	var indexes []string

	flush := func() error {
		if len(indexes) == 0 {
			return nil
		}
		p, err := card.ParsePile(d.Catalog, strings.Join(indexes, " "))
		if err != nil {
			return err
		}
		for _, c := range p.Cards() {
			dc, ok := d.Resolve(c)
			if !ok {
				return fmt.Errorf("card not in deck %s: %s", d.ID, c)
			}
			pile.Push(dc)
		}
		indexes = indexes[:0]
		return nil
	}

	for _, arg := range args {
		for _, token := range strings.Fields(arg) {
			if !strings.Contains(token, ".") {
				indexes = append(indexes, token)
				continue
			}
			if err := flush(); err != nil {
				return card.Pile{}, err
			}
			c, err := d.GetCard(token)
			if err != nil {
				return card.Pile{}, err
			}
			pile.Push(c)
		}
	}
	if err := flush(); err != nil {
		return card.Pile{}, err
	}
	return pile, nil
}

// displayCard prints one card and the fields of its card number
func displayCard(c card.Card, names *locale.Names) {
	n := card.Encode(c)
	label := color.CyanString

	fmt.Println()
	fmt.Printf("  %s  %s\n", colorCard(c, c.Symbol()), color.HiWhiteString(names.Card(c)))
	fmt.Println(label("  ID:     ") + deck.CardID(c))
	fmt.Println(label("  Index:  ") + c.Index())
	fmt.Println(label("  Weight: ") + fmt.Sprintf("%d (rank %d, suit %d)", c.Weight(), c.Rank().Weight(), c.Suit().Weight()))
	fmt.Println(label("  CKC:    ") + fmt.Sprintf("%08X", uint32(n)))
	fmt.Println(label("          ") + formatBits(n))
}

// formatBits prints the card number in binary, one colour per field
func formatBits(n card.CKC) string {
	bits := fmt.Sprintf("%032b", uint32(n))
	rankFlag := color.YellowString(bits[0:16])
	suitFlag := color.RedString(bits[16:20])
	rankWeight := color.GreenString(bits[20:24])
	prime := color.BlueString(bits[24:32])
	return fmt.Sprintf("%s %s %s %s  (prime %d)", rankFlag, suitFlag, rankWeight, prime, n.Prime())
}

// displayHand evaluates the pile as a poker hand
func displayHand(p card.Pile) error {
	res, err := eval.Best(p)
	if err != nil {
		return fmt.Errorf("error evaluating hand: %v", err)
	}

	fmt.Println()
	fmt.Println(color.CyanString("Best hand: ") + strings.Join(formatPile(res.Hand, true, true), " "))
	if res.Description != "" {
		fmt.Println(color.CyanString("Rank:      ") + color.HiWhiteString(res.Description))
	}
	fmt.Println(color.CyanString("Score:     ") + fmt.Sprintf("%d", res.Score))
	return nil
}
