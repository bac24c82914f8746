package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardpack",
	Short: "Tool for building, sorting and encoding playing card decks",
	Long: `Cardpack models playing cards for many card games (standard 52, stripped decks,
Skat, Pinochle, Euchre, tarot minor arcana, decks with jokers) and prints the
bit-packed Cactus Kev number of every card.

Cards are written as two characters, rank then suit: AS, TD, 0h, K♠.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
