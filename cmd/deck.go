package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/config"
	"github.com/arcanaland/cardpack/internal/deck"
	"github.com/arcanaland/cardpack/internal/validator"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build and inspect card decks",
	Long:  `Commands for listing, building and choosing card decks and catalogs.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List built-in decks and catalogs in your catalog library",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultCatalog, err := config.GetDefaultCatalog()
		if err != nil {
			return fmt.Errorf("error getting default catalog: %v", err)
		}

		mark := func(id string) string {
			if id == defaultCatalog {
				return "*"
			}
			return " "
		}

		fmt.Println("Built-in decks:")
		for _, id := range deck.IDs() {
			d, _ := deck.Lookup(id)
			fmt.Printf("%s %-12s %3d cards  %s\n", mark(id), id, d.Cards().Len(), d.Description)
		}

		libraryPath := config.GetCatalogLibraryPath()
		entries, err := os.ReadDir(libraryPath)
		if os.IsNotExist(err) {
			fmt.Printf("\nCatalog library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'cardpack deck init' to create it.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading catalog library: %v", err)
		}

		fmt.Println("\nLibrary catalogs:")
		found := false
		for _, entry := range entries {
			if entry.IsDir() || !config.IsCatalogFile(entry.Name()) {
				continue
			}
			c, err := validator.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				fmt.Printf("  %s (invalid: %v)\n", entry.Name(), err)
				continue
			}
			found = true
			name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			fmt.Printf("%s %-12s %3d cards  %s\n", mark(name), name, c.RankCount()*c.SuitCount(), c.Name())
		}
		if !found {
			fmt.Println("  none; copy catalog files to", libraryPath)
		}
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck]",
	Short: "Print a deck as text",
	Long: `Show builds a deck and prints it as space separated card indexes.

Examples:
  cardpack deck show
  cardpack deck show pinochle --sort
  cardpack deck show standard52 --decks 2 --shuffle --symbols`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		d, err := resolveDeck(name)
		if err != nil {
			return err
		}

		copies, _ := cmd.Flags().GetInt("decks")
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		sorted, _ := cmd.Flags().GetBool("sort")
		symbols, _ := cmd.Flags().GetBool("symbols")
		ckc, _ := cmd.Flags().GetBool("ckc")

		if copies < 1 {
			return fmt.Errorf("--decks must be at least 1, got %d", copies)
		}

		var pile card.Pile
		for i := 0; i < copies; i++ {
			pile.Extend(d.Cards())
		}
		if shuffle {
			pile.ShuffleInPlace()
		}
		if sorted {
			pile.SortInPlace()
		}

		fmt.Printf("%s: %d cards\n\n", d.ID, pile.Len())
		if ckc {
			for _, c := range pile.Cards() {
				fmt.Printf("%s  %08X\n", colorCard(c, c.Symbol()), c.CKC())
			}
			return nil
		}
		for _, line := range wrapWords(formatPile(pile, symbols, true), terminalWidth()) {
			fmt.Println(line)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Make sure the deck resolves before saving it
		if _, err := resolveDeck(name); err != nil {
			return fmt.Errorf("not a valid deck: %v", err)
		}

		if err := config.SetDefaultCatalog(name); err != nil {
			return fmt.Errorf("error setting default deck: %v", err)
		}

		fmt.Printf("Default deck set to: %s\n", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetCatalogLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating catalog library: %v", err)
		}

		fmt.Println("Catalog library initialized at:", libraryPath)
		fmt.Println("You can now add TOML or YAML catalogs to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckShowCmd.Flags().IntP("decks", "n", 1, "Number of decks to combine")
	deckShowCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the cards")
	deckShowCmd.Flags().Bool("sort", false, "Sort the cards, highest first")
	deckShowCmd.Flags().Bool("symbols", false, "Print suit symbols instead of letters")
	deckShowCmd.Flags().Bool("ckc", false, "Print one card per line with its card number")
}
