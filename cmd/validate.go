package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardpack/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file",
	Long: `Validate checks that a TOML or YAML catalog file defines a usable card game:
non-empty rank and suit tables, unique identifiers, single character glyphs
that do not collide, and whether every card still fits the card number layout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath := args[0]

		// Check if path exists
		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			return fmt.Errorf("catalog file not found: %s", catalogPath)
		}

		v := validator.NewValidator(catalogPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog '%s' is valid.\n", catalogPath)
		} else {
			fmt.Printf("❌ Catalog '%s' has %d validation errors:\n", catalogPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
