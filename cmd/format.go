package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/config"
	"github.com/arcanaland/cardpack/internal/deck"
	"github.com/arcanaland/cardpack/internal/locale"
	"github.com/arcanaland/cardpack/internal/validator"
)

var (
	red   = color.New(color.FgHiRed).SprintFunc()
	black = color.New(color.FgHiWhite).SprintFunc()
)

// resolveDeck finds a deck by name: registered games first, then the catalog
// library or a path to a catalog file. An empty name uses the default.
func resolveDeck(name string) (*deck.Deck, error) {
	if name == "" {
		defaultCatalog, err := config.GetDefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("error getting default catalog: %v", err)
		}
		name = defaultCatalog
	}

	if d, ok := deck.Lookup(name); ok {
		return d, nil
	}

	catalogPath, err := config.GetCatalogPath(name)
	if err != nil {
		return nil, err
	}
	c, err := validator.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return deck.ForCatalog(c), nil
}

// loadNames returns the names for --lang, or the configured language
func loadNames(lang string) (*locale.Names, error) {
	if lang == "" {
		configured, err := config.GetLanguage()
		if err != nil {
			return nil, err
		}
		lang = configured
	}
	return locale.Load(lang)
}

// colorCard prints red suits in red
func colorCard(c card.Card, text string) string {
	switch c.Suit().ID() {
	case "hearts", "diamonds":
		return red(text)
	default:
		return black(text)
	}
}

// formatPile renders a pile as index or symbol text, optionally coloured
func formatPile(p card.Pile, symbols, colored bool) []string {
	words := make([]string, 0, p.Len())
	for _, c := range p.Cards() {
		text := c.Index()
		if symbols {
			text = c.Symbol()
		}
		if colored {
			text = colorCard(c, text)
		}
		words = append(words, text)
	}
	return words
}

// terminalWidth returns the width of stdout, or 80
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapWords joins words into lines no wider than width visible characters
func wrapWords(words []string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	currentWidth := 0

	for _, word := range words {
		w := visibleWidth(word)
		if currentWidth == 0 {
			currentLine = word
			currentWidth = w
		} else if currentWidth+1+w <= width {
			currentLine += " " + word
			currentWidth += 1 + w
		} else {
			result = append(result, currentLine)
			currentLine = word
			currentWidth = w
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
