package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/card"
)

// Default is the language used when a requested one has no name table.
const Default = "en"

//go:embed names/*.toml
var namesFS embed.FS

// NameConfig is the layout of a names/<lang>.toml table
type NameConfig struct {
	Language   string            `toml:"language"`
	CardFormat string            `toml:"card_format"`
	Blank      string            `toml:"blank"`
	Ranks      map[string]string `toml:"ranks"`
	Suits      map[string]string `toml:"suits"`
}

// Names maps rank and suit identifiers to display names in one language.
type Names struct {
	Tag    language.Tag
	config NameConfig
	title  cases.Caser
}

// Available returns the languages with an embedded name table
func Available() []string {
	entries, err := namesFS.ReadDir("names")
	if err != nil {
		return nil
	}
	var langs []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".toml" {
			langs = append(langs, strings.TrimSuffix(entry.Name(), ".toml"))
		}
	}
	sort.Strings(langs)
	return langs
}

// Load returns the names for lang, a BCP 47 tag such as "en" or "de-AT".
// Well-formed tags without a table fall back to English.
func Load(lang string) (*Names, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	base, _ := tag.Base()

	data, err := namesFS.ReadFile(path.Join("names", base.String()+".toml"))
	if err != nil {
		data, err = namesFS.ReadFile(path.Join("names", Default+".toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading default names: %v", err)
		}
	}

	var config NameConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("error parsing names for %s: %v", lang, err)
	}
	if config.CardFormat == "" {
		config.CardFormat = "{rank} {suit}"
	}

	return &Names{
		Tag:    tag,
		config: config,
		title:  cases.Title(tag),
	}, nil
}

// Rank returns the name of a rank identifier
func (n *Names) Rank(id string) string {
	return n.lookup(n.config.Ranks, id)
}

// Suit returns the name of a suit identifier
func (n *Names) Suit(id string) string {
	return n.lookup(n.config.Suits, id)
}

// HasRank reports whether the table names the rank identifier
func (n *Names) HasRank(id string) bool {
	_, ok := n.config.Ranks[id]
	return ok
}

// HasSuit reports whether the table names the suit identifier
func (n *Names) HasSuit(id string) bool {
	_, ok := n.config.Suits[id]
	return ok
}

// Card returns the full name of a card, e.g. "Ace of Spades"
func (n *Names) Card(c card.Card) string {
	if c.IsBlank() {
		return n.blank()
	}
	return strings.NewReplacer(
		"{rank}", n.Rank(c.Rank().ID()),
		"{suit}", n.Suit(c.Suit().ID()),
	).Replace(n.config.CardFormat)
}

func (n *Names) lookup(table map[string]string, id string) string {
	if name, ok := table[id]; ok {
		return name
	}
	if id == "" || id == "_" {
		return n.blank()
	}
	// Unknown identifiers come from catalog files without a name table.
	return n.title.String(strings.ReplaceAll(id, "_", " "))
}

func (n *Names) blank() string {
	if n.config.Blank != "" {
		return n.config.Blank
	}
	return "Blank"
}
