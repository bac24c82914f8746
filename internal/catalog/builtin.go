package catalog

import "sort"

var (
	two   = Entry{ID: "two", Index: '2'}
	three = Entry{ID: "three", Index: '3'}
	four  = Entry{ID: "four", Index: '4'}
	five  = Entry{ID: "five", Index: '5'}
	six   = Entry{ID: "six", Index: '6'}
	seven = Entry{ID: "seven", Index: '7'}
	eight = Entry{ID: "eight", Index: '8'}
	nine  = Entry{ID: "nine", Index: '9'}
	ten   = Entry{ID: "ten", Index: 'T', Aliases: []rune{'0'}}
	jack  = Entry{ID: "jack", Index: 'J'}
	queen = Entry{ID: "queen", Index: 'Q'}
	king  = Entry{ID: "king", Index: 'K'}
	ace   = Entry{ID: "ace", Index: 'A'}

	littleJoker = Entry{ID: "little_joker", Index: 'L'}
	bigJoker    = Entry{ID: "big_joker", Index: 'B'}

	page   = Entry{ID: "page", Index: 'P'}
	knight = Entry{ID: "knight", Index: 'N'}
)

var (
	clubs    = Entry{ID: "clubs", Index: 'C', Symbol: '♣', Aliases: []rune{'♧'}}
	diamonds = Entry{ID: "diamonds", Index: 'D', Symbol: '♦', Aliases: []rune{'♢'}}
	hearts   = Entry{ID: "hearts", Index: 'H', Symbol: '♥', Aliases: []rune{'♡'}}
	spades   = Entry{ID: "spades", Index: 'S', Symbol: '♠', Aliases: []rune{'♤'}}
	joker    = Entry{ID: "joker", Index: 'J', Symbol: '🃟'}

	wands     = Entry{ID: "wands", Index: 'W'}
	cups      = Entry{ID: "cups", Index: 'C'}
	swords    = Entry{ID: "swords", Index: 'S'}
	pentacles = Entry{ID: "pentacles", Index: 'P'}
)

var frenchSuits = []Entry{clubs, diamonds, hearts, spades}

// Built-in catalogs
var (
	Standard52 = New("standard52",
		[]Entry{two, three, four, five, six, seven, eight, nine, ten, jack, queen, king, ace},
		frenchSuits)

	// Jokers54 is the standard catalog plus a joker suit holding the two jokers.
	Jokers54 = New("jokers54",
		[]Entry{two, three, four, five, six, seven, eight, nine, ten, jack, queen, king, ace, littleJoker, bigJoker},
		[]Entry{clubs, diamonds, hearts, spades, joker})

	Short36 = New("short36",
		[]Entry{six, seven, eight, nine, ten, jack, queen, king, ace},
		frenchSuits)

	Euchre24 = New("euchre24",
		[]Entry{nine, ten, jack, queen, king, ace},
		frenchSuits)

	// Pinochle ranks ten above king.
	Pinochle = New("pinochle",
		[]Entry{nine, jack, queen, king, ten, ace},
		frenchSuits)

	// Skat puts the jacks above the aces and orders suits diamonds < hearts < spades < clubs.
	Skat = New("skat",
		[]Entry{seven, eight, nine, queen, king, ten, ace, jack},
		[]Entry{diamonds, hearts, spades, clubs})

	// Tarot covers the 56 minor arcana.
	Tarot = New("tarot",
		[]Entry{ace, two, three, four, five, six, seven, eight, nine, ten, page, knight, queen, king},
		[]Entry{wands, cups, swords, pentacles})
)

var builtins = map[string]*Catalog{}

func init() {
	for _, c := range []*Catalog{Standard52, Jokers54, Short36, Euchre24, Pinochle, Skat, Tarot} {
		builtins[c.name] = c
	}
}

// Lookup returns the built-in catalog with the given name
func Lookup(name string) (*Catalog, bool) {
	c, ok := builtins[name]
	return c, ok
}

// Builtins returns the names of all built-in catalogs, sorted
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
