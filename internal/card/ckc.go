package card

// CKC is a "Cactus Kev" card number:
//
//	xxxbbbbb bbbbbbbb cdhsrrrr xxpppppp
//
//	b = one-hot rank flag, bit 16+rank weight
//	cdhs = one-hot suit flag, bit 12+suit weight (suit weights 0..3 only)
//	r = rank weight
//	p = rank prime
//
// The blank card encodes to 0. Rank flags leave the word once the rank weight
// reaches 16, and only the four lowest-weighted suits of a catalog own a flag.
type CKC uint32

const (
	rankFlagShift   = 16
	suitFlagShift   = 12
	rankWeightShift = 8
	suitFlagCount   = 4
)

// Encode packs c into its card number.
func Encode(c Card) CKC {
	if c.IsBlank() {
		return 0
	}
	return rankFlag(c.rank) | suitFlag(c.suit) | CKC(c.rank.weight<<rankWeightShift) | CKC(c.rank.prime)
}

func rankFlag(r Rank) CKC {
	return CKC(uint32(1) << (rankFlagShift + r.weight))
}

func suitFlag(s Suit) CKC {
	if s.weight >= suitFlagCount {
		return 0
	}
	return CKC(uint32(1) << (suitFlagShift + s.weight))
}

// RankFlag returns the one-hot rank bits, shifted down to bit 0
func (n CKC) RankFlag() uint32 { return uint32(n) >> rankFlagShift }

// SuitFlag returns the four suit bits, shifted down to bit 0
func (n CKC) SuitFlag() uint32 { return uint32(n) >> suitFlagShift & 0xF }

// RankWeight returns the rank weight nibble
func (n CKC) RankWeight() uint32 { return uint32(n) >> rankWeightShift & 0xF }

// Prime returns the rank prime
func (n CKC) Prime() uint32 { return uint32(n) & 0xFF }

// PrimeProduct multiplies the primes of a set of card numbers. Equal products
// mean equal rank multisets, whatever the suits.
func PrimeProduct(numbers ...CKC) uint64 {
	product := uint64(1)
	for _, n := range numbers {
		product *= uint64(n.Prime())
	}
	return product
}
