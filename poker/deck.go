package poker

import "github.com/lox/pokersolver/internal/fastrng"

// Deck represents a standard 52-card deck backed by a fixed array so that
// dealing never allocates. cards[:size] holds the live cards; cards[size:]
// is zero-filled dead space left by NewDeckExcluding. Deal/DealOne bound
// the cursor on size, not len(cards), so a deck built around excluded
// cards fails once its actual survivors run out rather than handing back
// zero-value sentinel cards from the dead tail.
type Deck struct {
	cards [52]Card
	next  int
	size  int
	rng   *fastrng.RNG
}

// NewDeck creates a new shuffled 52-card deck using rng as its shuffle source.
func NewDeck(rng *fastrng.RNG) *Deck {
	d := &Deck{rng: rng, size: 52}

	i := 0
	for suit := Suit(0); suit < 4; suit++ {
		for rank := Rank(0); rank < 13; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// NewDeckExcluding creates a shuffled deck with every card in dead removed,
// used to deal runouts around cards already known to be in play. Its
// effective size is 52 minus the number of excluded cards.
func NewDeckExcluding(rng *fastrng.RNG, dead Hand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Suit(0); suit < 4; suit++ {
		for rank := Rank(0); rank < 13; rank++ {
			c := NewCard(rank, suit)
			if dead.HasCard(c) {
				continue
			}
			d.cards[i] = c
			i++
		}
	}
	d.size = i
	for ; i < len(d.cards); i++ {
		d.cards[i] = 0
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the live cards and resets the deal cursor.
func (d *Deck) Shuffle() {
	d.next = 0
	d.shuffleRange(d.size)
}

func (d *Deck) shuffleRange(n int) {
	if d.rng == nil {
		return
	}
	d.rng.Shuffle(n, func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal deals n cards from the deck. It returns nil if fewer than n cards
// remain among the live, effective-size-bounded cards.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > d.size {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card. It returns 0 if the deck is empty.
func (d *Deck) DealOne() Card {
	if d.next >= d.size {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// Reset reshuffles and rewinds the deck.
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return d.size - d.next
}
