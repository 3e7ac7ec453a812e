package deck

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/dealer/internal/card"
)

// ErrEmpty is returned by DealOne when no cards are left.
var ErrEmpty = errors.New("deck: no cards remaining")

// Source produces uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Deck is an ordered pile of cards that can be shuffled and dealt from.
// A Deck is not safe for concurrent use.
type Deck struct {
	// cards are dealt from the end of the slice
	cards  []card.Card
	random Source
}

// New creates a deck that deals the given cards in the given order.
// The slice is copied.
func New(cards []card.Card) *Deck {
	d := &Deck{cards: slices.Clone(cards)}
	slices.Reverse(d.cards)
	return d
}

// Standard creates the 52-card deck, one card per suit and rank, dealt
// Hearts first and Two to Ace within each suit.
func Standard() *Deck {
	return New(StandardCards())
}

// StandardCards lists the 52 fixed cards in suit-major, rank-minor order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.NewFixed(r, s))
		}
	}
	return cards
}

// SetRandom replaces the random source used by Shuffle. Without it the deck
// creates its own source the first time it shuffles.
func (d *Deck) SetRandom(src Source) {
	d.random = src
}

func (d *Deck) source() Source {
	if d.random == nil {
		d.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d.random
}

// NumCardsRemaining reports how many cards are left to deal.
func (d *Deck) NumCardsRemaining() int {
	return len(d.cards)
}

// Shuffle puts the remaining cards in uniformly random order.
func (d *Deck) Shuffle() {
	if len(d.cards) < 2 {
		return
	}
	random := d.source()
	// Fisher-Yates: cards[position+1:] are already fixed.
	for position := len(d.cards) - 1; position > 0; position-- {
		r := random.IntN(position + 1)
		d.cards[position], d.cards[r] = d.cards[r], d.cards[position]
	}
}

// DealOne removes and returns the next card. It returns ErrEmpty once the
// deck is exhausted; check NumCardsRemaining first to avoid that.
func (d *Deck) DealOne() (card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmpty
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards[last] = nil
	d.cards = d.cards[:last]
	return c, nil
}

// Deal deals n cards. If the deck runs out, the cards dealt so far are
// returned together with ErrEmpty.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	hand := make([]card.Card, 0, max(0, min(n, len(d.cards))))
	for range n {
		c, err := d.DealOne()
		if err != nil {
			return hand, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}
