package card

import (
	"fmt"
	"strings"
)

// Kind tags the variant behind a Card.
type Kind uint8

const (
	KindFixed Kind = iota
	KindWild
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindWild:
		return "wild"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Card is anything that can sit in a deck. Every implementation is a
// comparable value type, so cards can be compared with == and used as map keys.
//
// The interface is sealed: the variants are Fixed and Wild.
type Card interface {
	fmt.Stringer

	// ID returns the canonical identifier, e.g. "hearts.two" or "wild.joker".
	ID() string
	Kind() Kind

	sealed()
}

// Fixed is a regular card with a rank and a suit. A standard deck holds
// 52 of them (4 suits x 13 ranks). Fixed values are immutable.
type Fixed struct {
	rank Rank
	suit Suit
}

// NewFixed returns the card of the given rank and suit.
func NewFixed(rank Rank, suit Suit) Fixed {
	return Fixed{rank: rank, suit: suit}
}

func (f Fixed) Rank() Rank { return f.rank }
func (f Fixed) Suit() Suit { return f.suit }
func (f Fixed) Kind() Kind { return KindFixed }

// Color is shorthand for f.Suit().Color().
func (f Fixed) Color() Color { return f.suit.Color() }

func (f Fixed) ID() string {
	return f.suit.key() + "." + f.rank.key()
}

func (f Fixed) String() string {
	return fmt.Sprintf("%s of %s", f.rank, f.suit)
}

func (Fixed) sealed() {}

// Wild is a card without rank or suit, such as a joker.
type Wild struct {
	label string
}

// NewWild returns a wildcard. Labels are case-insensitive.
func NewWild(label string) Wild {
	return Wild{label: strings.ToLower(strings.TrimSpace(label))}
}

func (w Wild) Label() string { return w.label }
func (w Wild) Kind() Kind    { return KindWild }
func (w Wild) ID() string    { return wildPrefix + w.label }

func (w Wild) String() string {
	if w.label == "" {
		return "Wild"
	}
	r := []rune(w.label)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func (Wild) sealed() {}
