package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four suits of a standard deck.
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Spades
	Diamonds
)

// Suits lists every suit in declaration order.
var Suits = [...]Suit{Hearts, Clubs, Spades, Diamonds}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	}
	return "•"
}

// Color returns the colour of the suit. It panics on a value outside the
// four declared suits, which can only come from a broken conversion.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Clubs, Spades:
		return Black
	}
	panic(fmt.Sprintf("card: no color for invalid suit %d", uint8(s)))
}

func (s Suit) key() string {
	return strings.ToLower(s.String())
}

// Color is the colour of a suit.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}
