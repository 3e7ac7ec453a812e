// Package poker orders cards the way poker does: by rank only, suits
// ignored, with wildcards above every rank.
//
// Wildcards always count as the highest single card. That is fine for
// comparing cards one by one but not for hands, where a wildcard should
// stand in for whatever card completes the best hand.
package poker

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arcanaland/dealer/internal/card"
)

// wildValue sits one above Ace.
const wildValue = int(card.Ace) + 1

// Value returns the poker ordering value of a card.
func Value(c card.Card) int {
	switch c := c.(type) {
	case card.Fixed:
		return int(c.Rank())
	case card.Wild:
		return wildValue
	}
	panic(fmt.Sprintf("poker: unhandled card variant %T", c))
}

// Compare returns a negative number when a ranks below b, zero when they
// rank equal and a positive number when a ranks above b.
func Compare(a, b card.Card) int {
	return cmp.Compare(Value(a), Value(b))
}

// SortHand orders a hand from highest to lowest. Cards of equal rank keep
// their dealt order.
func SortHand(hand []card.Card) {
	slices.SortStableFunc(hand, func(a, b card.Card) int {
		return Compare(b, a)
	})
}
