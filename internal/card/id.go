package card

import (
	"errors"
	"fmt"
	"strings"
)

const wildPrefix = "wild."

// ErrInvalidID is wrapped by every Parse failure.
var ErrInvalidID = errors.New("invalid card ID")

// Parse turns a canonical card ID back into a card. IDs are
// case-insensitive: "hearts.ace", "Spades.Ten", "wild.joker".
func Parse(id string) (Card, error) {
	norm := strings.ToLower(strings.TrimSpace(id))

	if label, ok := strings.CutPrefix(norm, wildPrefix); ok {
		if label == "" {
			return nil, fmt.Errorf("%w: %q has an empty wildcard label", ErrInvalidID, id)
		}
		return NewWild(label), nil
	}

	parts := strings.Split(norm, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q (expected <suit>.<rank> or wild.<label>)", ErrInvalidID, id)
	}

	suit, ok := parseSuit(parts[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown suit %q", ErrInvalidID, parts[0])
	}
	rank, ok := parseRank(parts[1])
	if !ok {
		return nil, fmt.Errorf("%w: unknown rank %q", ErrInvalidID, parts[1])
	}

	return NewFixed(rank, suit), nil
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if suit.key() == s {
			return suit, true
		}
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	for _, rank := range Ranks {
		if rank.key() == s || strings.ToLower(rank.Short()) == s {
			return rank, true
		}
	}
	return 0, false
}
