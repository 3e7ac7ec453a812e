package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitNames(t *testing.T) {
	assert.Equal(t, "Hearts", Hearts.String())
	assert.Equal(t, "Clubs", Clubs.String())
	assert.Equal(t, "Diamonds", Diamonds.String())
	assert.Equal(t, "Spades", Spades.String())
}

func TestSuitColor(t *testing.T) {
	testCases := []struct {
		suit     Suit
		expected Color
	}{
		{Hearts, Red},
		{Clubs, Black},
		{Diamonds, Red},
		{Spades, Black},
	}

	for _, tc := range testCases {
		t.Run(tc.suit.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.suit.Color())
		})
	}
}

func TestSuitColorPanicsOnInvalidSuit(t *testing.T) {
	assert.PanicsWithValue(t, "card: no color for invalid suit 7", func() {
		Suit(7).Color()
	})
}

func TestRankOrder(t *testing.T) {
	require.Len(t, Ranks, 13)
	for i := 1; i < len(Ranks); i++ {
		assert.Less(t, Ranks[i-1], Ranks[i])
	}
	assert.Equal(t, Two, Ranks[0])
	assert.Equal(t, Ace, Ranks[12])
	assert.Equal(t, "10", Ten.Short())
	assert.Equal(t, "A", Ace.Short())
}

func TestFixedString(t *testing.T) {
	assert.Equal(t, "Ace of Spades", NewFixed(Ace, Spades).String())
	assert.Equal(t, "Two of Hearts", NewFixed(Two, Hearts).String())
}

func TestFixedEquality(t *testing.T) {
	a := NewFixed(Queen, Diamonds)
	b := NewFixed(Queen, Diamonds)
	c := NewFixed(Queen, Diamonds)

	assert.True(t, a == a)
	assert.True(t, a == b && b == a)
	assert.True(t, a == b && b == c && a == c)
	assert.False(t, a == NewFixed(Queen, Hearts))
	assert.False(t, a == NewFixed(King, Diamonds))

	var ca, cb Card = a, b
	assert.True(t, ca == cb)
	assert.False(t, ca == Card(NewWild("queen")))
}

func TestCardsAsSetKeys(t *testing.T) {
	set := make(map[Card]struct{})
	for _, s := range Suits {
		for _, r := range Ranks {
			set[NewFixed(r, s)] = struct{}{}
			set[NewFixed(r, s)] = struct{}{}
		}
	}
	set[NewWild("Joker")] = struct{}{}
	set[NewWild("joker")] = struct{}{}

	assert.Len(t, set, 53)
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range Suits {
		for _, r := range Ranks {
			want := NewFixed(r, s)
			got, err := Parse(want.ID())
			require.NoError(t, err)
			assert.Equal(t, Card(want), got)
		}
	}

	wild, err := Parse("Wild.Joker")
	require.NoError(t, err)
	assert.Equal(t, Card(NewWild("joker")), wild)
	assert.Equal(t, "wild.joker", wild.ID())
	assert.Equal(t, "Joker", wild.String())
	assert.Equal(t, KindWild, wild.Kind())
}

func TestParseShortRanks(t *testing.T) {
	c, err := Parse("hearts.10")
	require.NoError(t, err)
	assert.Equal(t, Card(NewFixed(Ten, Hearts)), c)

	c, err = Parse(" Spades.K ")
	require.NoError(t, err)
	assert.Equal(t, Card(NewFixed(King, Spades)), c)
}

func TestParseErrors(t *testing.T) {
	for _, id := range []string{"", "hearts", "hearts.two.three", "cups.two", "hearts.one", "wild."} {
		t.Run(id, func(t *testing.T) {
			_, err := Parse(id)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}
