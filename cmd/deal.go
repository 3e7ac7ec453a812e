package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
	"github.com/arcanaland/dealer/internal/poker"
	"github.com/arcanaland/dealer/internal/render"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a deck and deal cards from it",
	Long: `Deal shuffles a deck and deals cards from the top.

Examples:
  dealer deal
  dealer deal -n 13 --sort
  dealer deal --deck euchre --seed 42 -n 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
		sortHand, _ := cmd.Flags().GetBool("sort")

		if count < 0 {
			return fmt.Errorf("count must not be negative: %d", count)
		}

		def, d, err := buildDeck(cmd)
		if err != nil {
			return err
		}

		if !noShuffle {
			d.Shuffle()
		}
		if count == 0 {
			count = d.NumCardsRemaining()
		}

		hand, dealErr := d.Deal(count)
		logger.Debug("dealt", zap.Int("requested", count), zap.Int("dealt", len(hand)),
			zap.Int("remaining", d.NumCardsRemaining()))

		if sortHand {
			poker.SortHand(hand)
		}

		painter, err := newPainter()
		if err != nil {
			return err
		}

		fmt.Printf("Deck: %s\n\n", def.Deck.Name)
		for _, line := range painter.Hand(hand, render.TerminalWidth()) {
			fmt.Println(line)
		}
		fmt.Println()
		fmt.Println(describe(hand))

		if errors.Is(dealErr, deck.ErrEmpty) {
			return fmt.Errorf("dealt %d of %d cards: %w", len(hand), count, dealErr)
		}
		return dealErr
	},
}

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a deck in shuffled order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := buildDeck(cmd)
		if err != nil {
			return err
		}
		d.Shuffle()

		painter, err := newPainter()
		if err != nil {
			return err
		}

		labels := make([]string, 0, d.NumCardsRemaining())
		for d.NumCardsRemaining() > 0 {
			c, err := d.DealOne()
			if err != nil {
				return err
			}
			labels = append(labels, painter.Label(c))
		}

		for _, line := range render.Wrap(labels, render.TerminalWidth()) {
			fmt.Println(line)
		}
		return nil
	},
}

func newPainter() (render.Painter, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return render.Painter{}, err
	}
	return render.Painter{TrueColor: cfg.TrueColor}, nil
}

// describe lists the cards by name
func describe(hand []card.Card) string {
	if len(hand) == 0 {
		return "No cards dealt."
	}
	names := make([]string, len(hand))
	for i, c := range hand {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

func init() {
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(shuffleCmd)

	addDeckFlags(dealCmd)
	dealCmd.Flags().IntP("count", "n", 5, "Number of cards to deal (0 deals the whole deck)")
	dealCmd.Flags().Bool("no-shuffle", false, "Deal in deck order without shuffling")
	dealCmd.Flags().Bool("sort", false, "Sort the dealt cards by poker rank, highest first")

	addDeckFlags(shuffleCmd)
}
