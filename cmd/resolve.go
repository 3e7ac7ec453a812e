package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
)

// resolveDeck finds the deck definition named by the --deck flag, falling
// back to the default deck from the config.
func resolveDeck(cmd *cobra.Command) (*deck.Definition, error) {
	name, _ := cmd.Flags().GetString("deck")
	if name == "" {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return nil, fmt.Errorf("error getting default deck: %w", err)
		}
		name = defaultDeck
	}

	if name == deck.StandardName {
		logger.Debug("using built-in deck", zap.String("deck", name))
		return deck.StandardDefinition(), nil
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading deck", zap.String("deck", name), zap.String("path", deckPath))

	def, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	return def, nil
}

// buildDeck resolves the deck and seeds it when --seed is set.
func buildDeck(cmd *cobra.Command) (*deck.Definition, *deck.Deck, error) {
	def, err := resolveDeck(cmd)
	if err != nil {
		return nil, nil, err
	}

	d, err := def.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("error building deck %s: %w", def.Deck.ID, err)
	}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		d.SetRandom(rand.New(rand.NewPCG(seed, seed)))
		logger.Debug("seeded deck", zap.Uint64("seed", seed))
	}

	logger.Debug("built deck", zap.String("deck", def.Deck.ID), zap.Int("cards", d.NumCardsRemaining()))
	return def, d, nil
}

func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	cmd.Flags().Uint64("seed", 0, "Seed the shuffle for a repeatable order")
}
