package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/dealer/internal/card"
)

const (
	// StandardName always resolves to the built-in 52-card deck.
	StandardName = "standard"

	// DefinitionFile is the file a deck directory must contain.
	DefinitionFile = "deck.toml"

	// SchemaVersion is the only deck.toml schema this tool understands.
	SchemaVersion = "1.0"
)

// Definition is the parsed content of a deck.toml.
type Definition struct {
	Deck  Section      `toml:"deck"`
	Cards CardsSection `toml:"cards"`

	// Path is the directory the definition was loaded from.
	Path string `toml:"-"`
}

type Section struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Tags          []string `toml:"tags"`
}

// CardsSection describes the deck contents: the base cards minus Exclude,
// followed by Include and then one wildcard per entry of Wildcards.
type CardsSection struct {
	Base      string   `toml:"base"`
	Exclude   []string `toml:"exclude"`
	Include   []string `toml:"include"`
	Wildcards []string `toml:"wildcards"`
}

// StandardDefinition describes the built-in deck.
func StandardDefinition() *Definition {
	return &Definition{
		Deck: Section{
			ID:            StandardName,
			Name:          "Standard 52-card deck",
			Version:       "1.0",
			SchemaVersion: SchemaVersion,
		},
		Cards: CardsSection{Base: StandardName},
	}
}

// LoadDeck reads deck.toml from a deck directory.
func LoadDeck(deckPath string) (*Definition, error) {
	deckTomlPath := filepath.Join(deckPath, DefinitionFile)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s", DefinitionFile, deckPath)
	}

	var def Definition
	if _, err := toml.DecodeFile(deckTomlPath, &def); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", DefinitionFile, err)
	}
	def.Path = deckPath

	return &def, nil
}

// BaseCards returns the cards named by Cards.Base.
func (def *Definition) BaseCards() ([]card.Card, error) {
	switch def.Cards.Base {
	case "":
		return nil, nil
	case StandardName:
		return StandardCards(), nil
	}
	return nil, fmt.Errorf("unknown base deck: %q", def.Cards.Base)
}

// CardList resolves the definition to the ordered list of cards, in the
// order they will be dealt before any shuffle.
func (def *Definition) CardList() ([]card.Card, error) {
	base, err := def.BaseCards()
	if err != nil {
		return nil, err
	}

	excluded := make(map[card.Card]bool, len(def.Cards.Exclude))
	for _, id := range def.Cards.Exclude {
		c, err := card.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("cards.exclude: %w", err)
		}
		excluded[c] = true
	}

	cards := make([]card.Card, 0, len(base)+len(def.Cards.Include)+len(def.Cards.Wildcards))
	for _, c := range base {
		if !excluded[c] {
			cards = append(cards, c)
		}
	}

	for _, id := range def.Cards.Include {
		c, err := card.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("cards.include: %w", err)
		}
		cards = append(cards, c)
	}

	for i, label := range def.Cards.Wildcards {
		w := card.NewWild(label)
		if w.Label() == "" {
			return nil, fmt.Errorf("cards.wildcards[%d]: %w: empty label", i, card.ErrInvalidID)
		}
		cards = append(cards, w)
	}

	return cards, nil
}

// Build creates a fresh, unshuffled Deck from the definition.
func (def *Definition) Build() (*Deck, error) {
	cards, err := def.CardList()
	if err != nil {
		return nil, err
	}
	return New(cards), nil
}
