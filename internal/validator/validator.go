package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	def *deck.Definition
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck.toml in DeckPath. A returned error means the
// file could not be read at all; problems with its content are collected
// in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	def, err := deck.LoadDeck(v.DeckPath)
	if err != nil {
		return v.Results, err
	}
	v.def = def

	v.validateDeckSection()
	base := v.validateBase()
	v.validateExclusions(base)
	v.validateInclusions()
	v.validateWildcards()
	v.validateContents()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateDeckSection checks the required [deck] metadata
func (v *Validator) validateDeckSection() {
	section := v.def.Deck

	if section.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if section.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if section.Version == "" {
		v.errorf("deck.version is required in deck.toml")
	}

	if section.SchemaVersion == "" {
		v.errorf("deck.schema_version is required in deck.toml")
	} else if section.SchemaVersion != deck.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", section.SchemaVersion, deck.SchemaVersion)
	}
}

func (v *Validator) validateBase() map[card.Card]bool {
	cards, err := v.def.BaseCards()
	if err != nil {
		v.errorf("cards.base: %v", err)
		return nil
	}

	base := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		base[c] = true
	}
	return base
}

func (v *Validator) validateExclusions(base map[card.Card]bool) {
	for i, id := range v.def.Cards.Exclude {
		c, err := card.Parse(id)
		if err != nil {
			v.errorf("cards.exclude[%d]: %v", i, err)
			continue
		}
		if base != nil && !base[c] {
			v.errorf("cards.exclude[%d]: %s is not in the %q base deck", i, c, v.def.Cards.Base)
		}
	}
}

func (v *Validator) validateInclusions() {
	for i, id := range v.def.Cards.Include {
		if _, err := card.Parse(id); err != nil {
			v.errorf("cards.include[%d]: %v", i, err)
		}
	}
}

func (v *Validator) validateWildcards() {
	for i, label := range v.def.Cards.Wildcards {
		if strings.TrimSpace(label) == "" {
			v.errorf("cards.wildcards[%d]: label must not be empty", i)
		}
	}
}

// validateContents looks at the deck the definition produces
func (v *Validator) validateContents() {
	if len(v.Results.Errors) > 0 {
		return // The deck cannot be built
	}

	cards, err := v.def.CardList()
	if err != nil {
		v.errorf("%v", err)
		return
	}

	if len(cards) == 0 {
		v.warnf("deck has no cards")
		return
	}

	counts := make(map[card.Card]int, len(cards))
	var order []card.Card
	for _, c := range cards {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	for _, c := range order {
		if counts[c] > 1 {
			v.warnf("%s (%s) appears %d times", c, c.ID(), counts[c])
		}
	}
}
