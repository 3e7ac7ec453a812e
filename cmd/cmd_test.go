package cmd

import (
	"os"
	"path/filepath"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
)

const euchre = `
[deck]
id = "euchre"
name = "Euchre"
version = "1.0"
schema_version = "1.0"

[cards]
include = ["hearts.nine", "hearts.ten", "hearts.jack"]
wildcards = ["joker"]
`

func isolate(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))

	saved := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = saved })
}

func addLibraryDeck(t *testing.T, name, content string) string {
	t.Helper()
	dir := filepath.Join(config.GetDeckLibraryPath(), name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, deck.DefinitionFile), []byte(content), 0644))
	return dir
}

// run executes the root command; flags are reset first because the
// command tree is shared between tests.
func run(t *testing.T, args ...string) error {
	t.Helper()
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		for _, child := range c.Commands() {
			reset(child)
		}
	}
	reset(RootCmd)

	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestDeal(t *testing.T) {
	isolate(t)
	assert.NoError(t, run(t, "deal", "--seed", "42", "-n", "5", "--sort"))
	assert.NoError(t, run(t, "deal", "-n", "0"))
}

func TestDealPastTheEnd(t *testing.T) {
	isolate(t)
	err := run(t, "deal", "--no-shuffle", "-n", "53")
	assert.ErrorIs(t, err, deck.ErrEmpty)
	assert.ErrorContains(t, err, "dealt 52 of 53 cards")
}

func TestDealNegativeCount(t *testing.T) {
	isolate(t)
	assert.ErrorContains(t, run(t, "deal", "--count=-1"), "must not be negative")
}

func TestDealFromLibrary(t *testing.T) {
	isolate(t)
	addLibraryDeck(t, "euchre", euchre)

	assert.NoError(t, run(t, "deal", "--deck", "euchre", "-n", "4"))
	assert.ErrorIs(t, run(t, "deal", "--deck", "euchre", "-n", "5"), deck.ErrEmpty)
	assert.ErrorContains(t, run(t, "deal", "--deck", "missing"), "deck not found")
}

func TestShuffle(t *testing.T) {
	isolate(t)
	assert.NoError(t, run(t, "shuffle", "--seed", "7"))
}

func TestShow(t *testing.T) {
	isolate(t)
	assert.NoError(t, run(t, "show", "spades.ace"))
	assert.NoError(t, run(t, "show", "wild.joker"))
	assert.ErrorIs(t, run(t, "show", "cups.ace"), card.ErrInvalidID)
}

func TestCardInfo(t *testing.T) {
	isolate(t)

	assert.Equal(t, []string{
		"Card:  Queen of Hearts",
		"ID:    hearts.queen",
		"Type:  fixed",
		"Rank:  Queen",
		"Suit:  Hearts · ♥",
		"Color: Red",
	}, cardInfo(card.NewFixed(card.Queen, card.Hearts)))

	assert.Len(t, cardInfo(card.NewWild("joker")), 4)
}

func TestDeckCommands(t *testing.T) {
	isolate(t)

	require.NoError(t, run(t, "deck", "init"))
	assert.DirExists(t, config.GetDeckLibraryPath())
	assert.FileExists(t, config.GetConfigFilePath())

	addLibraryDeck(t, "euchre", euchre)
	addLibraryDeck(t, "broken", `[cards]
include = ["nope"]`)

	require.NoError(t, run(t, "deck", "ls"))
	require.NoError(t, run(t, "deck", "set-default", "euchre"))
	name, err := config.GetDefaultDeck()
	require.NoError(t, err)
	assert.Equal(t, "euchre", name)

	// the default deck is used when --deck is omitted
	assert.ErrorIs(t, run(t, "deal", "-n", "5"), deck.ErrEmpty)

	assert.ErrorContains(t, run(t, "deck", "set-default", "broken"), "not a valid deck")
	require.NoError(t, run(t, "deck", "set-default", "standard"))
}

func TestValidateCommand(t *testing.T) {
	isolate(t)

	good := addLibraryDeck(t, "euchre", euchre)
	assert.NoError(t, run(t, "validate", good))

	bad := addLibraryDeck(t, "bad", `[cards]
base = "tarot"`)
	assert.ErrorContains(t, run(t, "validate", bad), "validation failed")

	assert.ErrorContains(t, run(t, "validate", filepath.Join(t.TempDir(), "missing")), "deck directory not found")
}
