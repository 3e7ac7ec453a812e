package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing the decks in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		printDeckEntry(deck.StandardName, deck.StandardDefinition().Deck.Name, defaultDeck)

		libraryPath := config.GetDeckLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("\nDeck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'dealer deck init' to create it.")
			return nil
		}

		libraryPath, err = filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		for _, entry := range entries {
			// Follow symlinked deck directories
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				fmt.Printf("Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}
			if !fileInfo.IsDir() || entry.Name() == deck.StandardName {
				continue
			}

			def, err := deck.LoadDeck(entryPath)
			if err != nil {
				logger.Debug("skipping library entry", zap.String("entry", entry.Name()), zap.Error(err))
				continue
			}
			printDeckEntry(entry.Name(), def.Deck.Name, defaultDeck)
		}
		return nil
	},
}

func printDeckEntry(name, title, defaultDeck string) {
	if name == defaultDeck {
		fmt.Printf("* %s (%s) [DEFAULT]\n", name, title)
	} else {
		fmt.Printf("  %s (%s)\n", name, title)
	}
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		if deckName != deck.StandardName {
			deckPath, err := config.GetDeckPath(deckName)
			if err != nil {
				return err
			}

			// Make sure the deck can actually be built
			def, err := deck.LoadDeck(deckPath)
			if err != nil {
				return fmt.Errorf("not a valid deck: %w", err)
			}
			if _, err := def.Build(); err != nil {
				return fmt.Errorf("not a valid deck: %w", err)
			}
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Printf("Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now add decks by creating a directory with a deck.toml in it.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
