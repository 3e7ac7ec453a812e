package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card face together with its rank, suit and colour.
Use canonical card IDs like 'hearts.ace', 'spades.10' or 'wild.joker'.

Examples:
  dealer show hearts.ace
  dealer show clubs.q
  dealer show wild.joker`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		painter, err := newPainter()
		if err != nil {
			return err
		}

		displayCard(painter, c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// cardInfo returns the labelled lines printed next to a card face
func cardInfo(c card.Card) []string {
	info := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c.String()),
		colorize.CyanString("ID:    ") + colorize.HiWhiteString("%s", c.ID()),
		colorize.CyanString("Type:  ") + colorize.HiWhiteString("%s", c.Kind().String()),
	}

	switch c := c.(type) {
	case card.Fixed:
		info = append(info,
			colorize.CyanString("Rank:  ")+colorize.HiWhiteString("%s", c.Rank().String()),
			colorize.CyanString("Suit:  ")+colorize.HiWhiteString("%s · %s", c.Suit(), c.Suit().Symbol()),
			colorize.CyanString("Color: ")+colorize.HiWhiteString("%s", c.Color().String()),
		)
	case card.Wild:
		info = append(info, colorize.CyanString("Rank:  ")+colorize.HiWhiteString("above Ace"))
	}
	return info
}

// displayCard prints the card face on the left and its details on the right
func displayCard(painter render.Painter, c card.Card) {
	face := painter.Face(c)
	info := cardInfo(c)

	const spacing = 4
	faceWidth := 0
	for _, line := range face {
		faceWidth = max(faceWidth, render.VisibleWidth(line))
	}

	fmt.Println()
	for i := range max(len(face), len(info)) {
		fmt.Print("  ")
		if i < len(face) {
			fmt.Print(face[i])
			fmt.Print(strings.Repeat(" ", faceWidth+spacing-render.VisibleWidth(face[i])))
		} else {
			fmt.Print(strings.Repeat(" ", faceWidth+spacing))
		}
		if i < len(info) {
			fmt.Print(info[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
