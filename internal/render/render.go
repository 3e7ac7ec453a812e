// Package render draws cards for the terminal.
package render

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/dealer/internal/card"
)

const (
	faceWidth  = 9
	faceHeight = 5
	faceInner  = faceWidth - 2
	gap        = " "
)

var (
	paper      = mustHex("#f4f1e8")
	redInk     = mustHex("#c0392b")
	blackInk   = mustHex("#1c1c1c")
	wildInk    = mustHex("#7d3c98")
	colorRed   = colorize.New(colorize.FgRed, colorize.BgWhite)
	colorBlack = colorize.New(colorize.FgBlack, colorize.BgWhite)
	colorWild  = colorize.New(colorize.FgMagenta, colorize.BgWhite)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Painter colours text for one card.
type Painter struct {
	TrueColor bool
}

// Paint wraps s in the colours of c. Output is plain when colour is disabled.
func (p Painter) Paint(c card.Card, s string) string {
	if colorize.NoColor {
		return s
	}
	if p.TrueColor {
		return trueColorString(s, ink(c), paper)
	}
	return palette(c).Sprint(s)
}

func ink(c card.Card) colorful.Color {
	if f, ok := c.(card.Fixed); ok {
		if f.Color() == card.Red {
			return redInk
		}
		return blackInk
	}
	return wildInk
}

func palette(c card.Card) *colorize.Color {
	if f, ok := c.(card.Fixed); ok {
		if f.Color() == card.Red {
			return colorRed
		}
		return colorBlack
	}
	return colorWild
}

// trueColorString formats s with 24-bit foreground and background colours.
func trueColorString(s string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m", r1, g1, b1, r2, g2, b2, s)
}

// corner returns the index printed in the card corners, and the centre pip.
func corner(c card.Card) (string, string) {
	switch c := c.(type) {
	case card.Fixed:
		return c.Rank().Short(), c.Suit().Symbol()
	case card.Wild:
		return "W", "★"
	}
	return "?", "?"
}

// Label returns the short coloured label of a card, e.g. "A♠".
func (p Painter) Label(c card.Card) string {
	index, pip := corner(c)
	if _, ok := c.(card.Wild); ok {
		return p.Paint(c, pip+c.String())
	}
	return p.Paint(c, index+pip)
}

// Face draws a card as faceHeight lines of faceWidth columns.
func (p Painter) Face(c card.Card) []string {
	index, pip := corner(c)
	lines := []string{
		"┌" + strings.Repeat("─", faceInner) + "┐",
		"│" + padRight(index, faceInner) + "│",
		"│" + center(pip, faceInner) + "│",
		"│" + padLeft(index, faceInner) + "│",
		"└" + strings.Repeat("─", faceInner) + "┘",
	}
	for i, line := range lines {
		lines[i] = p.Paint(c, line)
	}
	return lines
}

// Hand lays the faces of cards side by side, wrapping to width columns.
func (p Painter) Hand(cards []card.Card, width int) []string {
	perRow := max(1, (width+len(gap))/(faceWidth+len(gap)))

	var out []string
	for start := 0; start < len(cards); start += perRow {
		row := cards[start:min(start+perRow, len(cards))]
		faces := make([][]string, len(row))
		for i, c := range row {
			faces[i] = p.Face(c)
		}
		for line := range faceHeight {
			parts := make([]string, len(faces))
			for i := range faces {
				parts[i] = faces[i][line]
			}
			out = append(out, strings.Join(parts, gap))
		}
	}
	return out
}

// Wrap joins words with single spaces into lines no wider than width.
// A word wider than width gets a line of its own.
func Wrap(words []string, width int) []string {
	var result []string
	var line string
	lineWidth := 0

	for _, word := range words {
		w := VisibleWidth(word)
		switch {
		case lineWidth == 0:
			line, lineWidth = word, w
		case lineWidth+1+w <= width:
			line += " " + word
			lineWidth += 1 + w
		default:
			result = append(result, line)
			line, lineWidth = word, w
		}
	}

	if lineWidth > 0 {
		result = append(result, line)
	}
	return result
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// VisibleWidth counts the runes of s that are not part of an escape sequence.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s))) + s
}

func center(s string, width int) string {
	left := max(0, (width-utf8.RuneCountInString(s))/2)
	return padRight(strings.Repeat(" ", left)+s, width)
}
