package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// PrintBanner writes the Logos ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Gold to teal, one color per line
	lines := []termenv.Style{
		termenv.String(" _                         ").Foreground(p.Color("#fbbf24")),
		termenv.String("| |    ___   __ _  ___  ___ ").Foreground(p.Color("#a3e635")),
		termenv.String("| |   / _ \\ / _` |/ _ \\/ __|").Foreground(p.Color("#4ade80")),
		termenv.String("| |__| (_) | (_| | (_) \\__ \\").Foreground(p.Color("#2dd4bf")),
		termenv.String("|_____\\___/ \\__, |\\___/|___/").Foreground(p.Color("#22d3ee")),
		termenv.String("            |___/           ").Foreground(p.Color("#38bdf8")),
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
