package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/logos/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", fmt.Errorf("glamour init: %w", err)
		}
		return r.Render(markdown)
	}
}

// ReportMarkdown lays out a Result as a markdown document.
// Geometry values are printed with %g so the raw doubles stay visible.
func ReportMarkdown(workflow string, res domain.Result) string {
	var sb strings.Builder

	sb.WriteString("# " + res.Signature + "\n\n")
	sb.WriteString(fmt.Sprintf("**Status:** `%s`\n\n", res.Status))

	if workflow != "" {
		preview := workflow
		if r := []rune(preview); len(r) > 60 {
			preview = string(r[:60]) + "…"
		}
		sb.WriteString(fmt.Sprintf("> %s\n\n", strings.ReplaceAll(preview, "\n", " ")))
	}

	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Input mass | `%s` |\n", res.InputMass))
	sb.WriteString(fmt.Sprintf("| Aligned output | `%s` |\n", res.AlignedOutput))
	sb.WriteString(fmt.Sprintf("| Integrity seal | `%s` |\n", res.IntegritySeal))

	sb.WriteString("\n## Geometric drift\n\n")
	sb.WriteString("| Measure | Value |\n")
	sb.WriteString("|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Triangle | `%g` |\n", res.GeometricDrift.Triangle))
	sb.WriteString(fmt.Sprintf("| Circle | `%g` |\n", res.GeometricDrift.Circle))
	sb.WriteString(fmt.Sprintf("| Linear | `%g` |\n", res.GeometricDrift.Linear))

	return sb.String()
}
