// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// PrintFormula logs a formula line by line, highlighted as ruby when color is enabled
func PrintFormula(logger *log.Logger, formula string) {
	formula = strings.TrimRight(formula, "\n")

	if termenv.EnvNoColor() {
		for line := range strings.SplitSeq(formula, "\n") {
			logger.Print(line)
		}
		return
	}

	var buf strings.Builder
	style := "tokyonight-day"
	if lipgloss.HasDarkBackground() {
		style = "tokyonight-moon"
	}
	if err := quick.Highlight(&buf, formula, "ruby", "terminal256", style); err != nil {
		logger.Debugf("failed to highlight: %v", err)
		for line := range strings.SplitSeq(formula, "\n") {
			logger.Print(line)
		}
		return
	}

	gutter := lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{
		Light: "#c5c6bC",
		Dark:  "#3a3943",
	}).Render(" ")

	for line := range strings.SplitSeq(buf.String(), "\n") {
		logger.Printf("%s %s", gutter, line)
	}
}
