/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package picker

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// StyleSet contains the styles for the picker UI
type StyleSet struct {
	Prompt  lipgloss.Style
	Query   lipgloss.Style
	Counter lipgloss.Style
	Cursor  lipgloss.Style
	Item    lipgloss.Style
	Match   lipgloss.Style
	Help    lipgloss.Style

	useColour bool
}

// NewStyleSet creates a style set using Fang's colour scheme for consistency
// with the rest of the application.
//
// Colour mapping from Fang ColorScheme:
//   - Title   -> prompt
//   - Base    -> query text, items
//   - Command -> cursor, matched characters
//   - Comment -> counter, help footer
func NewStyleSet(useColour bool) *StyleSet {
	s := &StyleSet{useColour: useColour}

	if useColour {
		// Detect dark background and get Fang's colour scheme
		hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
		lightDark := lipgloss.LightDark(hasDark)
		scheme := fang.DefaultColorScheme(lightDark)

		s.Prompt = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Title)

		s.Query = lipgloss.NewStyle().
			Foreground(scheme.Base)

		s.Counter = lipgloss.NewStyle().
			Foreground(scheme.Comment)

		s.Cursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Command)

		s.Item = lipgloss.NewStyle().
			Foreground(scheme.Base)

		s.Match = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Command)

		s.Help = lipgloss.NewStyle().
			Foreground(scheme.Comment)
	} else {
		// Plain styles without colour
		plainStyle := lipgloss.NewStyle()

		s.Prompt = plainStyle.Bold(true)
		s.Query = plainStyle
		s.Counter = plainStyle
		s.Cursor = plainStyle.Bold(true)
		s.Item = plainStyle
		s.Match = plainStyle.Bold(true)
		s.Help = plainStyle
	}

	return s
}

// shouldUseColour determines whether to render with colour
func shouldUseColour() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
