/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package picker

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Item is one selectable entry in the picker
type Item struct {
	Display string // what the user sees and matches against
	ID      string // what gets returned when selected
}

// Picker lets the user choose one item from a stream. Items arrive on the
// channel as the backing fetch paginates; closing the channel signals
// end-of-data. Pick returns the selected item's ID, or ok=false when the
// user aborted without selecting. Pick always consumes the channel to
// completion before returning, so senders never block forever.
type Picker interface {
	Pick(ctx context.Context, prompt string, items <-chan Item) (id string, ok bool, err error)
}

// ErrNotInteractive is returned when interactive selection is requested but
// stdout is not a terminal (or interactive mode is disabled)
var ErrNotInteractive = errors.New("interactive selection requires a terminal; supply the resource identifier on the command line")

// TUIPicker implements Picker with a fuzzy-filtering terminal UI
type TUIPicker struct {
	plain bool
}

// NewTUIPicker creates a picker. With plain set, Pick always fails with
// ErrNotInteractive instead of launching the UI.
func NewTUIPicker(plain bool) *TUIPicker {
	return &TUIPicker{plain: plain}
}

// Pick runs the fuzzy selection UI over the streamed items
func (p *TUIPicker) Pick(ctx context.Context, prompt string, items <-chan Item) (string, bool, error) {
	if p.plain || !ShouldUseInteractive() {
		drain(items)
		return "", false, ErrNotInteractive
	}

	program := tea.NewProgram(
		newModel(prompt),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Forward streamed items into the UI as they arrive. Once the program
	// has exited, Send drops messages, so this loop also drains whatever
	// the fetch still produces after a user abort.
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for item := range items {
			program.Send(itemAddedMsg(item))
		}
		program.Send(fetchDoneMsg{})
	}()

	finalModel, err := program.Run()
	<-forwarded
	if err != nil {
		return "", false, fmt.Errorf("running selection UI: %w", err)
	}

	final, ok := finalModel.(model)
	if !ok {
		return "", false, fmt.Errorf("selection UI exited unexpectedly")
	}
	if final.aborted || final.choice == nil {
		return "", false, nil
	}
	return final.choice.ID, true, nil
}

// ShouldUseInteractive determines whether the picker UI can run
// Returns false if:
// - LBTREE_PLAIN environment variable is set
// - NO_COLOR environment variable is set
// - TERM is "dumb" or empty
// - stdout is not a TTY
func ShouldUseInteractive() bool {
	// Check explicit disable via environment
	if os.Getenv("LBTREE_PLAIN") != "" {
		return false
	}

	// Check NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	// Check if stdout is a TTY
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func drain(items <-chan Item) {
	for range items {
	}
}
