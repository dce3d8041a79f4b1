/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package picker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/sahilm/fuzzy"
)

// itemAddedMsg delivers one streamed item to the UI
type itemAddedMsg Item

// fetchDoneMsg signals that the backing fetch has finished
type fetchDoneMsg struct{}

// match is one row of the filtered view: an index into items plus the byte
// positions matched by the current query (for highlighting)
type match struct {
	index          int
	matchedIndexes []int
}

// model is the Bubble Tea model for the fuzzy picker
type model struct {
	prompt   string
	query    string
	items    []Item
	filtered []match

	cursor int
	width  int
	height int

	loading  bool
	quitting bool
	aborted  bool
	choice   *Item

	styles *StyleSet
	keys   keyMap
}

// newModel creates a picker model with an empty item list; items stream in
// via itemAddedMsg
func newModel(prompt string) model {
	return model{
		prompt:  prompt,
		loading: true,
		styles:  NewStyleSet(shouldUseColour()),
		keys:    defaultKeyMap(),
	}
}

// Init initialises the model
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case itemAddedMsg:
		m.items = append(m.items, Item(msg))
		m.refilter()

	case fetchDoneMsg:
		m.loading = false

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey applies one key press, identified by its bubbletea string form
func (m model) handleKey(keyName string) (tea.Model, tea.Cmd) {
	switch keyName {
	case "esc", "ctrl+c":
		m.aborted = true
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if len(m.filtered) > 0 {
			chosen := m.items[m.filtered[m.cursor].index]
			m.choice = &chosen
			m.quitting = true
			return m, tea.Quit
		}

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "backspace":
		if m.query != "" {
			_, size := utf8.DecodeLastRuneInString(m.query)
			m.query = m.query[:len(m.query)-size]
			m.refilter()
		}

	case "space":
		m.query += " "
		m.refilter()

	default:
		// Single printable runes extend the query; everything else
		// (function keys, chords) is ignored
		if utf8.RuneCountInString(keyName) == 1 {
			m.query += keyName
			m.refilter()
		}
	}

	return m, nil
}

// refilter recomputes the filtered view for the current query and clamps the
// cursor. An empty query shows every item in arrival order.
func (m *model) refilter() {
	if m.query == "" {
		m.filtered = make([]match, len(m.items))
		for i := range m.items {
			m.filtered[i] = match{index: i}
		}
	} else {
		results := fuzzy.FindFrom(m.query, itemSource(m.items))
		m.filtered = make([]match, len(results))
		for i, r := range results {
			m.filtered[i] = match{index: r.Index, matchedIndexes: r.MatchedIndexes}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// View renders the model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Query line
	b.WriteString(m.styles.Prompt.Render(m.prompt))
	b.WriteString(m.styles.Query.Render(m.query))
	b.WriteString("\n")

	// Counter line
	counter := fmt.Sprintf("%d/%d", len(m.filtered), len(m.items))
	if m.loading {
		counter += " (fetching)"
	}
	b.WriteString(m.styles.Counter.Render(counter))
	b.WriteString("\n")

	// Item rows, windowed around the cursor
	maxRows := m.visibleRows()
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(m.filtered))

	for i := start; i < end; i++ {
		row := m.filtered[i]
		line := m.highlight(m.items[row.index].Display, row.matchedIndexes)
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	// Footer
	b.WriteString(m.renderHelp())

	return b.String()
}

// visibleRows is the number of item rows that fit between the query line and
// the footer
func (m model) visibleRows() int {
	if m.height == 0 {
		// No WindowSizeMsg yet
		return 10
	}
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// highlight styles the byte positions the fuzzy matcher selected
func (m model) highlight(display string, matchedIndexes []int) string {
	if len(matchedIndexes) == 0 {
		return m.styles.Item.Render(display)
	}

	matched := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for offset, r := range display {
		if matched[offset] {
			b.WriteString(m.styles.Match.Render(string(r)))
		} else {
			b.WriteString(m.styles.Item.Render(string(r)))
		}
	}
	return b.String()
}

// renderHelp renders the footer key hints
func (m model) renderHelp() string {
	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		hints = append(hints, help.Key+" "+help.Desc)
	}
	return m.styles.Help.Render(strings.Join(hints, " • "))
}

// itemSource adapts the item list to the fuzzy matcher
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Display }
func (s itemSource) Len() int            { return len(s) }
