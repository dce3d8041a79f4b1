/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItems(m model, items ...Item) model {
	for _, item := range items {
		updated, _ := m.Update(itemAddedMsg(item))
		m = updated.(model)
	}
	return m
}

func pressKeys(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.handleKey(k)
		m = updated.(model)
	}
	return m
}

func TestModel_ItemsStreamIn(t *testing.T) {
	m := newModel("Select load balancer: ")
	assert.True(t, m.loading)
	assert.Empty(t, m.items)

	m = addItems(m,
		Item{Display: "web (web.example.com)", ID: "arn:web"},
		Item{Display: "api (api.example.com)", ID: "arn:api"},
	)

	assert.Len(t, m.items, 2)
	assert.Len(t, m.filtered, 2, "empty query should show all items")

	updated, _ := m.Update(fetchDoneMsg{})
	m = updated.(model)
	assert.False(t, m.loading)
}

func TestModel_EmptyQueryPreservesArrivalOrder(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "zebra", ID: "z"},
		Item{Display: "alpha", ID: "a"},
	)

	require.Len(t, m.filtered, 2)
	assert.Equal(t, "zebra", m.items[m.filtered[0].index].Display)
	assert.Equal(t, "alpha", m.items[m.filtered[1].index].Display)
}

func TestModel_QueryFiltersItems(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "production-web", ID: "1"},
		Item{Display: "staging-web", ID: "2"},
		Item{Display: "production-api", ID: "3"},
	)

	m = pressKeys(t, m, "a", "p", "i")

	require.Len(t, m.filtered, 1)
	assert.Equal(t, "3", m.items[m.filtered[0].index].ID)
	assert.NotEmpty(t, m.filtered[0].matchedIndexes, "matches should record highlight positions")
}

func TestModel_BackspaceRestoresMatches(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "cluster-one", ID: "1"},
		Item{Display: "cluster-two", ID: "2"},
	)

	m = pressKeys(t, m, "o", "n", "e")
	require.Len(t, m.filtered, 1)

	m = pressKeys(t, m, "backspace", "backspace", "backspace")
	assert.Equal(t, "", m.query)
	assert.Len(t, m.filtered, 2)
}

func TestModel_CursorNavigationClamps(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "one", ID: "1"},
		Item{Display: "two", ID: "2"},
	)

	// Cannot move above the first row
	m = pressKeys(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	m = pressKeys(t, m, "down")
	assert.Equal(t, 1, m.cursor)

	// Cannot move past the last row
	m = pressKeys(t, m, "down")
	assert.Equal(t, 1, m.cursor)
}

func TestModel_FilterClampsCursor(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "aa", ID: "1"},
		Item{Display: "ab", ID: "2"},
		Item{Display: "zz", ID: "3"},
	)

	m = pressKeys(t, m, "down", "down")
	require.Equal(t, 2, m.cursor)

	// Narrowing to two rows must pull the cursor back in range
	m = pressKeys(t, m, "a")
	assert.Less(t, m.cursor, len(m.filtered))
}

func TestModel_EnterSelectsItemUnderCursor(t *testing.T) {
	m := addItems(newModel("Select: "),
		Item{Display: "one", ID: "1"},
		Item{Display: "two", ID: "2"},
	)

	m = pressKeys(t, m, "down", "enter")

	require.NotNil(t, m.choice)
	assert.Equal(t, "2", m.choice.ID)
	assert.True(t, m.quitting)
	assert.False(t, m.aborted)
}

func TestModel_EnterWithNoMatchesDoesNothing(t *testing.T) {
	m := addItems(newModel("Select: "), Item{Display: "one", ID: "1"})

	m = pressKeys(t, m, "x", "enter")

	assert.Nil(t, m.choice)
	assert.False(t, m.quitting)
}

func TestModel_EscapeAborts(t *testing.T) {
	m := addItems(newModel("Select: "), Item{Display: "one", ID: "1"})

	m = pressKeys(t, m, "esc")

	assert.True(t, m.aborted)
	assert.True(t, m.quitting)
	assert.Nil(t, m.choice)
}

func TestModel_ViewShowsCounterAndLoading(t *testing.T) {
	m := addItems(newModel("Select cluster: "),
		Item{Display: "one", ID: "1"},
		Item{Display: "two", ID: "2"},
	)

	view := m.View()
	assert.Contains(t, view, "Select cluster: ")
	assert.Contains(t, view, "2/2")
	assert.Contains(t, view, "(fetching)")

	updated, _ := m.Update(fetchDoneMsg{})
	m = updated.(model)
	assert.NotContains(t, m.View(), "(fetching)")
}

func TestModel_ViewAfterQuitIsEmpty(t *testing.T) {
	m := pressKeys(t, newModel("Select: "), "esc")
	assert.Empty(t, m.View())
}

func TestModel_VisibleRowsDefaultsBeforeResize(t *testing.T) {
	m := newModel("Select: ")
	assert.Equal(t, 10, m.visibleRows())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = updated.(model)
	assert.Equal(t, 5, m.visibleRows())
}
