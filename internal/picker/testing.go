/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package picker

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPicker implements Picker for testing. Like the real picker, it drains
// the item channel so the caller's fetch goroutine always completes.
type MockPicker struct {
	mock.Mock

	// Received holds the items streamed during the last Pick call
	Received []Item
}

func (m *MockPicker) Pick(ctx context.Context, prompt string, items <-chan Item) (string, bool, error) {
	m.Received = nil
	for item := range items {
		m.Received = append(m.Received, item)
	}
	args := m.Called(ctx, prompt)
	return args.String(0), args.Bool(1), args.Error(2)
}
