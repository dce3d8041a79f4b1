/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package apigateway

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockViewer implements Viewer for testing
type MockViewer struct {
	mock.Mock
}

func (m *MockViewer) Show(ctx context.Context, apiID string) error {
	args := m.Called(ctx, apiID)
	return args.Error(0)
}
