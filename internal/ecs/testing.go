/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ecs

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockViewer is a mock implementation of Viewer for testing
type MockViewer struct {
	mock.Mock
}

func (m *MockViewer) Show(ctx context.Context, clusterARN, serviceARN string) error {
	args := m.Called(ctx, clusterARN, serviceARN)
	return args.Error(0)
}
