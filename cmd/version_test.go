/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Exists(t *testing.T) {
	cmd := findCommand(rootCmd, "version")

	require.NotNil(t, cmd, "version command should be registered")
	assert.Equal(t, "version", cmd.Use)
}

func TestVersionCommand_PrintsVersionInfo(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "lbtree")
	assert.Contains(t, output, "Git commit:")
	assert.Contains(t, output, "Build date:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "Platform:")
}
