/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/orien/lbtree/internal/alb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestALBCommand_Exists(t *testing.T) {
	// Test that alb command is registered with root command
	cmd := findCommand(rootCmd, "alb")

	require.NotNil(t, cmd, "alb command should be registered")
	assert.Equal(t, "alb", cmd.Use)
}

func TestALBCommand_RejectsPositionalArgs(t *testing.T) {
	cmd := findCommand(rootCmd, "alb")
	require.NotNil(t, cmd)

	err := cmd.Args(cmd, []string{})
	assert.NoError(t, err, "no arguments should be valid")

	err = cmd.Args(cmd, []string{"extra"})
	assert.Error(t, err, "positional arguments should be invalid")
}

func TestALBCommand_Flags(t *testing.T) {
	cmd := findCommand(rootCmd, "alb")
	require.NotNil(t, cmd)

	flag := cmd.Flags().Lookup("load-balancer-arn")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
	assert.Equal(t, "l", flag.Shorthand)
}

func TestALBCommand_PassesARNToViewer(t *testing.T) {
	mockViewer := &alb.MockViewer{}
	mockViewer.On("Show", mock.Anything, "arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/test/abc").
		Return(nil).Once()

	oldViewer := albViewer
	SetALBViewer(mockViewer)
	defer SetALBViewer(oldViewer)

	rootCmd.SetArgs([]string{"alb", "--load-balancer-arn", "arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/test/abc"})
	err := rootCmd.Execute()

	assert.NoError(t, err)
	mockViewer.AssertExpectations(t)
}

func TestALBCommand_HandlesViewerError(t *testing.T) {
	mockViewer := &alb.MockViewer{}
	mockViewer.On("Show", mock.Anything, mock.Anything).
		Return(errors.New("access denied")).Once()

	oldViewer := albViewer
	SetALBViewer(mockViewer)
	defer SetALBViewer(oldViewer)

	rootCmd.SetArgs([]string{"alb", "--load-balancer-arn", "arn:lb"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	mockViewer.AssertExpectations(t)
}

func TestALBCommand_NoSelectionError(t *testing.T) {
	mockViewer := &alb.MockViewer{}
	mockViewer.On("Show", mock.Anything, mock.Anything).
		Return(alb.ErrNoSelection).Once()

	oldViewer := albViewer
	SetALBViewer(mockViewer)
	defer SetALBViewer(oldViewer)

	rootCmd.SetArgs([]string{"alb", "--load-balancer-arn", ""})
	err := rootCmd.Execute()

	assert.ErrorIs(t, err, alb.ErrNoSelection)
	mockViewer.AssertExpectations(t)
}

func TestSetALBViewer_AllowsInjection(t *testing.T) {
	mockViewer := &alb.MockViewer{}

	oldViewer := albViewer
	SetALBViewer(mockViewer)
	defer SetALBViewer(oldViewer)

	viewer, err := getALBViewer(findCommand(rootCmd, "alb"))
	require.NoError(t, err)
	assert.Equal(t, mockViewer, viewer, "SetALBViewer should allow dependency injection")
}
