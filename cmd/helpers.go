/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	awsx "github.com/orien/lbtree/internal/aws"
	"github.com/orien/lbtree/internal/picker"
	"github.com/orien/lbtree/internal/present"
	"github.com/spf13/cobra"
)

// newAWSClient creates an AWS client honouring the global region and
// profile flags
func newAWSClient(cmd *cobra.Command) (*awsx.Client, error) {
	region, _ := cmd.Flags().GetString("region")
	profile, _ := cmd.Flags().GetString("profile")

	client, err := awsx.NewClient(cmd.Context(), awsx.Config{
		Region:  region,
		Profile: profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

// newPicker creates the interactive picker, falling back to plain mode when
// the global flag asks for it or the terminal cannot host the picker
func newPicker(cmd *cobra.Command) picker.Picker {
	plain, _ := cmd.Flags().GetBool("plain")
	return picker.NewTUIPicker(plain || !picker.ShouldUseInteractive())
}

// newWriter creates the tree output writer
func newWriter() present.Writer {
	return present.StdoutWriter{}
}
