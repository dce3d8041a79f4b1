/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/lbtree/internal/alb"
	"github.com/spf13/cobra"
)

var (
	// albViewer can be injected for testing
	albViewer alb.Viewer
)

// albCmd represents the alb command
var albCmd = &cobra.Command{
	Use:   "alb",
	Short: "Display an Application Load Balancer's hierarchy",
	Long: `Display an Application Load Balancer as a tree of its sub-resources.

The tree shows the load balancer's listeners with their rules and actions,
and its target groups with their registered targets.

When --load-balancer-arn is not supplied, an interactive picker lists the
account's load balancers as they stream in from the paginated API.

Examples:
  lbtree alb                                   # Pick a load balancer interactively
  lbtree alb --load-balancer-arn arn:aws:...   # Show a specific load balancer`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		arn, _ := cmd.Flags().GetString("load-balancer-arn")

		viewer, err := getALBViewer(cmd)
		if err != nil {
			return err
		}
		return viewer.Show(cmd.Context(), arn)
	},
}

// getALBViewer returns the viewer instance, creating a default one if none is set
func getALBViewer(cmd *cobra.Command) (alb.Viewer, error) {
	if albViewer != nil {
		return albViewer, nil
	}

	client, err := newAWSClient(cmd)
	if err != nil {
		return nil, err
	}
	return alb.NewTreeViewer(client.ELBV2(), newPicker(cmd), newWriter()), nil
}

// SetALBViewer allows injection of a viewer (for testing)
func SetALBViewer(v alb.Viewer) {
	albViewer = v
}

func init() {
	rootCmd.AddCommand(albCmd)

	albCmd.Flags().StringP("load-balancer-arn", "l", "", "ARN of the load balancer to display")
}
