/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/lbtree/internal/ecs"
	"github.com/spf13/cobra"
)

var (
	// ecsViewer can be injected for testing
	ecsViewer ecs.Viewer
)

// ecsCmd represents the ecs command
var ecsCmd = &cobra.Command{
	Use:   "ecs",
	Short: "Display an ECS service's hierarchy",
	Long: `Display an ECS service as a tree of its sub-resources.

The tree shows the cluster, the service, the service's tasks, and each
task's containers with their images and runtime status.

When --cluster or --service is not supplied, an interactive picker lists the
candidates as they stream in from the paginated API. The cluster is selected
first, then the service within it.

Examples:
  lbtree ecs                                     # Pick cluster and service interactively
  lbtree ecs --cluster production                # Pick a service in the cluster
  lbtree ecs --cluster production --service web  # Show a specific service`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cluster, _ := cmd.Flags().GetString("cluster")
		service, _ := cmd.Flags().GetString("service")

		viewer, err := getECSViewer(cmd)
		if err != nil {
			return err
		}
		return viewer.Show(cmd.Context(), cluster, service)
	},
}

// getECSViewer returns the viewer instance, creating a default one if none is set
func getECSViewer(cmd *cobra.Command) (ecs.Viewer, error) {
	if ecsViewer != nil {
		return ecsViewer, nil
	}

	client, err := newAWSClient(cmd)
	if err != nil {
		return nil, err
	}
	return ecs.NewTreeViewer(client.ECS(), newPicker(cmd), newWriter()), nil
}

// SetECSViewer allows injection of a viewer (for testing)
func SetECSViewer(v ecs.Viewer) {
	ecsViewer = v
}

func init() {
	rootCmd.AddCommand(ecsCmd)

	ecsCmd.Flags().String("cluster", "", "name or ARN of the cluster")
	ecsCmd.Flags().String("service", "", "name or ARN of the service")
}
