/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/lbtree/internal/apigateway"
	"github.com/spf13/cobra"
)

var (
	// apiGatewayViewer can be injected for testing
	apiGatewayViewer apigateway.Viewer
)

// apiGatewayCmd represents the api-gateway command
var apiGatewayCmd = &cobra.Command{
	Use:   "api-gateway",
	Short: "Display an API Gateway REST API's hierarchy",
	Long: `Display an API Gateway REST API as a tree of its sub-resources.

The tree shows the API's resources with their methods and, where present,
each method's integration. A method whose integration cannot be fetched is
still shown; a warning goes to standard error.

When --api-id is not supplied, an interactive picker lists the account's
REST APIs as they stream in from the paginated API.

Examples:
  lbtree api-gateway                   # Pick a REST API interactively
  lbtree api-gateway --api-id a1b2c3   # Show a specific REST API`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiID, _ := cmd.Flags().GetString("api-id")

		viewer, err := getAPIGatewayViewer(cmd)
		if err != nil {
			return err
		}
		return viewer.Show(cmd.Context(), apiID)
	},
}

// getAPIGatewayViewer returns the viewer instance, creating a default one if none is set
func getAPIGatewayViewer(cmd *cobra.Command) (apigateway.Viewer, error) {
	if apiGatewayViewer != nil {
		return apiGatewayViewer, nil
	}

	client, err := newAWSClient(cmd)
	if err != nil {
		return nil, err
	}
	return apigateway.NewTreeViewer(client.APIGateway(), newPicker(cmd), newWriter()), nil
}

// SetAPIGatewayViewer allows injection of a viewer (for testing)
func SetAPIGatewayViewer(v apigateway.Viewer) {
	apiGatewayViewer = v
}

func init() {
	rootCmd.AddCommand(apiGatewayCmd)

	apiGatewayCmd.Flags().StringP("api-id", "i", "", "ID of the REST API to display")
}
