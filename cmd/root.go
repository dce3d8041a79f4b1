/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/orien/lbtree/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lbtree",
	Short: "Display AWS resource hierarchies as trees",
	Long: `Lbtree queries AWS and prints a resource's sub-resources as an indented tree:

• Application Load Balancers with their listeners, rules, actions, target groups and targets
• API Gateway REST APIs with their resources, methods and integrations
• ECS clusters with their services, tasks and containers

When the top-level resource is not supplied on the command line, lbtree opens
an interactive fuzzy picker fed by the paginated AWS API so you can choose one.`,
	Version: version.Short(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// RootCommand exposes the root command for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region (overrides the environment and shared config)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile")
	rootCmd.PersistentFlags().Bool("plain", false, "disable the interactive picker and colour output")
}
