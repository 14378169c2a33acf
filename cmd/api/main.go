package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	_ "clainai/docs" // Swagger docs
)

// @title       ClainAI API
// @description Arabic-first assistant: identity shortcuts, agent tasks, and a multi-provider completion chain with an offline fallback.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "clainai",
		Short:        "ClainAI response orchestration service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yaml)")

	root.AddCommand(
		newServeCmd(&configPath),
		newCalendarAuthCmd(),
	)
	return root
}
