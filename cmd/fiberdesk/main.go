package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/cli/billing"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/cli/migrate"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/cli/server"
)

// @title FiberDesk API
// @version 1.0.0
// @description Back-office API for a fiber internet provider: network inventory, customers, packages, subscriptions and billing.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "fiberdesk",
		Short: "FiberDesk - ISP back-office API",
		Long:  `FiberDesk manages OLT/ODC/ODP infrastructure, customers, service packages, subscriptions and payments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		billing.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
