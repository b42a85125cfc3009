package main

import (
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "rescuectl",
		Short: "Operate the RescueDAO donation backend",
		Long: `rescuectl inspects and edits the role configuration shared by every
API instance, and scales token amounts to and from base units.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if logLevel == "" {
				return nil
			}
			return logger.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL: debug, info, warn or error")
	root.AddCommand(newRolesCmd(), newAmountsCmd())
	return root
}
