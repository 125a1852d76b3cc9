// Package cli holds the concierge command tree.
package cli

import (
	"concierge/config"
	"concierge/utils"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "concierge",
		Short:         "Exclusive services catalog and contact backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			utils.GetLogger()
			return nil
		},
	}

	root.AddCommand(serveCmd(), workerCmd(), servicesCmd(), seedCmd(), inboxCmd())
	return root.Execute()
}
