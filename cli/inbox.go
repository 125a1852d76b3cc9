package cli

import (
	"fmt"

	"concierge/config"
	"concierge/services/contact"
	"concierge/utils"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func inboxCmd() *cobra.Command {
	var limit int64
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show the most recent delivered inquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.AppConfig.RedisEnabled() {
				return fmt.Errorf("inbox requires REDIS_ADDR")
			}
			client, err := utils.GetInboxClient()
			if err != nil {
				return err
			}
			defer client.Close()

			inbox := &contact.Inbox{Client: client}
			items, err := inbox.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Inbox is empty.")
				return nil
			}
			for _, in := range items {
				service := in.Service
				if service == "" {
					service = "-"
				}
				fmt.Fprintf(out, "%s  %s <%s>  [%s]  %s\n  %s\n",
					in.ID, in.Name, in.Email, service, humanize.Time(in.SubmittedAt), in.Message)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 20, "number of inquiries to show")
	return cmd
}
