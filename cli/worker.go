package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"concierge/config"
	"concierge/cron"
	"concierge/services/contact"
	"concierge/utils"

	"github.com/spf13/cobra"
)

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Deliver queued contact inquiries into the inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.AppConfig.RedisEnabled() {
				return fmt.Errorf("worker requires REDIS_ADDR")
			}
			client, err := utils.GetInboxClient()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return cron.RunInquiryWorker(ctx, &contact.Inbox{Client: client}, utils.GetLogger())
		},
	}
}
