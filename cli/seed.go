package cli

import (
	"context"
	"fmt"
	"time"

	"concierge/database"
	cmsRepo "concierge/database/repository/cms"
	"concierge/services/cms"
	"concierge/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixtures.yaml>",
		Short: "Replace the Mongo services collection with fixture records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := cms.ReadFixturesFile(args[0])
			if err != nil {
				return err
			}

			if err := database.InitDB(); err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
				defer cancel()
				_ = database.Close(ctx)
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			n, err := cmsRepo.SeedServices(ctx, database.ContentDB(), fixtures)
			if err != nil {
				return err
			}
			utils.GetLogger().Info("seeded services", zap.Int("count", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d service(s).\n", n)
			return nil
		},
	}
}
