package cli

import (
	"context"
	"fmt"
	"time"

	"concierge/config"
	"concierge/cron"
	"concierge/database"
	cmsRepo "concierge/database/repository/cms"
	"concierge/services/cms"
	"concierge/services/contact"
	"concierge/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// openGateway builds the CMS gateway named by CMS_DRIVER. The returned
// closer releases any connection it opened.
func openGateway(ctx context.Context) (cms.Gateway, func(), error) {
	cfg := config.AppConfig
	noop := func() {}

	switch cfg.CMSDriver {
	case "http":
		return cms.NewHTTPGateway(cms.HTTPConfig{
			BaseURL: cfg.CMSBaseURL,
			APIKey:  cfg.CMSAPIKey,
			SiteID:  cfg.CMSSiteID,
			Timeout: time.Duration(cfg.CMSTimeoutSeconds) * time.Second,
		}), noop, nil

	case "mongo":
		if err := database.InitDB(); err != nil {
			return nil, noop, err
		}
		closer := func() {
			ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
			defer cancel()
			if err := database.Close(ctx); err != nil {
				utils.GetLogger().Warn("failed to disconnect MongoDB", zap.Error(err))
			}
		}
		return cmsRepo.NewMongoGateway(database.ContentDB()), closer, nil

	case "memory", "":
		gw := cms.NewMemoryGateway()
		if cfg.CMSFixtures != "" {
			f, err := cms.ReadFixturesFile(cfg.CMSFixtures)
			if err != nil {
				return nil, noop, err
			}
			if err := gw.Load(f); err != nil {
				return nil, noop, err
			}
		}
		return gw, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown CMS_DRIVER %q (want memory, http or mongo)", cfg.CMSDriver)
}

// openSink builds the contact delivery sink named by CONTACT_DELIVERY.
func openSink(logger *zap.Logger) (contact.Sink, func(), error) {
	cfg := config.AppConfig
	switch cfg.ContactDelivery {
	case "queue":
		if !cfg.RedisEnabled() {
			return nil, func() {}, fmt.Errorf("CONTACT_DELIVERY=queue requires REDIS_ADDR")
		}
		client := asynq.NewClient(cron.QueueRedisOpt())
		return &contact.QueueSink{Client: client, Logger: logger}, func() { client.Close() }, nil
	case "simulated", "":
		logger.Warn("contact form delivery is simulated; submissions are acknowledged but not sent")
		return &contact.SimulatedSink{
			Delay:  time.Duration(cfg.ContactSimulatedDelayMS) * time.Millisecond,
			Logger: logger,
		}, func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("unknown CONTACT_DELIVERY %q (want simulated or queue)", cfg.ContactDelivery)
}

// healthChecks lists the dependencies /health reports on.
func healthChecks(gw cms.Gateway) map[string]utils.Pinger {
	checks := map[string]utils.Pinger{"cms": gw}
	if config.AppConfig.RedisEnabled() {
		checks["redis"] = utils.PingFunc(func(ctx context.Context) error {
			client, err := utils.GetInboxClient()
			if err != nil {
				return err
			}
			return client.Ping(ctx).Err()
		})
	}
	return checks
}
