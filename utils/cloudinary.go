package utils

import (
	"concierge/config"
	"concierge/services/media"

	"go.uber.org/zap"
)

// ImageResolver builds the image resolver from configuration. Without
// Cloudinary credentials only URLs and Wix media references resolve.
func ImageResolver() media.Resolver {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" {
		return media.NewImageResolver()
	}
	r, err := media.NewCloudinaryResolver(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		GetLogger().Warn("utils.ImageResolver: cloudinary disabled", zap.Error(err))
		return media.NewImageResolver()
	}
	return r
}
