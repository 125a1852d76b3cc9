package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// CMS gateway selection and connection.
	CMSDriver         string `mapstructure:"CMS_DRIVER"`
	CMSFixtures       string `mapstructure:"CMS_FIXTURES"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	CMSDatabase       string `mapstructure:"CMS_DATABASE"`
	CMSBaseURL        string `mapstructure:"CMS_BASE_URL"`
	CMSAPIKey         string `mapstructure:"CMS_API_KEY"`
	CMSSiteID         string `mapstructure:"CMS_SITE_ID"`
	CMSTimeoutSeconds int    `mapstructure:"CMS_TIMEOUT_SECONDS"`
	HomeFeaturedLimit int    `mapstructure:"HOME_FEATURED_LIMIT"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisInboxDB  int    `mapstructure:"REDIS_INBOX_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Contact form delivery.
	ContactDelivery         string `mapstructure:"CONTACT_DELIVERY"`
	ContactSimulatedDelayMS int    `mapstructure:"CONTACT_SIMULATED_DELAY_MS"`

	// Cloudinary image delivery.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	HealthCheckSchedule string `mapstructure:"HEALTH_CHECK_SCHEDULE"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("CMS_DRIVER", "memory")
	viper.SetDefault("CMS_FIXTURES", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CMS_DATABASE", "concierge")
	viper.SetDefault("CMS_BASE_URL", "https://www.wixapis.com")
	viper.SetDefault("CMS_API_KEY", "")
	viper.SetDefault("CMS_SITE_ID", "")
	viper.SetDefault("CMS_TIMEOUT_SECONDS", 10)
	viper.SetDefault("HOME_FEATURED_LIMIT", 3)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_INBOX_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("CONTACT_DELIVERY", "simulated")
	viper.SetDefault("CONTACT_SIMULATED_DELAY_MS", 1500)
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("HEALTH_CHECK_SCHEDULE", "@every 1m")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig.CMSDriver = strings.ToLower(strings.TrimSpace(AppConfig.CMSDriver))
	AppConfig.ContactDelivery = strings.ToLower(strings.TrimSpace(AppConfig.ContactDelivery))
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RedisEnabled reports whether a Redis address is configured.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
