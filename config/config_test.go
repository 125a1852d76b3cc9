package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CMS_DRIVER", " HTTP ")
	t.Setenv("HOME_FEATURED_LIMIT", "5")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "http", AppConfig.CMSDriver)
	assert.Equal(t, 5, AppConfig.HomeFeaturedLimit)
	assert.Equal(t, "simulated", AppConfig.ContactDelivery)
	assert.Equal(t, 1500, AppConfig.ContactSimulatedDelayMS)
	assert.False(t, IsProduction())
}

func TestOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.Origins())
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		Config{AllowedOrigins: "https://a.example, ,https://b.example"}.Origins())
}
