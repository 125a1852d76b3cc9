// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"concierge/config"

	"github.com/go-redis/redis/v8"
)

// InboxClient holds delivered contact inquiries.
var InboxClient *redis.Client

// InitInbox connects the Redis client for the contact inbox (REDIS_INBOX_DB).
func InitInbox() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisInboxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Inbox): %w", err)
	}
	InboxClient = client
	return nil
}

// GetInboxClient returns the inbox client, connecting on first use.
func GetInboxClient() (*redis.Client, error) {
	if InboxClient == nil {
		if err := InitInbox(); err != nil {
			return nil, err
		}
	}
	return InboxClient, nil
}
