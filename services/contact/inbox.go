package contact

import (
	"context"
	"encoding/json"
	"fmt"

	"concierge/models"

	"github.com/go-redis/redis/v8"
)

const (
	InboxKey = "contact:inbox"
	// InboxCap bounds the inbox list; older inquiries fall off the end.
	InboxCap = 1000
)

// Inbox stores delivered inquiries in a capped Redis list, newest first.
type Inbox struct {
	Client redis.Cmdable
}

func (b *Inbox) Store(ctx context.Context, in models.ContactInquiry) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = b.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, InboxKey, raw)
		p.LTrim(ctx, InboxKey, 0, InboxCap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Inbox.Store: %w", err)
	}
	return nil
}

// Recent returns up to n stored inquiries, newest first.
func (b *Inbox) Recent(ctx context.Context, n int64) ([]models.ContactInquiry, error) {
	if n <= 0 {
		return nil, nil
	}
	vals, err := b.Client.LRange(ctx, InboxKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("Inbox.Recent: %w", err)
	}
	out := make([]models.ContactInquiry, 0, len(vals))
	for _, v := range vals {
		var in models.ContactInquiry
		if err := json.Unmarshal([]byte(v), &in); err != nil {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}
