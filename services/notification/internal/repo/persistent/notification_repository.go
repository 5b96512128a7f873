package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yadig/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	// InboxSize caps how many notifications are kept per user.
	InboxSize = 100
	inboxTTL  = 30 * 24 * time.Hour
)

// Subscription is a live feed of notifications pushed to one user.
type Subscription interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

type NotificationRepository interface {
	Push(ctx context.Context, notification entity.Notification) error
	List(ctx context.Context, userID uint, limit, offset int) ([]entity.Notification, int64, error)
	Subscribe(ctx context.Context, userID uint) Subscription
}

type notificationRepository struct {
	client *redis.Client
}

func NewNotificationRepository(client *redis.Client) NotificationRepository {
	return &notificationRepository{client: client}
}

func inboxKey(userID uint) string {
	return fmt.Sprintf("notifications:%d", userID)
}

// Push stores the notification at the head of the user's inbox and publishes it
// on the channel of the same name.
func (r *notificationRepository) Push(ctx context.Context, notification entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := inboxKey(notification.UserID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, InboxSize-1)
	pipe.Expire(ctx, key, inboxTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := r.client.Publish(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to channel %s: %w", key, err)
	}
	return nil
}

// List returns the newest-first page and the inbox size. Entries that do not
// decode are skipped.
func (r *notificationRepository) List(ctx context.Context, userID uint, limit, offset int) ([]entity.Notification, int64, error) {
	key := inboxKey(userID)

	raw, err := r.client.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(item), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}

	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *notificationRepository) Subscribe(ctx context.Context, userID uint) Subscription {
	return r.client.Subscribe(ctx, inboxKey(userID))
}
