package usecase

import (
	"context"
	"fmt"
	"time"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/notification/internal/entity"
	"yadig/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
)

type NotificationUseCase interface {
	HandleEvent(ctx context.Context, event queue.Event) error
	GetNotifications(ctx context.Context, userID uint, limit, offset int) ([]entity.Notification, int64, error)
	Subscribe(ctx context.Context, userID uint) persistent.Subscription
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	logger           *logger.Logger
	now              func() time.Time
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

var templates = map[queue.EventType]string{
	queue.EventUserFollowed:   "%s started following you",
	queue.EventReviewLiked:    "%s liked your review",
	queue.EventListLiked:      "%s liked your list",
	queue.EventCommentCreated: "%s commented on your review",
}

// HandleEvent renders the event into the recipient's inbox. Unknown event
// types are dropped so a newer publisher cannot wedge the queue.
func (uc *notificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	template, ok := templates[event.Type]
	if !ok {
		uc.logger.Warn("[NOTIFICATION HANDLER] Dropping unknown event type %s", event.Type)
		return nil
	}
	if event.RecipientID == 0 || event.RecipientID == event.ActorID {
		return nil
	}

	actor := event.ActorUsername
	if actor == "" {
		actor = "Someone"
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = uc.now()
	}

	notification := entity.Notification{
		ID:        uuid.New(),
		UserID:    event.RecipientID,
		Type:      string(event.Type),
		Message:   fmt.Sprintf(template, actor),
		ActorID:   event.ActorID,
		SubjectID: event.SubjectID,
		CreatedAt: createdAt.UTC(),
	}

	if err := uc.notificationRepo.Push(ctx, notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to store %s notification for user %d: %v", event.Type, event.RecipientID, err)
		return err
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Stored %s notification for user %d", event.Type, event.RecipientID)
	return nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID uint, limit, offset int) ([]entity.Notification, int64, error) {
	return uc.notificationRepo.List(ctx, userID, limit, offset)
}

func (uc *notificationUseCase) Subscribe(ctx context.Context, userID uint) persistent.Subscription {
	return uc.notificationRepo.Subscribe(ctx, userID)
}
