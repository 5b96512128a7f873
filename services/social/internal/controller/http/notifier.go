package http

import (
	"context"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, event queue.Event) error
}

// Notifier publishes social events after a successful write. It never fails
// the request: publish errors are logged.
type Notifier struct {
	publisher EventPublisher
	log       *logger.Logger
}

// NewNotifier accepts a nil publisher, which turns every Notify into a no-op.
func NewNotifier(publisher EventPublisher, log *logger.Logger) *Notifier {
	return &Notifier{publisher: publisher, log: log}
}

func (n *Notifier) Notify(ctx context.Context, eventType queue.EventType, actor entity.Actor, recipientID, subjectID uint) {
	if n == nil || n.publisher == nil || recipientID == actor.ID {
		return
	}
	event := queue.Event{
		Type:          eventType,
		ActorID:       actor.ID,
		ActorUsername: actor.Username,
		RecipientID:   recipientID,
		SubjectID:     subjectID,
	}
	if err := n.publisher.PublishEvent(ctx, event); err != nil && n.log != nil {
		n.log.Warn("Failed to publish %s event for user %d: %v", eventType, recipientID, err)
	}
}
