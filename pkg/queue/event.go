package queue

import "time"

type EventType string

const (
	EventUserFollowed   EventType = "user.followed"
	EventReviewLiked    EventType = "review.liked"
	EventListLiked      EventType = "list.liked"
	EventCommentCreated EventType = "comment.created"
)

const (
	minPriority = 0
	maxPriority = 10
)

// Event is a social interaction addressed to one recipient.
type Event struct {
	Type          EventType `json:"type"`
	ActorID       uint      `json:"actor_id"`
	ActorUsername string    `json:"actor_username"`
	RecipientID   uint      `json:"recipient_id"`
	SubjectID     uint      `json:"subject_id"`
	Priority      int       `json:"priority"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// DefaultPriority ranks events for the priority queue.
func DefaultPriority(t EventType) int {
	switch t {
	case EventCommentCreated:
		return 5
	case EventUserFollowed:
		return 4
	case EventReviewLiked, EventListLiked:
		return 3
	default:
		return 1
	}
}

func clampPriority(p int) uint8 {
	if p < minPriority {
		p = minPriority
	}
	if p > maxPriority {
		p = maxPriority
	}
	return uint8(p)
}
