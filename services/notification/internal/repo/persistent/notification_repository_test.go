package persistent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yadig/services/notification/internal/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (NotificationRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewNotificationRepository(client), mr
}

func notification(userID uint, message string) entity.Notification {
	return entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      "review.liked",
		Message:   message,
		ActorID:   2,
		SubjectID: 10,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotificationRepository_PushAndList(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	first := notification(7, "first")
	second := notification(7, "second")
	require.NoError(t, repo.Push(ctx, first))
	require.NoError(t, repo.Push(ctx, second))
	require.NoError(t, repo.Push(ctx, notification(8, "other user")))

	got, total, err := repo.List(ctx, 7, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Message)
	assert.Equal(t, first, got[1])

	assert.True(t, mr.TTL("notifications:7") > 0)
}

func TestNotificationRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Push(ctx, notification(1, fmt.Sprintf("n%d", i))))
	}

	page, total, err := repo.List(ctx, 1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "n3", page[0].Message)
	assert.Equal(t, "n2", page[1].Message)
}

func TestNotificationRepository_InboxIsCapped(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	for i := 0; i < InboxSize+5; i++ {
		require.NoError(t, repo.Push(ctx, notification(3, fmt.Sprintf("n%d", i))))
	}

	got, total, err := repo.List(ctx, 3, InboxSize, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(InboxSize), total)
	assert.Equal(t, fmt.Sprintf("n%d", InboxSize+4), got[0].Message)
}

func TestNotificationRepository_SkipsUndecodableEntries(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	require.NoError(t, repo.Push(ctx, notification(4, "ok")))
	_, err := mr.Lpush("notifications:4", "not json")
	require.NoError(t, err)

	got, total, err := repo.List(ctx, 4, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Message)
}

func TestNotificationRepository_EmptyInbox(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, total, err := repo.List(context.Background(), 99, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestNotificationRepository_SubscribeReceivesPush(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	sub := repo.Subscribe(ctx, 5)
	defer sub.Close()
	ps, ok := sub.(*redis.PubSub)
	require.True(t, ok)
	_, err := ps.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Push(ctx, notification(5, "live")))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "notifications:5", msg.Channel)
		assert.Contains(t, msg.Payload, `"message":"live"`)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}
