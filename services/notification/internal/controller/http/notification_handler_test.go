package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yadig/pkg/jwt"
	"yadig/pkg/logger"
	"yadig/pkg/middleware"
	"yadig/pkg/queue"
	"yadig/services/notification/internal/entity"
	"yadig/services/notification/internal/repo/persistent"
	"yadig/services/notification/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID uint, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationUseCase) Subscribe(ctx context.Context, userID uint) persistent.Subscription {
	return m.Called(ctx, userID).Get(0).(persistent.Subscription)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

func setupNotificationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, nil, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response["error"])
}

func TestGetNotifications_Success(t *testing.T) {
	uc := new(MockNotificationUseCase)
	page := []entity.Notification{{UserID: 7, Type: "user.followed", Message: "bob started following you"}}
	uc.On("GetNotifications", mock.Anything, uint(7), 20, 5).Return(page, int64(6), nil)
	handler := NewNotificationHandler(uc, nil, nil, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", withUser("7"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=20&offset=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Notifications []entity.Notification `json:"notifications"`
		Count         int                   `json:"count"`
		Total         int64                 `json:"total"`
		Offset        int                   `json:"offset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, int64(6), response.Total)
	assert.Equal(t, 5, response.Offset)
	assert.Equal(t, "bob started following you", response.Notifications[0].Message)
	uc.AssertExpectations(t)
}

func TestGetNotifications_OutOfRangeParamsFallBack(t *testing.T) {
	uc := new(MockNotificationUseCase)
	uc.On("GetNotifications", mock.Anything, uint(7), defaultLimit, 0).Return([]entity.Notification{}, int64(0), nil)
	handler := NewNotificationHandler(uc, nil, nil, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", withUser("7"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=500&offset=-3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestGetNotifications_StoreFailure(t *testing.T) {
	uc := new(MockNotificationUseCase)
	uc.On("GetNotifications", mock.Anything, uint(7), defaultLimit, 0).Return(nil, int64(0), errors.New("redis down"))
	handler := NewNotificationHandler(uc, nil, nil, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", withUser("7"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to get notifications")
}

func TestStream_RequiresToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret")
	handler := NewNotificationHandler(new(MockNotificationUseCase), jwtService, nil, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications/ws", handler.Stream)

	for url, message := range map[string]string{
		"/notifications/ws":            "Token required",
		"/notifications/ws?token=junk": "Invalid or expired token",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), message)
	}
}

func TestStream_DeliversPublishedNotifications(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := persistent.NewNotificationRepository(client)
	uc := new(MockNotificationUseCase)
	uc.On("Subscribe", mock.Anything, uint(7)).Return(repo.Subscribe(context.Background(), 7))

	jwtService := jwt.NewService("test-secret")
	token, err := jwtService.GenerateToken("7", "alice", "user")
	require.NoError(t, err)

	router := setupNotificationTestRouter()
	router.GET("/notifications/ws", NewNotificationHandler(uc, jwtService, []string{"http://localhost:3000"}, logger.New()).Stream)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/notifications/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	notification := entity.Notification{UserID: 7, Type: "review.liked", Message: "bob liked your review"}
	require.Eventually(t, func() bool {
		subs, err := client.PubSubNumSub(context.Background(), "notifications:7").Result()
		return err == nil && subs["notifications:7"] > 0
	}, 2*time.Second, 20*time.Millisecond)
	require.NoError(t, repo.Push(context.Background(), notification))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var got entity.Notification
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "bob liked your review", got.Message)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://localhost:3000", "https://yadig.com/"})

	cases := map[string]bool{
		"":                      true,
		"http://localhost:3000": true,
		"https://yadig.com":     true,
		"https://evil.example":  false,
		"http://localhost:3001": false,
	}
	for origin, want := range cases {
		req := httptest.NewRequest("GET", "/notifications/ws", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		assert.Equal(t, want, check(req), origin)
	}

	req := httptest.NewRequest("GET", "/notifications/ws", nil)
	req.Header.Set("Origin", "https://anything.example")
	assert.True(t, originChecker([]string{"*"})(req))
}

func TestStream_RejectsForeignOrigin(t *testing.T) {
	jwtService := jwt.NewService("test-secret")
	token, err := jwtService.GenerateToken("7", "alice", "user")
	require.NoError(t, err)

	uc := new(MockNotificationUseCase)
	router := setupNotificationTestRouter()
	router.GET("/notifications/ws", NewNotificationHandler(uc, jwtService, []string{"http://localhost:3000"}, logger.New()).Stream)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/notifications/ws?token=" + token
	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	uc.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}
