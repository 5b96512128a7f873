package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"yadig/pkg/jwt"
	"yadig/pkg/logger"
	"yadig/pkg/middleware"
	"yadig/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	tokens              TokenValidator
	upgrader            websocket.Upgrader
	logger              *logger.Logger
}

// NewNotificationHandler accepts WebSocket upgrades only from allowedOrigins,
// the same list the CORS middleware uses. "*" allows any origin.
func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, tokens TokenValidator, allowedOrigins []string, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		tokens:              tokens,
		upgrader:            websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
		logger:              logger,
	}
}

// originChecker lets requests without an Origin header through; they do not
// come from a browser page.
func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed["*"] {
			return true
		}
		return allowed[strings.TrimRight(origin, "/")]
	}
}

func userIDFrom(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetNotifications godoc
// @Summary      Get user notifications
// @Description  Newest-first notifications for the authenticated user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of notifications to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := userIDFrom(c.GetString(middleware.ContextUserID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := defaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= maxLimit {
			limit = parsedLimit
		}
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	notifications, total, err := h.notificationUseCase.GetNotifications(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
		"total":         total,
		"offset":        offset,
	})
}

// Stream godoc
// @Summary      Live notifications
// @Description  WebSocket feed of new notifications. Browsers pass the token as a query parameter.
// @Tags         notifications
// @Param        token query string true "JWT access token"
// @Failure      401  {object}  map[string]string
// @Router       /notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID, ok := userIDFrom(claims.UserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := h.notificationUseCase.Subscribe(ctx, userID)
	defer sub.Close()

	h.logger.Info("WebSocket connected for user %d", userID)

	go func() {
		feed := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-feed:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					h.logger.Warn("Failed to write WebSocket message: %v", err)
					cancel()
					return
				}
			}
		}
	}()

	// Reads only drive control frames; gorilla answers pings itself.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.logger.Info("WebSocket disconnected for user %d", userID)
}
