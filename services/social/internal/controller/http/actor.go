package http

import (
	"context"
	"net/http"
	"strconv"

	"yadig/pkg/logger"
	"yadig/pkg/middleware"
	"yadig/services/social/internal/entity"

	"github.com/gin-gonic/gin"
)

const contextActor = "actor"

// ActorResolver loads the current identity behind a token subject.
type ActorResolver interface {
	Resolve(ctx context.Context, id uint) (entity.Actor, error)
}

// ActorMiddleware runs after middleware.AuthMiddleware and replaces the token
// claims with the account's current role and blocked state.
func ActorMiddleware(resolver ActorResolver, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.GetString(middleware.ContextUserID), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		actor, err := resolver.Resolve(c.Request.Context(), uint(id))
		if err != nil {
			if entity.IsNotFound(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			} else {
				writeError(c, log, err)
			}
			c.Abort()
			return
		}

		c.Set(contextActor, actor)
		c.Next()
	}
}

// actorFrom returns the anonymous actor when no middleware resolved one.
func actorFrom(c *gin.Context) entity.Actor {
	if v, ok := c.Get(contextActor); ok {
		if actor, ok := v.(entity.Actor); ok {
			return actor
		}
	}
	return entity.Actor{}
}
