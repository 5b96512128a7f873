package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"yadig/pkg/logger"
	"yadig/services/social/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error"

// writeError answers with the status that matches err's kind. Anything outside
// the domain taxonomy, and storage failures, are logged and hidden.
func writeError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case entity.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case entity.IsCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case entity.IsUnauthorized(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case entity.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case entity.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if log != nil {
			log.Error("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
	}
}

// writeBindError reports the first field that failed its binding tag.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.Slice {
			msg = fmt.Sprintf("%s cannot have more than %s entries", fe.Field(), fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// RegisterValidation makes binding errors name fields by their json key.
func RegisterValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
