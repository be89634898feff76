package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/service"
)

// UserKey is the gin context key of the user set by the auth middleware.
const UserKey = "user"

// currentUser returns the user resolved by the auth middleware.
func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}

// requireUser aborts with 401 when no user is attached to the request.
func requireUser(c *gin.Context) (*model.User, bool) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "인증 토큰이 유효하지 않습니다"})
		return nil, false
	}
	return u, true
}

// writeRecordError maps a service error of a record operation to a response.
// notFound is the message used for ErrNotFound.
func writeRecordError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
