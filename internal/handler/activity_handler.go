package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/service"
)

const activityNotFound = "활동을 찾을 수 없습니다"

type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *zap.Logger
}

func NewActivityHandler(activityService *service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, logger: logger}
}

func (h *ActivityHandler) List(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.activityService.List(c.Request.Context(), u.ID))
}

func (h *ActivityHandler) Create(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.ActivityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create activity: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.activityService.Create(c.Request.Context(), u.ID, req))
}

func (h *ActivityHandler) Update(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.ActivityPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.activityService.Update(c.Request.Context(), u.ID, c.Param("id"), req)
	if err != nil {
		writeRecordError(c, h.logger, err, activityNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	a, err := h.activityService.Delete(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		writeRecordError(c, h.logger, err, activityNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "활동이 삭제되었습니다",
		"deletedActivity": a,
	})
}

func (h *ActivityHandler) Reorder(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req struct {
		ActivityIDs []string `json:"activityIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.activityService.Reorder(c.Request.Context(), u.ID, req.ActivityIDs)
	if errors.Is(err, service.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 활동 ID가 포함되어 있습니다"})
		return
	}
	if err != nil {
		writeRecordError(c, h.logger, err, activityNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "활동 순서가 변경되었습니다"})
}
