package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/service"
)

const sessionNotFound = "세션을 찾을 수 없습니다"

type DaySessionHandler struct {
	sessionService *service.DaySessionService
	logger         *zap.Logger
}

func NewDaySessionHandler(sessionService *service.DaySessionService, logger *zap.Logger) *DaySessionHandler {
	return &DaySessionHandler{sessionService: sessionService, logger: logger}
}

type dayResponse struct {
	Date     string             `json:"date"`
	Sessions []model.DaySession `json:"sessions"`
}

// List handles GET /api/day-sessions/:date
func (h *DaySessionHandler) List(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	date := c.Param("date")
	c.JSON(http.StatusOK, dayResponse{
		Date:     date,
		Sessions: h.sessionService.List(c.Request.Context(), u.ID, date),
	})
}

// Create handles POST /api/day-sessions. Validation failures answer 500 with
// the cause.
func (h *DaySessionHandler) Create(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.DaySessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.sessionService.Create(c.Request.Context(), u.ID, req)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidSession) {
			h.logger.Error("Create session: failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션 생성 실패: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Update handles PUT /api/day-sessions/:id
func (h *DaySessionHandler) Update(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.DaySessionPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.sessionService.Update(c.Request.Context(), u.ID, c.Param("id"), req)
	if err != nil {
		writeRecordError(c, h.logger, err, sessionNotFound)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Delete handles DELETE /api/day-sessions/:id
func (h *DaySessionHandler) Delete(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.sessionService.Delete(c.Request.Context(), u.ID, id); err != nil {
		writeRecordError(c, h.logger, err, sessionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            "세션이 삭제되었습니다",
		"deleted_session_id": id,
	})
}

// ReplaceDay handles PUT /api/day-sessions/bulk/:date. The path date wins over
// any date in the body. A missing sessions list is rejected; an empty one
// clears the day.
func (h *DaySessionHandler) ReplaceDay(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req struct {
		Date     string                  `json:"date" binding:"required"`
		Sessions []model.DaySessionInput `json:"sessions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date := c.Param("date")
	created, err := h.sessionService.ReplaceDay(c.Request.Context(), u.ID, date, req.Sessions)
	if err != nil {
		writeRecordError(c, h.logger, err, sessionNotFound)
		return
	}
	c.JSON(http.StatusOK, dayResponse{Date: date, Sessions: created})
}
