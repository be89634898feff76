package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/service"
)

const invalidDate = "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식을 사용하세요."

type ProgressHandler struct {
	progressService *service.ProgressService
	logger          *zap.Logger
}

func NewProgressHandler(progressService *service.ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, logger: logger}
}

// Get handles GET /routine-progress?date=
func (h *ProgressHandler) Get(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date required"})
		return
	}
	c.JSON(http.StatusOK, h.progressService.Get(c.Request.Context(), u.ID, date))
}

// Toggle handles POST /routine-progress
func (h *ProgressHandler) Toggle(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req struct {
		RoutineID string `json:"routineId" binding:"required"`
		Date      string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.progressService.Toggle(c.Request.Context(), u.ID, req.RoutineID, req.Date)
	if err != nil {
		writeRecordError(c, h.logger, err, routineNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Daily handles GET /routine-progress/daily?date=
func (h *ProgressHandler) Daily(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date required"})
		return
	}
	c.JSON(http.StatusOK, h.progressService.Daily(c.Request.Context(), u.ID, date))
}

// Weekly handles GET /routine-progress/week?startDate=
func (h *ProgressHandler) Weekly(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	week, err := h.progressService.Weekly(c.Request.Context(), u.ID, c.Query("startDate"))
	if errors.Is(err, service.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidDate})
		return
	}
	if err != nil {
		writeRecordError(c, h.logger, err, routineNotFound)
		return
	}
	c.JSON(http.StatusOK, week)
}
