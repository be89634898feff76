package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/service"
)

const routineNotFound = "루틴을 찾을 수 없습니다"

type RoutineHandler struct {
	routineService *service.RoutineService
	logger         *zap.Logger
}

func NewRoutineHandler(routineService *service.RoutineService, logger *zap.Logger) *RoutineHandler {
	return &RoutineHandler{routineService: routineService, logger: logger}
}

// List handles GET /routines
func (h *RoutineHandler) List(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.routineService.List(c.Request.Context(), u.ID))
}

// Create handles POST /routines
func (h *RoutineHandler) Create(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.RoutineInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create routine: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.routineService.Create(c.Request.Context(), u.ID, req))
}

// Update handles PUT /routines/:id
func (h *RoutineHandler) Update(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req model.RoutinePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	r, err := h.routineService.Update(c.Request.Context(), u.ID, c.Param("id"), req)
	if err != nil {
		writeRecordError(c, h.logger, err, routineNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /routines/:id
func (h *RoutineHandler) Delete(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	r, err := h.routineService.Delete(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		writeRecordError(c, h.logger, err, routineNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "루틴이 삭제되었습니다",
		"deletedRoutine": r,
	})
}

// Reorder handles PUT /routines/reorder
func (h *RoutineHandler) Reorder(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req struct {
		RoutineIDs []string `json:"routineIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.routineService.Reorder(c.Request.Context(), u.ID, req.RoutineIDs)
	if errors.Is(err, service.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 루틴 ID가 포함되어 있습니다"})
		return
	}
	if err != nil {
		writeRecordError(c, h.logger, err, routineNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "루틴 순서가 변경되었습니다"})
}
