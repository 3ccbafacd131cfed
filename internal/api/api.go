package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Attendance contract.AttendanceService
	Log        *zap.Logger
}

type markRequest struct {
	Category string `json:"category" binding:"required,oneof=on-campus remote out-of-office"`
}

func (h *Handler) GetAttendance(c *gin.Context) {
	log, err := h.Attendance.GetLog(c.Request.Context(), c.Param("user"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) MarkDay(c *gin.Context) {
	var input markRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := entity.ParseWorkCategory(input.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidCategory.Error()})
		return
	}

	entry, err := h.Attendance.MarkDay(c.Request.Context(), c.Param("user"), c.Param("date"), category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) ClearDay(c *gin.Context) {
	if err := h.Attendance.ClearDay(c.Request.Context(), c.Param("user"), c.Param("date")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.Attendance.GetReport(c.Request.Context(), c.Param("user"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMarkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserRequired),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrWeekendDay),
		errors.Is(err, compliance.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

const requestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request and tags it with a request id,
// reusing the caller's X-Request-ID when present.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		log.Info("Request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
