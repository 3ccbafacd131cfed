package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the JSON API, the Slack slash command endpoint and the
// operational endpoints. slashCommand may be nil when Slack is not configured.
func NewRouter(h *Handler, slashCommand http.HandlerFunc, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if log != nil {
		router.Use(RequestLogger(log.Named("http")))
	}

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if slashCommand != nil {
		router.POST("/slack/commands", gin.WrapF(slashCommand))
	}

	users := router.Group("/api/users/:user")
	users.GET("/attendance", h.GetAttendance)
	users.PUT("/attendance/:date", h.MarkDay)
	users.DELETE("/attendance/:date", h.ClearDay)
	users.GET("/report", h.GetReport)

	return router
}
