package handlers

import (
	"net/http"

	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/stats")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission("stats:read"))
	{
		admin.GET("", h.Dashboard)
	}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.statsService.Dashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
