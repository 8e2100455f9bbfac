package handlers

import (
	"net/http"

	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/services"
	"tarokatalog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TarologistHandler - админский CRUD анкет тарологов
type TarologistHandler struct {
	*BaseHandler
	tarologistService services.TarologistService
}

func NewTarologistHandler(base *BaseHandler, tarologistService services.TarologistService) *TarologistHandler {
	return &TarologistHandler{
		BaseHandler:       base,
		tarologistService: tarologistService,
	}
}

func (h *TarologistHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/tarologists")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", middleware.RequirePermission("tarologists:read"), h.List)
		admin.GET("/:id", middleware.RequirePermission("tarologists:read"), h.Get)
		admin.POST("", middleware.RequirePermission("tarologists:write"), h.Create)
		admin.PUT("/:id", middleware.RequirePermission("tarologists:write"), h.Update)
		admin.PATCH("/:id/active", middleware.RequirePermission("tarologists:write"), h.SetActive)
		admin.DELETE("/:id", middleware.RequirePermission("tarologists:delete"), h.Delete)
	}
}

func (h *TarologistHandler) List(c *gin.Context) {
	tarologists, err := h.tarologistService.ListAll(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tarologists": tarologists,
		"total":       len(tarologists),
	})
}

func (h *TarologistHandler) Get(c *gin.Context) {
	resp, err := h.tarologistService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TarologistHandler) Create(c *gin.Context) {
	var req dto.SaveTarologistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.tarologistService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *TarologistHandler) Update(c *gin.Context) {
	var req dto.SaveTarologistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.tarologistService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TarologistHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.tarologistService.SetActive(h.GetDB(c), c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Статус анкеты обновлен"})
}

func (h *TarologistHandler) Delete(c *gin.Context) {
	if err := h.tarologistService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Анкета удалена"})
}
