package handlers

import (
	"net/http"

	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services"
	"tarokatalog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CodeHandler - выдача кодов отзывов (admin) и их проверка (public,
// первый шаг мастера отзыва)
type CodeHandler struct {
	*BaseHandler
	codeService services.ReviewCodeService
}

func NewCodeHandler(base *BaseHandler, codeService services.ReviewCodeService) *CodeHandler {
	return &CodeHandler{
		BaseHandler: base,
		codeService: codeService,
	}
}

func (h *CodeHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/codes")
	{
		public.POST("/validate", h.Validate)
	}

	admin := r.Group("/admin/codes")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission("codes:issue"))
	{
		admin.POST("", h.Issue)
		admin.GET("", h.List)
	}
}

func (h *CodeHandler) Validate(c *gin.Context) {
	var req dto.ValidateCodeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.codeService.ValidateCode(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CodeHandler) Issue(c *gin.Context) {
	var req dto.IssueCodesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.codeService.IssueCodes(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CodeHandler) List(c *gin.Context) {
	filter := repositories.CodeFilter{
		TarologistID: c.Query("tarologist_id"),
		Status:       c.Query("status"),
	}

	codes, err := h.codeService.ListCodes(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"codes": codes,
		"total": len(codes),
	})
}
