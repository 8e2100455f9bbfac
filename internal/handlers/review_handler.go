package handlers

import (
	"net/http"

	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/services"
	"tarokatalog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ReviewHandler - прием отзывов (public) и модерация (admin)
type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/reviews")
	{
		public.POST("", h.Submit)
	}

	admin := r.Group("/admin/reviews")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission("reviews:moderate"))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id", h.Moderate)
	}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.reviewService.SubmitReview(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Спасибо! Отзыв отправлен на модерацию",
	})
}

func (h *ReviewHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", models.ReviewStatusPending)

	reviews, err := h.reviewService.ListByStatus(h.GetDB(c), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

func (h *ReviewHandler) Moderate(c *gin.Context) {
	adminID, ok := h.GetAdminID(c)
	if !ok {
		return
	}

	var req dto.ModerateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.ModerateReview(h.GetDB(c), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
