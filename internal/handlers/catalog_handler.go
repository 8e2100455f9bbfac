package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/services"
	"tarokatalog_backend/internal/services/dto"
	"tarokatalog_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler - публичная витрина: список тарологов и страница профиля
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/tarologists")
	{
		public.GET("", h.List)
		public.GET("/:slug", h.GetBySlug)
	}
}

func (h *CatalogHandler) List(c *gin.Context) {
	query, err := parseCatalogQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.catalogService.List(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	resp, err := h.catalogService.GetBySlug(h.GetDB(c), slug)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseCatalogQuery(c *gin.Context) (*dto.CatalogQuery, error) {
	query := &dto.CatalogQuery{
		Search:          strings.TrimSpace(c.Query("search")),
		Formats:         splitCSV(c.Query("formats")),
		Specializations: splitCSV(c.Query("specializations")),
		Sort:            c.Query("sort"),
	}

	if v := c.Query("price_range"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 || idx >= len(utils.PriceRanges) {
			return nil, appErrors.NewBadRequestError("Некорректный диапазон цен")
		}
		query.PriceRange = &idx
	}

	if v := c.Query("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			return nil, appErrors.NewBadRequestError("Некорректный минимальный рейтинг")
		}
		query.MinRating = &rating
	}

	return query, nil
}

// splitCSV разбирает "очно,онлайн" в срез, пропуская пустые элементы
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
