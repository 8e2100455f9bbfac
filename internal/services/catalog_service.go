package services

import (
	"sort"
	"strings"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"
	"tarokatalog_backend/internal/utils"

	"gorm.io/gorm"
)

type CatalogService interface {
	// List возвращает активных тарологов с фильтрацией и
	// сортировкой в памяти поверх выборки.
	List(db *gorm.DB, query *dto.CatalogQuery) (*dto.CatalogResponse, error)
	GetBySlug(db *gorm.DB, slug string) (*dto.TarologistProfileResponse, error)
}

type catalogService struct {
	tarologistRepo repositories.TarologistRepository
	reviewRepo     repositories.ReviewRepository
}

func NewCatalogService(
	tarologistRepo repositories.TarologistRepository,
	reviewRepo repositories.ReviewRepository,
) CatalogService {
	return &catalogService{
		tarologistRepo: tarologistRepo,
		reviewRepo:     reviewRepo,
	}
}

func (s *catalogService) List(db *gorm.DB, query *dto.CatalogQuery) (*dto.CatalogResponse, error) {
	tarologists, err := s.tarologistRepo.FindActive(db)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	filtered := FilterCatalog(tarologists, query)
	SortCatalog(filtered, query.Sort)

	result := make([]dto.TarologistResponse, 0, len(filtered))
	for _, t := range filtered {
		result = append(result, buildTarologistResponse(&t))
	}
	return &dto.CatalogResponse{Tarologists: result, Total: len(result)}, nil
}

func (s *catalogService) GetBySlug(db *gorm.DB, slug string) (*dto.TarologistProfileResponse, error) {
	t, err := s.tarologistRepo.FindActiveBySlug(db, slug)
	if err != nil {
		if err == repositories.ErrTarologistNotFound {
			return nil, appErrors.ErrTarologistNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	reviews, err := s.reviewRepo.FindApprovedByTarologist(db, t.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	profile := &dto.TarologistProfileResponse{
		TarologistResponse: buildTarologistResponse(t),
		Reviews:            make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for _, r := range reviews {
		profile.Reviews = append(profile.Reviews, buildReviewResponse(&r, t.Name))
	}
	return profile, nil
}

// FilterCatalog применяет фильтры каталога к выборке. Внутри одного
// фильтра условия объединяются по OR, между фильтрами - AND.
func FilterCatalog(tarologists []models.Tarologist, query *dto.CatalogQuery) []models.Tarologist {
	result := make([]models.Tarologist, 0, len(tarologists))

	search := strings.ToLower(strings.TrimSpace(query.Search))

	for _, t := range tarologists {
		if search != "" && !matchesSearch(&t, search) {
			continue
		}
		if len(query.Formats) > 0 && !containsAny(t.WorkFormats, query.Formats) {
			continue
		}
		if len(query.Specializations) > 0 && !containsAny(t.Specializations, query.Specializations) {
			continue
		}
		if query.PriceRange != nil {
			idx := *query.PriceRange
			if idx < 0 || idx >= len(utils.PriceRanges) {
				continue
			}
			minPrice, ok := utils.MinServicePrice(t.Services)
			if !ok || !utils.PriceRanges[idx].InPriceRange(minPrice) {
				continue
			}
		}
		if query.MinRating != nil && t.AvgRating < *query.MinRating {
			continue
		}
		result = append(result, t)
	}
	return result
}

// SortCatalog сортирует выборку на месте. Сортировка стабильная,
// чтобы ручной sort_order сохранялся при равных ключах.
func SortCatalog(tarologists []models.Tarologist, sortBy string) {
	switch sortBy {
	case dto.CatalogSortReviews:
		sort.SliceStable(tarologists, func(i, j int) bool {
			return tarologists[i].ReviewCount > tarologists[j].ReviewCount
		})
	case dto.CatalogSortPriceAsc:
		sort.SliceStable(tarologists, func(i, j int) bool {
			return minPriceOr(tarologists[i].Services, int(^uint(0)>>1)) <
				minPriceOr(tarologists[j].Services, int(^uint(0)>>1))
		})
	case dto.CatalogSortPriceDesc:
		sort.SliceStable(tarologists, func(i, j int) bool {
			return maxPriceOr(tarologists[i].Services, 0) >
				maxPriceOr(tarologists[j].Services, 0)
		})
	case dto.CatalogSortName:
		sort.SliceStable(tarologists, func(i, j int) bool {
			return tarologists[i].Name < tarologists[j].Name
		})
	default: // rating
		sort.SliceStable(tarologists, func(i, j int) bool {
			return tarologists[i].AvgRating > tarologists[j].AvgRating
		})
	}
}

func matchesSearch(t *models.Tarologist, search string) bool {
	if strings.Contains(strings.ToLower(t.Name), search) {
		return true
	}
	for _, s := range t.Specializations {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func containsAny(haystack []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range haystack {
			if h == n {
				return true
			}
		}
	}
	return false
}

func minPriceOr(services []models.Service, def int) int {
	if p, ok := utils.MinServicePrice(services); ok {
		return p
	}
	return def
}

func maxPriceOr(services []models.Service, def int) int {
	if p, ok := utils.MaxServicePrice(services); ok {
		return p
	}
	return def
}

func buildTarologistResponse(t *models.Tarologist) dto.TarologistResponse {
	services := make([]dto.ServiceResponse, 0, len(t.Services))
	for _, s := range t.Services {
		services = append(services, dto.ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Format:          s.Format,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			SortOrder:       s.SortOrder,
		})
	}

	return dto.TarologistResponse{
		ID:               t.ID,
		Name:             t.Name,
		Slug:             t.Slug,
		PhotoURL:         t.PhotoURL,
		About:            t.About,
		Specializations:  t.Specializations,
		WorkFormats:      t.WorkFormats,
		City:             t.City,
		ContactTelegram:  t.ContactTelegram,
		ContactWhatsapp:  t.ContactWhatsapp,
		ContactInstagram: t.ContactInstagram,
		ContactEmail:     t.ContactEmail,
		ContactOther:     t.ContactOther,
		IsActive:         t.IsActive,
		SortOrder:        t.SortOrder,
		AvgRating:        t.AvgRating,
		ReviewCount:      t.ReviewCount,
		CreatedAt:        t.CreatedAt,
		Services:         services,
	}
}
