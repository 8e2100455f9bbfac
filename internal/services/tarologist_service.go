package services

import (
	"fmt"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"
	"tarokatalog_backend/internal/utils"

	"gorm.io/gorm"
)

// TarologistService - admin CRUD анкет тарологов
type TarologistService interface {
	Create(db *gorm.DB, req *dto.SaveTarologistRequest) (*dto.TarologistResponse, error)
	Update(db *gorm.DB, id string, req *dto.SaveTarologistRequest) (*dto.TarologistResponse, error)
	Get(db *gorm.DB, id string) (*dto.TarologistResponse, error)
	// ListAll - для админки, включая скрытые анкеты
	ListAll(db *gorm.DB) ([]dto.TarologistResponse, error)
	Delete(db *gorm.DB, id string) error
	SetActive(db *gorm.DB, id string, active bool) error
}

type tarologistService struct {
	tarologistRepo repositories.TarologistRepository
	serviceRepo    repositories.ServiceRepository
}

func NewTarologistService(
	tarologistRepo repositories.TarologistRepository,
	serviceRepo repositories.ServiceRepository,
) TarologistService {
	return &tarologistService{
		tarologistRepo: tarologistRepo,
		serviceRepo:    serviceRepo,
	}
}

func (s *tarologistService) Create(db *gorm.DB, req *dto.SaveTarologistRequest) (*dto.TarologistResponse, error) {
	slug, err := s.uniqueSlug(db, req.Name)
	if err != nil {
		return nil, err
	}

	t := &models.Tarologist{
		Name:     req.Name,
		Slug:     slug,
		IsActive: true,
	}
	applyTarologistFields(t, req)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.tarologistRepo.Create(tx, t); err != nil {
			return err
		}
		return s.serviceRepo.ReplaceForTarologist(tx, t.ID, buildServices(req.Services))
	})
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	return s.Get(db, t.ID)
}

// Update применяет все поля анкеты и заменяет набор услуг целиком.
// Slug перегенерируется только при смене имени, чтобы не ломать
// существующие ссылки без необходимости.
func (s *tarologistService) Update(db *gorm.DB, id string, req *dto.SaveTarologistRequest) (*dto.TarologistResponse, error) {
	t, err := s.tarologistRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrTarologistNotFound {
			return nil, appErrors.ErrTarologistNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	if req.Name != t.Name {
		slug, err := s.uniqueSlug(db, req.Name)
		if err != nil {
			return nil, err
		}
		t.Slug = slug
	}
	t.Name = req.Name
	applyTarologistFields(t, req)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.tarologistRepo.Update(tx, t); err != nil {
			return err
		}
		return s.serviceRepo.ReplaceForTarologist(tx, t.ID, buildServices(req.Services))
	})
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	return s.Get(db, t.ID)
}

func (s *tarologistService) Get(db *gorm.DB, id string) (*dto.TarologistResponse, error) {
	t, err := s.tarologistRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrTarologistNotFound {
			return nil, appErrors.ErrTarologistNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	resp := buildTarologistResponse(t)
	return &resp, nil
}

func (s *tarologistService) ListAll(db *gorm.DB) ([]dto.TarologistResponse, error) {
	tarologists, err := s.tarologistRepo.FindAll(db)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	result := make([]dto.TarologistResponse, 0, len(tarologists))
	for _, t := range tarologists {
		result = append(result, buildTarologistResponse(&t))
	}
	return result, nil
}

func (s *tarologistService) Delete(db *gorm.DB, id string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.serviceRepo.DeleteByTarologist(tx, id); err != nil {
			return err
		}
		return s.tarologistRepo.Delete(tx, id)
	})
	if err == repositories.ErrTarologistNotFound {
		return appErrors.ErrTarologistNotFound
	}
	if err != nil {
		return appErrors.DatabaseError(err)
	}
	return nil
}

func (s *tarologistService) SetActive(db *gorm.DB, id string, active bool) error {
	err := s.tarologistRepo.SetActive(db, id, active)
	if err == repositories.ErrTarologistNotFound {
		return appErrors.ErrTarologistNotFound
	}
	if err != nil {
		return appErrors.DatabaseError(err)
	}
	return nil
}

// uniqueSlug строит slug из имени и разруливает коллизии суффиксами
// -2, -3 и т.д.
func (s *tarologistService) uniqueSlug(db *gorm.DB, name string) (string, error) {
	base := utils.GenerateSlug(name)
	if base == "" {
		base = "tarolog"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.tarologistRepo.SlugExists(db, slug)
		if err != nil {
			return "", appErrors.DatabaseError(err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func applyTarologistFields(t *models.Tarologist, req *dto.SaveTarologistRequest) {
	t.PhotoURL = req.PhotoURL
	t.About = req.About
	t.Specializations = req.Specializations
	t.WorkFormats = req.WorkFormats
	t.City = req.City
	t.ContactTelegram = req.ContactTelegram
	t.ContactWhatsapp = req.ContactWhatsapp
	t.ContactInstagram = req.ContactInstagram
	t.ContactEmail = req.ContactEmail
	t.ContactOther = req.ContactOther
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
	}
}

func buildServices(inputs []dto.ServiceInput) []models.Service {
	services := make([]models.Service, 0, len(inputs))
	for i, in := range inputs {
		services = append(services, models.Service{
			Name:            in.Name,
			Format:          in.Format,
			DurationMinutes: in.DurationMinutes,
			Price:           in.Price,
			SortOrder:       i,
		})
	}
	return services
}
