package repositories

import (
	"errors"

	"tarokatalog_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTarologistNotFound = errors.New("tarologist not found")
	ErrSlugTaken          = errors.New("slug already taken")
)

type TarologistRepository interface {
	Create(db *gorm.DB, t *models.Tarologist) error
	FindByID(db *gorm.DB, id string) (*models.Tarologist, error)
	FindActiveBySlug(db *gorm.DB, slug string) (*models.Tarologist, error)
	FindActive(db *gorm.DB) ([]models.Tarologist, error)
	FindAll(db *gorm.DB) ([]models.Tarologist, error)
	Update(db *gorm.DB, t *models.Tarologist) error
	Delete(db *gorm.DB, id string) error
	SetActive(db *gorm.DB, id string, active bool) error
	SlugExists(db *gorm.DB, slug string) (bool, error)
	UpdateRating(db *gorm.DB, tarologistID string) error
	Count(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
}

type TarologistRepositoryImpl struct{}

func NewTarologistRepository() TarologistRepository {
	return &TarologistRepositoryImpl{}
}

func (r *TarologistRepositoryImpl) Create(db *gorm.DB, t *models.Tarologist) error {
	return db.Create(t).Error
}

func (r *TarologistRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Tarologist, error) {
	var t models.Tarologist
	err := db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTarologistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TarologistRepositoryImpl) FindActiveBySlug(db *gorm.DB, slug string) (*models.Tarologist, error) {
	var t models.Tarologist
	err := db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("slug = ? AND is_active = ?", slug, true).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTarologistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TarologistRepositoryImpl) FindActive(db *gorm.DB) ([]models.Tarologist, error) {
	var list []models.Tarologist
	err := db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("is_active = ?", true).Order("sort_order ASC").Find(&list).Error
	return list, err
}

func (r *TarologistRepositoryImpl) FindAll(db *gorm.DB) ([]models.Tarologist, error) {
	var list []models.Tarologist
	err := db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Order("sort_order ASC").Find(&list).Error
	return list, err
}

func (r *TarologistRepositoryImpl) Update(db *gorm.DB, t *models.Tarologist) error {
	return db.Omit("Services").Save(t).Error
}

func (r *TarologistRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Tarologist{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTarologistNotFound
	}
	return nil
}

func (r *TarologistRepositoryImpl) SetActive(db *gorm.DB, id string, active bool) error {
	result := db.Model(&models.Tarologist{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTarologistNotFound
	}
	return nil
}

func (r *TarologistRepositoryImpl) SlugExists(db *gorm.DB, slug string) (bool, error) {
	var count int64
	err := db.Model(&models.Tarologist{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// UpdateRating пересчитывает кэшированные avg_rating и review_count
// по одобренным отзывам. Среднее округляется до одного знака.
func (r *TarologistRepositoryImpl) UpdateRating(db *gorm.DB, tarologistID string) error {
	return db.Exec(`
		UPDATE tarologists SET
			avg_rating = COALESCE((
				SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews
				WHERE tarologist_id = ? AND status = ?
			), 0),
			review_count = (
				SELECT COUNT(*) FROM reviews
				WHERE tarologist_id = ? AND status = ?
			),
			updated_at = NOW()
		WHERE id = ?`,
		tarologistID, models.ReviewStatusApproved,
		tarologistID, models.ReviewStatusApproved,
		tarologistID,
	).Error
}

func (r *TarologistRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Tarologist{}).Count(&count).Error
	return count, err
}

func (r *TarologistRepositoryImpl) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Tarologist{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
