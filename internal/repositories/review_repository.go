package repositories

import (
	"errors"

	"tarokatalog_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindApprovedByTarologist(db *gorm.DB, tarologistID string) ([]models.Review, error)
	FindByStatus(db *gorm.DB, status string) ([]models.Review, error)
	FindAll(db *gorm.DB) ([]models.Review, error)
	Update(db *gorm.DB, review *models.Review) error
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindApprovedByTarologist(db *gorm.DB, tarologistID string) ([]models.Review, error) {
	var list []models.Review
	err := db.Where("tarologist_id = ? AND status = ?", tarologistID, models.ReviewStatusApproved).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReviewRepositoryImpl) FindByStatus(db *gorm.DB, status string) ([]models.Review, error) {
	var list []models.Review
	err := db.Preload("Tarologist").Where("status = ?", status).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReviewRepositoryImpl) FindAll(db *gorm.DB) ([]models.Review, error) {
	var list []models.Review
	err := db.Preload("Tarologist").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.Review) error {
	return db.Save(review).Error
}

func (r *ReviewRepositoryImpl) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
