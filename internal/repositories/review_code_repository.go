package repositories

import (
	"errors"
	"strings"
	"time"

	"tarokatalog_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCodeNotFound  = errors.New("review code not found")
	ErrDuplicateCode = errors.New("duplicate review code")
	ErrCodeConsumed  = errors.New("review code already consumed")
)

// CodeFilter - фильтр admin-листинга кодов
type CodeFilter struct {
	TarologistID string
	Status       string
}

type ReviewCodeRepository interface {
	// BulkCreate вставляет всю партию одним запросом: либо вся
	// партия фиксируется, либо ничего.
	BulkCreate(db *gorm.DB, codes []models.ReviewCode) error
	FindByCode(db *gorm.DB, code string) (*models.ReviewCode, error)
	FindByID(db *gorm.DB, id string) (*models.ReviewCode, error)
	CodeExists(db *gorm.DB, code string) (bool, error)
	MarkExpired(db *gorm.DB, id string) error
	// MarkUsed помечает код использованным только если он все еще
	// issued; проигравший гонку получает ErrCodeConsumed.
	MarkUsed(db *gorm.DB, id string, usedAt time.Time) error
	List(db *gorm.DB, filter CodeFilter) ([]models.ReviewCode, error)
	SweepExpired(db *gorm.DB, now time.Time) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type ReviewCodeRepositoryImpl struct{}

func NewReviewCodeRepository() ReviewCodeRepository {
	return &ReviewCodeRepositoryImpl{}
}

func (r *ReviewCodeRepositoryImpl) BulkCreate(db *gorm.DB, codes []models.ReviewCode) error {
	err := db.Create(&codes).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateCode
	}
	return err
}

func (r *ReviewCodeRepositoryImpl) FindByCode(db *gorm.DB, code string) (*models.ReviewCode, error) {
	var rc models.ReviewCode
	err := db.Preload("Tarologist").Where("code = ?", code).First(&rc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *ReviewCodeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ReviewCode, error) {
	var rc models.ReviewCode
	err := db.First(&rc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *ReviewCodeRepositoryImpl) CodeExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&models.ReviewCode{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *ReviewCodeRepositoryImpl) MarkExpired(db *gorm.DB, id string) error {
	// Guard по статусу: expired/used коды не трогаем
	return db.Model(&models.ReviewCode{}).
		Where("id = ? AND status = ?", id, models.CodeStatusIssued).
		Update("status", models.CodeStatusExpired).Error
}

func (r *ReviewCodeRepositoryImpl) MarkUsed(db *gorm.DB, id string, usedAt time.Time) error {
	result := db.Model(&models.ReviewCode{}).
		Where("id = ? AND status = ?", id, models.CodeStatusIssued).
		Updates(map[string]interface{}{
			"status":  models.CodeStatusUsed,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCodeConsumed
	}
	return nil
}

func (r *ReviewCodeRepositoryImpl) List(db *gorm.DB, filter CodeFilter) ([]models.ReviewCode, error) {
	query := db.Preload("Tarologist").Order("created_at DESC")
	if filter.TarologistID != "" {
		query = query.Where("tarologist_id = ?", filter.TarologistID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var list []models.ReviewCode
	err := query.Find(&list).Error
	return list, err
}

// SweepExpired - идемпотентная фоновая очистка: переводит
// просроченные issued коды в expired.
func (r *ReviewCodeRepositoryImpl) SweepExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.ReviewCode{}).
		Where("status = ? AND expires_at < ?", models.CodeStatusIssued, now).
		Update("status", models.CodeStatusExpired)
	return result.RowsAffected, result.Error
}

func (r *ReviewCodeRepositoryImpl) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.Model(&models.ReviewCode{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// isUniqueViolation распознает нарушение уникального индекса.
// Код 23505 в тексте ошибки драйвера postgres.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key value")
}
