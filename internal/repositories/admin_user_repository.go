package repositories

import (
	"errors"

	"tarokatalog_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin user not found")

type AdminUserRepository interface {
	Create(db *gorm.DB, admin *models.AdminUser) error
	FindByEmail(db *gorm.DB, email string) (*models.AdminUser, error)
	FindByID(db *gorm.DB, id string) (*models.AdminUser, error)
	Count(db *gorm.DB) (int64, error)
}

type AdminUserRepositoryImpl struct{}

func NewAdminUserRepository() AdminUserRepository {
	return &AdminUserRepositoryImpl{}
}

func (r *AdminUserRepositoryImpl) Create(db *gorm.DB, admin *models.AdminUser) error {
	return db.Create(admin).Error
}

func (r *AdminUserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := db.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := db.First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}
