package repositories

import (
	"tarokatalog_backend/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindByTarologist(db *gorm.DB, tarologistID string) ([]models.Service, error)
	// ReplaceForTarologist заменяет весь набор услуг таролога:
	// удаляет прежние записи и вставляет новые одним вызовом.
	ReplaceForTarologist(db *gorm.DB, tarologistID string, services []models.Service) error
	DeleteByTarologist(db *gorm.DB, tarologistID string) error
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) FindByTarologist(db *gorm.DB, tarologistID string) ([]models.Service, error) {
	var list []models.Service
	err := db.Where("tarologist_id = ?", tarologistID).Order("sort_order ASC").Find(&list).Error
	return list, err
}

func (r *ServiceRepositoryImpl) ReplaceForTarologist(db *gorm.DB, tarologistID string, services []models.Service) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tarologist_id = ?", tarologistID).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if len(services) == 0 {
			return nil
		}
		for i := range services {
			services[i].ID = ""
			services[i].TarologistID = tarologistID
			services[i].SortOrder = i
		}
		return tx.Create(&services).Error
	})
}

func (r *ServiceRepositoryImpl) DeleteByTarologist(db *gorm.DB, tarologistID string) error {
	return db.Where("tarologist_id = ?", tarologistID).Delete(&models.Service{}).Error
}
