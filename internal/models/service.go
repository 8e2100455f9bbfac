package models

import "time"

// Service - услуга таролога. Живет только как дочерняя коллекция:
// при редактировании анкеты весь набор услуг заменяется целиком.
type Service struct {
	ID              string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TarologistID    string    `gorm:"type:uuid;not null;index" json:"tarologist_id"`
	Name            string    `gorm:"not null" json:"name"`
	Format          *string   `json:"format"`
	DurationMinutes *int      `json:"duration_minutes"`
	Price           int       `gorm:"not null" json:"price"` // в минимальных единицах валюты
	SortOrder       int       `gorm:"default:0" json:"sort_order"`
	CreatedAt       time.Time `gorm:"default:now()" json:"created_at"`
}

func (Service) TableName() string { return "services" }
