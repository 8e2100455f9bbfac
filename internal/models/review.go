package models

import "time"

type Review struct {
	BaseModel
	TarologistID string  `gorm:"type:uuid;not null;index" json:"tarologist_id"`
	CodeID       *string `gorm:"type:uuid;index" json:"code_id"` // nullable: исторические отзывы без кода
	ClientName   string  `gorm:"not null" json:"client_name"`
	Rating       int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text         string  `gorm:"not null" json:"text"`
	Status       string  `gorm:"default:'pending';index" json:"status"`

	ModeratedAt *time.Time `json:"moderated_at"`
	ModeratedBy *string    `gorm:"type:uuid" json:"moderated_by"`

	// Relations
	Tarologist Tarologist  `gorm:"foreignKey:TarologistID" json:"-"`
	Code       *ReviewCode `gorm:"foreignKey:CodeID" json:"-"`
}

func (Review) TableName() string { return "reviews" }

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Границы текста отзыва (после trim)
const (
	ReviewTextMinLen = 50
	ReviewTextMaxLen = 1000
)
