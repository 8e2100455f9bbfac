package models

import "time"

// Алфавит кода: заглавные буквы и цифры без визуально похожих
// символов (I, O, 0, 1).
const (
	ReviewCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReviewCodeLength   = 6
)

// Статусы кода. Переходы только вперед:
// issued -> used, issued -> expired.
const (
	CodeStatusIssued  = "issued"
	CodeStatusUsed    = "used"
	CodeStatusExpired = "expired"
)

// ReviewCode - одноразовый код подтверждения отзыва.
// uniqueIndex на code - гарантия глобальной уникальности на уровне
// хранилища; дубликат при вставке обрабатывается как сигнал retry.
type ReviewCode struct {
	ID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TarologistID string     `gorm:"type:uuid;not null;index" json:"tarologist_id"`
	Code         string     `gorm:"type:varchar(6);uniqueIndex;not null" json:"code"`
	Status       string     `gorm:"default:'issued';index" json:"status"`
	CreatedAt    time.Time  `gorm:"default:now()" json:"created_at"`
	ExpiresAt    time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt       *time.Time `json:"used_at"` // заполнен тогда и только тогда, когда status = used

	// Relations
	Tarologist Tarologist `gorm:"foreignKey:TarologistID" json:"-"`
}

func (ReviewCode) TableName() string { return "review_codes" }

// IsTimeExpired - чистая проверка по времени, без учета статуса.
// Хранимый статус обновляется лениво в read path и фоновой очисткой.
func (c *ReviewCode) IsTimeExpired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}
