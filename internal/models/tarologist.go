package models

import (
	"github.com/lib/pq"
)

// Tarologist - карточка таролога в каталоге
type Tarologist struct {
	BaseModel
	Name             string         `gorm:"not null" json:"name"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	PhotoURL         *string        `json:"photo_url"`
	About            *string        `json:"about"`
	Specializations  pq.StringArray `gorm:"type:text[]" json:"specializations"`
	WorkFormats      pq.StringArray `gorm:"type:text[]" json:"work_formats"`
	City             *string        `json:"city"`
	ContactTelegram  *string        `json:"contact_telegram"`
	ContactWhatsapp  *string        `json:"contact_whatsapp"`
	ContactInstagram *string        `json:"contact_instagram"`
	ContactEmail     *string        `json:"contact_email"`
	ContactOther     *string        `json:"contact_other"`
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder        int            `gorm:"default:0" json:"sort_order"`

	// Кэшированные агрегаты. Пересчитываются при модерации отзыва.
	AvgRating   float64 `gorm:"default:0" json:"avg_rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	// Relations
	Services []Service `gorm:"foreignKey:TarologistID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

func (Tarologist) TableName() string { return "tarologists" }

// Справочники каталога. Значения совпадают с тем, что хранится в
// text[] колонках, фронт фильтрует по ним как по строкам.
var Specializations = []string{
	"Отношения",
	"Финансы",
	"Карьера",
	"Здоровье",
	"Предназначение",
	"Общие расклады",
	"Психологическое таро",
	"Бизнес-расклады",
}

var WorkFormats = []string{
	"Видео-звонок",
	"Аудио-звонок",
	"В переписке",
	"Очно",
}
