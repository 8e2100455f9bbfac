package dto

import "time"

type ServiceInput struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Format          *string `json:"format"`
	DurationMinutes *int    `json:"duration_minutes"`
	Price           int     `json:"price" validate:"min=0"`
}

// SaveTarologistRequest - создание и полное обновление анкеты.
// Services заменяет набор услуг целиком.
type SaveTarologistRequest struct {
	Name             string         `json:"name" validate:"required,max=200"`
	PhotoURL         *string        `json:"photo_url"`
	About            *string        `json:"about"`
	Specializations  []string       `json:"specializations"`
	WorkFormats      []string       `json:"work_formats"`
	City             *string        `json:"city"`
	ContactTelegram  *string        `json:"contact_telegram"`
	ContactWhatsapp  *string        `json:"contact_whatsapp"`
	ContactInstagram *string        `json:"contact_instagram"`
	ContactEmail     *string        `json:"contact_email" validate:"omitempty,email"`
	ContactOther     *string        `json:"contact_other"`
	IsActive         *bool          `json:"is_active"`
	SortOrder        *int           `json:"sort_order"`
	Services         []ServiceInput `json:"services" validate:"dive"`
}

type TarologistResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	PhotoURL         *string           `json:"photo_url"`
	About            *string           `json:"about"`
	Specializations  []string          `json:"specializations"`
	WorkFormats      []string          `json:"work_formats"`
	City             *string           `json:"city"`
	ContactTelegram  *string           `json:"contact_telegram"`
	ContactWhatsapp  *string           `json:"contact_whatsapp"`
	ContactInstagram *string           `json:"contact_instagram"`
	ContactEmail     *string           `json:"contact_email"`
	ContactOther     *string           `json:"contact_other"`
	IsActive         bool              `json:"is_active"`
	SortOrder        int               `json:"sort_order"`
	AvgRating        float64           `json:"avg_rating"`
	ReviewCount      int               `json:"review_count"`
	CreatedAt        time.Time         `json:"created_at"`
	Services         []ServiceResponse `json:"services"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Format          *string `json:"format"`
	DurationMinutes *int    `json:"duration_minutes"`
	Price           int     `json:"price"`
	SortOrder       int     `json:"sort_order"`
}

// TarologistProfileResponse - публичная страница профиля
type TarologistProfileResponse struct {
	TarologistResponse
	Reviews []ReviewResponse `json:"reviews"`
}
