package dto

import "time"

type SubmitReviewRequest struct {
	TarologistID string `json:"tarologist_id" validate:"required,uuid4"`
	CodeID       string `json:"code_id" validate:"required,uuid4"`
	ClientName   string `json:"client_name" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	// Границы длины проверяются сервисом после trim
	Text string `json:"text" validate:"required"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,is-review-status"`
}

type ReviewResponse struct {
	ID             string     `json:"id"`
	TarologistID   string     `json:"tarologist_id"`
	TarologistName string     `json:"tarologist_name,omitempty"`
	ClientName     string     `json:"client_name"`
	Rating         int        `json:"rating"`
	Text           string     `json:"text"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ModeratedAt    *time.Time `json:"moderated_at,omitempty"`
}
