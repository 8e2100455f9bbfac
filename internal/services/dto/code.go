package dto

import "time"

type IssueCodesRequest struct {
	TarologistID string `json:"tarologist_id" validate:"required,uuid4"`
	// Count приводится к границам [1, max_batch] сервисом. Указатель
	// различает пропущенное поле (дефолтная партия) и явный 0
	// (приводится к 1).
	Count *int `json:"count"`
}

type IssueCodesResponse struct {
	// Коды в открытом виде показываются только один раз, в ответе
	// на выдачу. Дальше доступны только статусы.
	Codes []string `json:"codes"`
}

type ValidateCodeRequest struct {
	Code string `json:"code" validate:"required,review_code"`
}

type ValidateCodeResponse struct {
	CodeID         string `json:"code_id"`
	TarologistID   string `json:"tarologist_id"`
	TarologistName string `json:"tarologist_name"`
}

// CodeResponse - admin-листинг: только метаданные, без возможности
// восстановить партию кодов целиком
type CodeResponse struct {
	ID             string     `json:"id"`
	TarologistID   string     `json:"tarologist_id"`
	TarologistName string     `json:"tarologist_name"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
}
