package dto

// StatsResponse - сводка для дашборда админки
type StatsResponse struct {
	Tarologists       int64 `json:"tarologists"`
	ActiveTarologists int64 `json:"active_tarologists"`
	PendingReviews    int64 `json:"pending_reviews"`
	ApprovedReviews   int64 `json:"approved_reviews"`
	IssuedCodes       int64 `json:"issued_codes"`
	UsedCodes         int64 `json:"used_codes"`
}
