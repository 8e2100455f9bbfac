package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	CatalogHandler    *CatalogHandler
	TarologistHandler *TarologistHandler
	CodeHandler       *CodeHandler
	ReviewHandler     *ReviewHandler
	StatsHandler      *StatsHandler
	UploadHandler     *UploadHandler
}
