package services

// ServiceContainer собирает все сервисы приложения для DI в хэндлеры
type ServiceContainer struct {
	AuthService       AuthService
	CatalogService    CatalogService
	TarologistService TarologistService
	ReviewCodeService ReviewCodeService
	ReviewService     ReviewService
	StatsService      StatsService
}
