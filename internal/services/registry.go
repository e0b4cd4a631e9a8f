package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	CatalogService CatalogService
	BookingService BookingService
	ReviewService  ReviewService
	ProfileService ProfileService
}
