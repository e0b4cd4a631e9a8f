package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	CatalogHandler *CatalogHandler
	BookingHandler *BookingHandler
	ReviewHandler  *ReviewHandler
	ProfileHandler *ProfileHandler
	HealthHandler  *HealthHandler
}
