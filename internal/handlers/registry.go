package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	DiscoveryHandler *DiscoveryHandler
	MessageHandler   *MessageHandler
	SupportHandler   *SupportHandler
	HealthHandler    *HealthHandler
}
