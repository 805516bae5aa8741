package services

import (
	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	ProfileService   ProfileService
	DiscoveryService DiscoveryService
	MessageService   MessageService
	SupportService   SupportService
}

// NewServiceContainer собирает сервисы поверх выбранного хранилища
func NewServiceContainer(cfg *config.Config, store *repositories.Store, tokens *auth.TokenManager, msgOpts ...MessageOption) *ServiceContainer {
	return &ServiceContainer{
		AuthService:      NewAuthService(store.Users, tokens),
		ProfileService:   NewProfileService(store.Users),
		DiscoveryService: NewDiscoveryService(store.Users, DiscoveryOptionsFromConfig(cfg)),
		MessageService:   NewMessageService(store.Users, store.Messages, msgOpts...),
		SupportService:   NewSupportService(store.Tickets),
	}
}
