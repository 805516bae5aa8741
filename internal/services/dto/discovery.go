package dto

import (
	"sponsorly_backend/internal/models"
)

type DiscoverRequest struct {
	// Роль запрашивающего (политика opposite) или искомая роль (политика explicit).
	// Пусто - роль из токена.
	Role string `json:"role" validate:"omitempty,is-discover-role"`
}

type DiscoverSameRequest struct {
	Role  string `json:"role" validate:"omitempty,is-discover-role"`
	Email string `json:"email" validate:"omitempty,email"`
	Page  int    `json:"page" validate:"omitempty,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1"`
}

// UserSummary - проекция пользователя для списков discover
type UserSummary struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	Bio         string          `json:"bio,omitempty"`
	Location    string          `json:"location,omitempty"`
	Platform    string          `json:"platform,omitempty"`
	Followers   int64           `json:"followers,omitempty"`
	CompanyName string          `json:"companyName,omitempty"`
	Budget      string          `json:"budget,omitempty"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        u.Role,
		Bio:         u.Bio,
		Location:    u.Location,
		Platform:    u.Platform,
		Followers:   u.Followers,
		CompanyName: u.CompanyName,
		Budget:      u.Budget,
	}
}

func NewUserSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, NewUserSummary(&users[i]))
	}
	return out
}

type DiscoverResponse struct {
	Users []UserSummary `json:"users"`
}

type DiscoverPage struct {
	Users      []UserSummary `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}
