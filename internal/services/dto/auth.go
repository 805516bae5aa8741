package dto

import (
	"sponsorly_backend/internal/models"
)

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,notblank,max=100"`
	LastName        string `json:"lastName" validate:"required,notblank,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role" validate:"required,is-user-role"`
	ProfileFields
}

// ToUser собирает модель пользователя без пароля
func (r *RegisterRequest) ToUser() (*models.User, error) {
	upd, err := r.ProfileFields.toUpdate()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: *trimmed(&r.FirstName),
		LastName:  *trimmed(&r.LastName),
		Email:     models.NormalizeEmail(r.Email),
		Role:      models.UserRole(r.Role),
	}
	upd.Apply(user)
	return user, nil
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	User        UserBrief `json:"user"`
}

// UserBrief - данные пользователя, которые фронтенд хранит после логина
type UserBrief struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
}

func NewUserBrief(u *models.User) UserBrief {
	return UserBrief{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}
