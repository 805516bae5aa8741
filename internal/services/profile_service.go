package services

import (
	"context"

	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
	// UpdateProfile меняет только поля из белого списка ProfileUpdate
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*models.User, error)
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, email string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewBadRequestError("Email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*models.User, error) {
	upd, err := req.ToUpdate()
	if err != nil {
		return nil, err
	}

	// Пустое обновление просто возвращает текущий профиль
	if upd.Empty() {
		return s.GetProfile(ctx, email)
	}

	user, err := s.userRepo.UpdateProfile(ctx, models.NormalizeEmail(email), upd)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", user.ID)
	return user, nil
}
