package services

import (
	"context"
	"math"

	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"
)

type DiscoveryService interface {
	Discover(ctx context.Context, role, email string) ([]dto.UserSummary, error)
	DiscoverSame(ctx context.Context, role, email string, page, limit int) (*dto.DiscoverPage, error)
}

// DiscoveryOptions - настройки выдачи из секции discovery конфига
type DiscoveryOptions struct {
	Policy          string
	Limit           int
	DefaultPageSize int
	MaxPageSize     int
}

func DiscoveryOptionsFromConfig(cfg *config.Config) DiscoveryOptions {
	return DiscoveryOptions{
		Policy:          cfg.Discovery.Policy,
		Limit:           cfg.Discovery.Limit,
		DefaultPageSize: cfg.Discovery.DefaultPageSize,
		MaxPageSize:     cfg.Discovery.MaxPageSize,
	}
}

type DiscoveryServiceImpl struct {
	userRepo repositories.UserRepository
	opts     DiscoveryOptions
}

func NewDiscoveryService(userRepo repositories.UserRepository, opts DiscoveryOptions) DiscoveryService {
	if opts.Policy == "" {
		opts.Policy = config.PolicyOpposite
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 9
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 100
	}
	return &DiscoveryServiceImpl{userRepo: userRepo, opts: opts}
}

// Discover - короткая выдача для главной страницы.
// opposite: role - роль запрашивающего, отдаем другую сторону.
// explicit: role - искомая роль, "all" - без фильтра.
// email - запрашивающий, в выдачу не попадает.
func (s *DiscoveryServiceImpl) Discover(ctx context.Context, role, email string) ([]dto.UserSummary, error) {
	target, err := s.targetRole(role)
	if err != nil {
		return nil, err
	}

	users, _, err := s.userRepo.Discover(ctx, repositories.UserFilter{
		Role:         target,
		ExcludeEmail: models.NormalizeEmail(email),
		Limit:        s.opts.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserSummaries(users), nil
}

func (s *DiscoveryServiceImpl) targetRole(role string) (models.UserRole, error) {
	if role == models.RoleAll {
		return "", nil
	}

	r := models.UserRole(role)
	if !r.Valid() {
		return "", apperrors.ErrInvalidUserRole
	}
	if s.opts.Policy == config.PolicyExplicit {
		return r, nil
	}
	return r.Opposite(), nil
}

// DiscoverSame - постраничная выдача по роли (или по всем ролям) без самого пользователя
func (s *DiscoveryServiceImpl) DiscoverSame(ctx context.Context, role, email string, page, limit int) (*dto.DiscoverPage, error) {
	var target models.UserRole
	if role != "" && role != models.RoleAll {
		target = models.UserRole(role)
		if !target.Valid() {
			return nil, apperrors.ErrInvalidUserRole
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.opts.DefaultPageSize
	}
	if limit > s.opts.MaxPageSize {
		limit = s.opts.MaxPageSize
	}
	// Смещение (page-1)*limit должно помещаться в int
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}

	users, total, err := s.userRepo.Discover(ctx, repositories.UserFilter{
		Role:         target,
		ExcludeEmail: models.NormalizeEmail(email),
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.DiscoverPage{
		Users:      dto.NewUserSummaries(users),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
