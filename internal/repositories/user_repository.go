package repositories

import (
	"context"
	"errors"
	"time"

	"sponsorly_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create полагается на уникальный индекс по email; db должен быть открыт
// с TranslateError, чтобы нарушение пришло как gorm.ErrDuplicatedKey.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", models.NormalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (*models.User, error) {
	email = models.NormalizeEmail(email)

	cols := upd.Columns()
	if len(cols) > 0 {
		cols["updated_at"] = time.Now()
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Updates(cols)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return r.FindByEmail(ctx, email)
}

func (r *UserRepositoryImpl) Discover(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.ExcludeEmail != "" {
		query = query.Where("email <> ?", models.NormalizeEmail(filter.ExcludeEmail))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at ASC").Order("id ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&users).Error
	return users, total, err
}

// Обслуживание

func (r *UserRepositoryImpl) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, email string) (bool, error) {
	result := r.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).Delete(&models.User{})
	return result.RowsAffected > 0, result.Error
}

func (r *UserRepositoryImpl) DeleteWithoutLocation(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("location IS NULL OR TRIM(location) = ''").Delete(&models.User{})
	return result.RowsAffected, result.Error
}

func (r *UserRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{})
	return result.RowsAffected, result.Error
}
