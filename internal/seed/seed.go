// Package seed наполняет хранилище демонстрационными создателями и спонсорами.
// Набор детерминирован: повторный запуск дает те же профили.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
)

// DefaultPassword - пароль всех демо-аккаунтов
const DefaultPassword = "password123"

type Result struct {
	Created int
	Skipped int
}

// Users возвращает 25 создателей и 25 спонсоров без пароля
func Users() []models.User {
	users := make([]models.User, 0, len(creatorNames)+len(sponsorNames))

	for i, p := range creatorNames {
		platform := platforms[i%len(platforms)]
		first, last := strings.ToLower(p.firstName), strings.ToLower(p.lastName)
		dob := time.Date(1990+i%15, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC)

		users = append(users, models.User{
			FirstName:     p.firstName,
			LastName:      p.lastName,
			Email:         fmt.Sprintf("%s.%s@creator.com", first, last),
			Role:          models.UserRoleCreator,
			Bio:           bios[i%len(bios)],
			Location:      indianCities[i%len(indianCities)] + ", India",
			Platform:      platform,
			Handle:        "@" + first + last,
			Followers:     int64(10000 + (i*37123)%900000),
			AudienceReach: audienceReach[i%len(audienceReach)],
			DOB:           &dob,
			Links: []models.Link{
				{Label: platform, URL: fmt.Sprintf("https://%s.com/@%s", strings.ToLower(platform), first)},
			},
		})
	}

	for i, p := range sponsorNames {
		company := companies[i%len(companies)]
		first, last := strings.ToLower(p.firstName), strings.ToLower(p.lastName)

		users = append(users, models.User{
			FirstName:     p.firstName,
			LastName:      p.lastName,
			Email:         fmt.Sprintf("%s.%s@sponsor.com", first, last),
			Role:          models.UserRoleSponsor,
			Bio:           bios[(i+3)%len(bios)],
			Location:      indianCities[(i+5)%len(indianCities)] + ", India",
			CompanyName:   company,
			NoOfEmployees: teamSizes[i%len(teamSizes)],
			Budget:        budgets[i%len(budgets)],
			Requirements:  sponsorRequirements,
			Links: []models.Link{
				{Label: "Website", URL: "https://" + strings.ToLower(strings.ReplaceAll(company, " ", "")) + ".com"},
			},
		})
	}

	return users
}

// Run создает демо-пользователей. Уже существующие email пропускаются.
func Run(ctx context.Context, users repositories.UserRepository) (Result, error) {
	var res Result

	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return res, fmt.Errorf("hash seed password: %w", err)
	}

	for _, u := range Users() {
		u.PasswordHash = hash
		err := users.Create(ctx, &u)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, repositories.ErrUserAlreadyExists):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed %s: %w", u.Email, err)
		}
	}

	logger.CtxInfo(ctx, "seed finished", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}
