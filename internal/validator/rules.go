package validator

import (
	"log"
	"strings"

	"sponsorly_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные теги валидации
func registerCustomRules(v *validator.Validate) {
	// Правило, которое не удалось зарегистрировать, - ошибка сборки приложения
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'notblank': строка не пустая после trim
	mustRegister("notblank", validateNotBlank)

	// 'is-user-role': creator или sponsor
	mustRegister("is-user-role", validateUserRole)

	// 'is-discover-role': роль или "all"
	mustRegister("is-discover-role", validateDiscoverRole)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	return models.UserRole(value).Valid()
}

func validateDiscoverRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == models.RoleAll {
		return true
	}
	return models.UserRole(value).Valid()
}
