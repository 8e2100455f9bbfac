package validator

import (
	"log"
	"strings"

	"tarokatalog_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'review_code': 6 символов из алфавита кодов (без учета регистра)
	mustRegister("review_code", validateReviewCode)

	// 'is-review-status': статус отзыва после модерации
	mustRegister("is-review-status", validateReviewStatus)

	// 'is-admin-role': роль администратора
	mustRegister("is-admin-role", validateAdminRole)
}

// --- Функции валидации ---

func validateReviewCode(fl validator.FieldLevel) bool {
	// Пробелы и регистр нормализуются сервисом, здесь проверяем
	// уже нормализованную форму
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	if len(value) != models.ReviewCodeLength {
		return false
	}
	for _, r := range strings.ToUpper(value) {
		if !strings.ContainsRune(models.ReviewCodeAlphabet, r) {
			return false
		}
	}
	return true
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	// В модерации допустимы только терминальные статусы
	switch value {
	case models.ReviewStatusApproved, models.ReviewStatusRejected:
		return true
	default:
		return false
	}
}

func validateAdminRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AdminRole(value) {
	case models.AdminRoleAdmin, models.AdminRoleManager:
		return true
	default:
		return false
	}
}
