package auth

import "errors"

// Роли администраторов. Менеджер модерирует отзывы и выдает коды,
// полный admin дополнительно управляет анкетами тарологов.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

var Permissions = map[string][]string{
	RoleAdmin: {
		"tarologists:read",
		"tarologists:write",
		"tarologists:delete",
		"reviews:moderate",
		"codes:issue",
		"uploads:write",
		"stats:read",
	},
	RoleManager: {
		"tarologists:read",
		"reviews:moderate",
		"codes:issue",
		"stats:read",
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin проверяет является ли пользователь полным администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleManager:
		return nil
	default:
		return errors.New("invalid admin role")
	}
}
