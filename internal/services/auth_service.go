package services

import (
	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/auth"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	adminRepo repositories.AdminUserRepository
}

func NewAuthService(adminRepo repositories.AdminUserRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login проверяет пару email/пароль против allow-list администраторов.
// Для несуществующего email и неверного пароля ответ одинаковый.
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrAdminNotFound {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Email: admin.Email,
		Role:  string(admin.Role),
	}, nil
}
