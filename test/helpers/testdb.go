package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/utils"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateAdmin создает администратора с хешированием пароля
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string, role models.AdminRole) *models.AdminUser {
	hashed := password
	if !strings.HasPrefix(hashed, "$2a$") {
		hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		hashed = string(hashedBytes)
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("Не удалось создать администратора %s: %v", email, err)
	}
	return admin
}

// CreateAndLoginAdmin создает администратора с уникальным email и
// логинит его через API
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB, role models.AdminRole) (string, *models.AdminUser) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	password := "password123"
	admin := CreateAdmin(t, tx, email, password, role)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, admin
}

// CreateTarologist создает активную анкету с уникальным slug
func CreateTarologist(t *testing.T, tx *gorm.DB, name string) *models.Tarologist {
	slug := fmt.Sprintf("%s-%d", utils.GenerateSlug(name), time.Now().UnixNano())
	tarologist := &models.Tarologist{
		Name:            name,
		Slug:            slug,
		Specializations: pq.StringArray{"Отношения", "Финансы"},
		WorkFormats:     pq.StringArray{"Видео-звонок"},
		IsActive:        true,
	}
	if err := tx.Create(tarologist).Error; err != nil {
		t.Fatalf("Не удалось создать анкету таролога: %v", err)
	}
	return tarologist
}

// CreateService добавляет услугу тарологу
func CreateService(t *testing.T, tx *gorm.DB, tarologistID, name string, price int) *models.Service {
	service := &models.Service{
		TarologistID: tarologistID,
		Name:         name,
		Price:        price,
	}
	if err := tx.Create(service).Error; err != nil {
		t.Fatalf("Не удалось создать услугу: %v", err)
	}
	return service
}

// IssueCode вставляет код напрямую, минуя API
func IssueCode(t *testing.T, tx *gorm.DB, tarologistID, code string, expiresAt time.Time) *models.ReviewCode {
	reviewCode := &models.ReviewCode{
		TarologistID: tarologistID,
		Code:         code,
		Status:       models.CodeStatusIssued,
		ExpiresAt:    expiresAt,
	}
	if err := tx.Create(reviewCode).Error; err != nil {
		t.Fatalf("Не удалось создать код отзыва: %v", err)
	}
	return reviewCode
}

// CreateReview вставляет отзыв напрямую с нужным статусом
func CreateReview(t *testing.T, tx *gorm.DB, tarologistID string, rating int, status string) *models.Review {
	review := &models.Review{
		TarologistID: tarologistID,
		ClientName:   "Тестовый клиент",
		Rating:       rating,
		Text:         strings.Repeat("Очень содержательный отзыв. ", 3),
		Status:       status,
	}
	if err := tx.Create(review).Error; err != nil {
		t.Fatalf("Не удалось создать отзыв: %v", err)
	}
	return review
}

// ReviewText возвращает валидный текст отзыва заданной длины в рунах
func ReviewText(length int) string {
	return strings.Repeat("о", length)
}
