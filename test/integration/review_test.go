package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestSubmitReview_FullFlow - полный путь: проверка кода, отправка
// отзыва, погашение кода
func TestSubmitReview_FullFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Светлана Таро")
	code := helpers.IssueCode(t, tx, tarologist.ID, "JJJJ22", time.Now().Add(24*time.Hour))

	// Шаг 1: проверка кода
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/codes/validate", "", map[string]interface{}{
		"code": "JJJJ22",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var validateResp struct {
		CodeID       string `json:"code_id"`
		TarologistID string `json:"tarologist_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &validateResp))
	assert.Equal(t, code.ID, validateResp.CodeID)

	// Шаг 2: отправка отзыва
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
		"tarologist_id": validateResp.TarologistID,
		"code_id":       validateResp.CodeID,
		"client_name":   "Наталья",
		"rating":        5,
		"text":          helpers.ReviewText(100),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var submitResp struct {
		Success bool `json:"success"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submitResp))
	assert.True(t, submitResp.Success)

	// Отзыв создан в статусе pending
	var review models.Review
	assert.NoError(t, tx.First(&review, "code_id = ?", code.ID).Error)
	assert.Equal(t, models.ReviewStatusPending, review.Status)
	assert.Equal(t, 5, review.Rating)

	// Код погашен
	var reloaded models.ReviewCode
	assert.NoError(t, tx.First(&reloaded, "id = ?", code.ID).Error)
	assert.Equal(t, models.CodeStatusUsed, reloaded.Status)
	assert.NotNil(t, reloaded.UsedAt)

	// Повторная отправка с тем же кодом отклоняется
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
		"tarologist_id": validateResp.TarologistID,
		"code_id":       validateResp.CodeID,
		"client_name":   "Наталья",
		"rating":        4,
		"text":          helpers.ReviewText(100),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Неверный код подтверждения")
}

// TestSubmitReview_CodeTarologistMismatch - код чужого таролога дает
// тот же общий отказ, без деталей
func TestSubmitReview_CodeTarologistMismatch(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Вера Таро")
	other := helpers.CreateTarologist(t, tx, "Чужой Таролог")
	code := helpers.IssueCode(t, tx, other.ID, "KKKK33", time.Now().Add(24*time.Hour))

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
		"tarologist_id": tarologist.ID,
		"code_id":       code.ID,
		"client_name":   "Клиент",
		"rating":        5,
		"text":          helpers.ReviewText(100),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Неверный код подтверждения")
}

// TestSubmitReview_ExpiredCode - код, истекший между проверкой и
// отправкой, отклоняется
func TestSubmitReview_ExpiredCode(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Дарья Таро")
	code := helpers.IssueCode(t, tx, tarologist.ID, "LLLL44", time.Now().Add(-1*time.Minute))

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
		"tarologist_id": tarologist.ID,
		"code_id":       code.ID,
		"client_name":   "Клиент",
		"rating":        3,
		"text":          helpers.ReviewText(100),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Отзыв не создан
	var count int64
	tx.Model(&models.Review{}).Where("code_id = ?", code.ID).Count(&count)
	assert.Zero(t, count)
}

// TestSubmitReview_TextBounds - границы длины текста после trim
func TestSubmitReview_TextBounds(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Полина Таро")

	cases := []struct {
		name       string
		text       string
		wantStatus int
	}{
		{"49 символов - мало", helpers.ReviewText(49), http.StatusBadRequest},
		{"50 символов - нижняя граница", helpers.ReviewText(50), http.StatusCreated},
		{"1000 символов - верхняя граница", helpers.ReviewText(1000), http.StatusCreated},
		{"1001 символ - много", helpers.ReviewText(1001), http.StatusBadRequest},
		{"пробелы не считаются", "   " + helpers.ReviewText(49) + "   ", http.StatusBadRequest},
	}

	codes := []string{"MMMM22", "MMMM33", "MMMM44", "MMMM55", "MMMM66"}
	for i, tc := range cases {
		code := helpers.IssueCode(t, tx, tarologist.ID, codes[i], time.Now().Add(24*time.Hour))

		res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
			"tarologist_id": tarologist.ID,
			"code_id":       code.ID,
			"client_name":   "Клиент",
			"rating":        4,
			"text":          tc.text,
		})
		assert.Equal(t, tc.wantStatus, res.StatusCode, "%s: %s", tc.name, bodyStr)
	}
}

// TestSubmitReview_RatingBounds - рейтинг строго 1..5
func TestSubmitReview_RatingBounds(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Алиса Таро")

	for _, rating := range []int{0, 6, -1} {
		res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/reviews", "", map[string]interface{}{
			"tarologist_id": tarologist.ID,
			"code_id":       "00000000-0000-4000-8000-000000000000",
			"client_name":   "Клиент",
			"rating":        rating,
			"text":          helpers.ReviewText(100),
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Рейтинг %d должен быть отклонен", rating)
	}
}

// TestModerateReview_ApproveRecalculatesRating - одобрение пересчитывает
// агрегаты анкеты
func TestModerateReview_ApproveRecalculatesRating(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx, models.AdminRoleManager)
	tarologist := helpers.CreateTarologist(t, tx, "Злата Таро")

	first := helpers.CreateReview(t, tx, tarologist.ID, 5, models.ReviewStatusPending)
	second := helpers.CreateReview(t, tx, tarologist.ID, 4, models.ReviewStatusPending)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/reviews/"+first.ID, adminToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "approved")

	var reloaded models.Tarologist
	assert.NoError(t, tx.First(&reloaded, "id = ?", tarologist.ID).Error)
	assert.Equal(t, 5.0, reloaded.AvgRating)
	assert.Equal(t, 1, reloaded.ReviewCount)

	// Второй отзыв: среднее округляется до одного знака
	res, _ = ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/reviews/"+second.ID, adminToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.NoError(t, tx.First(&reloaded, "id = ?", tarologist.ID).Error)
	assert.Equal(t, 4.5, reloaded.AvgRating)
	assert.Equal(t, 2, reloaded.ReviewCount)

	// Модератор зафиксирован
	var moderated models.Review
	assert.NoError(t, tx.First(&moderated, "id = ?", first.ID).Error)
	assert.NotNil(t, moderated.ModeratedAt)
	assert.Equal(t, admin.ID, *moderated.ModeratedBy)
}

// TestModerateReview_RejectExcludesFromAggregates - отклоненные отзывы
// не влияют на рейтинг
func TestModerateReview_RejectExcludesFromAggregates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx, models.AdminRoleManager)
	tarologist := helpers.CreateTarologist(t, tx, "Римма Таро")
	review := helpers.CreateReview(t, tx, tarologist.ID, 1, models.ReviewStatusPending)

	res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/reviews/"+review.ID, adminToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var reloaded models.Tarologist
	assert.NoError(t, tx.First(&reloaded, "id = ?", tarologist.ID).Error)
	assert.Zero(t, reloaded.AvgRating)
	assert.Zero(t, reloaded.ReviewCount)
}

// TestModerateReview_InvalidStatus - pending обратно не выставляется
func TestModerateReview_InvalidStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx, models.AdminRoleManager)
	tarologist := helpers.CreateTarologist(t, tx, "Нина Таро")
	review := helpers.CreateReview(t, tx, tarologist.ID, 3, models.ReviewStatusPending)

	for _, bad := range []string{"pending", "deleted", ""} {
		res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/reviews/"+review.ID, adminToken, map[string]interface{}{
			"status": bad,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Статус %q должен быть отклонен", bad)
	}
}

// TestListReviews_ByStatus - админский листинг фильтрует по статусу
func TestListReviews_ByStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx, models.AdminRoleManager)
	tarologist := helpers.CreateTarologist(t, tx, "Лидия Таро")

	pending := helpers.CreateReview(t, tx, tarologist.ID, 4, models.ReviewStatusPending)
	approved := helpers.CreateReview(t, tx, tarologist.ID, 5, models.ReviewStatusApproved)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/reviews", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, pending.ID)
	assert.NotContains(t, bodyStr, approved.ID)

	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/admin/reviews?status=approved", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, approved.ID)
	assert.NotContains(t, bodyStr, pending.ID)
}
