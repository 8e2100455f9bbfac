package integration_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/test/helpers"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type catalogListResponse struct {
	Tarologists []struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Slug      string  `json:"slug"`
		AvgRating float64 `json:"avg_rating"`
	} `json:"tarologists"`
	Total int `json:"total"`
}

// TestCatalog_OnlyActive - скрытые анкеты не попадают в каталог
func TestCatalog_OnlyActive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	active := helpers.CreateTarologist(t, tx, "Видимый Таролог")
	hidden := helpers.CreateTarologist(t, tx, "Скрытый Таролог")
	assert.NoError(t, tx.Model(hidden).Update("is_active", false).Error)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, active.ID)
	assert.NotContains(t, bodyStr, hidden.ID)
}

// TestCatalog_SearchAndFilters - поиск и фильтры каталога
func TestCatalog_SearchAndFilters(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	love := helpers.CreateTarologist(t, tx, "Любовный Эксперт")
	assert.NoError(t, tx.Model(love).Update("specializations", pq.StringArray{"Отношения"}).Error)
	assert.NoError(t, tx.Model(love).Update("work_formats", pq.StringArray{"Очно"}).Error)

	money := helpers.CreateTarologist(t, tx, "Финансовый Гуру")
	assert.NoError(t, tx.Model(money).Update("specializations", pq.StringArray{"Финансы"}).Error)
	assert.NoError(t, tx.Model(money).Update("work_formats", pq.StringArray{"Видео-звонок"}).Error)

	// Поиск по имени
	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?search="+url.QueryEscape("финанс"), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, money.ID)
	assert.NotContains(t, bodyStr, love.ID)

	// Фильтр по специализации
	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?specializations="+url.QueryEscape("Отношения"), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, love.ID)
	assert.NotContains(t, bodyStr, money.ID)

	// Фильтр по формату работы
	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?formats="+url.QueryEscape("Видео-звонок"), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, money.ID)
	assert.NotContains(t, bodyStr, love.ID)
}

// TestCatalog_MinRatingAndSort - фильтр по рейтингу и сортировка
func TestCatalog_MinRatingAndSort(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	low := helpers.CreateTarologist(t, tx, "Начинающий Таролог")
	assert.NoError(t, tx.Model(low).Update("avg_rating", 3.0).Error)

	high := helpers.CreateTarologist(t, tx, "Опытный Таролог")
	assert.NoError(t, tx.Model(high).Update("avg_rating", 4.8).Error)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?min_rating=4", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, high.ID)
	assert.NotContains(t, bodyStr, low.ID)

	// Сортировка по умолчанию: рейтинг по убыванию
	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/tarologists", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp catalogListResponse
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	// В транзакции текущего теста есть и другие активные анкеты
	// других тестов нет, а порядок проверяем только между нашими парами
	var highIdx, lowIdx int = -1, -1
	for i, item := range resp.Tarologists {
		switch item.ID {
		case high.ID:
			highIdx = i
		case low.ID:
			lowIdx = i
		}
	}
	assert.GreaterOrEqual(t, lowIdx, 0)
	assert.GreaterOrEqual(t, highIdx, 0)
	assert.Less(t, highIdx, lowIdx, "Высокий рейтинг должен идти раньше")
}

// TestCatalog_PriceRange - фильтр диапазона цен по минимальной цене услуги
func TestCatalog_PriceRange(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	cheap := helpers.CreateTarologist(t, tx, "Доступный Таролог")
	helpers.CreateService(t, tx, cheap.ID, "Экспресс-расклад", 900)

	expensive := helpers.CreateTarologist(t, tx, "Премиум Таролог")
	helpers.CreateService(t, tx, expensive.ID, "Глубокий разбор", 12000)

	noServices := helpers.CreateTarologist(t, tx, "Таролог Без Услуг")

	// Первый диапазон: до 1000
	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?price_range=0", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, cheap.ID)
	assert.NotContains(t, bodyStr, expensive.ID)
	assert.NotContains(t, bodyStr, noServices.ID)

	// Некорректный индекс диапазона
	res, _ = ts.SendRequest(t, tx, "GET", "/api/v1/tarologists?price_range=99", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestCatalog_ProfileBySlug - профиль со списком одобренных отзывов
func TestCatalog_ProfileBySlug(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tarologist := helpers.CreateTarologist(t, tx, "Профильный Таролог")
	approved := helpers.CreateReview(t, tx, tarologist.ID, 5, models.ReviewStatusApproved)
	pending := helpers.CreateReview(t, tx, tarologist.ID, 4, models.ReviewStatusPending)
	rejected := helpers.CreateReview(t, tx, tarologist.ID, 1, models.ReviewStatusRejected)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists/"+tarologist.Slug, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, approved.ID)
	assert.NotContains(t, bodyStr, pending.ID)
	assert.NotContains(t, bodyStr, rejected.ID)
}

// TestCatalog_ProfileHiddenOrMissing - скрытые и несуществующие
// анкеты отвечают 404
func TestCatalog_ProfileHiddenOrMissing(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	hidden := helpers.CreateTarologist(t, tx, "Невидимка")
	assert.NoError(t, tx.Model(hidden).Update("is_active", false).Error)

	res, _ := ts.SendRequest(t, tx, "GET", "/api/v1/tarologists/"+hidden.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, "GET", "/api/v1/tarologists/no-such-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
