package services

import (
	"testing"

	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/services/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func catalogFixture() []models.Tarologist {
	return []models.Tarologist{
		{
			BaseModel:       models.BaseModel{ID: "a"},
			Name:            "Анна Любовь",
			Specializations: pq.StringArray{"Отношения"},
			WorkFormats:     pq.StringArray{"Видео-звонок"},
			AvgRating:       4.8,
			ReviewCount:     12,
			Services:        []models.Service{{Price: 2000}, {Price: 4000}},
		},
		{
			BaseModel:       models.BaseModel{ID: "b"},
			Name:            "Борис Финансист",
			Specializations: pq.StringArray{"Финансы", "Карьера"},
			WorkFormats:     pq.StringArray{"Очно"},
			AvgRating:       4.2,
			ReviewCount:     30,
			Services:        []models.Service{{Price: 7000}},
		},
		{
			BaseModel:   models.BaseModel{ID: "c"},
			Name:        "Вера Новичок",
			WorkFormats: pq.StringArray{"В переписке", "Видео-звонок"},
			AvgRating:   0,
			ReviewCount: 0,
		},
	}
}

func ids(tarologists []models.Tarologist) []string {
	result := make([]string, 0, len(tarologists))
	for _, t := range tarologists {
		result = append(result, t.ID)
	}
	return result
}

func TestFilterCatalog_Search(t *testing.T) {
	got := FilterCatalog(catalogFixture(), &dto.CatalogQuery{Search: "финанс"})
	assert.Equal(t, []string{"b"}, ids(got))

	// Поиск находит и по специализации
	got = FilterCatalog(catalogFixture(), &dto.CatalogQuery{Search: "отношения"})
	assert.Equal(t, []string{"a"}, ids(got))

	// Регистр не важен
	got = FilterCatalog(catalogFixture(), &dto.CatalogQuery{Search: "ВЕРА"})
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestFilterCatalog_FormatsOrWithinFilter(t *testing.T) {
	// Внутри фильтра условия по OR
	got := FilterCatalog(catalogFixture(), &dto.CatalogQuery{
		Formats: []string{"Очно", "В переписке"},
	})
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestFilterCatalog_FiltersCombineWithAnd(t *testing.T) {
	got := FilterCatalog(catalogFixture(), &dto.CatalogQuery{
		Formats:         []string{"Видео-звонок"},
		Specializations: []string{"Отношения"},
	})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterCatalog_PriceRange(t *testing.T) {
	idx := 0 // до 3000, по минимальной цене услуги
	got := FilterCatalog(catalogFixture(), &dto.CatalogQuery{PriceRange: &idx})
	assert.Equal(t, []string{"a"}, ids(got))

	// Без услуг анкета не попадает ни в один ценовой диапазон
	idx3 := 3
	got = FilterCatalog(catalogFixture(), &dto.CatalogQuery{PriceRange: &idx3})
	assert.Empty(t, ids(got))
}

func TestFilterCatalog_MinRating(t *testing.T) {
	minRating := 4.5
	got := FilterCatalog(catalogFixture(), &dto.CatalogQuery{MinRating: &minRating})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSortCatalog(t *testing.T) {
	cases := []struct {
		sort string
		want []string
	}{
		{dto.CatalogSortRating, []string{"a", "b", "c"}},
		{"", []string{"a", "b", "c"}}, // дефолт - рейтинг
		{dto.CatalogSortReviews, []string{"b", "a", "c"}},
		{dto.CatalogSortPriceAsc, []string{"a", "b", "c"}}, // без услуг - в конец
		{dto.CatalogSortPriceDesc, []string{"b", "a", "c"}},
		{dto.CatalogSortName, []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run("sort="+tc.sort, func(t *testing.T) {
			fixture := catalogFixture()
			SortCatalog(fixture, tc.sort)
			assert.Equal(t, tc.want, ids(fixture))
		})
	}
}

func TestSortCatalog_Stable(t *testing.T) {
	// При равных рейтингах исходный порядок (sort_order из БД) сохраняется
	fixture := []models.Tarologist{
		{BaseModel: models.BaseModel{ID: "first"}, AvgRating: 4.0},
		{BaseModel: models.BaseModel{ID: "second"}, AvgRating: 4.0},
		{BaseModel: models.BaseModel{ID: "third"}, AvgRating: 4.0},
	}
	SortCatalog(fixture, dto.CatalogSortRating)
	assert.Equal(t, []string{"first", "second", "third"}, ids(fixture))
}
