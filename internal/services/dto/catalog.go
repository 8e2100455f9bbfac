package dto

// Варианты сортировки каталога
const (
	CatalogSortRating    = "rating"
	CatalogSortReviews   = "reviews"
	CatalogSortPriceAsc  = "price_asc"
	CatalogSortPriceDesc = "price_desc"
	CatalogSortName      = "name"
)

// CatalogQuery - параметры публичного каталога. Фильтрация и
// сортировка выполняются в памяти поверх выборки активных анкет.
type CatalogQuery struct {
	Search          string
	Formats         []string
	Specializations []string
	// Индекс в utils.PriceRanges, nil - без фильтра по цене
	PriceRange *int
	MinRating  *float64
	Sort       string
}

type CatalogResponse struct {
	Tarologists []TarologistResponse `json:"tarologists"`
	Total       int                  `json:"total"`
}
