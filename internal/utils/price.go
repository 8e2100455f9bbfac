package utils

import "tarokatalog_backend/internal/models"

// PriceRange - диапазон фильтра по цене. Max < 0 означает "без
// верхней границы".
type PriceRange struct {
	Label string
	Min   int
	Max   int
}

// Фиксированные диапазоны фильтра каталога
var PriceRanges = []PriceRange{
	{Label: "До 3 000₽", Min: 0, Max: 3000},
	{Label: "3 000 — 5 000₽", Min: 3000, Max: 5000},
	{Label: "5 000 — 10 000₽", Min: 5000, Max: 10000},
	{Label: "От 10 000₽", Min: 10000, Max: -1},
}

// MinServicePrice возвращает минимальную цену услуг, ok=false для
// пустого списка.
func MinServicePrice(services []models.Service) (int, bool) {
	if len(services) == 0 {
		return 0, false
	}
	min := services[0].Price
	for _, s := range services[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min, true
}

// MaxServicePrice возвращает максимальную цену услуг, ok=false для
// пустого списка.
func MaxServicePrice(services []models.Service) (int, bool) {
	if len(services) == 0 {
		return 0, false
	}
	max := services[0].Price
	for _, s := range services[1:] {
		if s.Price > max {
			max = s.Price
		}
	}
	return max, true
}

// InPriceRange проверяет попадание минимальной цены в диапазон
// [Min, Max). Открытый верх (Max < 0) ограничен только снизу.
func (r PriceRange) InPriceRange(price int) bool {
	if price < r.Min {
		return false
	}
	if r.Max < 0 {
		return true
	}
	return price < r.Max
}
