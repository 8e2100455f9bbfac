package utils

import (
	"testing"

	"tarokatalog_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxServicePrice(t *testing.T) {
	services := []models.Service{
		{Price: 3000},
		{Price: 1500},
		{Price: 9000},
	}

	min, ok := MinServicePrice(services)
	assert.True(t, ok)
	assert.Equal(t, 1500, min)

	max, ok := MaxServicePrice(services)
	assert.True(t, ok)
	assert.Equal(t, 9000, max)

	_, ok = MinServicePrice(nil)
	assert.False(t, ok)
	_, ok = MaxServicePrice(nil)
	assert.False(t, ok)
}

func TestInPriceRange(t *testing.T) {
	closed := PriceRange{Min: 3000, Max: 5000}

	// Нижняя граница включена, верхняя нет
	assert.False(t, closed.InPriceRange(2999))
	assert.True(t, closed.InPriceRange(3000))
	assert.True(t, closed.InPriceRange(4999))
	assert.False(t, closed.InPriceRange(5000))

	open := PriceRange{Min: 10000, Max: -1}
	assert.False(t, open.InPriceRange(9999))
	assert.True(t, open.InPriceRange(10000))
	assert.True(t, open.InPriceRange(1000000))
}

func TestPriceRanges_CoverWithoutGaps(t *testing.T) {
	// Диапазоны фильтра стыкуются: верх предыдущего равен низу следующего
	for i := 1; i < len(PriceRanges); i++ {
		assert.Equal(t, PriceRanges[i-1].Max, PriceRanges[i].Min,
			"Разрыв между диапазонами %d и %d", i-1, i)
	}
	// Последний диапазон открыт сверху
	assert.Negative(t, PriceRanges[len(PriceRanges)-1].Max)
}
