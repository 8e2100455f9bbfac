package services

import (
	"strings"
	"testing"
	"time"

	"tarokatalog_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode_Shape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateCode()
		assert.Len(t, code, models.ReviewCodeLength)
		for _, r := range code {
			assert.Contains(t, models.ReviewCodeAlphabet, string(r),
				"Символ %q вне алфавита в коде %s", r, code)
		}
	}
}

func TestGenerateCode_NoAmbiguousChars(t *testing.T) {
	// В алфавите нет визуально похожих символов
	for _, banned := range []string{"I", "O", "0", "1"} {
		assert.NotContains(t, models.ReviewCodeAlphabet, banned)
	}
}

func TestClampCount(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	cases := []struct {
		name  string
		count *int
		want  int
	}{
		{"не передан -> дефолт", nil, 10},
		{"явный ноль -> один", intPtr(0), 1},
		{"отрицательный -> один", intPtr(-5), 1},
		{"в границах", intPtr(25), 25},
		{"минимум", intPtr(1), 1},
		{"максимум", intPtr(50), 50},
		{"выше максимума", intPtr(1000), 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampCount(tc.count, 10, 50))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABCD23", NormalizeCode("  abcd23  "))
	assert.Equal(t, "ABCD23", NormalizeCode("AbCd23"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestEffectiveCodeStatus(t *testing.T) {
	now := time.Now()

	issued := &models.ReviewCode{Status: models.CodeStatusIssued, ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, models.CodeStatusIssued, effectiveCodeStatus(issued, now))

	// Просроченный issued показывается как expired до обновления записи
	stale := &models.ReviewCode{Status: models.CodeStatusIssued, ExpiresAt: now.Add(-time.Hour)}
	assert.Equal(t, models.CodeStatusExpired, effectiveCodeStatus(stale, now))

	// Статус used не переписывается временем
	used := &models.ReviewCode{Status: models.CodeStatusUsed, ExpiresAt: now.Add(-time.Hour)}
	assert.Equal(t, models.CodeStatusUsed, effectiveCodeStatus(used, now))
}

func TestReviewCodeAlphabet_Size(t *testing.T) {
	// 32 символа, без дублей
	assert.Len(t, models.ReviewCodeAlphabet, 32)
	seen := map[rune]bool{}
	for _, r := range models.ReviewCodeAlphabet {
		assert.False(t, seen[r], "Дубликат %q в алфавите", r)
		seen[r] = true
	}
	assert.Equal(t, strings.ToUpper(models.ReviewCodeAlphabet), models.ReviewCodeAlphabet)
}
