package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeForm struct {
	Code string `json:"code" validate:"required,review_code"`
}

type statusForm struct {
	Status string `json:"status" validate:"required,is-review-status"`
}

type roleForm struct {
	Role string `json:"role" validate:"required,is-admin-role"`
}

func TestValidate_ReviewCode(t *testing.T) {
	v := New()

	valid := []string{"ABCDEF", "abcdef", "A2B3C4", "  ABCDEF  "}
	for _, code := range valid {
		assert.NoError(t, v.Validate(&codeForm{Code: code}), "Код %q должен проходить", code)
	}

	invalid := []string{
		"ABCDE",   // короткий
		"ABCDEFG", // длинный
		"ABCDE0",  // 0 вне алфавита
		"ABCDE1",  // 1 вне алфавита
		"ABCDEI",  // I вне алфавита
		"ABCDEO",  // O вне алфавита
		"ABC DE",  // пробел внутри
		"ABCDE!",  // спецсимвол
		"АВСДЕЁ",  // кириллица
	}
	for _, code := range invalid {
		assert.Error(t, v.Validate(&codeForm{Code: code}), "Код %q должен отклоняться", code)
	}

	// Пустой ловится required, а не review_code
	err := v.Validate(&codeForm{})
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "code")
}

func TestValidate_ReviewStatus(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&statusForm{Status: "approved"}))
	assert.NoError(t, v.Validate(&statusForm{Status: "rejected"}))

	// pending - начальный статус, модерацией не выставляется
	for _, bad := range []string{"pending", "deleted", "APPROVED"} {
		assert.Error(t, v.Validate(&statusForm{Status: bad}), "Статус %q должен отклоняться", bad)
	}
}

func TestValidate_AdminRole(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&roleForm{Role: "admin"}))
	assert.NoError(t, v.Validate(&roleForm{Role: "manager"}))
	assert.Error(t, v.Validate(&roleForm{Role: "superuser"}))
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	type form struct {
		ClientName string `json:"client_name" validate:"required"`
	}

	err := v.Validate(&form{})
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "client_name")
}
