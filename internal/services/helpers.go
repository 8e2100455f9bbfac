package services

import "strings"

// NormalizeCode приводит пользовательский ввод кода к канонической
// форме: trim + верхний регистр.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
