package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Ресурсы
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeTarologistNotFound ErrorCode = "TAROLOGIST_NOT_FOUND"
	CodeReviewNotFound     ErrorCode = "REVIEW_NOT_FOUND"
	CodeReviewCodeNotFound ErrorCode = "CODE_NOT_FOUND"

	// Бизнес-логика
	CodeSlugAlreadyExists ErrorCode = "SLUG_ALREADY_EXISTS"
	CodeReviewCodeUsed    ErrorCode = "CODE_USED"
	CodeReviewCodeExpired ErrorCode = "CODE_EXPIRED"
	CodeReviewCodeInvalid ErrorCode = "CODE_INVALID"
	CodeFileTooLarge      ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType   ErrorCode = "INVALID_FILE_TYPE"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
