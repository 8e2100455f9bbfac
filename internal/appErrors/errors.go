package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Неверный email или пароль", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Не авторизован", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Нет доступа", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Недействительный токен", http.StatusUnauthorized)

	// Тарологи
	ErrTarologistNotFound = New(CodeTarologistNotFound, "Таролог не найден", http.StatusNotFound)
	ErrSlugAlreadyExists  = New(CodeSlugAlreadyExists, "Таролог с таким slug уже существует", http.StatusConflict)

	// Коды отзывов. Validator различает все три случая,
	// Submitter наружу отдает только generic ErrInvalidCode.
	ErrCodeNotFound = New(CodeReviewCodeNotFound, "Код не найден", http.StatusNotFound)
	ErrCodeUsed     = New(CodeReviewCodeUsed, "Код уже был использован", http.StatusBadRequest)
	ErrCodeExpired  = New(CodeReviewCodeExpired, "Срок действия кода истёк", http.StatusBadRequest)
	ErrInvalidCode  = New(CodeReviewCodeInvalid, "Неверный код подтверждения", http.StatusBadRequest)

	// Отзывы
	ErrReviewNotFound = New(CodeReviewNotFound, "Отзыв не найден", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Ошибка валидации", http.StatusBadRequest)

	// Загрузка файлов
	ErrFileTooLarge    = New(CodeFileTooLarge, "Файл слишком большой", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFileType, "Недопустимый тип файла", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Внутренняя ошибка сервера", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Ошибка базы данных", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}
