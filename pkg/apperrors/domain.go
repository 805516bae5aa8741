package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки предметной области.
Сервисы возвращают их напрямую или через WithError / WithDetails (копии).
*/

// =========================================================================
// Пользователи
// =========================================================================

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User with this email already exists",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"user",
	"Role must be creator or sponsor",
	http.StatusBadRequest,
)

// =========================================================================
// Аутентификация
// =========================================================================

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// =========================================================================
// Сообщения
// =========================================================================

var ErrMissingFields = New(
	CodeValidationFailed,
	"message",
	"Sender email, receiver email and content are required",
	http.StatusBadRequest,
)

var ErrEmptyContent = New(
	CodeValidationFailed,
	"message",
	"Message content cannot be empty",
	http.StatusBadRequest,
)

var ErrSelfMessage = New(
	CodeInvalidOperation,
	"message",
	"Cannot send a message to yourself",
	http.StatusBadRequest,
)

var ErrSenderNotFound = New(
	CodeNotFound,
	"message",
	"Sender not found",
	http.StatusNotFound,
)

var ErrReceiverNotFound = New(
	CodeNotFound,
	"message",
	"Receiver not found",
	http.StatusNotFound,
)

var ErrOtherUserNotFound = New(
	CodeNotFound,
	"message",
	"Conversation partner not found",
	http.StatusNotFound,
)

var ErrMissingUserEmail = New(
	CodeValidationFailed,
	"message",
	"User email is required",
	http.StatusBadRequest,
)
