package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorKind adalah taksonomi error domain yang dipetakan ke status HTTP.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInvalidCredentials
	KindDuplicateIdentity
	KindInvalidRole
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case KindDuplicateIdentity:
		return "DUPLICATE_IDENTITY"
	case KindInvalidRole:
		return "INVALID_ROLE"
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	default:
		return "INTERNAL_ERROR"
	}
}

// Status mengembalikan status HTTP untuk kind ini.
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation, KindInvalidCredentials, KindDuplicateIdentity, KindInvalidRole:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindForbidden:
		return fiber.StatusForbidden
	case KindConflict:
		return fiber.StatusConflict
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// AppError dibawa dari service ke controller.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func newAppError(kind ErrorKind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func ErrValidation(msg string) *AppError        { return newAppError(KindValidation, msg) }
func ErrInvalidCredentials() *AppError          { return newAppError(KindInvalidCredentials, "Invalid credentials") }
func ErrDuplicateIdentity(msg string) *AppError { return newAppError(KindDuplicateIdentity, msg) }
func ErrInvalidRole(msg string) *AppError       { return newAppError(KindInvalidRole, msg) }
func ErrNotFound(msg string) *AppError          { return newAppError(KindNotFound, msg) }
func ErrForbidden(msg string) *AppError         { return newAppError(KindForbidden, msg) }
func ErrConflict(msg string) *AppError          { return newAppError(KindConflict, msg) }
func ErrUnauthorized(msg string) *AppError      { return newAppError(KindUnauthorized, msg) }

// ErrInternal membungkus error store; pesan ke client tetap opaque.
func ErrInternal(op string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Server error", Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf mengembalikan kind dari err (KindInternal untuk error non-AppError).
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind cek apakah err adalah AppError dengan kind tertentu.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}

// IsDuplicateKey mendeteksi pelanggaran UNIQUE dari gorm/sqlite/postgres.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "sqlstate 23505")
}

// IsNotFound untuk gorm.ErrRecordNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
