// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan AppError)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Server error"
	}
	return c.Status(status).JSON(ErrorResponse{
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonAppError memetakan error service ke response. Error internal dicatat
// lengkap di log, client hanya melihat pesan opaque.
func JsonAppError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	var ae *AppError
	if !errors.As(err, &ae) {
		ae = ErrInternal("unhandled", err)
	}
	if ae.Kind == KindInternal && log != nil {
		log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.OriginalURL(),
			"request_id": RequestID(c),
		}).WithError(ae.Err).Error("request failed")
	}
	return c.Status(ae.Kind.Status()).JSON(ErrorResponse{
		Message:   ae.Message,
		ErrorCode: ae.Kind.String(),
		Errors:    ae.Fields,
	})
}

// ValidationAppError membangun AppError dari validator.ValidationErrors.
func ValidationAppError(err error) *AppError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ErrValidation("Invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
	}
	ae := ErrValidation("All fields are required and must be valid")
	ae.Fields = fields
	return ae
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

func body(message string, fields fiber.Map) fiber.Map {
	out := fiber.Map{}
	for k, v := range fields {
		out[k] = v
	}
	if strings.TrimSpace(message) != "" {
		out["message"] = message
	}
	return out
}

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, fields fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(body(message, fields))
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, fields fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(body(message, fields))
}

// JsonList: list dengan pagination
func JsonList(c *fiber.Ctx, key string, data any, pagination *Pagination) error {
	fields := fiber.Map{key: data}
	if pagination != nil {
		fields["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(fields)
}
