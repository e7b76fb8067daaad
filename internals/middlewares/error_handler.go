package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	helper "classmanager_backend/internals/helpers"
)

// ErrorHandler dipasang di fiber.Config: semua error yang lolos dari handler
// (termasuk panic dari recover) dikembalikan dalam bentuk JSON standar.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *helper.AppError
		if errors.As(err, &ae) {
			return helper.JsonAppError(c, log, ae)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code >= fiber.StatusInternalServerError {
				log.WithField("path", c.OriginalURL()).WithError(err).Error("request failed")
				msg = "Server error"
			}
			return helper.JsonError(c, fe.Code, msg)
		}

		log.WithFields(logrus.Fields{
			"path":       c.OriginalURL(),
			"request_id": helper.RequestID(c),
		}).WithError(err).Error("unhandled error")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
}
