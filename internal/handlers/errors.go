package handlers

import (
	"errors"
	"strconv"

	"bonehealth-backend/internal/repository"
	"bonehealth-backend/internal/services"
	"bonehealth-backend/internal/transfer"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto HTTP statuses. notFound and failure
// are the messages used for 404 and 500 respectively.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, notFound, failure string) error {
	var validationErr *repository.ValidationError
	var headerErr *transfer.CSVHeaderError

	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, "Invalid request data", []utils.FieldError{
			{Field: validationErr.Field, Message: validationErr.Message},
		})
	case errors.As(err, &headerErr):
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, headerErr.Error(), headerErr)
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, repository.ErrDuplicateKey), errors.Is(err, repository.ErrDuplicateTranslation):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrStoreUnavailable):
		logger.WithError(err).WithField("path", c.Path()).Error("Store unavailable")
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Storage is temporarily unavailable")
	case errors.Is(err, services.ErrPublishingDisabled):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, err.Error())
	}

	logger.WithError(err).WithField("path", c.Path()).Error(failure)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, failure)
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ErrorHandler is the application-wide fiber error handler.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		return utils.ErrorResponse(c, code, err.Error())
	}
}
