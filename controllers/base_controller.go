package controllers

import (
	"onboarding-backend/lib/apperr"
	apimodels "onboarding-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("error parsing request body")
		return errors.New("Unable to read request body.")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("requestid").(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// GetID returns the :id path parameter, which must be a uuid.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.NewValidation("Invalid id.")
	}
	return id, nil
}

// SendError answers with the status matching the error kind. Internal errors are
// logged and replaced by msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	kind := apperr.KindOf(err)
	status := statusByKind[kind]
	if kind == apperr.Internal {
		logger.WithError(err).Error(msg)
	}
	return ctx.Status(status).JSON(apimodels.NewError(apperr.MessageOf(err, msg)))
}

var statusByKind = map[apperr.Kind]int{
	apperr.Internal:       fiber.StatusInternalServerError,
	apperr.Validation:     fiber.StatusBadRequest,
	apperr.NotFound:       fiber.StatusNotFound,
	apperr.Precondition:   fiber.StatusBadRequest,
	apperr.Authorization:  fiber.StatusForbidden,
	apperr.Authentication: fiber.StatusUnauthorized,
	apperr.Unavailable:    fiber.StatusServiceUnavailable,
}
