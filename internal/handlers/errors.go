package handlers

import (
	stderrors "errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"bankcards/internal/errors"
	"bankcards/internal/utils/response"
)

// statusForCode maps domain error codes to HTTP statuses.
var statusForCode = map[string]int{
	"CARD_NOT_FOUND":        fiber.StatusNotFound,
	"TRANSFER_NOT_FOUND":    fiber.StatusNotFound,
	"USER_NOT_FOUND":        fiber.StatusNotFound,
	"ACCESS_DENIED":         fiber.StatusForbidden,
	"SAME_CARD_TRANSFER":    fiber.StatusConflict,
	"USER_ALREADY_EXISTS":   fiber.StatusConflict,
	"CARD_NOT_ACTIVE":       fiber.StatusBadRequest,
	"INSUFFICIENT_FUNDS":    fiber.StatusBadRequest,
	"INVALID_AMOUNT":        fiber.StatusBadRequest,
	"INVALID_CREDENTIALS":   fiber.StatusUnauthorized,
	"INVALID_REFRESH_TOKEN": fiber.StatusUnauthorized,
}

// respondError translates a service error into an HTTP response.
// Unknown errors become a generic 500 without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		if status, ok := statusForCode[domainErr.Code]; ok {
			return response.Error(c, status, domainErr.Message)
		}
	}
	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return response.ServerError(c, "internal server error")
}
