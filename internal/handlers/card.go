package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"bankcards/internal/models"
	"bankcards/internal/services/authz"
	"bankcards/internal/services/card"
	"bankcards/internal/utils"
	"bankcards/internal/utils/response"
	"bankcards/internal/validation"
)

const expiryDateLayout = "2006-01-02"

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

type cardInput struct {
	UserID     uint   `json:"user_id"`
	Owner      string `json:"owner"`
	ExpiryDate string `json:"expiry_date"`
	Balance    string `json:"balance"`
}

func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input cardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	expiry, err := time.Parse(expiryDateLayout, input.ExpiryDate)
	if err != nil {
		return response.BadRequest(c, "expiry_date must be in YYYY-MM-DD format")
	}

	balance := decimal.Zero
	if input.Balance != "" {
		balance, err = decimal.NewFromString(input.Balance)
		if err != nil {
			return response.BadRequest(c, "balance must be a decimal number")
		}
	}

	v := validation.New()
	v.Required("user_id", input.UserID)
	v.CardRequest(input.Owner, expiry, balance)
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	created, err := h.cardService.Create(c.Context(), actorFromClaims(claims), card.CreateRequest{
		UserID:         input.UserID,
		Owner:          input.Owner,
		ExpiryDate:     expiry,
		InitialBalance: balance,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "card created",
		"data":    created,
	})
}

func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "invalid card id")
	}

	var input struct {
		Owner      string `json:"owner"`
		ExpiryDate string `json:"expiry_date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	expiry, err := time.Parse(expiryDateLayout, input.ExpiryDate)
	if err != nil {
		return response.BadRequest(c, "expiry_date must be in YYYY-MM-DD format")
	}

	v := validation.New()
	v.CardRequest(input.Owner, expiry, decimal.Zero)
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	updated, err := h.cardService.Update(c.Context(), actorFromClaims(claims), uint(cardID), card.UpdateRequest{
		Owner:      input.Owner,
		ExpiryDate: expiry,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "card updated", updated)
}

func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "invalid card id")
	}

	found, err := h.cardService.GetByID(c.Context(), actorFromClaims(claims), uint(cardID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "card", found)
}

func (h *CardHandler) ListMyCards(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := utils.GetPagination(c, 1, 10)
	cards, err := h.cardService.ListMine(c.Context(), actorFromClaims(claims), &p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(utils.NewPaginatedResponse(cards, p))
}

func (h *CardHandler) ListAllCards(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := utils.GetPagination(c, 1, 10)
	cards, err := h.cardService.ListAll(c.Context(), actorFromClaims(claims), &p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(utils.NewPaginatedResponse(cards, p))
}

func (h *CardHandler) BlockCard(c *fiber.Ctx) error {
	return h.transition(c, h.cardService.Block, "card blocked")
}

func (h *CardHandler) ActivateCard(c *fiber.Ctx) error {
	return h.transition(c, h.cardService.Activate, "card activated")
}

func (h *CardHandler) RequestBlock(c *fiber.Ctx) error {
	return h.transition(c, h.cardService.RequestBlock, "block requested")
}

func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "invalid card id")
	}

	if err := h.cardService.Delete(c.Context(), actorFromClaims(claims), uint(cardID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "card deleted", nil)
}

// transition factors out the shared shape of the status endpoints.
func (h *CardHandler) transition(
	c *fiber.Ctx,
	op func(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error),
	message string,
) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "invalid card id")
	}

	updated, err := op(c.Context(), actorFromClaims(claims), uint(cardID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, message, updated)
}
