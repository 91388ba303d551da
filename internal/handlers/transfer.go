package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"bankcards/internal/services/transfer"
	"bankcards/internal/utils"
	"bankcards/internal/utils/response"
	"bankcards/internal/validation"
)

type TransferHandler struct {
	transferService transfer.Service
}

func NewTransferHandler(transferService transfer.Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		FromCardID  uint   `json:"from_card_id"`
		ToCardID    uint   `json:"to_card_id"`
		Amount      string `json:"amount"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return response.BadRequest(c, "amount must be a decimal number")
	}

	v := validation.New()
	v.TransferRequest(input.FromCardID, input.ToCardID, amount, input.Description)
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	created, err := h.transferService.Create(c.Context(), actorFromClaims(claims), transfer.CreateRequest{
		FromCardID:  input.FromCardID,
		ToCardID:    input.ToCardID,
		Amount:      amount,
		Description: input.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "transfer completed",
		"data":    created,
	})
}

func (h *TransferHandler) GetTransfer(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	transferID, err := c.ParamsInt("id")
	if err != nil || transferID < 1 {
		return response.BadRequest(c, "invalid transfer id")
	}

	found, err := h.transferService.GetByID(c.Context(), actorFromClaims(claims), uint(transferID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "transfer", found)
}

func (h *TransferHandler) ListMyTransfers(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := utils.GetPagination(c, 1, 10)
	transfers, err := h.transferService.ListMine(c.Context(), actorFromClaims(claims), &p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(utils.NewPaginatedResponse(transfers, p))
}

func (h *TransferHandler) ListCardTransfers(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "invalid card id")
	}

	p := utils.GetPagination(c, 1, 10)
	transfers, err := h.transferService.ListForCard(c.Context(), actorFromClaims(claims), uint(cardID), &p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(utils.NewPaginatedResponse(transfers, p))
}
