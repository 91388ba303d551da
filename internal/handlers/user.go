package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bankcards/internal/services/user"
	"bankcards/internal/utils"
	"bankcards/internal/utils/response"
	"bankcards/internal/validation"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	found, err := h.userService.GetByID(actorFromClaims(claims), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "profile", found)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "invalid user id")
	}

	found, err := h.userService.GetByID(actorFromClaims(claims), uint(userID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "user", found)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := utils.GetPagination(c, 1, 10)
	users, err := h.userService.List(actorFromClaims(claims), &p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(utils.NewPaginatedResponse(users, p))
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "invalid user id")
	}

	var input struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Role      string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	v := validation.New()
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if input.Password != "" {
		v.Password("password", input.Password)
	}
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	updated, err := h.userService.Update(actorFromClaims(claims), uint(userID), user.UpdateInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "user updated", updated)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "invalid user id")
	}

	if err := h.userService.Delete(actorFromClaims(claims), uint(userID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "user deleted", nil)
}
