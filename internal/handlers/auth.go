// Package handlers contains the HTTP handlers. They parse and validate
// requests, delegate to the services and translate domain errors into
// HTTP responses.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bankcards/internal/models"
	"bankcards/internal/services/auth"
	"bankcards/internal/services/authz"
	"bankcards/internal/services/user"
	"bankcards/internal/utils"
	"bankcards/internal/utils/response"
	"bankcards/internal/validation"
)

type AuthHandler struct {
	authService auth.Service
	userService user.Service
}

func NewAuthHandler(authService auth.Service, userService user.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// actorFromClaims builds the acting identity the services expect.
func actorFromClaims(claims *models.UserClaims) authz.Actor {
	return authz.Actor{UserID: claims.UserID, Role: claims.Role}
}

func respondValidation(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	v := validation.New()
	v.UserRequest(input.Email, input.Password, input.FirstName, input.LastName)
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	created, err := h.userService.Register(user.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"data":    created,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "email and password are required")
	}

	loggedIn, accessToken, refreshToken, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "login successful", fiber.Map{
		"user":          loggedIn,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.RefreshToken == "" {
		return response.BadRequest(c, "refresh token is required")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "tokens refreshed", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	if err := h.authService.Logout(claims.UserID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "logged out", nil)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	v := validation.New()
	v.Password("new_password", input.NewPassword)
	if !v.Valid() {
		return respondValidation(c, v.Errors)
	}

	if err := h.authService.ChangePassword(claims.UserID, input.OldPassword, input.NewPassword); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "password changed", nil)
}
