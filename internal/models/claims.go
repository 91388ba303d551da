package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload for an authenticated user. The
// authorization decisions themselves live in the authz policy; claims
// only carry the identity.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}
