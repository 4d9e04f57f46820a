package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica quem pode disparar ou consultar sincronizações pela API
type Claims struct {
	UserRoleID int `json:"role_id"`
	jwt.RegisteredClaims
}
