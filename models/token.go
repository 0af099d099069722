// Package models — JWT claims.
package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the claims carried by an access token.
type TokenClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
