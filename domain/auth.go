package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/bidhub/goapi/base/ctx"
)

type JwtCustomClaims struct {
	UserId string `json:"userId"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(c ctx.Ctx, id UserId) (string, error)
	ParseToken(c ctx.Ctx, token string) (*JwtCustomClaims, error)
}
