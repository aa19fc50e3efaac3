package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
)

type impl struct {
	jwtSecret []byte
	account   account.Usecase
}

func New(jwtSecret string, account account.Usecase) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		account:   account,
	}
}

func (im *impl) SignToken(c ctx.Ctx, id domain.UserId) (string, error) {
	acc, err := im.account.Get(c, id)
	if err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		UserId: string(acc.Id),
		Role:   string(acc.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (*domain.JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
