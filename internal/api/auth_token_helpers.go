package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lifeboard/lifeboard/internal/models"
)

var errInvalidToken = errors.New("invalid token")

type authClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildAccessToken(user *models.User) (string, error) {
	return buildToken(user, handler.cfg.AccessSecret, handler.cfg.AccessTokenTTL, "")
}

func (handler *Handler) buildRefreshToken(user *models.User) (string, error) {
	return buildToken(user, handler.cfg.RefreshSecret, handler.cfg.RefreshTokenTTL, uuid.NewString())
}

func buildToken(user *models.User, secret []byte, ttl time.Duration, tokenID string) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(rawToken string, secret []byte) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errInvalidToken
	}
	return claims, nil
}
