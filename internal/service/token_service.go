package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/config"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/repository"
)

const tokenTTL = 24 * time.Hour

// TokenService issues and verifies the signed bearer tokens binding a user id
// and email. There is no refresh mechanism; tokens expire after one day.
type TokenService interface {
	Issue(userID uint, email string) (string, error)
	// Verify returns the live user record bound to the token, or nil on a
	// missing token, bad signature, expiry, or a user that no longer
	// exists. Callers treat nil as unauthenticated.
	Verify(token string) *model.User
}

type tokenService struct {
	secret   []byte
	userRepo repository.UserRepository
}

func NewTokenService(cfg *config.Config, userRepo repository.UserRepository) TokenService {
	return &tokenService{secret: []byte(cfg.JWTSecret), userRepo: userRepo}
}

func (s *tokenService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) *model.User {
	if tokenString == "" {
		return nil
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		log.Debug().Err(err).Msg("Token verification failed")
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	user, err := s.userRepo.FindByID(uint(userID))
	if err != nil {
		log.Debug().Err(err).Uint("userId", uint(userID)).Msg("Token user no longer exists")
		return nil
	}
	return user
}
