package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/apperror"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AuthService interface {
	Register(name, email, password, role string) (*model.User, error)
	Login(email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	identity IdentityProvider
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, identity IdentityProvider, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, identity: identity, tokens: tokens}
}

// Register creates a local user record and mirrors the sign-up to the
// external identity provider. A provider error rejects the whole
// registration; the provider account may then exist without a local record,
// which is not compensated for here.
func (s *authService) Register(name, email, password, role string) (*model.User, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperror.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := s.identity.SignUp(email, password); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrIdentityProvider, err)
	}

	if role == "" {
		role = model.RoleParticipant
	}
	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to create user record")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.Info().Uint("userId", user.ID).Str("role", user.Role).Msg("User registered")
	return user, nil
}

// Login checks local credentials, then the external identity provider, and
// issues a bearer token on full success. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.ErrInvalidCredentials
	}

	if err := s.identity.SignIn(email, password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrIdentityProvider, err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Uint("userId", user.ID).Msg("Failed to issue token")
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}
