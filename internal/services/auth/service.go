// Package auth implements registration and login for wallet owners.
package auth

import (
	"context"
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
	"simplewallet/internal/repositories"
	"simplewallet/internal/utils"
)

// Service handles user registration and login.
type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type service struct {
	userRepo repositories.UserRepository
}

// NewService creates a new auth service.
func NewService(userRepo repositories.UserRepository) Service {
	if userRepo == nil {
		panic("user repo is required")
	}
	return &service{userRepo: userRepo}
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.NewUser(email, string(hash), fullName)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
