package service

import (
	"errors"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("user has an unrecognized role")
)

type LoginResponse struct {
	Token     string     `json:"token"`
	UserID    uint       `json:"user_id"`
	FullName  string     `json:"fullname"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Instagram string     `json:"instagram"`
	Role      model.Role `json:"role"`
}

type AuthService interface {
	SignIn(email, password string) (*LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) SignIn(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Exhaustive over the closed role set.
	switch user.Role {
	case model.RoleAdmin, model.RoleCustomer:
	default:
		return nil, ErrInvalidRole
	}

	token, err := jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		UserID:    user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Instagram: user.Instagram,
		Role:      user.Role,
	}, nil
}
