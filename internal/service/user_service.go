package service

import (
	"fmt"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/pkg/validator"
)

type CreateUserRequest struct {
	FullName  string `json:"fullname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Role      string `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	FullName  string `json:"fullname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
}

type UserService interface {
	Create(req *CreateUserRequest) (*model.User, error)
	GetAll() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	Update(id uint, req *UpdateUserRequest) error
	Delete(id uint) error
	GetReviews() ([]model.Review, error)
	CreateReview(review *model.Review) error
	CreateContact(contact *model.Contact) error
}

type userService struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserService(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) UserService {
	return &userService{userRepo: userRepo, reviewRepo: reviewRepo}
}

func (s *userService) Create(req *CreateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidInput, req.Role)
	}

	user := &model.User{
		FullName:  req.FullName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		Role:      role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetByID(id uint) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) Update(id uint, req *UpdateUserRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	user := &model.User{
		ID:        id,
		FullName:  req.FullName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		Instagram: req.Instagram,
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return err
		}
	}
	return s.userRepo.Update(user)
}

func (s *userService) Delete(id uint) error {
	return s.userRepo.Delete(id)
}

func (s *userService) GetReviews() ([]model.Review, error) {
	return s.reviewRepo.FindAll()
}

func (s *userService) CreateReview(review *model.Review) error {
	if errs := validator.ValidateStruct(review); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	return s.reviewRepo.Create(review)
}

func (s *userService) CreateContact(contact *model.Contact) error {
	if errs := validator.ValidateStruct(contact); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	return s.reviewRepo.CreateContact(contact)
}
