package service

import (
	"fmt"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/pkg/validator"
)

type AddToCartRequest struct {
	UserID    uint `json:"user_id" validate:"required"`
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

type CartService interface {
	AddItem(req *AddToCartRequest) error
	GetByUser(userID uint) ([]model.CartItem, error)
	Remove(cartID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem checks requested quantity against current stock before upserting.
// The check is advisory; the checkout reservation is the final authority.
// Name and price are snapshotted from the product row, not the client.
func (s *cartService) AddItem(req *AddToCartRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return err
	}

	if req.Quantity > product.Stock {
		return &repository.InsufficientStockError{
			ProductID: req.ProductID,
			Requested: req.Quantity,
			Available: product.Stock,
		}
	}

	return s.cartRepo.Upsert(&model.CartItem{
		UserID:      req.UserID,
		ProductID:   req.ProductID,
		ProductName: product.Name,
		UnitPrice:   product.PricePerDay,
		Quantity:    req.Quantity,
	})
}

func (s *cartService) GetByUser(userID uint) ([]model.CartItem, error) {
	return s.cartRepo.FindByUser(userID)
}

func (s *cartService) Remove(cartID uint) error {
	return s.cartRepo.Delete(cartID)
}
