package service

import (
	"encoding/json"
	"fmt"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/internal/ws"
	"camrent-backend/pkg/validator"
)

const (
	productsPerPage         = 6
	categoryProductsPerPage = 4
)

// ProductPage mirrors the catalog listing payload the storefront paginates on.
type ProductPage struct {
	Products      []model.Product `json:"products"`
	CurrentPage   int             `json:"currentPage"`
	TotalPages    int             `json:"totalPages"`
	TotalProducts int64           `json:"totalProducts"`
	Search        string          `json:"search,omitempty"`
}

type ProductService interface {
	Create(product *model.Product) error
	Update(id uint, product *model.Product) error
	Delete(id uint) error
	GetByID(id uint) (*model.Product, error)
	GetPage(page int, search string) (*ProductPage, error)
	GetByCategory(category string, page int) (*ProductPage, error)
	GetStockDetails() ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: productRepo, wsHub: hub}
}

func (s *productService) Create(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	return s.productRepo.Create(product)
}

// Update is the administrative absolute set, including stock.
func (s *productService) Update(id uint, product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	product.ID = id
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.broadcastStockSet(product)
	return nil
}

func (s *productService) Delete(id uint) error {
	return s.productRepo.Delete(id)
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) GetPage(page int, search string) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * productsPerPage

	products, total, err := s.productRepo.Search(search, productsPerPage, offset)
	if err != nil {
		return nil, err
	}
	return &ProductPage{
		Products:      products,
		CurrentPage:   page,
		TotalPages:    totalPages(total, productsPerPage),
		TotalProducts: total,
		Search:        search,
	}, nil
}

func (s *productService) GetByCategory(category string, page int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * categoryProductsPerPage

	products, total, err := s.productRepo.FindByCategory(category, categoryProductsPerPage, offset)
	if err != nil {
		return nil, err
	}
	return &ProductPage{
		Products:      products,
		CurrentPage:   page,
		TotalPages:    totalPages(total, categoryProductsPerPage),
		TotalProducts: total,
	}, nil
}

func (s *productService) GetStockDetails() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func totalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func (s *productService) broadcastStockSet(product *model.Product) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "product_updated",
			"product": map[string]interface{}{
				"product_id": product.ID,
				"stock":      product.Stock,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
