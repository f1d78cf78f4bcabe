package repository

import (
	"errors"

	"camrent-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	Search(name string, limit, offset int) ([]model.Product, int64, error)
	FindByCategory(category string, limit, offset int) ([]model.Product, int64, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search filters by product name when name is non-empty and returns the page
// plus the total match count.
func (r *productRepo) Search(name string, limit, offset int) ([]model.Product, int64, error) {
	q := r.db.Model(&model.Product{})
	if name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Order("id ASC").Limit(limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByCategory(category string, limit, offset int) ([]model.Product, int64, error) {
	q := r.db.Model(&model.Product{}).Where("category = ?", category)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Order("id ASC").Limit(limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(product *model.Product) error {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":          product.Name,
			"category":      product.Category,
			"price_per_day": product.PricePerDay,
			"stock":         product.Stock,
			"description":   product.Description,
			"image":         product.Image,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete is orphan-tolerant towards carts: existing cart lines keep their
// denormalized name and price, and checkout reports the missing product.
func (r *productRepo) Delete(id uint) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
