package repository

import (
	"camrent-backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	FindAll() ([]model.Review, error)
	Create(review *model.Review) error
	CreateContact(contact *model.Contact) error
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db}
}

func (r *reviewRepo) FindAll() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) CreateContact(contact *model.Contact) error {
	return r.db.Create(contact).Error
}
