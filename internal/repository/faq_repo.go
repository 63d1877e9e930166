package repository

import (
	"errors"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
)

// FaqRepository FAQ data access
type FaqRepository interface {
	FindActive() ([]*domain.Faq, error)
	FindAll() ([]*domain.Faq, error)
	FindByID(id uint64) (*domain.Faq, error)
	Create(faq *domain.Faq) error
	Update(faq *domain.Faq) error
	Delete(id uint64) error
}

type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository creates a new FaqRepository
func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) FindActive() ([]*domain.Faq, error) {
	var faqs []*domain.Faq
	err := r.db.Where("is_active = ?", true).
		Order("order_num ASC, id ASC").
		Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) FindAll() ([]*domain.Faq, error) {
	var faqs []*domain.Faq
	err := r.db.Order("order_num ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) FindByID(id uint64) (*domain.Faq, error) {
	var faq domain.Faq
	err := r.db.Where("id = ?", id).First(&faq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &faq, err
}

func (r *faqRepository) Create(faq *domain.Faq) error {
	return r.db.Create(faq).Error
}

func (r *faqRepository) Update(faq *domain.Faq) error {
	return r.db.Save(faq).Error
}

func (r *faqRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Faq{}, id).Error
}
