package repository

import (
	"errors"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
)

// JoinRequestRepository membership application data access
type JoinRequestRepository interface {
	Create(req *domain.JoinRequest) error
	FindByID(id uint64) (*domain.JoinRequest, error)
	FindByStatus(status string, page, limit int) ([]*domain.JoinRequest, int64, error)
	Update(req *domain.JoinRequest) error
}

type joinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new JoinRequestRepository
func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(req *domain.JoinRequest) error {
	return r.db.Create(req).Error
}

func (r *joinRequestRepository) FindByID(id uint64) (*domain.JoinRequest, error) {
	var req domain.JoinRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &req, err
}

func (r *joinRequestRepository) FindByStatus(status string, page, limit int) ([]*domain.JoinRequest, int64, error) {
	var requests []*domain.JoinRequest
	var total int64

	query := r.db.Model(&domain.JoinRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&requests).Error
	return requests, total, err
}

func (r *joinRequestRepository) Update(req *domain.JoinRequest) error {
	return r.db.Save(req).Error
}
