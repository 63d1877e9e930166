package repository

import (
	"errors"
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member data access
type MemberRepository interface {
	FindByID(id uint64) (*domain.Member, error)
	FindByUsername(username string) (*domain.Member, error)
	Create(member *domain.Member) error
	Update(member *domain.Member) error
	FindAll(page, limit int, keyword string) ([]*domain.Member, int64, error)
	CountSince(since time.Time) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(id uint64) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMemberNotFound
	}
	return &member, err
}

func (r *memberRepository) FindByUsername(username string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("username = ?", username).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMemberNotFound
	}
	return &member, err
}

func (r *memberRepository) Create(member *domain.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) Update(member *domain.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) FindAll(page, limit int, keyword string) ([]*domain.Member, int64, error) {
	var members []*domain.Member
	var total int64

	query := r.db.Model(&domain.Member{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("username LIKE ? OR nickname LIKE ? OR email LIKE ?", like, like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *memberRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Member{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
