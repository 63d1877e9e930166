package repository

import (
	"errors"
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
)

// EventRepository event data access
type EventRepository interface {
	FindUpcoming(limit int) ([]*domain.Event, error)
	FindAll(page, limit int) ([]*domain.Event, int64, error)
	FindByID(id uint64) (*domain.Event, error)
	Create(event *domain.Event) error
	Update(event *domain.Event) error
	Delete(id uint64) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindUpcoming(limit int) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.db.Where("starts_at >= ?", time.Now()).
		Order("starts_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) FindAll(page, limit int) ([]*domain.Event, int64, error) {
	var events []*domain.Event
	var total int64

	if err := r.db.Model(&domain.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.db.Order("starts_at DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}

func (r *eventRepository) FindByID(id uint64) (*domain.Event, error) {
	var event domain.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &event, err
}

func (r *eventRepository) Create(event *domain.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) Update(event *domain.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Event{}, id).Error
}
