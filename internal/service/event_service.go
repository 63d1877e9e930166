package service

import (
	"context"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/pkg/cache"
)

const defaultEventLimit = 20

// EventService handles event business logic
type EventService struct {
	eventRepo repository.EventRepository
	cache     cache.Service // optional, nil when redis is unavailable
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, cacheSvc cache.Service) *EventService {
	return &EventService{eventRepo: eventRepo, cache: cacheSvc}
}

// ListUpcoming returns upcoming events for the public calendar. Only the
// default-sized listing is cached; it is what the public page requests.
func (s *EventService) ListUpcoming(limit int) ([]*domain.Event, error) {
	if limit < 1 || limit > 100 {
		limit = defaultEventLimit
	}

	ctx := context.Background()
	cacheable := s.cache != nil && limit == defaultEventLimit
	if cacheable {
		var cached []*domain.Event
		if err := s.cache.Get(ctx, cache.PrefixEvents, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.eventRepo.FindUpcoming(limit)
	if err != nil {
		return nil, err
	}
	if cacheable {
		_ = s.cache.Set(ctx, cache.PrefixEvents, events, cache.TTLEvents)
	}
	return events, nil
}

// ListAll returns paginated events for the admin view.
func (s *EventService) ListAll(page, limit int) ([]*domain.Event, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultEventLimit
	}
	events, total, err := s.eventRepo.FindAll(page, limit)
	if err != nil {
		return nil, nil, err
	}
	return events, common.NewMeta(page, limit, total), nil
}

// Create adds an event.
func (s *EventService) Create(actor string, event *domain.Event) error {
	if event.Title == "" || event.StartsAt.IsZero() {
		return common.ErrInvalidInput
	}
	event.CreatedBy = actor
	if err := s.eventRepo.Create(event); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update modifies an existing event.
func (s *EventService) Update(id uint64, event *domain.Event) (*domain.Event, error) {
	if event.Title == "" || event.StartsAt.IsZero() {
		return nil, common.ErrInvalidInput
	}
	existing, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	existing.Title = event.Title
	existing.Description = event.Description
	existing.Location = event.Location
	existing.StartsAt = event.StartsAt
	existing.EndsAt = event.EndsAt
	if err := s.eventRepo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidate()
	return existing, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint64) error {
	if _, err := s.eventRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// invalidate drops the cached public listing.
func (s *EventService) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), cache.PrefixEvents)
}
