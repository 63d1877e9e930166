package service

import (
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/repository"
)

// JoinRequestService handles membership applications
type JoinRequestService struct {
	joinRepo repository.JoinRequestRepository
}

// NewJoinRequestService creates a new JoinRequestService
func NewJoinRequestService(joinRepo repository.JoinRequestRepository) *JoinRequestService {
	return &JoinRequestService{joinRepo: joinRepo}
}

// Submit records a new membership application.
func (s *JoinRequestService) Submit(name, email, message string) (*domain.JoinRequest, error) {
	if name == "" || email == "" {
		return nil, common.ErrInvalidInput
	}
	req := &domain.JoinRequest{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  domain.JoinRequestPending,
	}
	if err := s.joinRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns applications filtered by status.
func (s *JoinRequestService) List(status string, page, limit int) ([]*domain.JoinRequest, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	requests, total, err := s.joinRepo.FindByStatus(status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return requests, common.NewMeta(page, limit, total), nil
}

// Review approves or rejects a pending application.
func (s *JoinRequestService) Review(actor string, id uint64, approve bool) (*domain.JoinRequest, error) {
	req, err := s.joinRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.JoinRequestPending {
		return nil, common.ErrConflict
	}

	now := time.Now()
	if approve {
		req.Status = domain.JoinRequestApproved
	} else {
		req.Status = domain.JoinRequestRejected
	}
	req.ReviewedBy = &actor
	req.ReviewedAt = &now
	if err := s.joinRepo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}
