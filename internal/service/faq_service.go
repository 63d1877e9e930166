package service

import (
	"context"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/pkg/cache"
)

// FaqService handles FAQ business logic
type FaqService struct {
	faqRepo repository.FaqRepository
	cache   cache.Service // optional, nil when redis is unavailable
}

// NewFaqService creates a new FaqService
func NewFaqService(faqRepo repository.FaqRepository, cacheSvc cache.Service) *FaqService {
	return &FaqService{faqRepo: faqRepo, cache: cacheSvc}
}

// ListPublic returns active FAQ entries in display order, cached.
func (s *FaqService) ListPublic() ([]*domain.Faq, error) {
	ctx := context.Background()
	if s.cache != nil {
		var cached []*domain.Faq
		if err := s.cache.Get(ctx, cache.PrefixFaqs, &cached); err == nil {
			return cached, nil
		}
	}

	faqs, err := s.faqRepo.FindActive()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cache.PrefixFaqs, faqs, cache.TTLFaqs)
	}
	return faqs, nil
}

// ListAll returns every FAQ entry including inactive ones.
func (s *FaqService) ListAll() ([]*domain.Faq, error) {
	return s.faqRepo.FindAll()
}

// Create adds a FAQ entry.
func (s *FaqService) Create(faq *domain.Faq) error {
	if faq.Question == "" || faq.Answer == "" {
		return common.ErrInvalidInput
	}
	if err := s.faqRepo.Create(faq); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update modifies an existing FAQ entry.
func (s *FaqService) Update(id uint64, question, answer string, orderNum uint, isActive bool) (*domain.Faq, error) {
	if question == "" || answer == "" {
		return nil, common.ErrInvalidInput
	}
	faq, err := s.faqRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	faq.Question = question
	faq.Answer = answer
	faq.OrderNum = orderNum
	faq.IsActive = isActive
	if err := s.faqRepo.Update(faq); err != nil {
		return nil, err
	}
	s.invalidate()
	return faq, nil
}

// Delete removes a FAQ entry.
func (s *FaqService) Delete(id uint64) error {
	if _, err := s.faqRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.faqRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// invalidate drops the cached public listing. Best-effort; a stale entry
// expires on its own TTL.
func (s *FaqService) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), cache.PrefixFaqs)
}
