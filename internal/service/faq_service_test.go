package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock FaqRepository ---

type mockFaqRepo struct {
	mock.Mock
}

func (m *mockFaqRepo) FindActive() ([]*domain.Faq, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Faq), args.Error(1)
}

func (m *mockFaqRepo) FindAll() ([]*domain.Faq, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Faq), args.Error(1)
}

func (m *mockFaqRepo) FindByID(id uint64) (*domain.Faq, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Faq), args.Error(1)
}

func (m *mockFaqRepo) Create(faq *domain.Faq) error {
	return m.Called(faq).Error(0)
}

func (m *mockFaqRepo) Update(faq *domain.Faq) error {
	return m.Called(faq).Error(0)
}

func (m *mockFaqRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

// --- In-memory cache.Service ---

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) InvalidatePublishedPage(ctx context.Context, page string) error {
	return m.Delete(ctx, cache.PrefixPublishedPage+page)
}

func (m *memoryCache) InvalidatePageList(ctx context.Context) error {
	return m.Delete(ctx, cache.PrefixPageList)
}

func (m *memoryCache) IsAvailable() bool            { return true }
func (m *memoryCache) Ping(_ context.Context) error { return nil }

// --- Tests ---

func TestFaqCreate_Success(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo, nil)

	faq := &domain.Faq{Question: "How do I join?", Answer: "Send a join request."}
	repo.On("Create", faq).Return(nil)

	err := svc.Create(faq)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFaqCreate_MissingFields(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo, nil)

	err := svc.Create(&domain.Faq{Question: "Only a question"})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFaqUpdate_NotFound(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo, nil)

	repo.On("FindByID", uint64(42)).Return(nil, common.ErrNotFound)

	_, err := svc.Update(42, "Q", "A", 0, true)

	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestFaqUpdate_Success(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo, nil)

	existing := &domain.Faq{ID: 7, Question: "old", Answer: "old", IsActive: true}
	repo.On("FindByID", uint64(7)).Return(existing, nil)
	repo.On("Update", mock.AnythingOfType("*domain.Faq")).Return(nil)

	faq, err := svc.Update(7, "new question", "new answer", 3, false)

	assert.NoError(t, err)
	assert.Equal(t, "new question", faq.Question)
	assert.Equal(t, uint(3), faq.OrderNum)
	assert.False(t, faq.IsActive)
	repo.AssertExpectations(t)
}

func TestFaqListPublic_CachedAndInvalidated(t *testing.T) {
	repo := new(mockFaqRepo)
	mem := newMemoryCache()
	svc := NewFaqService(repo, mem)

	faqs := []*domain.Faq{{ID: 1, Question: "Q", Answer: "A", IsActive: true}}
	repo.On("FindActive").Return(faqs, nil).Once()

	// First call hits the repo and fills the cache; second is served from it.
	got, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Q", got[0].Question)
	repo.AssertNumberOfCalls(t, "FindActive", 1)

	// A write drops the cached listing, so the next read hits the repo again.
	repo.On("Create", mock.AnythingOfType("*domain.Faq")).Return(nil)
	repo.On("FindActive").Return(faqs, nil).Once()
	require.NoError(t, svc.Create(&domain.Faq{Question: "Q2", Answer: "A2"}))

	_, err = svc.ListPublic()
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "FindActive", 2)
}

func TestFaqDelete_NotFound(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo, nil)

	repo.On("FindByID", uint64(9)).Return(nil, common.ErrNotFound)

	err := svc.Delete(9)

	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
