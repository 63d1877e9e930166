package service

import (
	"context"
	"errors"
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/pkg/cache"
	"github.com/clubhub/clubhub-backend/pkg/logger"
	"gorm.io/gorm"
)

// maxMutationRetries bounds the retry loop around a mutating transaction.
// A retry only happens when two writers collide on the same key and the
// (block_key, version) unique index rejects the loser.
const maxMutationRetries = 3

// defaultRevisionLimit caps history listings when the caller passes no limit.
const defaultRevisionLimit = 20

// ContentService is the content versioning and publication engine.
//
// Every mutating operation runs as one transaction: the registry row is
// locked with SELECT ... FOR UPDATE, the version is re-read under the lock,
// and the registry update plus the revision append commit together or not at
// all. Authorization is the caller's problem; handlers sit behind the admin
// gate and pass the verified actor in.
type ContentService struct {
	db        *gorm.DB
	blockRepo repository.ContentBlockRepository
	revRepo   repository.ContentRevisionRepository
	cache     cache.Service // optional, nil when redis is unavailable
}

// NewContentService creates a new ContentService
func NewContentService(
	db *gorm.DB,
	blockRepo repository.ContentBlockRepository,
	revRepo repository.ContentRevisionRepository,
	cacheSvc cache.Service,
) *ContentService {
	return &ContentService{
		db:        db,
		blockRepo: blockRepo,
		revRepo:   revRepo,
		cache:     cacheSvc,
	}
}

// UpsertDraftInput carries the upsert parameters. Page, Section and Title
// are required when the key does not exist yet; on an existing block a
// non-empty value replaces the stored one.
type UpsertDraftInput struct {
	Page    string
	Section string
	Title   string
	Body    string
}

// UpsertDraft creates the block on first use of a key (version 1) or saves a
// new draft on an existing one (version+1). Any draft save marks the block
// as draft, even if it was published before; the live body is untouched.
// Returns the new version.
func (s *ContentService) UpsertDraft(actor, key string, in UpsertDraftInput) (uint, error) {
	if actor == "" || key == "" || in.Body == "" {
		return 0, common.ErrInvalidInput
	}

	var version uint
	err := s.mutate(func(tx *gorm.DB) error {
		block, err := s.blockRepo.FindByKeyForUpdate(tx, key)
		if err != nil && !errors.Is(err, common.ErrBlockNotFound) {
			return err
		}

		if block == nil {
			if in.Page == "" || in.Section == "" || in.Title == "" {
				return common.ErrInvalidInput
			}
			block = &domain.ContentBlock{
				BlockKey:  key,
				Page:      in.Page,
				Section:   in.Section,
				Title:     in.Title,
				DraftBody: in.Body,
				Status:    domain.ContentStatusDraft,
				Version:   1,
				UpdatedBy: actor,
			}
			if err := s.blockRepo.Create(tx, block); err != nil {
				return err
			}
		} else {
			block.DraftBody = in.Body
			if in.Title != "" {
				block.Title = in.Title
			}
			if in.Page != "" {
				block.Page = in.Page
			}
			if in.Section != "" {
				block.Section = in.Section
			}
			block.Status = domain.ContentStatusDraft
			block.Version++
			block.UpdatedBy = actor
			if err := s.blockRepo.Save(tx, block); err != nil {
				return err
			}
		}

		version = block.Version
		return s.revRepo.Create(tx, &domain.ContentRevision{
			BlockKey:  key,
			Version:   block.Version,
			Body:      in.Body,
			Status:    domain.ContentStatusDraft,
			UpdatedBy: actor,
		})
	})
	if err != nil {
		return 0, err
	}

	// A draft save never touches the live projection, but a first draft on a
	// new page does change the page list.
	if s.cache != nil {
		_ = s.cache.InvalidatePageList(context.Background())
	}
	return version, nil
}

// Publish promotes the draft body (or an explicit override) to live.
// The version always bumps and a revision is always appended, even when the
// content equals what was already live; a republish is an auditable event.
func (s *ContentService) Publish(actor, key string, bodyOverride, titleOverride *string) (uint, error) {
	if actor == "" || key == "" {
		return 0, common.ErrInvalidInput
	}
	if bodyOverride != nil && *bodyOverride == "" {
		return 0, common.ErrInvalidInput
	}

	var version uint
	err := s.mutate(func(tx *gorm.DB) error {
		block, err := s.blockRepo.FindByKeyForUpdate(tx, key)
		if err != nil {
			return err
		}

		body := block.DraftBody
		if bodyOverride != nil {
			body = *bodyOverride
		}
		if titleOverride != nil && *titleOverride != "" {
			block.Title = *titleOverride
		}

		now := time.Now()
		block.DraftBody = body
		block.PublishedBody = &body
		block.Status = domain.ContentStatusPublished
		block.PublishedAt = &now
		block.Version++
		block.UpdatedBy = actor
		if err := s.blockRepo.Save(tx, block); err != nil {
			return err
		}

		version = block.Version
		return s.revRepo.Create(tx, &domain.ContentRevision{
			BlockKey:  key,
			Version:   block.Version,
			Body:      body,
			Status:    domain.ContentStatusPublished,
			UpdatedBy: actor,
		})
	})
	if err != nil {
		return 0, err
	}

	s.invalidatePage(key)
	return version, nil
}

// Unpublish takes the block off the live site. A pure visibility change:
// the draft body and the version stay as they are and no revision is
// written, so the log keeps exactly one row per version.
func (s *ContentService) Unpublish(actor, key string) error {
	if actor == "" || key == "" {
		return common.ErrInvalidInput
	}

	err := s.mutate(func(tx *gorm.DB) error {
		block, err := s.blockRepo.FindByKeyForUpdate(tx, key)
		if err != nil {
			return err
		}

		block.Status = domain.ContentStatusDraft
		block.PublishedBody = nil
		block.PublishedAt = nil
		block.UpdatedBy = actor
		return s.blockRepo.Save(tx, block)
	})
	if err != nil {
		return err
	}

	s.invalidatePage(key)
	return nil
}

// Rollback restores the snapshot of targetVersion as a new forward version
// and publishes it. History is never rewritten.
func (s *ContentService) Rollback(actor, key string, targetVersion uint) (uint, error) {
	if actor == "" || key == "" || targetVersion == 0 {
		return 0, common.ErrInvalidInput
	}

	var version uint
	err := s.mutate(func(tx *gorm.DB) error {
		block, err := s.blockRepo.FindByKeyForUpdate(tx, key)
		if err != nil {
			return err
		}

		target, err := s.revRepo.FindByKeyAndVersion(tx, key, targetVersion)
		if err != nil {
			return err
		}

		now := time.Now()
		body := target.Body
		block.DraftBody = body
		block.PublishedBody = &body
		block.Status = domain.ContentStatusPublished
		block.PublishedAt = &now
		block.Version++
		block.UpdatedBy = actor
		if err := s.blockRepo.Save(tx, block); err != nil {
			return err
		}

		version = block.Version
		return s.revRepo.Create(tx, &domain.ContentRevision{
			BlockKey:  key,
			Version:   block.Version,
			Body:      body,
			Status:    domain.ContentStatusPublished,
			UpdatedBy: actor,
		})
	})
	if err != nil {
		return 0, err
	}

	s.invalidatePage(key)
	return version, nil
}

// GetBlock returns the full registry row for the admin editor.
func (s *ContentService) GetBlock(key string) (*domain.ContentBlock, error) {
	if key == "" {
		return nil, common.ErrInvalidInput
	}
	return s.blockRepo.FindByKey(key)
}

// ListRevisions returns history for a key, newest first.
func (s *ContentService) ListRevisions(key string, limit int) ([]*domain.ContentRevision, error) {
	if key == "" {
		return nil, common.ErrInvalidInput
	}
	if limit < 1 || limit > 100 {
		limit = defaultRevisionLimit
	}
	// Listing history for an unknown key is a not-found, not an empty list.
	if _, err := s.blockRepo.FindByKey(key); err != nil {
		return nil, err
	}
	return s.revRepo.FindByKey(key, limit)
}

// GetRevision returns one snapshot from the log.
func (s *ContentService) GetRevision(key string, version uint) (*domain.ContentRevision, error) {
	if key == "" || version == 0 {
		return nil, common.ErrInvalidInput
	}
	return s.revRepo.FindByKeyAndVersion(s.db, key, version)
}

// ListBlocksByPage returns all blocks of a page regardless of status, for
// the admin editor. Ordered by section then key.
func (s *ContentService) ListBlocksByPage(page string) ([]*domain.ContentBlock, error) {
	if page == "" {
		return nil, common.ErrInvalidInput
	}
	return s.blockRepo.FindByPage(page)
}

// ListPages returns the distinct page identifiers known to the registry.
// Cached; creating a block on a brand-new page invalidates the entry.
func (s *ContentService) ListPages() ([]string, error) {
	ctx := context.Background()
	if s.cache != nil {
		var cached []string
		if err := s.cache.Get(ctx, cache.PrefixPageList, &cached); err == nil {
			return cached, nil
		}
	}

	pages, err := s.blockRepo.ListPages()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cache.PrefixPageList, pages, cache.TTLPageList)
	}
	return pages, nil
}

// GetPublishedBlocksByPage is the public read view: only blocks with a live
// body, projected down to the published body. Draft content never leaves
// this layer. Served from the page cache when possible.
func (s *ContentService) GetPublishedBlocksByPage(page string) ([]*domain.PublicContentBlock, error) {
	if page == "" {
		return nil, common.ErrInvalidInput
	}

	ctx := context.Background()
	if s.cache != nil {
		var cached []*domain.PublicContentBlock
		if err := s.cache.Get(ctx, cache.PrefixPublishedPage+page, &cached); err == nil {
			return cached, nil
		}
	}

	blocks, err := s.blockRepo.FindPublishedByPage(page)
	if err != nil {
		return nil, err
	}

	public := make([]*domain.PublicContentBlock, 0, len(blocks))
	for _, b := range blocks {
		public = append(public, b.Public())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.PrefixPublishedPage+page, public, cache.TTLPublishedPage); err != nil {
			logger.GetLogger().Warn().Err(err).Str("page", page).Msg("page cache set failed")
		}
	}
	return public, nil
}

// mutate runs fn in a transaction, retrying a bounded number of times when
// the revision log's unique index reports a version collision. Exhausting
// the retries surfaces as ErrConflict.
func (s *ContentService) mutate(fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxMutationRetries; attempt++ {
		err = s.db.Transaction(fn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		logger.GetLogger().Warn().Int("attempt", attempt+1).Msg("content mutation version collision, retrying")
	}
	return common.ErrConflict
}

// invalidatePage drops the cached public projection for the page the key
// belongs to. Best-effort: a stale cache entry expires on its own TTL.
func (s *ContentService) invalidatePage(key string) {
	if s.cache == nil {
		return
	}
	block, err := s.blockRepo.FindByKey(key)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := s.cache.InvalidatePublishedPage(ctx, block.Page); err != nil {
		logger.GetLogger().Warn().Err(err).Str("page", block.Page).Msg("page cache invalidation failed")
	}
	_ = s.cache.InvalidatePageList(ctx)
}
