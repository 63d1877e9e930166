package repository

import (
	"errors"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentBlockRepository registry (current-state) data access.
// The *ForUpdate/tx-taking methods participate in the caller's transaction;
// mutation of a block must only happen through them so the row stays locked
// for the whole read-increment-write cycle.
type ContentBlockRepository interface {
	FindByKey(key string) (*domain.ContentBlock, error)
	FindByPage(page string) ([]*domain.ContentBlock, error)
	FindPublishedByPage(page string) ([]*domain.ContentBlock, error)
	ListPages() ([]string, error)

	FindByKeyForUpdate(tx *gorm.DB, key string) (*domain.ContentBlock, error)
	Create(tx *gorm.DB, block *domain.ContentBlock) error
	Save(tx *gorm.DB, block *domain.ContentBlock) error
}

type contentBlockRepository struct {
	db *gorm.DB
}

// NewContentBlockRepository creates a new ContentBlockRepository
func NewContentBlockRepository(db *gorm.DB) ContentBlockRepository {
	return &contentBlockRepository{db: db}
}

func (r *contentBlockRepository) FindByKey(key string) (*domain.ContentBlock, error) {
	var block domain.ContentBlock
	err := r.db.Where("block_key = ?", key).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBlockNotFound
		}
		return nil, err
	}
	return &block, nil
}

func (r *contentBlockRepository) FindByPage(page string) ([]*domain.ContentBlock, error) {
	var blocks []*domain.ContentBlock
	err := r.db.Where("page = ?", page).
		Order("section ASC, block_key ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *contentBlockRepository) FindPublishedByPage(page string) ([]*domain.ContentBlock, error) {
	var blocks []*domain.ContentBlock
	err := r.db.Where("page = ? AND published_body IS NOT NULL", page).
		Order("section ASC, block_key ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *contentBlockRepository) ListPages() ([]string, error) {
	var pages []string
	err := r.db.Model(&domain.ContentBlock{}).
		Distinct("page").
		Order("page ASC").
		Pluck("page", &pages).Error
	return pages, err
}

// FindByKeyForUpdate locks the registry row for the duration of tx.
// Returns common.ErrBlockNotFound when the key is unknown; the lock request
// on a missing row is harmless.
func (r *contentBlockRepository) FindByKeyForUpdate(tx *gorm.DB, key string) (*domain.ContentBlock, error) {
	q := tx
	// sqlite has no FOR UPDATE; its single-writer model serializes the
	// transaction anyway.
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var block domain.ContentBlock
	err := q.Where("block_key = ?", key).
		First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBlockNotFound
		}
		return nil, err
	}
	return &block, nil
}

func (r *contentBlockRepository) Create(tx *gorm.DB, block *domain.ContentBlock) error {
	return tx.Create(block).Error
}

func (r *contentBlockRepository) Save(tx *gorm.DB, block *domain.ContentBlock) error {
	return tx.Save(block).Error
}

// ContentRevisionRepository append-only revision log access. Rows are only
// ever inserted; there is no update or delete path.
type ContentRevisionRepository interface {
	Create(tx *gorm.DB, revision *domain.ContentRevision) error
	FindByKey(key string, limit int) ([]*domain.ContentRevision, error)
	FindByKeyAndVersion(tx *gorm.DB, key string, version uint) (*domain.ContentRevision, error)
	CountByKey(key string) (int64, error)
}

type contentRevisionRepository struct {
	db *gorm.DB
}

// NewContentRevisionRepository creates a new ContentRevisionRepository
func NewContentRevisionRepository(db *gorm.DB) ContentRevisionRepository {
	return &contentRevisionRepository{db: db}
}

func (r *contentRevisionRepository) Create(tx *gorm.DB, revision *domain.ContentRevision) error {
	return tx.Create(revision).Error
}

func (r *contentRevisionRepository) FindByKey(key string, limit int) ([]*domain.ContentRevision, error) {
	var revisions []*domain.ContentRevision
	err := r.db.Where("block_key = ?", key).
		Order("version DESC").
		Limit(limit).
		Find(&revisions).Error
	return revisions, err
}

// FindByKeyAndVersion reads one snapshot on the caller's connection.
// Rollback passes its mutation transaction here so the whole operation
// stays on a single connection; plain reads pass the base db.
func (r *contentRevisionRepository) FindByKeyAndVersion(tx *gorm.DB, key string, version uint) (*domain.ContentRevision, error) {
	var revision domain.ContentRevision
	err := tx.Where("block_key = ? AND version = ?", key, version).First(&revision).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrRevisionNotFound
		}
		return nil, err
	}
	return &revision, nil
}

func (r *contentRevisionRepository) CountByKey(key string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.ContentRevision{}).
		Where("block_key = ?", key).
		Count(&count).Error
	return count, err
}
