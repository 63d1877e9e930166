package migration

import (
	"github.com/clubhub/clubhub-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates all tables via AutoMigrate. Safe to run multiple times
// (AutoMigrate is idempotent). The unique index on content_revisions
// (block_key, version) is part of the model tags and is the hard backstop
// for the engine's version invariant.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.ContentBlock{},
		&domain.ContentRevision{},
		&domain.Faq{},
		&domain.Event{},
		&domain.JoinRequest{},
	)
}
