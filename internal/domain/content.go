package domain

import "time"

// Content block workflow status. Status tracks whether the latest edit has
// been promoted to live; "has a live body at all" is PublishedBody != nil.
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
)

// ContentBlock is the current-state registry row for one addressable piece
// of page content. One row per key; the key is immutable once created.
type ContentBlock struct {
	ID            uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	BlockKey      string     `gorm:"column:block_key;type:varchar(191);uniqueIndex" json:"key"`
	Page          string     `gorm:"column:page;type:varchar(100);index" json:"page"`
	Section       string     `gorm:"column:section;type:varchar(100)" json:"section"`
	Title         string     `gorm:"column:title;type:varchar(255)" json:"title"`
	DraftBody     string     `gorm:"column:draft_body;type:mediumtext" json:"draft_body"`
	PublishedBody *string    `gorm:"column:published_body;type:mediumtext" json:"published_body"`
	Status        string     `gorm:"column:status;type:varchar(20);default:'draft'" json:"status"`
	Version       uint       `gorm:"column:version;default:1" json:"version"`
	UpdatedBy     string     `gorm:"column:updated_by;type:varchar(100)" json:"updated_by"`
	PublishedAt   *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContentBlock) TableName() string { return "content_blocks" }

// IsPublished returns true if the latest edit is live.
func (b *ContentBlock) IsPublished() bool {
	return b.Status == ContentStatusPublished
}

// HasLiveBody returns true if the block has ever been published and not
// since unpublished.
func (b *ContentBlock) HasLiveBody() bool {
	return b.PublishedBody != nil
}

// PublicContentBlock is the public read-view projection of a ContentBlock.
// It carries only the live body; the draft body must never reach public
// consumers.
type PublicContentBlock struct {
	Key     string `json:"key"`
	Page    string `json:"page"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Public projects the block for public rendering. Callers must check
// HasLiveBody first.
func (b *ContentBlock) Public() *PublicContentBlock {
	body := ""
	if b.PublishedBody != nil {
		body = *b.PublishedBody
	}
	return &PublicContentBlock{
		Key:     b.BlockKey,
		Page:    b.Page,
		Section: b.Section,
		Title:   b.Title,
		Body:    body,
	}
}

// ContentRevision is one immutable snapshot in the append-only history of a
// block. Rows are never updated or deleted; the (block_key, version) unique
// index is the last-resort guard against concurrent writers colliding on a
// version number.
type ContentRevision struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BlockKey  string    `gorm:"column:block_key;type:varchar(191);uniqueIndex:idx_block_version,priority:1" json:"key"`
	Version   uint      `gorm:"column:version;uniqueIndex:idx_block_version,priority:2" json:"version"`
	Body      string    `gorm:"column:body;type:mediumtext" json:"body"`
	Status    string    `gorm:"column:status;type:varchar(20)" json:"status"`
	UpdatedBy string    `gorm:"column:updated_by;type:varchar(100)" json:"updated_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContentRevision) TableName() string { return "content_revisions" }
