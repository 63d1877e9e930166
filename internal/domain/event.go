package domain

import "time"

// Event is a club event listed on the public calendar.
type Event struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Location    *string    `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	StartsAt    time.Time  `gorm:"column:starts_at;index" json:"starts_at"`
	EndsAt      *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
	CreatedBy   string     `gorm:"column:created_by;type:varchar(100)" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string { return "events" }
