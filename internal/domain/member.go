package domain

import "time"

// Member statuses
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusBanned   = "banned"
)

// Member represents a registered site member. Level >= 10 is an admin.
type Member struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Nickname  string    `gorm:"column:nickname;type:varchar(100)" json:"nickname"`
	Level     uint8     `gorm:"column:level;default:1" json:"level"`
	Status    string    `gorm:"column:status;type:varchar(20);default:'active'" json:"status"`
	Bio       *string   `gorm:"column:bio;type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string { return "members" }
