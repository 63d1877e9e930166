package domain

import "time"

// Join request statuses
const (
	JoinRequestPending  = "pending"
	JoinRequestApproved = "approved"
	JoinRequestRejected = "rejected"
)

// JoinRequest is a membership application submitted from the public site.
type JoinRequest struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"column:name;type:varchar(100)" json:"name"`
	Email      string     `gorm:"column:email;type:varchar(255);index" json:"email"`
	Message    string     `gorm:"column:message;type:text" json:"message"`
	Status     string     `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`
	ReviewedBy *string    `gorm:"column:reviewed_by;type:varchar(100)" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (JoinRequest) TableName() string { return "join_requests" }
