package domain

import "time"

// Faq is one question/answer entry shown on the public FAQ page.
type Faq struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"column:question;type:varchar(500)" json:"question"`
	Answer    string    `gorm:"column:answer;type:text" json:"answer"`
	OrderNum  uint      `gorm:"column:order_num;default:0" json:"order_num"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Faq) TableName() string { return "faqs" }
