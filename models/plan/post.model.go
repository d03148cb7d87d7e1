package plan

import (
	"gorm.io/gorm"
)

// Post is a social proof-of-completion entry a user can publish after
// finishing every goal of a plan.
type Post struct {
	gorm.Model
	UserID   uint   `gorm:"not null;index" json:"userId"`
	PlanID   uint   `gorm:"not null;index" json:"planId"`
	Content  string `gorm:"not null" json:"content"`
	ImageURL string `json:"imageUrl"`

	Plan Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}
