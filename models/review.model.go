package models

import (
	"gorm.io/gorm"
)

// Review is user feedback tied to a purchased line item, unique per
// (user, order item).
type Review struct {
	gorm.Model
	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_order_item" json:"userId"`
	OrderItemID uint   `gorm:"not null;uniqueIndex:idx_user_order_item" json:"orderItemId"`
	Rating      int    `gorm:"not null" json:"rating"` // 1-5
	Comment     string `json:"comment"`

	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderItem OrderItems `gorm:"foreignKey:OrderItemID" json:"orderItem,omitempty"`
}
