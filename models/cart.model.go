package models

import (
	"gorm.io/gorm"
)

// ShoppingSession is a user's in-progress, pre-purchase selection of products.
// Total is denormalized and recomputed on every cart mutation.
type ShoppingSession struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex" json:"userId"`
	Total  int  `gorm:"not null;default:0" json:"total"`
}

type CartItem struct {
	gorm.Model
	SessionID uint `gorm:"not null;index;uniqueIndex:idx_session_product" json:"sessionId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_session_product" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
