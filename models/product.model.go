package models

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name           string     `gorm:"not null" json:"name"`
	Description    string     `json:"description"`
	Price          int        `gorm:"not null" json:"price"`
	PrimaryImageID *uint      `json:"primaryImageId"`
	Categories     []Category `gorm:"many2many:product_categories" json:"categories,omitempty"`

	Images    []ProductImage    `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Inventory *ProductInventory `gorm:"foreignKey:ProductID" json:"inventory,omitempty"`
}

type ProductImage struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"productId"`
	URL       string `gorm:"not null" json:"url"`
}

type ProductInventory struct {
	gorm.Model
	ProductID uint `gorm:"not null;uniqueIndex" json:"productId"`
	Quantity  int  `gorm:"not null;default:0" json:"quantity"`
}
