package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Phone               string `gorm:"default:''"`
	Password            string `gorm:"not null" json:"-"`
	IsStaff             bool   `gorm:"default:false" json:"isStaff"`
	StripeCustomerID    string `gorm:"default:''" json:"-"` // set lazily on first payment
	FailedLoginAttempts int    `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
