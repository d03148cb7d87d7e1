package plan

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus enum values
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// SubscriptionPlan is a recurring billing offering.
type SubscriptionPlan struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Days        int     `gorm:"not null" json:"days"`
	Description string  `json:"description"`
}

// UserSubscription tracks a user's enrollment in a SubscriptionPlan.
// Activation happens only through the payment webhook.
type UserSubscription struct {
	gorm.Model
	UserID             uint       `gorm:"not null;index" json:"userId"`
	SubscriptionPlanID uint       `gorm:"not null" json:"subscriptionPlanId"`
	StartDate          time.Time  `gorm:"not null" json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Status             string     `gorm:"not null;type:varchar(10);default:'inactive'" json:"status"`
	PaymentStatus      bool       `gorm:"default:false" json:"paymentStatus"`

	SubscriptionPlan SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"subscriptionPlan,omitempty"`
}
