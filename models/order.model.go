package models

import (
	"gorm.io/gorm"
)

// OrderStatus enum values
const (
	OrderInProgress = "in-progress"
	OrderCanceled   = "canceled"
	OrderBooked     = "booked"
	OrderDelivered  = "delivered"
)

// PaymentStatus enum values
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
	PaymentFailed = "failed"
)

// OrderDetails is an immutable record created only after external payment
// confirmation. TotalPrice is fixed at creation and never recomputed.
type OrderDetails struct {
	gorm.Model
	UserID     uint    `gorm:"not null;index" json:"userId"`
	TotalPrice float64 `gorm:"not null;default:0" json:"totalPrice"`
	Status     string  `gorm:"not null;type:varchar(20);default:'booked'" json:"status"`

	Items []OrderItems `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (OrderDetails) TableName() string {
	return "order_details"
}

// OrderItems snapshots the product price at order-creation time.
type OrderItems struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"orderId"`
	ProductID uint    `gorm:"not null;index" json:"productId"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItems) TableName() string {
	return "order_items"
}

// Payments is a billing ledger row linked to either an order or a
// subscription plan, never both.
type Payments struct {
	gorm.Model
	UserID             uint    `gorm:"not null;index" json:"userId"`
	Status             string  `gorm:"not null;type:varchar(20);default:'unpaid'" json:"status"`
	OrderID            *uint   `json:"orderId"`
	SubscriptionPlanID *uint   `json:"subscriptionPlanId"`
	Amount             float64 `gorm:"not null;default:0" json:"amount"`
	StripePaymentID    string  `json:"stripePaymentId"`
}

func (Payments) TableName() string {
	return "payments"
}
