package payments

import (
	"shopfit/models"

	"gorm.io/gorm"
)

// EnsureCustomer returns the user's billing-customer id, creating and
// persisting one on first use. The reference is set lazily on the first
// payment, not at registration.
func EnsureCustomer(db *gorm.DB, user *models.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	customerID, err := Active.CreateCustomer(user.Email, user.Name)
	if err != nil {
		return "", err
	}

	user.StripeCustomerID = customerID
	if err := db.Save(user).Error; err != nil {
		return "", err
	}
	return customerID, nil
}
