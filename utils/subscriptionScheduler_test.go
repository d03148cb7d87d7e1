package utils_test

import (
	"testing"
	"time"

	"shopfit/models/plan"
	"shopfit/testutil"
	"shopfit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpireSubscriptions(t *testing.T) {
	db := testutil.SetupDB(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	subscriptionPlan := plan.SubscriptionPlan{Name: "Gold", Price: 9.99, Days: 30}
	require.NoError(t, db.Create(&subscriptionPlan).Error)

	past := time.Now().AddDate(0, 0, -1)
	future := time.Now().AddDate(0, 0, 10)

	expired := plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionActive,
		PaymentStatus:      true,
		EndDate:            &past,
	}
	require.NoError(t, db.Create(&expired).Error)

	current := plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionActive,
		PaymentStatus:      true,
		EndDate:            &future,
	}
	require.NoError(t, db.Create(&current).Error)

	utils.ExpireSubscriptions()

	var lapsed plan.UserSubscription
	require.NoError(t, db.First(&lapsed, expired.ID).Error)
	assert.Equal(t, plan.SubscriptionInactive, lapsed.Status)
	assert.False(t, lapsed.PaymentStatus)

	var stillActive plan.UserSubscription
	require.NoError(t, db.First(&stillActive, current.ID).Error)
	assert.Equal(t, plan.SubscriptionActive, stillActive.Status)
	assert.True(t, stillActive.PaymentStatus)
}
