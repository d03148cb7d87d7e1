package plan

import (
	"gorm.io/gorm"
)

// PlanType enum values
const (
	PlanTypeNutrition = "nutrition"
	PlanTypeExercise  = "exercise"
)

// Plan is a non-monetary fitness program made of daily goals.
type Plan struct {
	gorm.Model
	Name                 string `gorm:"not null" json:"name"`
	PlanType             string `gorm:"not null;type:varchar(10)" json:"planType"` // nutrition or exercise
	Description          string `json:"description"`
	DurationDays         int    `gorm:"not null" json:"durationDays"`
	SubscriptionRequired bool   `json:"subscriptionRequired"`

	Goals []Goal `gorm:"foreignKey:PlanID" json:"goals,omitempty"`
}

// Goal is a single day's target within a plan. Day numbers are unique per plan.
type Goal struct {
	gorm.Model
	PlanID      uint   `gorm:"not null;index;uniqueIndex:idx_plan_day" json:"planId"`
	Description string `gorm:"not null" json:"description"`
	DayNumber   int    `gorm:"not null;uniqueIndex:idx_plan_day" json:"dayNumber"`
}
