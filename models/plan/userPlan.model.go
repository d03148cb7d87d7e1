package plan

import (
	"time"

	"gorm.io/gorm"
)

// UserPlanStatus enum values
const (
	UserPlanActive    = "active"
	UserPlanCompleted = "completed"
	UserPlanCancelled = "cancelled"
)

// GoalProgressStatus enum values
const (
	GoalPending   = "pending"
	GoalCompleted = "completed"
)

// UserPlan is a user's run through a Plan. Creation fans out one
// UserGoalProgress per goal; completing the last pending goal flips the
// status to completed.
type UserPlan struct {
	gorm.Model
	UserID    uint       `gorm:"not null;index" json:"userId"`
	PlanID    uint       `gorm:"not null;index" json:"planId"`
	StartDate time.Time  `gorm:"not null" json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Status    string     `gorm:"not null;type:varchar(10);default:'active'" json:"status"`

	Plan      Plan               `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	UserGoals []UserGoalProgress `gorm:"foreignKey:UserPlanID" json:"userGoals,omitempty"`
}

// UserGoalProgress tracks per-user completion of a single goal. Each goal
// appears exactly once per UserPlan.
type UserGoalProgress struct {
	gorm.Model
	UserPlanID     uint       `gorm:"not null;index;uniqueIndex:idx_user_plan_goal" json:"userPlanId"`
	GoalID         uint       `gorm:"not null;uniqueIndex:idx_user_plan_goal" json:"goalId"`
	ScheduledDate  time.Time  `gorm:"not null" json:"scheduledDate"`
	Status         string     `gorm:"not null;type:varchar(10);default:'pending'" json:"status"`
	CompletionDate *time.Time `json:"completionDate"`

	Goal Goal `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
}
