package models

import "time"

// Goal is a savings target owned by one user and fundable by contributions
// from any user. Goals have no edit or delete path; the target amount is
// fixed at creation.
type Goal struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	OwnerName    string    `json:"owner_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetAmount float64   `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// GoalWithProgress annotates a goal with its computed funding state. The
// goals list rounds CurrentPercentage to 2 decimals; the dashboard variant
// reports the raw ratio.
type GoalWithProgress struct {
	Goal
	CurrentAmount     float64 `json:"current_amount"`
	CurrentPercentage float64 `json:"current_percentage"`
}

// Contribution is an immutable pledge toward a goal. The creation date is
// stamped on insert and never changes.
type Contribution struct {
	ID            string    `json:"id"`
	GoalID        string    `json:"goal_id"`
	GoalName      string    `json:"goal_name,omitempty"`
	ContributorID string    `json:"contributor_id"`
	Contributor   string    `json:"contributor,omitempty"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
}

type DonateRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type GoalList struct {
	MyGoals    []GoalWithProgress `json:"my_goals"`
	OtherGoals []GoalWithProgress `json:"other_goals"`
}
