package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"finbook/models"

	"github.com/google/uuid"
)

// GoalService manages savings goals and the contributions made toward them.
type GoalService struct {
	db      *sql.DB
	reports *ReportService
}

func NewGoalService(db *sql.DB) *GoalService {
	return &GoalService{db: db, reports: NewReportService(db)}
}

// CreateGoal persists a goal with zero initial contributions. The target
// amount is fixed at creation; there is no edit or delete path. A zero
// target is accepted and reports zero progress forever.
func (s *GoalService) CreateGoal(ctx context.Context, ownerID, name, description string, targetAmount float64) (*models.Goal, error) {
	goal := &models.Goal{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         name,
		Description:  description,
		TargetAmount: targetAmount,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, owner_id, name, description, target_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, goal.ID, goal.OwnerID, goal.Name, goal.Description, goal.TargetAmount, goal.CreatedAt)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// GetGoal loads a goal by id, regardless of owner: any authenticated user
// may view and fund any goal.
func (s *GoalService) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.QueryRowContext(ctx, `
		SELECT g.id, g.owner_id, u.username, g.name, g.description, g.target_amount, g.created_at
		FROM goals g
		JOIN users u ON g.owner_id = u.id
		WHERE g.id = $1
	`, goalID).Scan(&goal.ID, &goal.OwnerID, &goal.OwnerName, &goal.Name,
		&goal.Description, &goal.TargetAmount, &goal.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

// Contribute records an immutable contribution toward a goal. Any user may
// contribute, including the owner, and totals may overshoot the target. The
// creation date is stamped here and never changes.
func (s *GoalService) Contribute(ctx context.Context, goalID, contributorID string, amount float64) (*models.Contribution, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	if _, err := s.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}

	contribution := &models.Contribution{
		ID:            uuid.New().String(),
		GoalID:        goalID,
		ContributorID: contributorID,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contributions (id, goal_id, contributor_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, contribution.ID, contribution.GoalID, contribution.ContributorID,
		contribution.Amount, contribution.CreatedAt)
	if err != nil {
		return nil, err
	}

	return contribution, nil
}

// ListGoals partitions all goals into those owned by the viewer and those
// owned by others, each annotated with its funding progress rounded to two
// decimal places.
func (s *GoalService) ListGoals(ctx context.Context, viewerID string) (*models.GoalList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.owner_id, u.username, g.name, g.description, g.target_amount, g.created_at
		FROM goals g
		JOIN users u ON g.owner_id = u.id
		ORDER BY g.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := &models.GoalList{
		MyGoals:    []models.GoalWithProgress{},
		OtherGoals: []models.GoalWithProgress{},
	}

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.OwnerID, &goal.OwnerName, &goal.Name,
			&goal.Description, &goal.TargetAmount, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, goal := range goals {
		total, percent, err := s.reports.GoalProgress(ctx, goal.ID, goal.TargetAmount)
		if err != nil {
			return nil, err
		}

		annotated := models.GoalWithProgress{
			Goal:              goal,
			CurrentAmount:     total,
			CurrentPercentage: Round2(percent),
		}

		if goal.OwnerID == viewerID {
			list.MyGoals = append(list.MyGoals, annotated)
		} else {
			list.OtherGoals = append(list.OtherGoals, annotated)
		}
	}

	return list, nil
}
