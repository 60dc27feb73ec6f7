package services

import (
	"context"
	"database/sql"
	"math"
	"time"

	"finbook/models"
)

// ReportService derives read-only summaries from raw transaction and
// contribution rows. Nothing here is persisted; every call recomputes from a
// consistent snapshot of the store, and absence of records always sums to
// zero rather than erroring.
type ReportService struct {
	db *sql.DB
}

func NewReportService(db *sql.DB) *ReportService {
	return &ReportService{db: db}
}

// Round2 rounds to two decimal places. The goals list reports percentages
// rounded this way; the dashboard reports the raw ratio.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GoalProgress sums all contributions toward a goal and returns the total
// together with the percentage of the target covered. A zero target never
// divides: progress is 0.
func (s *ReportService) GoalProgress(ctx context.Context, goalID string, targetAmount float64) (total float64, percent float64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM contributions
		WHERE goal_id = $1
	`, goalID).Scan(&total)
	if err != nil {
		return 0, 0, err
	}

	if targetAmount > 0 {
		percent = total / targetAmount * 100
	}

	return total, percent, nil
}

// ReferenceMonth returns the calendar month preceding now's month. January
// rolls over to December; only the month-of-year is tracked.
func ReferenceMonth(now time.Time) time.Month {
	if now.Month() == time.January {
		return time.December
	}
	return now.Month() - 1
}

// CategorySummary reports, for every known category, the sums of the user's
// expenses and incomes whose date falls in the given month-of-year. Only the
// month is compared, never the year. Categories with no matching transactions
// contribute zero rows, not omitted ones.
func (s *ReportService) CategorySummary(ctx context.Context, userID string, month time.Month) ([]models.CategorySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM categories
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := []models.CategorySummary{}
	index := map[string]int{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		index[category.ID] = len(summary)
		summary = append(summary, models.CategorySummary{Category: category})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	expenseTotals, err := s.monthTotalsByCategory(ctx, "expenses", userID, month)
	if err != nil {
		return nil, err
	}
	incomeTotals, err := s.monthTotalsByCategory(ctx, "incomes", userID, month)
	if err != nil {
		return nil, err
	}

	for categoryID, amount := range expenseTotals {
		if i, ok := index[categoryID]; ok {
			summary[i].TotalExpensesInCategory = amount
		}
	}
	for categoryID, amount := range incomeTotals {
		if i, ok := index[categoryID]; ok {
			summary[i].TotalIncomesInCategory = amount
		}
	}

	return summary, nil
}

// monthTotalsByCategory sums one transaction table per category for rows
// whose date matches the month-of-year. The month filter runs in Go so the
// same code serves postgres and sqlite.
func (s *ReportService) monthTotalsByCategory(ctx context.Context, table, userID string, month time.Month) (map[string]float64, error) {
	query := `SELECT category_id, amount, date FROM incomes WHERE user_id = $1`
	if table == "expenses" {
		query = `SELECT category_id, amount, date FROM expenses WHERE user_id = $1`
	}

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var categoryID string
		var amount float64
		var date time.Time
		if err := rows.Scan(&categoryID, &amount, &date); err != nil {
			return nil, err
		}
		if date.Month() == month {
			totals[categoryID] += amount
		}
	}

	return totals, rows.Err()
}

// DefaultPeriod is the fallback reporting range: first day of the current
// month through today.
func DefaultPeriod(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, end
}

// ParsePeriod parses YYYY-MM-DD bounds. If either bound is missing or fails
// to parse, both silently fall back to the defaults; a malformed query never
// errors.
func ParsePeriod(startStr, endStr string, now time.Time) (start, end time.Time) {
	start, end = DefaultPeriod(now)
	if startStr == "" || endStr == "" {
		return start, end
	}

	parsedStart, errStart := time.Parse("2006-01-02", startStr)
	parsedEnd, errEnd := time.Parse("2006-01-02", endStr)
	if errStart != nil || errEnd != nil {
		return start, end
	}

	return parsedStart, parsedEnd
}

// PeriodTotals sums the user's incomes and expenses over the inclusive
// [start, end] range and derives the net budget.
func (s *ReportService) PeriodTotals(ctx context.Context, userID string, start, end time.Time) (*models.PeriodTotals, error) {
	totals := &models.PeriodTotals{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM incomes
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, start, end).Scan(&totals.TotalIncome)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, start, end).Scan(&totals.TotalExpenses)
	if err != nil {
		return nil, err
	}

	totals.NetBudget = totals.TotalIncome - totals.TotalExpenses
	return totals, nil
}

// Dashboard combines the user's goal progress, their own contributions,
// contributions received from others, and the reference-month category
// summary into one read-only report.
func (s *ReportService) Dashboard(ctx context.Context, userID string) (*models.DashboardReport, error) {
	report := &models.DashboardReport{
		UserGoals:             []models.GoalProgress{},
		MyContributions:       []models.Contribution{},
		ReceivedContributions: []models.Contribution{},
	}

	goals, err := s.userGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, goal := range goals {
		total, percent, err := s.GoalProgress(ctx, goal.ID, goal.TargetAmount)
		if err != nil {
			return nil, err
		}
		report.UserGoals = append(report.UserGoals, models.GoalProgress{
			Goal:               goal,
			TotalContributions: total,
			Progress:           percent,
		})
	}

	report.MyContributions, err = s.contributionsBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	report.ReceivedContributions, err = s.contributionsReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	month := ReferenceMonth(time.Now())
	report.CategorySummary, err = s.CategorySummary(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	for _, row := range report.CategorySummary {
		report.TotalIncomes += row.TotalIncomesInCategory
		report.TotalExpenses += row.TotalExpensesInCategory
	}
	report.TotalBalance = report.TotalIncomes - report.TotalExpenses

	return report, nil
}

func (s *ReportService) userGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, name, description, target_amount, created_at
		FROM goals
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.OwnerID, &goal.Name,
			&goal.Description, &goal.TargetAmount, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// contributionsBy lists contributions the user has made, newest first.
func (s *ReportService) contributionsBy(ctx context.Context, userID string) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.goal_id, g.name, c.contributor_id, u.username, c.amount, c.created_at
		FROM contributions c
		JOIN goals g ON c.goal_id = g.id
		JOIN users u ON c.contributor_id = u.id
		WHERE c.contributor_id = $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContributions(rows)
}

// contributionsReceived lists contributions made by other users toward the
// user's goals.
func (s *ReportService) contributionsReceived(ctx context.Context, userID string) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.goal_id, g.name, c.contributor_id, u.username, c.amount, c.created_at
		FROM contributions c
		JOIN goals g ON c.goal_id = g.id
		JOIN users u ON c.contributor_id = u.id
		WHERE g.owner_id = $1 AND c.contributor_id <> $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContributions(rows)
}

func scanContributions(rows *sql.Rows) ([]models.Contribution, error) {
	contributions := []models.Contribution{}
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.GoalID, &c.GoalName, &c.ContributorID,
			&c.Contributor, &c.Amount, &c.CreatedAt); err != nil {
			return nil, err
		}
		contributions = append(contributions, c)
	}

	return contributions, rows.Err()
}
