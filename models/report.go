package models

// GoalProgress pairs a goal with its contribution total. Progress is the
// percentage of the target covered so far; a zero target reports 0.
type GoalProgress struct {
	Goal               Goal    `json:"goal"`
	TotalContributions float64 `json:"total_contributions"`
	Progress           float64 `json:"progress"`
}

// CategorySummary is one row of the per-category report: sums of the user's
// expenses and incomes whose date falls in the reference month. Categories
// with no matching transactions still appear, with zero totals.
type CategorySummary struct {
	Category                Category `json:"category"`
	TotalExpensesInCategory float64  `json:"total_expenses_in_category"`
	TotalIncomesInCategory  float64  `json:"total_incomes_in_category"`
}

// PeriodTotals are income/expense sums over an inclusive date range.
type PeriodTotals struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetBudget     float64 `json:"net_budget"`
}

// DashboardReport is the single read-only aggregate behind /dashboard.
type DashboardReport struct {
	UserGoals             []GoalProgress    `json:"user_goals"`
	MyContributions       []Contribution    `json:"my_contributions"`
	ReceivedContributions []Contribution    `json:"received_contributions"`
	CategorySummary       []CategorySummary `json:"category_summary"`
	TotalIncomes          float64           `json:"total_incomes"`
	TotalExpenses         float64           `json:"total_expenses"`
	TotalBalance          float64           `json:"total_balance"`
}
