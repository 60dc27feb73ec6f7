package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"finbook/models"

	"github.com/google/uuid"
)

// TransactionService owns the validated create/update/delete path for income
// and expense records. Every operation is scoped to the acting user.
type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create persists a new transaction owned by userID. Amounts must be
// strictly positive; anything else is rejected before the insert.
func (s *TransactionService) Create(ctx context.Context, kind models.TransactionKind, userID, name, categoryID string, amount float64, date time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	t := &models.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     amount,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, category_id, name, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, kind.Table())

	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.CategoryID, t.Name, t.Amount, t.Date, t.CreatedAt)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Get loads a single transaction owned by userID.
func (s *TransactionService) Get(ctx context.Context, kind models.TransactionKind, id, userID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, category_id, name, amount, date, created_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, kind.Table())

	var t models.Transaction
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.CategoryID, &t.Name, &t.Amount, &t.Date, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// List returns the user's transactions of one kind, newest first.
func (s *TransactionService) List(ctx context.Context, kind models.TransactionKind, userID string) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.category_id, c.name, t.name, t.amount, t.date, t.created_at
		FROM %s t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
	`, kind.Table())

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.CategoryName,
			&t.Name, &t.Amount, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// Update applies validated field changes to a transaction owned by userID.
// A missing or foreign record fails with ErrNotFound before any write.
func (s *TransactionService) Update(ctx context.Context, kind models.TransactionKind, id, userID, name, categoryID string, amount float64, date time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	if _, err := s.Get(ctx, kind, id, userID); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, category_id = $2, amount = $3, date = $4
		WHERE id = $5 AND user_id = $6
	`, kind.Table())

	_, err := s.db.ExecContext(ctx, query, name, categoryID, amount, date, id, userID)
	return err
}

// Delete removes a transaction owned by userID. Deleting an id that no
// longer exists fails with ErrNotFound, so a second delete never succeeds.
func (s *TransactionService) Delete(ctx context.Context, kind models.TransactionKind, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, kind.Table())

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
