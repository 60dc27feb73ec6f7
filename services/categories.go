package services

import (
	"context"
	"database/sql"
	"time"

	"finbook/models"

	"github.com/google/uuid"
)

// CategoryService manages the reporting labels transactions reference.
// Creation is ad hoc and duplicates are allowed; categories are never
// edited or deleted here.
type CategoryService struct {
	db *sql.DB
}

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, created_at)
		VALUES ($1, $2, $3)
	`, category.ID, category.Name, category.CreatedAt)
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM categories WHERE id = $1
	`, id).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM categories ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
