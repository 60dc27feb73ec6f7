package models

import "time"

// Category is a label grouping income and expense records for reporting.
// Categories are created ad hoc and duplicates are allowed.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
