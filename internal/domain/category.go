package domain

import "context"

// Category is a named grouping of questions
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories ordered by ID
	List(ctx context.Context) ([]Category, error)

	// BulkCreate creates multiple categories in a single transaction
	BulkCreate(ctx context.Context, categories []*Category) error
}

// CategoryTypes returns the type names of categories, preserving order
func CategoryTypes(categories []Category) []string {
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	return types
}
