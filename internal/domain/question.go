package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidCategoryRef = errors.New("category does not exist")
)

// Question represents a single trivia prompt
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionRepository defines the interface for question-related operations.
// Every listing is ordered by ID.
type QuestionRepository interface {
	// List retrieves all questions
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions of one category
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]Question, error)

	// ListForQuiz retrieves quiz candidates, skipping excludeIDs.
	// A categoryID of zero matches every category.
	ListForQuiz(ctx context.Context, categoryID int, excludeIDs []int) ([]Question, error)

	// Count returns the number of stored questions
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create stores a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error

	// BulkCreate creates multiple questions in a single transaction
	BulkCreate(ctx context.Context, questions []*Question) error
}
