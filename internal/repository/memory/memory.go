// Package memory keeps questions and categories in process memory. It
// mirrors the postgres schema, including the category reference check, and
// is used for local runs without a database and in tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Store holds both tables behind a single lock
type Store struct {
	mu             sync.RWMutex
	categories     []domain.Category
	questions      []domain.Question
	nextCategoryID int
	nextQuestionID int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{nextCategoryID: 1, nextQuestionID: 1}
}

// Questions returns a domain.QuestionRepository view of the store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{s: s}
}

// Categories returns a domain.CategoryRepository view of the store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{s: s}
}

func (s *Store) hasCategory(id int) bool {
	return slices.ContainsFunc(s.categories, func(c domain.Category) bool { return c.ID == id })
}

// filter copies the questions matching keep. IDs only grow, so insertion
// order is ID order.
func (s *Store) filter(keep func(domain.Question) bool) []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// QuestionRepository implements domain.QuestionRepository on a Store
type QuestionRepository struct {
	s *Store
}

func (r *QuestionRepository) List(_ context.Context) ([]domain.Question, error) {
	return r.s.filter(func(domain.Question) bool { return true }), nil
}

func (r *QuestionRepository) ListByCategory(_ context.Context, categoryID int) ([]domain.Question, error) {
	return r.s.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

func (r *QuestionRepository) Search(_ context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.s.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (r *QuestionRepository) ListForQuiz(_ context.Context, categoryID int, excludeIDs []int) ([]domain.Question, error) {
	return r.s.filter(func(q domain.Question) bool {
		if categoryID != 0 && q.Category != categoryID {
			return false
		}
		return !slices.Contains(excludeIDs, q.ID)
	}), nil
}

func (r *QuestionRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.questions), nil
}

func (r *QuestionRepository) GetByID(_ context.Context, id int) (*domain.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, q := range r.s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *QuestionRepository) Create(_ context.Context, question *domain.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.insert(question)
}

func (r *QuestionRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.questions, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	r.s.questions = slices.Delete(r.s.questions, i, i+1)
	return nil
}

// BulkCreate inserts all questions or none of them
func (r *QuestionRepository) BulkCreate(_ context.Context, questions []*domain.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, q := range questions {
		if !r.s.hasCategory(q.Category) {
			return domain.ErrInvalidCategoryRef
		}
	}
	for _, q := range questions {
		if err := r.insert(q); err != nil {
			return err
		}
	}
	return nil
}

// insert expects the write lock to be held
func (r *QuestionRepository) insert(question *domain.Question) error {
	if !r.s.hasCategory(question.Category) {
		return domain.ErrInvalidCategoryRef
	}
	question.ID = r.s.nextQuestionID
	r.s.nextQuestionID++
	r.s.questions = append(r.s.questions, *question)
	return nil
}

// CategoryRepository implements domain.CategoryRepository on a Store
type CategoryRepository struct {
	s *Store
}

func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Category{}, r.s.categories...), nil
}

func (r *CategoryRepository) BulkCreate(_ context.Context, categories []*domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range categories {
		c.ID = r.s.nextCategoryID
		r.s.nextCategoryID++
		r.s.categories = append(r.s.categories, *c)
	}
	return nil
}
