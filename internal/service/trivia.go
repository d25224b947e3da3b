package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// TriviaService implements the question, category and quiz operations
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	logger     *slog.Logger
	pick       func(n int) int
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, logger *slog.Logger) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		logger:     logger,
		pick:       rand.IntN,
	}
}

// QuestionPage is one pagination window of the full question list
type QuestionPage struct {
	Questions  []domain.Question
	Total      int
	Categories []string
}

// CreatedQuestion is the outcome of CreateQuestion
type CreatedQuestion struct {
	ID        int
	Questions []domain.Question
	Total     int
}

// SearchResult holds the questions matching a search term
type SearchResult struct {
	Questions  []domain.Question
	Total      int
	Categories []string
}

// QuizTurn is the next quiz question. Question is nil once the candidates
// are exhausted.
type QuizTurn struct {
	Question        *domain.Question
	CurrentCategory int
	Total           int
}

// ListCategories returns every category type in ID order
func (s *TriviaService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CategoryTypes(categories), nil
}

// ListQuestions returns one page of all questions
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	window := Paginate(all, page)
	if len(window) == 0 {
		return nil, ErrNotFound
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  window,
		Total:      len(all),
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question by ID
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.questions.Delete(ctx, id)
}

// CreateQuestion stores a new question and returns the requested page of
// the updated list
func (s *TriviaService) CreateQuestion(ctx context.Context, req CreateQuestionRequest, page int) (*CreatedQuestion, error) {
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		return nil, ErrMissingField
	}

	question := &domain.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		if errors.Is(err, ErrInvalidCategoryRef) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "question insert failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	return &CreatedQuestion{
		ID:        question.ID,
		Questions: Paginate(all, page),
		Total:     len(all),
	}, nil
}

// SearchQuestions finds questions containing the term, ignoring case. A
// nil term matches every question.
func (s *TriviaService) SearchQuestions(ctx context.Context, term *string) (*SearchResult, error) {
	var needle string
	if term != nil {
		needle = *term
	}

	found, err := s.questions.Search(ctx, needle)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}

	return &SearchResult{
		Questions:  found,
		Total:      total,
		Categories: categories,
	}, nil
}

// QuestionsByCategory lists the questions of one category. Category 0
// lists every question.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var (
		questions []domain.Question
		err       error
	)
	if categoryID == 0 {
		questions, err = s.questions.List(ctx)
	} else {
		questions, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

// NextQuizQuestion picks a random question the player has not seen yet
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req PlayQuizRequest) (*QuizTurn, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil || req.PreviousQuestions == nil {
		return nil, ErrMalformedBody
	}

	candidates, err := s.questions.ListForQuiz(ctx, int(*req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		return nil, err
	}

	turn := &QuizTurn{Total: len(candidates)}
	if len(candidates) == 0 {
		return turn, nil
	}

	chosen := candidates[s.pick(len(candidates))]
	turn.Question = &chosen
	turn.CurrentCategory = candidates[0].Category
	return turn, nil
}
