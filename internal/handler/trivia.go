package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// TriviaService is the set of operations the trivia routes are served by
type TriviaService interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListQuestions(ctx context.Context, page int) (*service.QuestionPage, error)
	DeleteQuestion(ctx context.Context, id int) error
	CreateQuestion(ctx context.Context, req service.CreateQuestionRequest, page int) (*service.CreatedQuestion, error)
	SearchQuestions(ctx context.Context, term *string) (*service.SearchResult, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error)
	NextQuizQuestion(ctx context.Context, req service.PlayQuizRequest) (*service.QuizTurn, error)
}

var _ TriviaService = (*service.TriviaService)(nil)

// TriviaHandler handles the question, category and quiz routes
type TriviaHandler struct {
	trivia TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia TriviaService) *TriviaHandler {
	return &TriviaHandler{
		trivia: trivia,
	}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:category/questions", h.QuestionsByCategory)

	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.DELETE("/questions/:question_id", h.DeleteQuestion)

	e.POST("/quizzes", h.PlayQuiz)
}

// CategoriesResponse lists category names in ID order
type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

// QuestionsResponse is one page of the question list
type QuestionsResponse struct {
	Success                bool              `json:"success"`
	Questions              []domain.Question `json:"questions"`
	NumberOfTotalQuestions int               `json:"number_of_total_questions"`
	CurrentCategory        []string          `json:"current_category"`
	Categories             []string          `json:"categories"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// CreateResponse confirms a creation
type CreateResponse struct {
	Success        bool              `json:"success"`
	Created        int               `json:"created"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// SearchResponse holds search matches
type SearchResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory []string          `json:"current_category"`
}

// CategoryQuestionsResponse holds the questions of one category
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

// QuizResponse carries the next quiz question. Question is a question
// object, or "" once the category is exhausted.
type QuizResponse struct {
	Success         bool `json:"success"`
	CurrentCategory int  `json:"current_category"`
	Question        any  `json:"question"`
	TotalQuestions  int  `json:"total_questions"`
}

// ListCategories handles GET /categories
func (h *TriviaHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *TriviaHandler) ListQuestions(c echo.Context) error {
	result, err := h.trivia.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return abort(http.StatusNotFound, err)
		}
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:                true,
		Questions:              result.Questions,
		NumberOfTotalQuestions: result.Total,
		CurrentCategory:        result.Categories,
		Categories:             result.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/:question_id
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := idParam(c, "question_id", http.StatusUnprocessableEntity)
	if err != nil {
		return err
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return abort(http.StatusUnprocessableEntity, err)
		}
		return err
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Success: true,
		Deleted: id,
	})
}

// CreateQuestion handles POST /questions
func (h *TriviaHandler) CreateQuestion(c echo.Context) error {
	var req service.CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return abort(http.StatusUnprocessableEntity, fmt.Errorf("%w: %v", service.ErrMalformedBody, err))
	}
	if err := c.Validate(&req); err != nil {
		return abort(http.StatusUnprocessableEntity, fmt.Errorf("%w: %v", service.ErrMissingField, validation.MissingFields(err)))
	}

	created, err := h.trivia.CreateQuestion(c.Request().Context(), req, pageParam(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrInvalidCategoryRef),
			errors.Is(err, service.ErrCreateFailed):
			return abort(http.StatusUnprocessableEntity, err)
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, CreateResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      created.Questions,
		TotalQuestions: created.Total,
	})
}

// SearchQuestions handles POST /questions/search
func (h *TriviaHandler) SearchQuestions(c echo.Context) error {
	var req service.SearchRequest
	if err := c.Bind(&req); err != nil {
		return abort(http.StatusBadRequest, fmt.Errorf("%w: %v", service.ErrMalformedBody, err))
	}

	result, err := h.trivia.SearchQuestions(c.Request().Context(), req.SearchTerm)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return abort(http.StatusNotFound, err)
		}
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.Categories,
	})
}

// QuestionsByCategory handles GET /categories/:category/questions
func (h *TriviaHandler) QuestionsByCategory(c echo.Context) error {
	category, err := idParam(c, "category", http.StatusNotFound)
	if err != nil {
		return err
	}

	questions, err := h.trivia.QuestionsByCategory(c.Request().Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return abort(http.StatusNotFound, err)
		}
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category,
	})
}

// PlayQuiz handles POST /quizzes. Every failure is reported as a bad request.
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req service.PlayQuizRequest
	if err := c.Bind(&req); err != nil {
		return abort(http.StatusBadRequest, fmt.Errorf("%w: %v", service.ErrMalformedBody, err))
	}
	if err := c.Validate(&req); err != nil {
		return abort(http.StatusBadRequest, fmt.Errorf("%w: %v", service.ErrMalformedBody, validation.MissingFields(err)))
	}

	turn, err := h.trivia.NextQuizQuestion(c.Request().Context(), req)
	if err != nil {
		return abort(http.StatusBadRequest, err)
	}

	resp := QuizResponse{
		Success:         true,
		CurrentCategory: turn.CurrentCategory,
		Question:        "",
		TotalQuestions:  turn.Total,
	}
	if turn.Question != nil {
		resp.Question = turn.Question
	}
	return c.JSON(http.StatusOK, resp)
}

// pageParam reads the page query parameter, defaulting to 1 when it is
// absent or not an integer
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}

// idParam reads a non-negative integer path parameter. Anything else does
// not name a resource and is reported as not found. Integers past the int4
// key range cannot name a stored row and are reported with missing.
func idParam(c echo.Context, name string, missing int) (int, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		return 0, abort(missing, fmt.Errorf("%s %q out of range", name, raw))
	case err != nil || id < 0:
		return 0, abort(http.StatusNotFound, fmt.Errorf("invalid %s %q", name, raw))
	}
	return int(id), nil
}
