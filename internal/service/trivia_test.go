package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newService builds a service over categories Science(1) and Art(2) and n
// questions alternating between them.
func newService(t *testing.T, n int) (*TriviaService, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Categories().BulkCreate(ctx, []*domain.Category{{Type: "Science"}, {Type: "Art"}}))

	questions := make([]*domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, &domain.Question{
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   2 - i%2,
			Difficulty: i%5 + 1,
		})
	}
	require.NoError(t, store.Questions().BulkCreate(ctx, questions))

	return NewTriviaService(store.Questions(), store.Categories(), discardLogger()), store
}

func questionIDs(questions []domain.Question) []int {
	out := make([]int, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestListCategories(t *testing.T) {
	svc, _ := newService(t, 0)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art"}, categories)
}

func TestListCategories_EmptyStore(t *testing.T) {
	store := memory.NewStore()
	svc := NewTriviaService(store.Questions(), store.Categories(), discardLogger())

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestListQuestions_PagesCoverEverything(t *testing.T) {
	svc, _ := newService(t, 23)
	ctx := context.Background()

	var seen []int
	for page := 1; page <= 3; page++ {
		result, err := svc.ListQuestions(ctx, page)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Questions), QuestionsPerPage)
		assert.Equal(t, 23, result.Total)
		assert.Equal(t, []string{"Science", "Art"}, result.Categories)
		seen = append(seen, questionIDs(result.Questions)...)
	}

	want := make([]int, 0, 23)
	for i := 1; i <= 23; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, seen)

	_, err := svc.ListQuestions(ctx, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuestions_NotFound(t *testing.T) {
	svc, _ := newService(t, 19)
	ctx := context.Background()

	for _, page := range []int{999, 0, -1} {
		_, err := svc.ListQuestions(ctx, page)
		assert.ErrorIs(t, err, ErrNotFound, "page %d", page)
	}

	empty, _ := newService(t, 0)
	_, err := empty.ListQuestions(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	svc, store := newService(t, 3)
	ctx := context.Background()

	require.NoError(t, svc.DeleteQuestion(ctx, 2))
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, 2), ErrQuestionNotFound)
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, 42), ErrQuestionNotFound)

	all, err := store.Questions().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, questionIDs(all))
}

// lookupQuestions counts deletes that reach the store
type lookupQuestions struct {
	domain.QuestionRepository
	deletes int
}

func (r *lookupQuestions) Delete(ctx context.Context, id int) error {
	r.deletes++
	return r.QuestionRepository.Delete(ctx, id)
}

func TestDeleteQuestion_LooksUpFirst(t *testing.T) {
	_, store := newService(t, 2)
	repo := &lookupQuestions{QuestionRepository: store.Questions()}
	svc := NewTriviaService(repo, store.Categories(), discardLogger())
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteQuestion(ctx, 9), ErrQuestionNotFound)
	assert.Equal(t, 0, repo.deletes)

	require.NoError(t, svc.DeleteQuestion(ctx, 1))
	assert.Equal(t, 1, repo.deletes)
}

func TestCreateQuestion(t *testing.T) {
	svc, _ := newService(t, 12)
	ctx := context.Background()

	req := CreateQuestionRequest{
		Question:   ptr("Who discovered penicillin?"),
		Answer:     ptr("Alexander Fleming"),
		Category:   ptr(1),
		Difficulty: ptr(0),
	}
	created, err := svc.CreateQuestion(ctx, req, 2)
	require.NoError(t, err)
	assert.Equal(t, 13, created.ID)
	assert.Equal(t, 13, created.Total)
	assert.Equal(t, []int{11, 12, 13}, questionIDs(created.Questions))

	created, err = svc.CreateQuestion(ctx, req, 5)
	require.NoError(t, err)
	assert.Equal(t, 14, created.Total)
	assert.NotNil(t, created.Questions)
	assert.Empty(t, created.Questions)
}

func TestCreateQuestion_Errors(t *testing.T) {
	svc, _ := newService(t, 1)
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, CreateQuestionRequest{Question: ptr("q"), Answer: ptr("a"), Category: ptr(1)}, 1)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateQuestion(ctx, CreateQuestionRequest{
		Question: ptr("q"), Answer: ptr("a"), Category: ptr(77), Difficulty: ptr(1),
	}, 1)
	assert.ErrorIs(t, err, ErrInvalidCategoryRef)
}

type failingQuestions struct {
	domain.QuestionRepository
}

func (failingQuestions) Create(context.Context, *domain.Question) error {
	return errors.New("connection refused")
}

func TestCreateQuestion_StoreFailure(t *testing.T) {
	store := memory.NewStore()
	svc := NewTriviaService(failingQuestions{store.Questions()}, store.Categories(), discardLogger())

	_, err := svc.CreateQuestion(context.Background(), CreateQuestionRequest{
		Question: ptr("q"), Answer: ptr("a"), Category: ptr(1), Difficulty: ptr(1),
	}, 1)
	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestSearchQuestions(t *testing.T) {
	svc, _ := newService(t, 12)
	ctx := context.Background()

	result, err := svc.SearchQuestions(ctx, ptr("NUMBER 1"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 11, 12}, questionIDs(result.Questions))
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, []string{"Science", "Art"}, result.Categories)

	_, err = svc.SearchQuestions(ctx, ptr("zebra"))
	assert.ErrorIs(t, err, ErrNotFound)

	result, err = svc.SearchQuestions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 12)
}

func TestSearchQuestions_NoCategories(t *testing.T) {
	_, seeded := newService(t, 4)
	svc := NewTriviaService(seeded.Questions(), memory.NewStore().Categories(), discardLogger())

	_, err := svc.SearchQuestions(context.Background(), ptr("question"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionsByCategory(t *testing.T) {
	svc, _ := newService(t, 5)
	ctx := context.Background()

	all, err := svc.QuestionsByCategory(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, questionIDs(all))

	science, err := svc.QuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	for _, q := range science {
		assert.Equal(t, 1, q.Category)
	}
	assert.Equal(t, []int{1, 3, 5}, questionIDs(science))

	_, err = svc.QuestionsByCategory(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func quizRequest(category int, previous ...int) PlayQuizRequest {
	id := CategoryID(category)
	if previous == nil {
		previous = []int{}
	}
	return PlayQuizRequest{
		QuizCategory:      &QuizCategory{ID: &id},
		PreviousQuestions: previous,
	}
}

func TestNextQuizQuestion_SkipsPrevious(t *testing.T) {
	svc, _ := newService(t, 30)
	ctx := context.Background()

	previous := []int{}
	for range 15 {
		turn, err := svc.NextQuizQuestion(ctx, quizRequest(1, previous...))
		require.NoError(t, err)
		require.NotNil(t, turn.Question)
		assert.NotContains(t, previous, turn.Question.ID)
		assert.Equal(t, 1, turn.Question.Category)
		assert.Equal(t, 1, turn.CurrentCategory)
		assert.Equal(t, 15-len(previous), turn.Total)
		previous = append(previous, turn.Question.ID)
	}

	turn, err := svc.NextQuizQuestion(ctx, quizRequest(1, previous...))
	require.NoError(t, err)
	assert.Nil(t, turn.Question)
	assert.Equal(t, 0, turn.CurrentCategory)
	assert.Equal(t, 0, turn.Total)
}

func TestNextQuizQuestion_PicksFromAllCandidates(t *testing.T) {
	svc, _ := newService(t, 25)
	svc.pick = func(n int) int { return n - 1 }

	turn, err := svc.NextQuizQuestion(context.Background(), quizRequest(0))
	require.NoError(t, err)
	assert.Equal(t, 25, turn.Question.ID)
	assert.Equal(t, 1, turn.CurrentCategory)
	assert.Equal(t, 25, turn.Total)
}

func TestNextQuizQuestion_AllExhausted(t *testing.T) {
	svc, _ := newService(t, 3)

	turn, err := svc.NextQuizQuestion(context.Background(), quizRequest(0, 1, 2, 3))
	require.NoError(t, err)
	assert.Nil(t, turn.Question)
	assert.Equal(t, 0, turn.CurrentCategory)
	assert.Equal(t, 0, turn.Total)
}

func TestNextQuizQuestion_Malformed(t *testing.T) {
	svc, _ := newService(t, 3)
	ctx := context.Background()

	_, err := svc.NextQuizQuestion(ctx, PlayQuizRequest{PreviousQuestions: []int{}})
	assert.ErrorIs(t, err, ErrMalformedBody)

	_, err = svc.NextQuizQuestion(ctx, PlayQuizRequest{QuizCategory: &QuizCategory{}, PreviousQuestions: []int{}})
	assert.ErrorIs(t, err, ErrMalformedBody)

	req := quizRequest(0)
	req.PreviousQuestions = nil
	_, err = svc.NextQuizQuestion(ctx, req)
	assert.ErrorIs(t, err, ErrMalformedBody)
}
