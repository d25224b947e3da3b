package service

import (
	"encoding/json"
	"strconv"
)

// CreateQuestionRequest represents the request to create a new question.
// Pointers tell a missing field apart from a zero value.
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// CategoryID is a category id sent by the quiz client, either as a JSON
// number or as a numeric string.
type CategoryID int

// UnmarshalJSON accepts 3 as well as "3"
func (id *CategoryID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = CategoryID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*id = CategoryID(n)
	return nil
}

// QuizCategory is the category a quiz is played in. ID 0 means all. Other
// keys the client sends along, such as the category type, are ignored.
type QuizCategory struct {
	ID *CategoryID `json:"id" validate:"required"`
}

// PlayQuizRequest represents a request for the next quiz question
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}
