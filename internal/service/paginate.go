package service

import "github.com/zizouhuweidi/trivia/internal/domain"

// QuestionsPerPage is the size of a pagination window
const QuestionsPerPage = 10

// Paginate returns the 1-based page window of questions. Pages below 1 and
// pages past the end yield an empty, non-nil slice.
func Paginate(questions []domain.Question, page int) []domain.Question {
	if page < 1 || page-1 >= (len(questions)+QuestionsPerPage-1)/QuestionsPerPage {
		return []domain.Question{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(questions))
	return questions[start:end]
}
