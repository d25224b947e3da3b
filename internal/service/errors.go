package service

import (
	"errors"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Common service errors
var (
	ErrNotFound         = errors.New("no matching records")
	ErrMissingField     = errors.New("required field missing")
	ErrMalformedBody    = errors.New("malformed request body")
	ErrCreateFailed     = errors.New("failed to store question")
	ErrQuestionNotFound = domain.ErrQuestionNotFound

	ErrInvalidCategoryRef = domain.ErrInvalidCategoryRef
)
