// Package seed loads the sample trivia set into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Categories are the standard category names, in ID order
var Categories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

type sample struct {
	question   string
	answer     string
	category   string
	difficulty int
}

var questions = []sample{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", "History", 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", "History", 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", "Entertainment", 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", "Entertainment", 4},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", "Entertainment", 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", "Sports", 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", "Sports", 4},
	{"Who invented Peanut Butter?", "George Washington Carver", "History", 2},
	{"What is the largest lake in Africa?", "Lake Victoria", "Geography", 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", "Geography", 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", "Geography", 2},
	{"Which Dutch graphic artist-initials M C was a creator of optical illusions?", "Escher", "Art", 1},
	{"La Giaconda is better known as what?", "Mona Lisa", "Art", 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", "Art", 4},
	{"Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", "Art", 2},
	{"What is the heaviest organ in the human body?", "The Liver", "Science", 4},
	{"Who discovered penicillin?", "Alexander Fleming", "Science", 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", "Science", 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", "History", 4},
}

// Load inserts the sample categories and questions unless the store already
// holds questions. It reports whether anything was inserted.
func Load(ctx context.Context, categories domain.CategoryRepository, questionRepo domain.QuestionRepository) (bool, error) {
	count, err := questionRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	ids, err := ensureCategories(ctx, categories)
	if err != nil {
		return false, err
	}

	batch := make([]*domain.Question, 0, len(questions))
	for _, s := range questions {
		batch = append(batch, &domain.Question{
			Question:   s.question,
			Answer:     s.answer,
			Category:   ids[s.category],
			Difficulty: s.difficulty,
		})
	}
	if err := questionRepo.BulkCreate(ctx, batch); err != nil {
		return false, fmt.Errorf("failed to seed questions: %w", err)
	}
	return true, nil
}

// ensureCategories creates the missing standard categories and returns the
// ID of every category by type
func ensureCategories(ctx context.Context, repo domain.CategoryRepository) (map[string]int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int, len(existing))
	for _, c := range existing {
		ids[c.Type] = c.ID
	}

	var missing []*domain.Category
	for _, name := range Categories {
		if _, ok := ids[name]; !ok {
			missing = append(missing, &domain.Category{Type: name})
		}
	}
	if len(missing) == 0 {
		return ids, nil
	}

	if err := repo.BulkCreate(ctx, missing); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	for _, c := range missing {
		ids[c.Type] = c.ID
	}
	return ids, nil
}
