package database

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

type seedQuestion struct {
	category   string
	question   string
	answer     string
	difficulty int
}

var seedCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

var seedQuestions = []seedQuestion{
	{"Entertainment", "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 4},
	{"Entertainment", "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 4},
	{"Entertainment", "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 3},
	{"History", "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2},
	{"History", "What boxer's original name is Cassius Clay?", "Muhammad Ali", 1},
	{"History", "Who invented Peanut Butter?", "George Washington Carver", 2},
	{"History", "Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4},
	{"Sports", "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3},
	{"Sports", "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 4},
	{"Geography", "What is the largest lake in Africa?", "Lake Victoria", 2},
	{"Geography", "In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3},
	{"Geography", "The Taj Mahal is located in which Indian city?", "Agra", 2},
	{"Art", "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 1},
	{"Art", "La Giaconda is better known as what?", "Mona Lisa", 3},
	{"Art", "How many paintings did Van Gogh sell in his lifetime?", "One", 4},
	{"Art", "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", 2},
	{"Science", "What is the heaviest organ in the human body?", "The Liver", 4},
	{"Science", "Who discovered penicillin?", "Alexander Fleming", 3},
	{"Science", "Hematology is a branch of medicine involving the study of what?", "Blood", 4},
}

// Seed fills empty stores with the starter categories and questions.
// It returns the number of questions created, zero when categories already exist.
func Seed(ctx context.Context, categories domain.CategoryRepository, questions domain.QuestionRepository) (int, error) {
	existing, err := categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	ids := make(map[string]int, len(seedCategories))
	for _, name := range seedCategories {
		category := &domain.Category{Type: name}
		if err := categories.Create(ctx, category); err != nil {
			return 0, fmt.Errorf("failed to create category %s: %w", name, err)
		}
		ids[name] = category.ID
	}

	batch := make([]*domain.Question, 0, len(seedQuestions))
	for _, q := range seedQuestions {
		batch = append(batch, &domain.Question{
			Question:   q.question,
			Answer:     q.answer,
			Category:   ids[q.category],
			Difficulty: q.difficulty,
		})
	}

	if err := questions.BulkCreate(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to create questions: %w", err)
	}

	return len(batch), nil
}
