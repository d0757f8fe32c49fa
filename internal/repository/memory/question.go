package memory

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository keeps questions in process memory
type QuestionRepository struct {
	mu         sync.RWMutex
	nextID     int
	questions  map[int]*domain.Question
	categories domain.CategoryRepository
}

// NewQuestionRepository creates an empty repository. Inserts are checked
// against categories when it is not nil.
func NewQuestionRepository(categories domain.CategoryRepository) *QuestionRepository {
	return &QuestionRepository{
		questions:  make(map[int]*domain.Question),
		categories: categories,
	}
}

func (r *QuestionRepository) List(ctx context.Context, offset, limit int) ([]*domain.Question, error) {
	all := r.filter(func(*domain.Question) bool { return true })
	if offset < 0 || offset >= len(all) || limit <= 0 {
		return []*domain.Question{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	if err := r.checkCategory(ctx, question.Category); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(question)
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *QuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return r.filter(func(q *domain.Question) bool {
		return q.Category == categoryID
	}), nil
}

func (r *QuestionRepository) Random(ctx context.Context, categoryID int, exclude []int) (*domain.Question, error) {
	candidates := r.filter(func(q *domain.Question) bool {
		return (categoryID == 0 || q.Category == categoryID) && !slices.Contains(exclude, q.ID)
	})
	if len(candidates) == 0 {
		return nil, domain.ErrQuestionNotFound
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// BulkCreate inserts all questions or none of them
func (r *QuestionRepository) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	for _, q := range questions {
		if err := r.checkCategory(ctx, q.Category); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range questions {
		r.insert(q)
	}
	return nil
}

// insert assigns the next ID and stores a copy; callers hold the write lock
func (r *QuestionRepository) insert(question *domain.Question) {
	r.nextID++
	question.ID = r.nextID
	clone := *question
	r.questions[clone.ID] = &clone
}

func (r *QuestionRepository) checkCategory(ctx context.Context, id int) error {
	if r.categories == nil {
		return nil
	}
	_, err := r.categories.GetByID(ctx, id)
	return err
}

// filter returns copies of matching questions ordered by ID
func (r *QuestionRepository) filter(keep func(*domain.Question) bool) []*domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if keep(q) {
			clone := *q
			out = append(out, &clone)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Question) int { return a.ID - b.ID })
	return out
}
