package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
)

type event struct {
	Type    string
	Payload string
}

type recordingHub struct {
	mu     sync.Mutex
	events []event
}

func (h *recordingHub) Broadcast(messageType string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event{messageType, string(payload)})
}

func (h *recordingHub) Events() []event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]event(nil), h.events...)
}

// newStore returns repositories holding two categories and n questions
// alternating between them
func newStore(t *testing.T, n int) (*memory.CategoryRepository, *memory.QuestionRepository) {
	t.Helper()
	ctx := context.Background()

	categories := memory.NewCategoryRepository()
	require.NoError(t, categories.Create(ctx, &domain.Category{Type: "Science"}))
	require.NoError(t, categories.Create(ctx, &domain.Category{Type: "Art"}))

	questions := memory.NewQuestionRepository(categories)
	batch := make([]*domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		batch = append(batch, &domain.Question{
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   1 + (i+1)%2,
			Difficulty: 1 + i%5,
		})
	}
	require.NoError(t, questions.BulkCreate(ctx, batch))
	return categories, questions
}
