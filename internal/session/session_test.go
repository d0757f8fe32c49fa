package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func newManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewManager(client, 30*time.Minute), mr
}

func TestManagerRoundTrip(t *testing.T) {
	m, mr := newManager(t)
	ctx := context.Background()

	session := &domain.QuizSession{ID: "s1", CategoryID: 2, Asked: []int{4, 9}, StartedAt: time.Now().UTC()}
	require.NoError(t, m.Create(ctx, session))
	assert.Equal(t, 30*time.Minute, mr.TTL("quiz:s1"))

	got, err := m.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.CategoryID)
	assert.Equal(t, []int{4, 9}, got.Asked)

	got.Correct = 1
	got.Answered = []int{4}
	mr.FastForward(10 * time.Minute)
	require.NoError(t, m.Update(ctx, got))
	assert.Equal(t, 30*time.Minute, mr.TTL("quiz:s1"))

	got, err = m.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Correct)
}

func TestManagerCreateRejectsDuplicate(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, &domain.QuizSession{ID: "dup"}))
	assert.Error(t, m.Create(ctx, &domain.QuizSession{ID: "dup"}))
}

func TestManagerGetExpired(t *testing.T) {
	m, mr := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, &domain.QuizSession{ID: "old"}))
	mr.FastForward(31 * time.Minute)

	_, err := m.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
