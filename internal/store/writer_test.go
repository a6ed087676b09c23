package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_FlushesOnClose(t *testing.T) {
	repo := NewMemoryRepo()
	w := NewWriter(repo, nil)

	for i := 1; i <= 5; i++ {
		st := DefaultState()
		st.Score = i * 100
		require.NoError(t, w.Save(context.Background(), st))
	}
	require.NoError(t, w.Close())

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, got.Score, "latest state must win")
	assert.LessOrEqual(t, repo.Saves(), 5)
}

func TestWriter_SaveAfterClose(t *testing.T) {
	w := NewWriter(NewMemoryRepo(), nil)
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Save(context.Background(), DefaultState()), ErrClosed)
	assert.NoError(t, w.Close(), "second Close is a no-op")
}

type failingRepo struct {
	MemoryRepo
	mu    sync.Mutex
	calls int
}

func (f *failingRepo) Save(context.Context, State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("disk full")
}

func TestWriter_SwallowsErrors(t *testing.T) {
	repo := &failingRepo{}
	w := NewWriter(repo, nil)
	require.NoError(t, w.Save(context.Background(), DefaultState()))
	require.NoError(t, w.Close())

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 1, repo.calls)
}
