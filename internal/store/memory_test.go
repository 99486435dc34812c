package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/session"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s, err := session.New(5)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestMemoryStoreMissing(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := session.New(5)
			assert.NoError(t, err)
			assert.NoError(t, st.Save(ctx, s))
			_, err = st.Get(ctx, s.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
