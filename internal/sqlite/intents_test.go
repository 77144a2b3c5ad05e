package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/axiom/pkg/types"
)

func TestCreateIntent(t *testing.T) {
	t.Run("create then fetch yields matching draft record", func(t *testing.T) {
		s := setupStore(t)

		in := &types.Intent{
			Title:       "Add retry logic",
			Problem:     "Transient failures abort the pipeline.",
			Context:     "Batch jobs talk to a flaky upstream.\n\nRetries were removed in the last rewrite.",
			Constraints: "No new dependencies.",
		}
		id, err := s.CreateIntent(in)
		require.NoError(t, err)
		assert.Len(t, id, types.FullIDLength)

		got, err := s.GetIntent(id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Add retry logic", got.Title)
		assert.Equal(t, types.StatusDraft, got.Status)
		assert.True(t, got.CreatedAt.Equal(got.UpdatedAt), "created_at must equal updated_at at creation")
		assert.Equal(t, in.Problem, got.Problem)
		assert.Equal(t, in.Context, got.Context, "embedded blank lines must round-trip")
		assert.Equal(t, in.Constraints, got.Constraints)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		s := setupStore(t)

		_, err := s.CreateIntent(&types.Intent{Title: ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrTitleRequired)

		intents, err := s.ListIntents()
		require.NoError(t, err)
		assert.Empty(t, intents)
	})

	t.Run("ids are unique across creations", func(t *testing.T) {
		s := setupStore(t)

		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			id, err := s.CreateIntent(&types.Intent{Title: fmt.Sprintf("Intent %d", i)})
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestListIntents(t *testing.T) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		s := setupStore(t)

		intents, err := s.ListIntents()
		require.NoError(t, err)
		assert.Empty(t, intents)
	})

	t.Run("returns all records newest first", func(t *testing.T) {
		s := setupStore(t)

		_, err := s.CreateIntent(&types.Intent{Title: "Add retry logic"})
		require.NoError(t, err)
		_, err = s.CreateIntent(&types.Intent{Title: "Add rate limiting"})
		require.NoError(t, err)

		intents, err := s.ListIntents()
		require.NoError(t, err)
		require.Len(t, intents, 2)
		assert.Equal(t, "Add rate limiting", intents[0].Title)
		assert.Equal(t, "Add retry logic", intents[1].Title)
	})

	t.Run("listing N creations returns exactly N, descending", func(t *testing.T) {
		s := setupStore(t)

		const n = 7
		for i := 0; i < n; i++ {
			_, err := s.CreateIntent(&types.Intent{Title: fmt.Sprintf("Intent %d", i)})
			require.NoError(t, err)
		}

		intents, err := s.ListIntents()
		require.NoError(t, err)
		require.Len(t, intents, n)
		for i := 1; i < n; i++ {
			assert.False(t, intents[i-1].CreatedAt.Before(intents[i].CreatedAt),
				"records must be ordered by created_at descending")
		}
	})
}

func TestGetIntent(t *testing.T) {
	t.Run("unknown id wraps ErrNotFound and names the id", func(t *testing.T) {
		s := setupStore(t)

		_, err := s.GetIntent("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Contains(t, err.Error(), "00000000-0000-0000-0000-000000000000")
	})
}
