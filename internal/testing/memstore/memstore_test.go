package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/gamesdb/internal/database"
)

func TestStore_FindNormalizesAndProjects(t *testing.T) {
	t.Parallel()

	s := NewOpen()
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "game", database.Document{
		"game_id":    int64(101),
		"publishers": []string{"Bombyx"},
		"players":    4,
	})
	require.NoError(t, err)

	all, err := s.Find(ctx, "game", database.Document{"game_id": 101}, database.FindOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, []any{"Bombyx"}, all[0].Document["publishers"])
	assert.Equal(t, int64(4), all[0].Document["players"])

	ids, err := s.Find(ctx, "game", nil, database.FindOptions{IDOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []database.Result{{ID: id, Document: database.Document{}}}, ids)

	keys, err := s.Find(ctx, "game", nil, database.FindOptions{Fields: []string{"game_id"}})
	require.NoError(t, err)
	assert.Equal(t, []database.Result{{Document: database.Document{"game_id": int64(101)}}}, keys)
}

func TestStore_UpsertReplacesFirstMatch(t *testing.T) {
	t.Parallel()

	s := NewOpen()
	ctx := context.Background()
	filter := database.Document{"mm_id": int64(1)}

	require.NoError(t, s.Upsert(ctx, "mm", filter, database.Document{"mm_id": int64(1), "title": "a"}))
	require.NoError(t, s.Upsert(ctx, "mm", filter, database.Document{"mm_id": int64(1), "title": "b"}))

	docs := s.Documents("mm")
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0]["title"])
}

func TestStore_GroupAll(t *testing.T) {
	t.Parallel()

	s := NewOpen()
	ctx := context.Background()

	_, ok, err := s.GroupAll(ctx, "game", database.Accumulator{Op: database.AccumulateCount})
	require.NoError(t, err)
	assert.False(t, ok)

	s.Seed("game", database.Document{"game_id": int64(5)})
	s.Seed("game", database.Document{"game_id": int64(9)})
	s.Seed("game", database.Document{"name": "no key"})

	v, ok, err := s.GroupAll(ctx, "game", database.Accumulator{Op: database.AccumulateMax, Field: "game_id"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(9), v)

	v, ok, err = s.GroupAll(ctx, "game", database.Accumulator{Op: database.AccumulateCount})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	_, ok, err = s.GroupAll(ctx, "game", database.Accumulator{Op: database.AccumulateMax, Field: "rank"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LifecycleAndFailures(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	_, err := s.Find(ctx, "game", nil, database.FindOptions{})
	assert.ErrorIs(t, err, database.ErrNotConnected)

	require.NoError(t, s.Open(ctx))
	cause := errors.New("disk full")
	s.FailOn(OpInsert, cause)

	_, err = s.InsertOne(ctx, "game", database.Document{})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, s.Calls(OpInsert))

	s.FailOn(OpClose, cause)
	err = s.Close(ctx)
	assert.True(t, database.IsConfigurationError(err))
	assert.False(t, s.IsOpen())
	assert.NoError(t, s.Close(ctx))
}
