package vecutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vecdist/engine"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE items(id TEXT PRIMARY KEY, embedding BLOB)`)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, ix *Index) {
	t.Helper()
	ctx := context.Background()
	for id, v := range map[string][]float32{
		"a": {1, 0},
		"b": {0, 1},
		"c": {0.9, 0.1},
		"d": {-1, 0},
		"z": {0, 0},
	} {
		require.NoError(t, ix.Upsert(ctx, id, v))
	}
}

func ids(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.ID
	}
	return out
}

func TestNearest(t *testing.T) {
	ctx := context.Background()
	query := []float32{1, 0}

	t.Run("SquaredEuclidean", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<->")
		require.NoError(t, err)
		seed(t, ix)
		got, err := ix.Nearest(ctx, query, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "z"}, ids(got))
		assert.InDelta(t, 0.0, got[0].Distance, 1e-9)
		assert.InDelta(t, 0.02, got[1].Distance, 1e-6)
	})

	t.Run("DotProduct", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<#>")
		require.NoError(t, err)
		seed(t, ix)
		got, err := ix.Nearest(ctx, query, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, ids(got))
	})

	t.Run("CosineSkipsZeroNorm", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<=>")
		require.NoError(t, err)
		seed(t, ix)
		got, err := ix.Nearest(ctx, query, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "b", "d"}, ids(got))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<->")
		require.NoError(t, err)
		seed(t, ix)
		_, err = ix.Nearest(ctx, []float32{1, 0, 0}, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "left(3) != right(2)")
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<->")
		require.NoError(t, err)
		seed(t, ix)
		_, err = ix.Nearest(ctx, []float32{}, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "left(0) != right(2)")
	})

	t.Run("EmptyAgainstEmpty", func(t *testing.T) {
		ix, err := NewIndex(setupDB(t), "items", "<->")
		require.NoError(t, err)
		require.NoError(t, ix.Upsert(ctx, "e", []float32{}))

		var isNull bool
		require.NoError(t, ix.DB.QueryRow(`SELECT embedding IS NULL FROM items WHERE id = 'e'`).Scan(&isNull))
		assert.False(t, isNull)

		got, err := ix.Nearest(ctx, nil, 3)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e", got[0].ID)
		assert.Zero(t, got[0].Distance)
	})
}

func TestUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	ix, err := NewIndex(setupDB(t), "items", "l2")
	require.NoError(t, err)
	seed(t, ix)

	require.NoError(t, ix.Upsert(ctx, "b", []float32{1, 0}))
	require.NoError(t, ix.Delete(ctx, []string{"a", "z"}))

	got, err := ix.Nearest(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(got))
	require.NoError(t, ix.Delete(ctx, nil))
}

func TestNewIndex(t *testing.T) {
	db := setupDB(t)
	_, err := NewIndex(nil, "items", "<->")
	assert.Error(t, err)
	_, err = NewIndex(db, "items", "<~>")
	assert.Error(t, err)
	_, err = NewIndex(db, "items; DROP TABLE items", "<->")
	assert.Error(t, err)

	ix, err := NewIndex(db, "main.items", "<=>")
	require.NoError(t, err)
	q, err := ix.NearestQuery()
	require.NoError(t, err)
	assert.Contains(t, q, "vec_cosine(?, embedding)")
	assert.Contains(t, q, "ORDER BY distance DESC")

	ix.VectorColumn = "bad column"
	_, err = ix.NearestQuery()
	assert.Error(t, err)
}
