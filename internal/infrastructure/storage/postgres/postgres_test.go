package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStorage_RoundTrip(t *testing.T) {
	dsn := os.Getenv("ESTOQUE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ESTOQUE_TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	s, err := New(ctx, dsn, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	const key = "products_pgtest@example.com"
	t.Cleanup(func() { _ = s.Remove(ctx, key) })

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, "[]"))
	require.NoError(t, s.Set(ctx, key, `[{"id":1}]`))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, s.Remove(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
