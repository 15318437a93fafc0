package local

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudgraph-io/cgctl/pkg/project/backend"
)

func newTestBackend(t *testing.T) backend.Backend {
	t.Helper()
	b, err := NewBackend(map[string]string{"path": t.TempDir()})
	require.NoError(t, err)
	return b
}

func TestReadWriteRoundtrip(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	err := b.Write(ctx, "projects/p1.json", bytes.NewReader([]byte(`{"id":"p1"}`)))
	require.NoError(t, err)

	reader, err := b.Read(ctx, "projects/p1.json")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"p1"}`, string(content))
}

func TestReadMissing(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.Read(context.Background(), "projects/missing.json")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestWriteOverwrites(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Write(ctx, "projects/p1.json", bytes.NewReader([]byte("old"))))
	require.NoError(t, b.Write(ctx, "projects/p1.json", bytes.NewReader([]byte("new"))))

	reader, err := b.Read(ctx, "projects/p1.json")
	require.NoError(t, err)
	defer reader.Close()

	content, _ := io.ReadAll(reader)
	assert.Equal(t, "new", string(content))
}

func TestDeleteIdempotent(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Write(ctx, "projects/p1.json", bytes.NewReader([]byte("x"))))
	require.NoError(t, b.Delete(ctx, "projects/p1.json"))
	require.NoError(t, b.Delete(ctx, "projects/p1.json"))

	exists, err := b.Exists(ctx, "projects/p1.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestList(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Write(ctx, "projects/p1.json", bytes.NewReader([]byte("a"))))
	require.NoError(t, b.Write(ctx, "projects/p2.json", bytes.NewReader([]byte("b"))))

	paths, err := b.List(ctx, "projects/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"projects/p1.json", "projects/p2.json"}, paths)
}

func TestListEmptyPrefix(t *testing.T) {
	b := newTestBackend(t)

	paths, err := b.List(context.Background(), "projects/")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, backend.Registered(), "local")
}
