package project

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudgraph-io/cgctl/pkg/errors"
	"github.com/cloudgraph-io/cgctl/pkg/project/backend"
	"github.com/cloudgraph-io/cgctl/pkg/project/backend/local"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	b, err := local.NewBackend(map[string]string{"path": t.TempDir()})
	require.NoError(t, err)
	return NewStore(b)
}

func TestCreateAppliesDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &Project{Name: "web stack"}
	require.NoError(t, s.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, DefaultRegion, p.Region)
	assert.Equal(t, DefaultTerraformVersion, p.TerraformVersion)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	loaded, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "web stack", loaded.Name)
	assert.Equal(t, DefaultRegion, loaded.Region)
}

func TestCreateRequiresName(t *testing.T) {
	s := newTestStore(t)

	err := s.Create(context.Background(), &Project{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeValidation))
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestListOrdersByUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &Project{Name: "first"}
	require.NoError(t, s.Create(ctx, first))
	second := &Project{Name: "second"}
	require.NoError(t, s.Create(ctx, second))

	// Touch the first project so it becomes the most recent.
	name := "first (renamed)"
	_, err := s.Apply(ctx, first.ID, Update{Name: &name})
	require.NoError(t, err)

	refs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, first.ID, refs[0].ID)
	assert.Equal(t, "first (renamed)", refs[0].Name)
}

func TestApplyPartialUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &Project{Name: "stack", Region: "eu-west-2"}
	require.NoError(t, s.Create(ctx, p))

	region := "ap-south-1"
	updated, err := s.Apply(ctx, p.ID, Update{Region: &region})
	require.NoError(t, err)

	assert.Equal(t, "stack", updated.Name)
	assert.Equal(t, "ap-south-1", updated.Region)
	assert.True(t, updated.UpdatedAt.After(p.CreatedAt) || updated.UpdatedAt.Equal(p.CreatedAt))
}

func TestApplyMissing(t *testing.T) {
	s := newTestStore(t)

	name := "x"
	_, err := s.Apply(context.Background(), "no-such-id", Update{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &Project{Name: "doomed"}
	require.NoError(t, s.Create(ctx, p))
	require.NoError(t, s.Delete(ctx, p.ID))

	_, err := s.Get(ctx, p.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))

	err = s.Delete(ctx, p.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestRegionFallback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &Project{Name: "stack", Region: "eu-central-1"}
	require.NoError(t, s.Create(ctx, p))

	region, err := s.Region(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", region)
}

func TestGraphFromStoredDiagram(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &Project{
		Name: "stack",
		DiagramData: json.RawMessage(`{"nodes": [
			{"id": "vpc-1", "type": "vpc", "position": {"x": 0, "y": 0},
			 "data": {"label": "Net"}}
		], "edges": []}`),
	}
	require.NoError(t, s.Create(ctx, p))

	g, err := s.Graph(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "vpc-1", g.Nodes[0].ID)
}

func TestStoreFromConfig(t *testing.T) {
	s, err := NewStoreFromConfig(backend.Config{
		Type:     "local",
		Settings: map[string]string{"path": t.TempDir()},
	})
	require.NoError(t, err)
	assert.Equal(t, "local", s.Backend().Type())
}

func TestStoreFromConfigUnknownType(t *testing.T) {
	_, err := NewStoreFromConfig(backend.Config{Type: "carrier-pigeon"})
	assert.Error(t, err)
}
