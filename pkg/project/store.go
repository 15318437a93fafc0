package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
	"github.com/cloudgraph-io/cgctl/pkg/errors"
	"github.com/cloudgraph-io/cgctl/pkg/project/backend"
)

// Store provides high-level project operations on top of a blob backend.
// Writes are last-write-wins; there is no cross-process locking.
type Store struct {
	backend backend.Backend
}

// NewStore creates a store over the given backend.
func NewStore(b backend.Backend) *Store {
	return &Store{backend: b}
}

// NewStoreFromConfig creates a store from backend configuration.
func NewStoreFromConfig(config backend.Config) (*Store, error) {
	b, err := backend.Create(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}
	return NewStore(b), nil
}

// Backend returns the underlying backend.
func (s *Store) Backend() backend.Backend {
	return s.backend
}

// Create persists a new project. The id is assigned here; empty settings get
// their defaults and both timestamps are set to now.
func (s *Store) Create(ctx context.Context, p *Project) error {
	if p.Name == "" {
		return errors.ValidationError("project name is required", nil)
	}

	p.ID = uuid.New().String()
	if p.Region == "" {
		p.Region = DefaultRegion
	}
	if p.TerraformVersion == "" {
		p.TerraformVersion = DefaultTerraformVersion
	}
	if p.DiagramData == nil {
		p.DiagramData = json.RawMessage(`{"nodes": [], "edges": []}`)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.write(ctx, p)
}

// Get loads a project by id.
func (s *Store) Get(ctx context.Context, id string) (*Project, error) {
	reader, err := s.backend.Read(ctx, projectPath(id))
	if err != nil {
		if err == backend.ErrNotFound {
			return nil, errors.NotFoundError("project", id)
		}
		return nil, errors.BackendError(s.backend.Type(), "read", err)
	}
	defer reader.Close()

	var p Project
	if err := json.NewDecoder(reader).Decode(&p); err != nil {
		return nil, errors.BackendError(s.backend.Type(), "decode", err)
	}
	return &p, nil
}

// List returns refs for all stored projects, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Ref, error) {
	paths, err := s.backend.List(ctx, "projects/")
	if err != nil {
		return nil, errors.BackendError(s.backend.Type(), "list", err)
	}

	refs := make([]Ref, 0, len(paths))
	for _, docPath := range paths {
		id := strings.TrimSuffix(path.Base(docPath), ".json")
		p, err := s.Get(ctx, id)
		if err != nil {
			continue // Skip documents that can't be read
		}
		refs = append(refs, Ref{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].UpdatedAt.After(refs[j].UpdatedAt)
	})
	return refs, nil
}

// Apply updates an existing project with the non-nil fields of the update and
// bumps the updated timestamp.
func (s *Store) Apply(ctx context.Context, id string, update Update) (*Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.DiagramData != nil {
		p.DiagramData = update.DiagramData
	}
	if update.Metadata != nil {
		p.Metadata = update.Metadata
	}
	if update.Region != nil {
		p.Region = *update.Region
	}
	if update.TerraformVersion != nil {
		p.TerraformVersion = *update.TerraformVersion
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.write(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project. Deleting a missing project returns a not found
// error so callers can report it.
func (s *Store) Delete(ctx context.Context, id string) error {
	exists, err := s.backend.Exists(ctx, projectPath(id))
	if err != nil {
		return errors.BackendError(s.backend.Type(), "stat", err)
	}
	if !exists {
		return errors.NotFoundError("project", id)
	}
	if err := s.backend.Delete(ctx, projectPath(id)); err != nil {
		return errors.BackendError(s.backend.Type(), "delete", err)
	}
	return nil
}

// Region returns a project's compile region, falling back to the default when
// the stored value is empty.
func (s *Store) Region(ctx context.Context, id string) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if p.Region == "" {
		return DefaultRegion, nil
	}
	return p.Region, nil
}

// Graph parses a project's stored diagram into a compile-ready graph.
func (s *Store) Graph(ctx context.Context, id string) (*diagram.Graph, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return diagram.ParseJSON(p.DiagramData)
}

func (s *Store) write(ctx context.Context, p *Project) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.BackendError(s.backend.Type(), "encode", err)
	}
	if err := s.backend.Write(ctx, projectPath(p.ID), bytes.NewReader(content)); err != nil {
		return errors.BackendError(s.backend.Type(), "write", err)
	}
	return nil
}

func projectPath(id string) string {
	return path.Join("projects", id+".json")
}
