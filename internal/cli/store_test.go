package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudgraph-io/cgctl/pkg/project"
)

func TestCreateProjectStore_Defaults(t *testing.T) {
	// Point the local default somewhere disposable.
	dir := t.TempDir()
	t.Setenv(EnvProjectPrefix+"PATH", dir)

	store, err := createProjectStore("", nil)
	if err != nil {
		t.Fatalf("expected store, got: %v", err)
	}
	if store.Backend().Type() != "local" {
		t.Errorf("expected local backend by default, got '%s'", store.Backend().Type())
	}
}

func TestCreateProjectStore_EnvBackendConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvProjectPrefix+"PATH", dir)

	store, err := createProjectStore("", nil)
	if err != nil {
		t.Fatalf("expected store, got: %v", err)
	}

	p := &project.Project{Name: "env-config"}
	if err := store.Create(context.Background(), p); err != nil {
		t.Fatalf("expected create to succeed, got: %v", err)
	}

	// The document must land under the env-configured path.
	if _, err := os.Stat(filepath.Join(dir, "projects", p.ID+".json")); err != nil {
		t.Errorf("expected project document under env-configured path: %v", err)
	}
}

func TestCreateProjectStore_FlagBeatsEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(EnvProjectPrefix+"PATH", envDir)

	store, err := createProjectStore("local", []string{"path=" + flagDir})
	if err != nil {
		t.Fatalf("expected store, got: %v", err)
	}

	p := &project.Project{Name: "flag-config"}
	if err := store.Create(context.Background(), p); err != nil {
		t.Fatalf("expected create to succeed, got: %v", err)
	}

	if _, err := os.Stat(filepath.Join(flagDir, "projects", p.ID+".json")); err != nil {
		t.Errorf("expected project document under flag-configured path: %v", err)
	}
}

func TestCreateProjectStore_UnknownBackend(t *testing.T) {
	_, err := createProjectStore("etcd", nil)
	if err == nil {
		t.Error("expected error for unregistered backend type")
	}
}
