package cli

import (
	"context"
	"path/filepath"
	"testing"
)

func tempBackendArgs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	return []string{"--backend", "local", "--backend-config", "path=" + filepath.Join(dir, "projects")}
}

func TestNewProjectCmd_Subcommands(t *testing.T) {
	cmd := newProjectCmd()

	if cmd.Use != "project" {
		t.Errorf("expected use 'project', got '%s'", cmd.Use)
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range []string{"create", "list", "get", "update", "delete", "region"} {
		if !subcommands[expected] {
			t.Errorf("expected subcommand '%s' not found", expected)
		}
	}
}

func TestProjectCreateCmd_RequiresName(t *testing.T) {
	cmd := newProjectCreateCmd()
	cmd.SetArgs(tempBackendArgs(t))

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error when --name is missing")
	}
}

func TestProjectCreateAndList(t *testing.T) {
	backendArgs := tempBackendArgs(t)

	create := newProjectCreateCmd()
	create.SetArgs(append([]string{"--name", "web stack"}, backendArgs...))
	if err := create.Execute(); err != nil {
		t.Fatalf("expected create to succeed, got: %v", err)
	}

	list := newProjectListCmd()
	list.SetArgs(backendArgs)
	if err := list.Execute(); err != nil {
		t.Errorf("expected list to succeed, got: %v", err)
	}
}

func TestProjectCreateCmd_RejectsBrokenDiagram(t *testing.T) {
	diagramPath := writeTempDiagram(t, "broken.json", `{"nodes": [{"id": "a"}]}`)

	cmd := newProjectCreateCmd()
	cmd.SetArgs(append([]string{"--name", "bad", "-f", diagramPath}, tempBackendArgs(t)...))

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error for a diagram node without a category")
	}
}

func TestProjectGetCmd_NotFound(t *testing.T) {
	cmd := newProjectGetCmd()
	cmd.SetArgs(append([]string{"no-such-id"}, tempBackendArgs(t)...))

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error for a missing project")
	}
}

func TestProjectDeleteCmd_NotFound(t *testing.T) {
	cmd := newProjectDeleteCmd()
	cmd.SetArgs(append([]string{"no-such-id"}, tempBackendArgs(t)...))

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error when deleting a missing project")
	}
}

func TestProjectLifecycleThroughStore(t *testing.T) {
	dir := t.TempDir()
	backendArgs := []string{"--backend", "local", "--backend-config", "path=" + dir}

	create := newProjectCreateCmd()
	create.SetArgs(append([]string{"--name", "lifecycle", "--region", "eu-west-2"}, backendArgs...))
	if err := create.Execute(); err != nil {
		t.Fatalf("expected create to succeed, got: %v", err)
	}

	// Read the stored project back through the store to recover the id.
	store, err := createProjectStore("local", []string{"path=" + dir})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	refs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("expected 1 project, got %d", len(refs))
	}
	id := refs[0].ID

	update := newProjectUpdateCmd()
	update.SetArgs(append([]string{id, "--name", "renamed"}, backendArgs...))
	if err := update.Execute(); err != nil {
		t.Fatalf("expected update to succeed, got: %v", err)
	}

	p, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}
	if p.Name != "renamed" {
		t.Errorf("expected name 'renamed', got '%s'", p.Name)
	}
	if p.Region != "eu-west-2" {
		t.Errorf("expected region to survive the update, got '%s'", p.Region)
	}

	region := newProjectRegionCmd()
	region.SetArgs(append([]string{id}, backendArgs...))
	if err := region.Execute(); err != nil {
		t.Fatalf("expected region to succeed, got: %v", err)
	}

	del := newProjectDeleteCmd()
	del.SetArgs(append([]string{id}, backendArgs...))
	if err := del.Execute(); err != nil {
		t.Fatalf("expected delete to succeed, got: %v", err)
	}

	if _, err := store.Get(context.Background(), id); err == nil {
		t.Error("expected project to be gone after delete")
	}
}
