package cli

import (
	"testing"
)

func TestNewCostCmd_Subcommands(t *testing.T) {
	cmd := newCostCmd()

	if cmd.Use != "cost" {
		t.Errorf("expected use 'cost', got '%s'", cmd.Use)
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range []string{"estimate", "pricing"} {
		if !subcommands[expected] {
			t.Errorf("expected subcommand '%s' not found", expected)
		}
	}
}

func TestCostEstimateCmd_Flags(t *testing.T) {
	cmd := newCostEstimateCmd()

	for _, flag := range []string{"file", "project", "output", "backend", "backend-config"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag", flag)
		}
	}
}

func TestCostEstimateCmd_RequiresInput(t *testing.T) {
	cmd := newCostEstimateCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error when neither --file nor --project is given")
	}
}

func TestCostEstimateCmd_EstimatesFromFile(t *testing.T) {
	diagramJSON := `{
  "nodes": [
    {"id": "ec2-1", "type": "service", "position": {"x": 0, "y": 0}, "data": {"type": "ec2", "instanceType": "t3.micro"}},
    {"id": "rds-1", "type": "service", "position": {"x": 0, "y": 0}, "data": {"type": "rds"}}
  ],
  "edges": []
}`
	diagramPath := writeTempDiagram(t, "diagram.json", diagramJSON)

	cmd := newCostEstimateCmd()
	cmd.SetArgs([]string{"-f", diagramPath})

	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestCostEstimateCmd_NonExistentFile(t *testing.T) {
	cmd := newCostEstimateCmd()
	cmd.SetArgs([]string{"-f", "/nonexistent/diagram.json"})

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error for nonexistent diagram file")
	}
}

func TestCostEstimateCmd_MissingProject(t *testing.T) {
	cmd := newCostEstimateCmd()
	cmd.SetArgs(append([]string{"--project", "no-such-id"}, tempBackendArgs(t)...))

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error for a missing project")
	}
}

func TestCostPricingCmd(t *testing.T) {
	cmd := newCostPricingCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}
