package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudgraph-io/cgctl/pkg/compiler"
	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

func newGenerateCmd() *cobra.Command {
	var (
		file          string
		projectID     string
		region        string
		output        string
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate Terraform configuration from a diagram",
		Long: `Compile a diagram into AWS Terraform configuration.

The diagram comes either from a file (JSON or YAML, chosen by extension) or
from a saved project. The configuration is written to stdout unless --output
is given.

Examples:
  cgctl generate -f diagram.json
  cgctl generate -f diagram.yaml --region eu-west-2 -o main.tf
  cgctl generate --project 4f7c9a12-... -o main.tf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if file == "" && projectID == "" {
				return fmt.Errorf("either --file or --project is required")
			}
			if file != "" && projectID != "" {
				return fmt.Errorf("--file and --project are mutually exclusive")
			}

			var (
				g   *diagram.Graph
				err error
			)
			effectiveRegion := region

			if projectID != "" {
				store, err := createProjectStore(backendType, backendConfig)
				if err != nil {
					return fmt.Errorf("failed to create project store: %w", err)
				}
				p, err := store.Get(ctx, projectID)
				if err != nil {
					return fmt.Errorf("failed to load project: %w", err)
				}
				g, err = diagram.ParseJSON(p.DiagramData)
				if err != nil {
					return fmt.Errorf("failed to parse project diagram: %w", err)
				}
				if effectiveRegion == "" {
					effectiveRegion = p.Region
				}
			} else {
				g, err = loadDiagram(file)
				if err != nil {
					return err
				}
			}

			if effectiveRegion == "" {
				effectiveRegion = resolveRegion("")
			}

			doc, err := compiler.Compile(g, effectiveRegion)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(doc.Code)
			} else {
				if err := os.WriteFile(output, []byte(doc.Code), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
			}
			fmt.Fprintln(os.Stderr, doc.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Diagram file (JSON or YAML)")
	cmd.Flags().StringVar(&projectID, "project", "", "Saved project id to compile")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for the provider block")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the configuration to a file instead of stdout")
	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

// loadDiagram reads and parses a diagram file, picking the codec from the
// file extension.
func loadDiagram(path string) (*diagram.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return diagram.ParseYAML(data)
	default:
		return diagram.ParseJSON(data)
	}
}
