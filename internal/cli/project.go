package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cloudgraph-io/cgctl/pkg/project"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"proj"},
		Short:   "Manage saved diagram projects",
		Long:    `Create, inspect, update, and delete saved diagram projects.`,
	}

	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectGetCmd())
	cmd.AddCommand(newProjectUpdateCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	cmd.AddCommand(newProjectRegionCmd())

	return cmd
}

func newProjectCreateCmd() *cobra.Command {
	var (
		name             string
		file             string
		region           string
		terraformVersion string
		backendType      string
		backendConfig    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project, optionally seeded from a diagram file.

Examples:
  cgctl project create --name "web stack"
  cgctl project create --name "web stack" -f diagram.json --region eu-west-2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			p := &project.Project{
				Name:             name,
				Region:           region,
				TerraformVersion: terraformVersion,
			}
			if file != "" {
				// Parse first so a broken diagram is rejected before the
				// project is stored.
				if _, err := loadDiagram(file); err != nil {
					return err
				}
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read diagram file: %w", err)
				}
				p.DiagramData = json.RawMessage(data)
			}

			if err := store.Create(ctx, p); err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("Created project %q (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Diagram file to store with the project")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for compiles (default \"us-east-1\")")
	cmd.Flags().StringVar(&terraformVersion, "terraform-version", "", "Pinned Terraform version (default \"1.5.0\")")
	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd() *cobra.Command {
	var (
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			refs, err := store.List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(refs) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%-38s %-28s %s\n", "ID", "NAME", "UPDATED")
			for _, ref := range refs {
				fmt.Printf("%-38s %-28s %s\n", ref.ID, ref.Name, ref.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

func newProjectGetCmd() *cobra.Command {
	var (
		outputFormat  string
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a project's details",
		Long: `Get a project by id.

Examples:
  cgctl project get 4f7c9a12-...
  cgctl project get 4f7c9a12-... -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			p, err := store.Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			switch outputFormat {
			case "json":
				return printJSON(p)
			case "yaml":
				// Round-trip through JSON so the raw diagram document comes
				// out as structured YAML rather than a byte blob.
				raw, err := json.Marshal(p)
				if err != nil {
					return err
				}
				var doc map[string]any
				if err := json.Unmarshal(raw, &doc); err != nil {
					return err
				}
				out, err := yaml.Marshal(doc)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
				return nil
			default:
				fmt.Printf("ID:                %s\n", p.ID)
				fmt.Printf("Name:              %s\n", p.Name)
				fmt.Printf("Region:            %s\n", p.Region)
				fmt.Printf("Terraform version: %s\n", p.TerraformVersion)
				fmt.Printf("Created:           %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
				fmt.Printf("Updated:           %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, yaml)")
	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

func newProjectUpdateCmd() *cobra.Command {
	var (
		name             string
		file             string
		region           string
		terraformVersion string
		backendType      string
		backendConfig    []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Long: `Update a project. Only the given flags change; everything else is left
as is.

Examples:
  cgctl project update 4f7c9a12-... --name "web stack v2"
  cgctl project update 4f7c9a12-... -f diagram.json --region eu-west-2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			var update project.Update
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("region") {
				update.Region = &region
			}
			if cmd.Flags().Changed("terraform-version") {
				update.TerraformVersion = &terraformVersion
			}
			if file != "" {
				if _, err := loadDiagram(file); err != nil {
					return err
				}
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read diagram file: %w", err)
				}
				update.DiagramData = json.RawMessage(data)
			}

			p, err := store.Apply(context.Background(), args[0], update)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			fmt.Printf("Updated project %q (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Replacement diagram file")
	cmd.Flags().StringVar(&region, "region", "", "New AWS region")
	cmd.Flags().StringVar(&terraformVersion, "terraform-version", "", "New Terraform version")
	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

func newProjectRegionCmd() *cobra.Command {
	var (
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:   "region <id>",
		Short: "Print a project's compile region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			region, err := store.Region(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			fmt.Println(region)
			return nil
		},
	}

	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	var (
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := createProjectStore(backendType, backendConfig)
			if err != nil {
				return fmt.Errorf("failed to create project store: %w", err)
			}

			if err := store.Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			fmt.Printf("Deleted project %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}
