package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
	"github.com/cloudgraph-io/cgctl/pkg/pricing"
)

func newCostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate monthly costs for a diagram",
		Long: `Estimate the monthly cost of the resources in a diagram.

Estimates come from a static price table and are rough planning numbers,
not billing data. Networks and subnetworks are free.`,
	}

	cmd.AddCommand(newCostEstimateCmd())
	cmd.AddCommand(newCostPricingCmd())

	return cmd
}

func newCostEstimateCmd() *cobra.Command {
	var (
		file          string
		projectID     string
		outputFormat  string
		backendType   string
		backendConfig []string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate monthly costs for a diagram",
		Long: `Estimate the monthly cost of the resources in a diagram.

Examples:
  cgctl cost estimate -f diagram.json
  cgctl cost estimate --project 4f7c9a12-... -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if file == "" && projectID == "" {
				return fmt.Errorf("either --file or --project is required")
			}

			var (
				g   *diagram.Graph
				err error
			)
			if projectID != "" {
				store, err := createProjectStore(backendType, backendConfig)
				if err != nil {
					return fmt.Errorf("failed to create project store: %w", err)
				}
				g, err = store.Graph(ctx, projectID)
				if err != nil {
					return fmt.Errorf("failed to load project: %w", err)
				}
			} else {
				g, err = loadDiagram(file)
				if err != nil {
					return err
				}
			}

			est := pricing.EstimateGraph(g)

			if outputFormat == "json" {
				return printJSON(est)
			}

			ids := make([]string, 0, len(est.Breakdown))
			for id := range est.Breakdown {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			fmt.Println("Monthly cost estimate:")
			if len(ids) == 0 {
				fmt.Println("  (no billable resources)")
			}
			for _, id := range ids {
				fmt.Printf("  %-24s $%.2f\n", id, est.Breakdown[id])
			}
			fmt.Printf("Total: $%.2f/month\n", est.TotalMonthlyCost)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Diagram file (JSON or YAML)")
	cmd.Flags().StringVar(&projectID, "project", "", "Saved project id to estimate")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")
	cmd.Flags().StringVar(&backendType, "backend", "", "Project backend type")
	cmd.Flags().StringArrayVar(&backendConfig, "backend-config", nil, "Backend configuration (key=value)")

	return cmd
}

func newCostPricingCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show the monthly price table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := pricing.PriceTable()

			if outputFormat == "json" {
				return printJSON(table)
			}

			keys := make([]string, 0, len(table))
			for key := range table {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				fmt.Printf("%-20s $%.2f/month\n", key, table[key])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
