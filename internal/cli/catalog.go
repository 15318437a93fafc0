package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudgraph-io/cgctl/pkg/catalog"
)

func newCatalogCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse provider resource options",
		Long: `Browse the AWS resource options offered by the diagram editor.

With credentials configured the data is fetched live and cached for an
hour; without credentials a static fallback set is served.`,
	}

	cmd.PersistentFlags().StringVar(&region, "region", "", "AWS region to query (default \"us-east-1\")")

	cmd.AddCommand(newCatalogInstanceTypesCmd(&region))
	cmd.AddCommand(newCatalogAMIsCmd(&region))
	cmd.AddCommand(newCatalogZonesCmd(&region))
	cmd.AddCommand(newCatalogRDSEnginesCmd(&region))
	cmd.AddCommand(newCatalogRDSClassesCmd(&region))
	cmd.AddCommand(newCatalogEKSVersionsCmd(&region))
	cmd.AddCommand(newCatalogStatusCmd(&region))

	return cmd
}

// newCatalogService builds the catalog service used by every subcommand.
// Warnings about degraded lookups go to stderr.
func newCatalogService(ctx context.Context, region string) *catalog.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return catalog.New(ctx, resolveRegion(region), logger)
}

func newCatalogInstanceTypesCmd(region *string) *cobra.Command {
	var (
		families     []string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "instance-types",
		Short: "List EC2 instance types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			types, source := svc.InstanceTypes(ctx, families)
			if outputFormat == "json" {
				return printJSON(types)
			}

			fmt.Printf("%-14s %6s %10s %8s\n", "TYPE", "VCPUS", "MEMORY", "FAMILY")
			for _, it := range types {
				fmt.Printf("%-14s %6d %7d MiB %8s\n", it.InstanceType, it.VCPUs, it.MemoryMiB, it.Family)
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&families, "family", nil, "Filter by instance family (repeatable)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogAMIsCmd(region *string) *cobra.Command {
	var (
		osFilter     string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "amis",
		Short: "List machine images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			amis, source := svc.AMIs(ctx, osFilter)
			if outputFormat == "json" {
				return printJSON(amis)
			}

			fmt.Printf("%-24s %-26s %s\n", "ID", "NAME", "OS")
			for _, ami := range amis {
				fmt.Printf("%-24s %-26s %s\n", ami.ID, ami.Name, ami.OS)
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVar(&osFilter, "os", "", "Filter by operating system (ubuntu, amazon-linux, windows)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogZonesCmd(region *string) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "availability-zones",
		Aliases: []string{"azs"},
		Short:   "List availability zones for the region",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			zones, source := svc.AvailabilityZones(ctx)
			if outputFormat == "json" {
				return printJSON(zones)
			}

			for _, zone := range zones {
				fmt.Println(zone)
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogRDSEnginesCmd(region *string) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "rds-engines",
		Short: "List database engines and versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			engines, source := svc.RDSEngines(ctx)
			if outputFormat == "json" {
				return printJSON(engines)
			}

			for _, engine := range engines {
				fmt.Printf("%s (%s)\n", engine.Engine, engine.Description)
				for _, version := range engine.Versions {
					fmt.Printf("  %s\n", version)
				}
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogRDSClassesCmd(region *string) *cobra.Command {
	var (
		engine        string
		engineVersion string
		outputFormat  string
	)

	cmd := &cobra.Command{
		Use:   "rds-instance-classes",
		Short: "List database instance classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			classes, source := svc.RDSInstanceClasses(ctx, engine, engineVersion)
			if outputFormat == "json" {
				return printJSON(classes)
			}

			for _, class := range classes {
				fmt.Println(class.InstanceClass)
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "Database engine (default \"mysql\")")
	cmd.Flags().StringVar(&engineVersion, "engine-version", "", "Database engine version")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogEKSVersionsCmd(region *string) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "eks-versions",
		Short: "List Kubernetes control plane versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			versions, source := svc.EKSVersions(ctx)
			if outputFormat == "json" {
				return printJSON(versions)
			}

			for _, v := range versions {
				fmt.Printf("%-8s %s\n", v.Version, v.Status)
			}
			fmt.Fprintf(os.Stderr, "source: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	return cmd
}

func newCatalogStatusCmd(region *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show provider credential status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := newCatalogService(ctx, *region)

			configured, effectiveRegion := svc.CredentialsStatus()
			fmt.Printf("Region:      %s\n", effectiveRegion)
			if configured {
				fmt.Println("Credentials: configured (live lookups enabled)")
			} else {
				fmt.Println("Credentials: not configured (serving fallback data)")
			}
			return nil
		},
	}

	return cmd
}
