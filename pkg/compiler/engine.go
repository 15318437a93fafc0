package compiler

import (
	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// DefaultRegion is used when a compile request carries no region.
const DefaultRegion = "us-east-1"

// Document is the result of a successful compile.
type Document struct {
	// Code is the complete configuration text.
	Code string
	// Message is a human-readable completion summary.
	Message string
}

// Compile turns a diagram graph into a Terraform configuration document. The
// run is all-or-nothing: any failure returns a nil document and no partial
// output. Compilation is deterministic for a given graph and region.
func Compile(g *diagram.Graph, region string) (*Document, error) {
	if region == "" {
		region = DefaultRegion
	}

	buckets := Classify(g)
	Resolve(g, buckets)

	code := NewRenderer(region).Render(buckets)
	if err := validateDocument(code, region); err != nil {
		return nil, err
	}

	return &Document{
		Code:    code,
		Message: "Successfully generated Terraform configuration.",
	}, nil
}
