package compiler

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/cloudgraph-io/cgctl/pkg/errors"
)

// validateDocument parses the rendered text as native HCL syntax and checks
// that the provider block round-trips the compile region. A malformed
// document is a fatal renderer bug, never something to hand to the caller.
func validateDocument(code, region string) error {
	file, diags := hclsyntax.ParseConfig([]byte(code), "main.tf", hcl.InitialPos)
	if diags.HasErrors() {
		return errors.RenderError("generated configuration is not valid HCL", nil).
			WithDetail("diagnostics", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return errors.RenderError("generated configuration has no syntax body", nil)
	}

	for _, block := range body.Blocks {
		if block.Type != "provider" || len(block.Labels) != 1 || block.Labels[0] != "aws" {
			continue
		}
		attr, found := block.Body.Attributes["region"]
		if !found {
			return errors.RenderError("provider block is missing the region attribute", nil)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return errors.RenderError("provider region does not evaluate", nil).
				WithDetail("diagnostics", diags.Error())
		}
		if !val.RawEquals(cty.StringVal(region)) {
			return errors.RenderError("provider region does not match the compile region", nil).
				WithDetail("want", region)
		}
		return nil
	}
	return errors.RenderError("generated configuration has no aws provider block", nil)
}
