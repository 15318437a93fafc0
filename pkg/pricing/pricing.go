// Package pricing estimates monthly costs for diagram resources from a static
// price table. Estimates are rough planning numbers, not billing data.
package pricing

import (
	"math"
	"strings"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// monthlyPrices holds monthly USD estimates (730 hours) per resource key.
// RDS classes are keyed with an "rds." prefix to keep them apart from EC2
// types. Network primitives are listed at zero so lookups stay uniform.
var monthlyPrices = map[string]float64{
	"t3.micro":   10.00,
	"t3.small":   20.00,
	"t3.medium":  40.00,
	"t2.micro":   10.00,
	"t2.small":   20.00,
	"t2.medium":  40.00,
	"m5.large":   90.00,
	"m5.xlarge":  180.00,
	"m5.2xlarge": 360.00,

	"rds.db.t3.micro":  15.00,
	"rds.db.t3.small":  30.00,
	"rds.db.t3.medium": 60.00,
	"rds.db.t2.micro":  15.00,
	"rds.db.t2.small":  30.00,
	"rds.db.m5.large":  150.00,

	"s3": 5.00,

	// EKS control plane, roughly $0.10/hour.
	"eks": 73.00,

	"vpc":    0.00,
	"subnet": 0.00,
}

// InstanceCost returns the monthly cost for an EC2 instance type, or zero for
// unpriced types.
func InstanceCost(instanceType string) float64 {
	return monthlyPrices[instanceType]
}

// ResourcePrice returns the monthly price for a resource type and optional
// instance size. Unknown combinations price at zero rather than failing.
func ResourcePrice(resourceType, instanceSize string) float64 {
	switch resourceType {
	case "ec2":
		if instanceSize != "" {
			return InstanceCost(instanceSize)
		}
	case "rds":
		if instanceSize != "" {
			key := instanceSize
			if !strings.HasPrefix(key, "rds.") {
				key = "rds." + key
			}
			return monthlyPrices[key]
		}
	}
	return monthlyPrices[resourceType]
}

// PriceTable returns a copy of the monthly price table keyed by resource or
// instance type.
func PriceTable() map[string]float64 {
	out := make(map[string]float64, len(monthlyPrices))
	for k, v := range monthlyPrices {
		out[k] = v
	}
	return out
}

// Estimate is a per-diagram cost summary. Breakdown maps node id to monthly
// cost; free nodes are omitted.
type Estimate struct {
	TotalMonthlyCost float64            `json:"total_monthly_cost" yaml:"total_monthly_cost"`
	Breakdown        map[string]float64 `json:"breakdown" yaml:"breakdown"`
}

// EstimateGraph prices every costed node in the graph. Networks and
// subnetworks are free and never appear in the breakdown. A node group costs
// its first instance type times the desired size.
func EstimateGraph(g *diagram.Graph) Estimate {
	est := Estimate{Breakdown: map[string]float64{}}

	for _, n := range g.Nodes {
		var cost float64
		switch n.Category {
		case diagram.CategoryService:
			switch n.ServiceKind {
			case diagram.KindCompute:
				cost = ResourcePrice("ec2", n.Instance.InstanceType)
			case diagram.KindDatabase:
				cost = ResourcePrice("rds", n.Database.InstanceClass)
			case diagram.KindObjectStore:
				cost = ResourcePrice("s3", "")
			}
		case diagram.CategoryManagedCluster:
			cost = ResourcePrice("eks", "")
		case diagram.CategoryClusterNodeGroup:
			instanceType := diagram.DefaultNodeGroupInstanceType
			if len(n.NodeGroup.InstanceTypes) > 0 {
				instanceType = n.NodeGroup.InstanceTypes[0]
			}
			cost = InstanceCost(instanceType) * float64(n.NodeGroup.DesiredSize)
		}

		if cost > 0 {
			est.Breakdown[n.ID] = roundCents(cost)
			est.TotalMonthlyCost += cost
		}
	}

	est.TotalMonthlyCost = roundCents(est.TotalMonthlyCost)
	return est
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
