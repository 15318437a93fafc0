package compiler

import (
	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// Buckets partitions a graph's nodes by resource category. Bucket order
// preserves input order; the buckets are disjoint.
type Buckets struct {
	Networks   []*diagram.Node
	Subnets    []*diagram.Node
	Instances  []*diagram.Node
	Databases  []*diagram.Node
	Buckets    []*diagram.Node
	Clusters   []*diagram.Node
	NodeGroups []*diagram.Node
}

// Classify partitions nodes into category buckets. It is a pure filter:
// nodes are not mutated, the pass is idempotent, and unknown categories or
// service kinds are excluded from every bucket (and so from code generation).
func Classify(g *diagram.Graph) Buckets {
	var b Buckets
	for _, n := range g.Nodes {
		switch n.Category {
		case diagram.CategoryNetwork:
			b.Networks = append(b.Networks, n)
		case diagram.CategorySubnetwork:
			b.Subnets = append(b.Subnets, n)
		case diagram.CategoryService:
			switch n.ServiceKind {
			case diagram.KindCompute:
				b.Instances = append(b.Instances, n)
			case diagram.KindDatabase:
				b.Databases = append(b.Databases, n)
			case diagram.KindObjectStore:
				b.Buckets = append(b.Buckets, n)
			}
		case diagram.CategoryManagedCluster:
			b.Clusters = append(b.Clusters, n)
		case diagram.CategoryClusterNodeGroup:
			b.NodeGroups = append(b.NodeGroups, n)
		}
	}
	return b
}
