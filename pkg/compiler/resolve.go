package compiler

import (
	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// unnamedCluster is the display name used when a node group's parent cluster
// is missing or unlabeled.
const unnamedCluster = "unnamed-cluster"

// Resolve materializes each node's effective placement by following parent
// links one hop, populating ResolvedRefs for the renderer. Resolution never
// fails: a missing or dangling parent degrades to empty resolved fields and
// the renderer omits the dependent reference. Clusters resolve before node
// groups because a node group inherits its parent cluster's subnetwork.
func Resolve(g *diagram.Graph, b Buckets) {
	for _, subnet := range b.Subnets {
		if parent := g.Lookup(subnet.ParentID); parent != nil {
			subnet.Resolved.NetworkID = parent.ID
		}
	}

	for _, inst := range b.Instances {
		if parent := g.Lookup(inst.ParentID); parent != nil {
			inst.Resolved.SubnetworkID = parent.ID
			inst.Resolved.NetworkID = parent.ParentID
		}
	}

	for _, db := range b.Databases {
		if parent := g.Lookup(db.ParentID); parent != nil {
			db.Resolved.SubnetworkID = parent.ID
		}
	}

	for _, cluster := range b.Clusters {
		if parent := g.Lookup(cluster.ParentID); parent != nil {
			cluster.Resolved.SubnetworkID = parent.ID
			cluster.Resolved.NetworkID = parent.ParentID
		}
	}

	for _, ng := range b.NodeGroups {
		parent := g.Lookup(ng.ParentID)
		if parent == nil {
			ng.Resolved.ClusterDisplayName = unnamedCluster
			continue
		}
		ng.Resolved.ClusterID = parent.ID
		ng.Resolved.ClusterDisplayName = unnamedCluster
		if parent.Cluster != nil && parent.Cluster.Label != "" {
			ng.Resolved.ClusterDisplayName = parent.Cluster.Label
		}
		if parent.Resolved.SubnetworkID != "" {
			ng.Resolved.SubnetworkIDs = []string{parent.Resolved.SubnetworkID}
		}
	}
}
