package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

func TestResolvePlacement(t *testing.T) {
	nodes := []*diagram.Node{
		{ID: "vpc-1", Category: diagram.CategoryNetwork, Network: &diagram.NetworkSpec{Label: "net"}},
		{ID: "subnet-1", Category: diagram.CategorySubnetwork, ParentID: "vpc-1",
			Subnet: &diagram.SubnetSpec{Label: "sub"}},
		{ID: "ec2-1", Category: diagram.CategoryService, ServiceKind: diagram.KindCompute,
			ParentID: "subnet-1", Instance: &diagram.InstanceSpec{Label: "web"}},
		{ID: "db-1", Category: diagram.CategoryService, ServiceKind: diagram.KindDatabase,
			ParentID: "subnet-1", Database: &diagram.DatabaseSpec{Label: "db"}},
	}
	g := diagram.NewGraph(nodes, nil)
	b := Classify(g)
	Resolve(g, b)

	assert.Equal(t, "vpc-1", nodes[1].Resolved.NetworkID)
	assert.Equal(t, "subnet-1", nodes[2].Resolved.SubnetworkID)
	assert.Equal(t, "vpc-1", nodes[2].Resolved.NetworkID)
	assert.Equal(t, "subnet-1", nodes[3].Resolved.SubnetworkID)
}

func TestResolveDanglingParent(t *testing.T) {
	nodes := []*diagram.Node{
		{ID: "subnet-1", Category: diagram.CategorySubnetwork, ParentID: "vpc-gone",
			Subnet: &diagram.SubnetSpec{Label: "sub"}},
	}
	g := diagram.NewGraph(nodes, nil)
	b := Classify(g)
	Resolve(g, b)

	assert.Empty(t, nodes[0].Resolved.NetworkID)
}

func TestResolveNodeGroupInheritsClusterSubnet(t *testing.T) {
	nodes := []*diagram.Node{
		{ID: "vpc-1", Category: diagram.CategoryNetwork, Network: &diagram.NetworkSpec{Label: "net"}},
		{ID: "subnet-1", Category: diagram.CategorySubnetwork, ParentID: "vpc-1",
			Subnet: &diagram.SubnetSpec{Label: "sub"}},
		{ID: "eks-1", Category: diagram.CategoryManagedCluster, ParentID: "subnet-1",
			Cluster: &diagram.ClusterSpec{Label: "prod"}},
		{ID: "ng-1", Category: diagram.CategoryClusterNodeGroup, ParentID: "eks-1",
			NodeGroup: &diagram.NodeGroupSpec{Label: "workers"}},
	}
	g := diagram.NewGraph(nodes, nil)
	b := Classify(g)
	Resolve(g, b)

	ng := nodes[3]
	assert.Equal(t, "eks-1", ng.Resolved.ClusterID)
	assert.Equal(t, "prod", ng.Resolved.ClusterDisplayName)
	assert.Equal(t, []string{"subnet-1"}, ng.Resolved.SubnetworkIDs)
}

func TestResolveNodeGroupWithoutCluster(t *testing.T) {
	nodes := []*diagram.Node{
		{ID: "ng-1", Category: diagram.CategoryClusterNodeGroup,
			NodeGroup: &diagram.NodeGroupSpec{Label: "workers"}},
	}
	g := diagram.NewGraph(nodes, nil)
	b := Classify(g)
	Resolve(g, b)

	ng := nodes[0]
	assert.Empty(t, ng.Resolved.ClusterID)
	assert.Equal(t, "unnamed-cluster", ng.Resolved.ClusterDisplayName)
	assert.Empty(t, ng.Resolved.SubnetworkIDs)
}
