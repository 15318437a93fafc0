package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudgraph-io/cgctl/pkg/errors"
)

func TestParseJSONDefaults(t *testing.T) {
	payload := `{"nodes": [
		{"id": "vpc-1", "type": "vpc", "position": {"x": 1, "y": 2}, "data": {}},
		{"id": "ec2-1", "type": "service", "position": {"x": 0, "y": 0},
		 "data": {"type": "ec2"}, "parentNode": "vpc-1"},
		{"id": "db-1", "type": "service", "position": {"x": 0, "y": 0},
		 "data": {"type": "rds"}}
	], "edges": []}`

	g, err := ParseJSON([]byte(payload))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 3)

	vpc := g.Nodes[0]
	require.NotNil(t, vpc.Network)
	assert.Equal(t, CategoryNetwork, vpc.Category)
	assert.Equal(t, DefaultNetworkCIDR, vpc.Network.CIDR)
	assert.True(t, vpc.Network.EnableDNSHostnames)
	assert.Equal(t, 1.0, vpc.Position.X)

	inst := g.Nodes[1]
	require.NotNil(t, inst.Instance)
	assert.Equal(t, KindCompute, inst.ServiceKind)
	assert.Equal(t, DefaultInstanceType, inst.Instance.InstanceType)
	assert.Equal(t, "vpc-1", inst.ParentID)

	db := g.Nodes[2]
	require.NotNil(t, db.Database)
	assert.Equal(t, DefaultDatabaseEngine, db.Database.Engine)
	assert.Equal(t, DefaultInstanceClass, db.Database.InstanceClass)
	assert.Equal(t, DefaultAllocatedStorage, db.Database.AllocatedStorage)
	assert.Equal(t, DefaultDatabaseUsername, db.Database.Username)
}

func TestParseJSONMissingID(t *testing.T) {
	payload := `{"nodes": [
		{"type": "vpc", "position": {"x": 0, "y": 0}, "data": {}}
	], "edges": []}`

	_, err := ParseJSON([]byte(payload))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeValidation))
}

func TestParseJSONMissingCategory(t *testing.T) {
	payload := `{"nodes": [
		{"id": "vpc-1", "position": {"x": 0, "y": 0}, "data": {}}
	], "edges": []}`

	_, err := ParseJSON([]byte(payload))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeValidation))
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"nodes": [`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeParse))
}

func TestParseJSONUnknownCategoryPassesThrough(t *testing.T) {
	payload := `{"nodes": [
		{"id": "x-1", "type": "quantum-router", "position": {"x": 0, "y": 0},
		 "data": {"label": "mystery"}}
	], "edges": []}`

	g, err := ParseJSON([]byte(payload))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)

	n := g.Nodes[0]
	assert.Equal(t, Category("quantum-router"), n.Category)
	assert.Nil(t, n.Network)
	assert.Nil(t, n.Instance)
}

func TestParseJSONNodeGroup(t *testing.T) {
	payload := `{"nodes": [
		{"id": "ng-1", "type": "eks-node-group", "position": {"x": 0, "y": 0},
		 "data": {"label": "workers", "desiredSize": 3,
		          "labels": {"tier": "backend"}}}
	], "edges": []}`

	g, err := ParseJSON([]byte(payload))
	require.NoError(t, err)

	ng := g.Nodes[0].NodeGroup
	require.NotNil(t, ng)
	assert.Equal(t, []string{DefaultNodeGroupInstanceType}, ng.InstanceTypes)
	assert.Equal(t, 3, ng.DesiredSize)
	assert.Equal(t, 1, ng.MinSize)
	assert.Equal(t, 4, ng.MaxSize)
	assert.Equal(t, map[string]string{"tier": "backend"}, ng.Labels)
}

func TestParseYAML(t *testing.T) {
	payload := `
nodes:
  - id: vpc-1
    type: vpc
    position: {x: 0, y: 0}
    data:
      label: Main VPC
      cidr: 172.16.0.0/16
  - id: eks-1
    type: eks
    position: {x: 0, y: 0}
    data:
      label: prod
      enableLogging: true
      addons:
        vpcCni: true
edges: []
`
	g, err := ParseYAML([]byte(payload))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)

	assert.Equal(t, "172.16.0.0/16", g.Nodes[0].Network.CIDR)

	cluster := g.Nodes[1].Cluster
	require.NotNil(t, cluster)
	assert.Equal(t, DefaultClusterVersion, cluster.Version)
	assert.True(t, cluster.EnableLogging)
	assert.True(t, cluster.Addons.VPCCNI)
	assert.False(t, cluster.Addons.CoreDNS)
}

func TestParseEdges(t *testing.T) {
	payload := `{"nodes": [
		{"id": "a", "type": "vpc", "position": {"x": 0, "y": 0}, "data": {}},
		{"id": "b", "type": "vpc", "position": {"x": 0, "y": 0}, "data": {}}
	], "edges": [
		{"id": "e1", "source": "a", "target": "b"}
	]}`

	g, err := ParseJSON([]byte(payload))
	require.NoError(t, err)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "a", g.Edges[0].Source)
	assert.Equal(t, "b", g.Edges[0].Target)
}

func TestGraphLookup(t *testing.T) {
	g := NewGraph([]*Node{
		{ID: "a", Category: CategoryNetwork},
		{ID: "b", Category: CategorySubnetwork},
	}, nil)

	assert.Equal(t, "a", g.Lookup("a").ID)
	assert.Nil(t, g.Lookup("missing"))
}
