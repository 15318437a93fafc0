// Package diagram provides the typed graph model for infrastructure diagrams.
package diagram

// Category identifies the kind of a diagram node.
type Category string

const (
	CategoryNetwork          Category = "vpc"
	CategorySubnetwork       Category = "subnet"
	CategoryService          Category = "service"
	CategoryManagedCluster   Category = "eks"
	CategoryClusterNodeGroup Category = "eks-node-group"
)

// ServiceKind identifies the kind of a Service node.
type ServiceKind string

const (
	KindCompute     ServiceKind = "ec2"
	KindDatabase    ServiceKind = "rds"
	KindObjectStore ServiceKind = "s3"
)

// Position holds x,y coordinates from the diagram editor. Pass-through only.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ResolvedRefs holds cross-node references computed by the compiler's
// resolution pass. Empty strings and empty slices mean "unresolved"; the
// renderer degrades to a reference-free block in that case.
type ResolvedRefs struct {
	// NetworkID is the id of the network a node is placed in.
	NetworkID string

	// SubnetworkID is the id of the subnetwork a node is placed in.
	SubnetworkID string

	// ClusterID is the id of the cluster a node group attaches to.
	ClusterID string

	// ClusterDisplayName is the label of a node group's parent cluster.
	ClusterDisplayName string

	// SubnetworkIDs lists the subnetworks a node group spans (at most one,
	// inherited from its parent cluster).
	SubnetworkIDs []string
}

// Node is a single diagram element. Exactly one of the category spec fields is
// non-nil, matching Category; unknown categories carry no spec and are dropped
// by classification.
type Node struct {
	ID       string
	Category Category

	// ServiceKind is set for Service nodes only.
	ServiceKind ServiceKind

	// ParentID references the enclosing node, if any.
	ParentID string

	// Geometry from the editor. Irrelevant to compilation.
	Position Position
	Width    float64
	Height   float64

	Network   *NetworkSpec
	Subnet    *SubnetSpec
	Instance  *InstanceSpec
	Database  *DatabaseSpec
	Bucket    *BucketSpec
	Cluster   *ClusterSpec
	NodeGroup *NodeGroupSpec

	// Resolved is populated by the compiler's resolution pass.
	Resolved ResolvedRefs
}

// Edge is a directed connection between two node ids. Carried as pass-through
// data; enrichment follows parent links, never edges.
type Edge struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// NetworkSpec configures a VPC node.
type NetworkSpec struct {
	Label              string
	CIDR               string
	EnableDNSHostnames bool
}

// SubnetSpec configures a subnet node.
type SubnetSpec struct {
	Label string
	CIDR  string

	// AZ is the availability zone. Empty means "derive from the compile
	// region" at render time.
	AZ          string
	MapPublicIP bool
}

// InstanceSpec configures an EC2 service node.
type InstanceSpec struct {
	Label        string
	InstanceType string
	KeyName      string
}

// DatabaseSpec configures an RDS service node.
type DatabaseSpec struct {
	Label            string
	Engine           string
	InstanceClass    string
	AllocatedStorage int
	Username         string
}

// BucketSpec configures an S3 service node.
type BucketSpec struct {
	Label        string
	Versioning   bool
	ForceDestroy bool
}

// ClusterAddons holds the managed addon flags of a cluster node.
type ClusterAddons struct {
	VPCCNI    bool
	KubeProxy bool
	CoreDNS   bool
	EBSCSI    bool
}

// ClusterSpec configures an EKS control plane node.
type ClusterSpec struct {
	Label                 string
	Version               string
	EndpointPublicAccess  bool
	EndpointPrivateAccess bool
	EnableLogging         bool
	LogTypes              []string
	Addons                ClusterAddons
}

// NodeGroupSpec configures an EKS node group node.
type NodeGroupSpec struct {
	Label         string
	InstanceTypes []string
	DesiredSize   int
	MinSize       int
	MaxSize       int
	DiskSize      int
	AMIType       string
	CapacityType  string
	Labels        map[string]string
}
