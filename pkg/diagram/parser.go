package diagram

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cloudgraph-io/cgctl/pkg/errors"
)

// Named defaults substituted for missing optional properties. Defaults are
// resolved once at construction; the renderer never consults raw properties.
const (
	DefaultNetworkCIDR      = "10.0.0.0/16"
	DefaultSubnetCIDR       = "10.0.1.0/24"
	DefaultInstanceType     = "t3.micro"
	DefaultDatabaseEngine   = "mysql"
	DefaultInstanceClass    = "db.t3.micro"
	DefaultAllocatedStorage = 20
	DefaultDatabaseUsername = "admin"
	DefaultClusterVersion   = "1.29"
	DefaultAMIType          = "AL2_x86_64"
	DefaultCapacityType     = "ON_DEMAND"
)

// DefaultNodeGroupInstanceType is the instance type assumed for node groups
// that declare none.
const DefaultNodeGroupInstanceType = "t3.medium"

// wireNode is the diagram editor's node shape (React Flow).
type wireNode struct {
	ID       string                 `json:"id" yaml:"id"`
	Type     string                 `json:"type" yaml:"type"`
	Position Position               `json:"position" yaml:"position"`
	Data     map[string]interface{} `json:"data" yaml:"data"`
	Parent   string                 `json:"parentNode" yaml:"parentNode"`
	Width    float64                `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64                `json:"height,omitempty" yaml:"height,omitempty"`
}

// wireDiagram is the full payload: nodes plus edges.
type wireDiagram struct {
	Nodes []wireNode `json:"nodes" yaml:"nodes"`
	Edges []Edge     `json:"edges" yaml:"edges"`
}

// ParseJSON decodes a diagram payload in the editor's JSON wire format.
func ParseJSON(data []byte) (*Graph, error) {
	var wire wireDiagram
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.ParseError("diagram payload", err)
	}
	return fromWire(wire)
}

// ParseYAML decodes a diagram payload written as YAML.
func ParseYAML(data []byte) (*Graph, error) {
	var wire wireDiagram
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, errors.ParseError("diagram payload", err)
	}
	return fromWire(wire)
}

// fromWire validates the payload and constructs typed nodes with defaults
// resolved. Structural problems (missing id or type) reject the whole payload;
// unknown categories and service kinds pass through untyped and are excluded
// from code generation by the classifier.
func fromWire(wire wireDiagram) (*Graph, error) {
	nodes := make([]*Node, 0, len(wire.Nodes))
	for i, wn := range wire.Nodes {
		if wn.ID == "" {
			return nil, errors.ValidationError(
				fmt.Sprintf("node at index %d is missing its id", i), nil)
		}
		if wn.Type == "" {
			return nil, errors.ValidationError(
				fmt.Sprintf("node %q is missing its category", wn.ID), nil)
		}
		nodes = append(nodes, buildNode(wn))
	}
	return NewGraph(nodes, wire.Edges), nil
}

func buildNode(wn wireNode) *Node {
	n := &Node{
		ID:       wn.ID,
		Category: Category(wn.Type),
		ParentID: wn.Parent,
		Position: wn.Position,
		Width:    wn.Width,
		Height:   wn.Height,
	}

	data := wn.Data
	switch n.Category {
	case CategoryNetwork:
		n.Network = &NetworkSpec{
			Label:              str(data, "label", "unnamed-vpc"),
			CIDR:               str(data, "cidr", DefaultNetworkCIDR),
			EnableDNSHostnames: boolean(data, "enableDnsHostnames", true),
		}
	case CategorySubnetwork:
		n.Subnet = &SubnetSpec{
			Label:       str(data, "label", "unnamed-subnet"),
			CIDR:        str(data, "cidr", DefaultSubnetCIDR),
			AZ:          str(data, "az", ""),
			MapPublicIP: boolean(data, "mapPublicIp", false),
		}
	case CategoryService:
		n.ServiceKind = ServiceKind(str(data, "type", ""))
		switch n.ServiceKind {
		case KindCompute:
			n.Instance = &InstanceSpec{
				Label:        str(data, "label", "unnamed-instance"),
				InstanceType: str(data, "instanceType", DefaultInstanceType),
				KeyName:      str(data, "keyName", ""),
			}
		case KindDatabase:
			n.Database = &DatabaseSpec{
				Label:            str(data, "label", "database"),
				Engine:           str(data, "engine", DefaultDatabaseEngine),
				InstanceClass:    str(data, "instanceClass", DefaultInstanceClass),
				AllocatedStorage: integer(data, "allocatedStorage", DefaultAllocatedStorage),
				Username:         str(data, "username", DefaultDatabaseUsername),
			}
		case KindObjectStore:
			n.Bucket = &BucketSpec{
				Label:        str(data, "label", "bucket"),
				Versioning:   boolean(data, "versioning", false),
				ForceDestroy: boolean(data, "forceDestroy", false),
			}
		}
	case CategoryManagedCluster:
		n.Cluster = &ClusterSpec{
			Label:                 str(data, "label", "unnamed-cluster"),
			Version:               str(data, "version", DefaultClusterVersion),
			EndpointPublicAccess:  boolean(data, "endpointPublicAccess", true),
			EndpointPrivateAccess: boolean(data, "endpointPrivateAccess", false),
			EnableLogging:         boolean(data, "enableLogging", false),
			LogTypes:              stringSlice(data, "logTypes"),
			Addons:                addons(data),
		}
	case CategoryClusterNodeGroup:
		types := stringSlice(data, "instanceTypes")
		if len(types) == 0 {
			types = []string{DefaultNodeGroupInstanceType}
		}
		n.NodeGroup = &NodeGroupSpec{
			Label:         str(data, "label", "unnamed-node-group"),
			InstanceTypes: types,
			DesiredSize:   integer(data, "desiredSize", 2),
			MinSize:       integer(data, "minSize", 1),
			MaxSize:       integer(data, "maxSize", 4),
			DiskSize:      integer(data, "diskSize", 20),
			AMIType:       str(data, "amiType", DefaultAMIType),
			CapacityType:  str(data, "capacityType", DefaultCapacityType),
			Labels:        stringMap(data, "labels"),
		}
	}

	return n
}

func addons(data map[string]interface{}) ClusterAddons {
	raw, ok := data["addons"].(map[string]interface{})
	if !ok {
		return ClusterAddons{}
	}
	return ClusterAddons{
		VPCCNI:    boolean(raw, "vpcCni", false),
		KubeProxy: boolean(raw, "kubeProxy", false),
		CoreDNS:   boolean(raw, "coreDns", false),
		EBSCSI:    boolean(raw, "ebsCsi", false),
	}
}

// Property accessors. Numeric values arrive as float64 from JSON and as int
// from YAML; both are accepted.

func str(data map[string]interface{}, key, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolean(data map[string]interface{}, key string, fallback bool) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return fallback
}

func integer(data map[string]interface{}, key string, fallback int) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return fallback
}

func stringSlice(data map[string]interface{}, key string) []string {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringMap(data map[string]interface{}, key string) map[string]string {
	raw, ok := data[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
