package compiler

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// amiDataSource is the image lookup block shared by every compute instance.
// Emitted at most once per document.
const amiDataSource = `data "aws_ami" "ubuntu" {
  most_recent = true

  filter {
    name   = "name"
    values = ["ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-*"]
  }

  filter {
    name   = "virtualization-type"
    values = ["hvm"]
  }

  owners = ["099720109477"]
}
`

// Renderer emits the configuration document from classified, resolved node
// buckets. Block families appear in fixed pipeline order (provider, image
// lookup, networks, subnets, instances, databases, buckets, clusters, node
// groups, addons); blocks within a family keep the input node order.
type Renderer struct {
	region string
}

// NewRenderer creates a renderer for the given compile region.
func NewRenderer(region string) *Renderer {
	return &Renderer{region: region}
}

// Render produces the full document text.
func (r *Renderer) Render(b Buckets) string {
	sections := []string{r.renderProvider()}

	// The image lookup is emitted once, if and only if at least one compute
	// instance exists anywhere in the graph.
	if len(b.Instances) > 0 {
		sections = append(sections, amiDataSource)
	}

	for _, n := range b.Networks {
		sections = append(sections, r.renderNetwork(n))
	}
	for _, n := range b.Subnets {
		sections = append(sections, r.renderSubnet(n))
	}
	for _, n := range b.Instances {
		sections = append(sections, r.renderInstance(n))
	}
	for _, n := range b.Databases {
		sections = append(sections, r.renderDBSubnetGroup(n), r.renderDatabase(n))
	}
	for _, n := range b.Buckets {
		sections = append(sections, r.renderBucket(n))
		if n.Bucket.Versioning {
			sections = append(sections, r.renderBucketVersioning(n))
		}
	}
	for _, n := range b.Clusters {
		sections = append(sections, r.renderCluster(n))
	}
	for _, n := range b.NodeGroups {
		sections = append(sections, r.renderNodeGroup(n))
	}
	for _, n := range b.Clusters {
		sections = append(sections, r.renderClusterAddons(n)...)
	}

	return strings.Join(sections, "\n")
}

func (r *Renderer) renderProvider() string {
	var buf bytes.Buffer
	buf.WriteString("provider \"aws\" {\n")
	writeAttr(&buf, 6, "region", quote(r.region))
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderNetwork(n *diagram.Node) string {
	spec := n.Network

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_vpc\" %q {\n", Sanitize(n.ID))
	writeAttr(&buf, 20, "cidr_block", quote(spec.CIDR))
	writeAttr(&buf, 20, "enable_dns_hostnames", formatBool(spec.EnableDNSHostnames))
	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderSubnet(n *diagram.Node) string {
	spec := n.Subnet

	az := spec.AZ
	if az == "" {
		az = r.region + "a"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_subnet\" %q {\n", Sanitize(n.ID))
	if n.Resolved.NetworkID != "" {
		writeAttr(&buf, 23, "vpc_id", networkRef(n.Resolved.NetworkID)+".id")
	}
	writeAttr(&buf, 23, "cidr_block", quote(spec.CIDR))
	writeAttr(&buf, 23, "availability_zone", quote(az))
	writeAttr(&buf, 23, "map_public_ip_on_launch", formatBool(spec.MapPublicIP))
	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

// Generated-identifier references. Cross-resource references always go
// through sanitized identifiers, never raw diagram ids.

func networkRef(id string) string {
	return "aws_vpc." + Sanitize(id)
}

func subnetRef(id string) string {
	return "aws_subnet." + Sanitize(id)
}

func clusterRef(id string) string {
	return "aws_eks_cluster." + Sanitize(id)
}

// writeAttr writes one attribute line with the key padded to the family's
// alignment width, matching terraform fmt output.
func writeAttr(buf *bytes.Buffer, width int, key, value string) {
	fmt.Fprintf(buf, "  %-*s = %s\n", width, key, value)
}

// writeTags writes the standard Name tag block.
func writeTags(buf *bytes.Buffer, name string) {
	buf.WriteString("\n  tags = {\n")
	fmt.Fprintf(buf, "    Name = %s\n", quote(name))
	buf.WriteString("  }\n")
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// writeStringMap writes a sorted map block (labels). Keys that are not valid
// HCL identifiers are quoted.
func writeStringMap(buf *bytes.Buffer, name string, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(buf, "\n  %s = {\n", name)
	for _, k := range keys {
		fmt.Fprintf(buf, "    %s = %s\n", mapKey(k), quote(m[k]))
	}
	buf.WriteString("  }\n")
}

func mapKey(k string) string {
	for i, c := range k {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '-':
		case c >= '0' && c <= '9':
			if i == 0 {
				return quote(k)
			}
		default:
			return quote(k)
		}
	}
	if k == "" {
		return quote(k)
	}
	return k
}
