package compiler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// defaultLogTypes is used when logging is enabled without explicit log types.
var defaultLogTypes = []string{"api", "audit", "authenticator"}

// eksAddonNames maps addon flags to the provider's addon identifiers, in
// emission order.
var eksAddonNames = []struct {
	name    string
	enabled func(diagram.ClusterAddons) bool
}{
	{"vpc-cni", func(a diagram.ClusterAddons) bool { return a.VPCCNI }},
	{"kube-proxy", func(a diagram.ClusterAddons) bool { return a.KubeProxy }},
	{"coredns", func(a diagram.ClusterAddons) bool { return a.CoreDNS }},
	{"aws-ebs-csi-driver", func(a diagram.ClusterAddons) bool { return a.EBSCSI }},
}

func (r *Renderer) renderCluster(n *diagram.Node) string {
	spec := n.Cluster

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_eks_cluster\" %q {\n", Sanitize(n.ID))
	writeAttr(&buf, 7, "name", quote(spec.Label))
	writeAttr(&buf, 7, "version", quote(spec.Version))

	buf.WriteString("\n  vpc_config {\n")
	if n.Resolved.SubnetworkID != "" {
		fmt.Fprintf(&buf, "    %-23s = %s\n", "subnet_ids",
			"["+subnetRef(n.Resolved.SubnetworkID)+".id]")
	}
	fmt.Fprintf(&buf, "    %-23s = %s\n", "endpoint_public_access", formatBool(spec.EndpointPublicAccess))
	fmt.Fprintf(&buf, "    %-23s = %s\n", "endpoint_private_access", formatBool(spec.EndpointPrivateAccess))
	buf.WriteString("  }\n")

	if spec.EnableLogging {
		logTypes := spec.LogTypes
		if len(logTypes) == 0 {
			logTypes = defaultLogTypes
		}
		buf.WriteString("\n")
		writeAttr(&buf, 25, "enabled_cluster_log_types", quoteList(logTypes))
	}

	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderNodeGroup(n *diagram.Node) string {
	spec := n.NodeGroup

	// A node group whose parent cluster resolved references the cluster
	// block; otherwise it falls back to the resolved display name.
	clusterName := quote(n.Resolved.ClusterDisplayName)
	if n.Resolved.ClusterID != "" {
		clusterName = clusterRef(n.Resolved.ClusterID) + ".name"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_eks_node_group\" %q {\n", Sanitize(n.ID))
	writeAttr(&buf, 15, "cluster_name", clusterName)
	writeAttr(&buf, 15, "node_group_name", quote(spec.Label))
	if len(n.Resolved.SubnetworkIDs) > 0 {
		refs := make([]string, len(n.Resolved.SubnetworkIDs))
		for i, id := range n.Resolved.SubnetworkIDs {
			refs[i] = subnetRef(id) + ".id"
		}
		writeAttr(&buf, 15, "subnet_ids", "["+strings.Join(refs, ", ")+"]")
	}

	buf.WriteString("\n  scaling_config {\n")
	fmt.Fprintf(&buf, "    %-12s = %d\n", "desired_size", spec.DesiredSize)
	fmt.Fprintf(&buf, "    %-12s = %d\n", "min_size", spec.MinSize)
	fmt.Fprintf(&buf, "    %-12s = %d\n", "max_size", spec.MaxSize)
	buf.WriteString("  }\n")

	buf.WriteString("\n")
	writeAttr(&buf, 14, "instance_types", quoteList(spec.InstanceTypes))
	writeAttr(&buf, 14, "disk_size", fmt.Sprintf("%d", spec.DiskSize))
	writeAttr(&buf, 14, "ami_type", quote(spec.AMIType))
	writeAttr(&buf, 14, "capacity_type", quote(spec.CapacityType))

	if len(spec.Labels) > 0 {
		writeStringMap(&buf, "labels", spec.Labels)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// renderClusterAddons emits one aws_eks_addon block per enabled addon flag.
func (r *Renderer) renderClusterAddons(n *diagram.Node) []string {
	id := Sanitize(n.ID)

	var blocks []string
	for _, addon := range eksAddonNames {
		if !addon.enabled(n.Cluster.Addons) {
			continue
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "resource \"aws_eks_addon\" %q {\n", id+"_"+Sanitize(addon.name))
		writeAttr(&buf, 12, "cluster_name", clusterRef(n.ID)+".name")
		writeAttr(&buf, 12, "addon_name", quote(addon.name))
		buf.WriteString("}\n")
		blocks = append(blocks, buf.String())
	}
	return blocks
}
