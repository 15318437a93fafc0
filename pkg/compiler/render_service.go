package compiler

import (
	"bytes"
	"fmt"

	"github.com/cloudgraph-io/cgctl/pkg/diagram"
)

// dbSubnetGroupPrefix names the auxiliary grouping resource emitted for every
// managed database.
const dbSubnetGroupPrefix = "grp_"

func (r *Renderer) renderInstance(n *diagram.Node) string {
	spec := n.Instance

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_instance\" %q {\n", Sanitize(n.ID))
	writeAttr(&buf, 13, "ami", "data.aws_ami.ubuntu.id")
	writeAttr(&buf, 13, "instance_type", quote(spec.InstanceType))
	if n.Resolved.SubnetworkID != "" {
		writeAttr(&buf, 13, "subnet_id", subnetRef(n.Resolved.SubnetworkID)+".id")
	}

	// Attach the instance to its network's default security group when the
	// enclosing network resolved; a parentless instance renders without any
	// network-scoped reference.
	if n.Resolved.NetworkID != "" {
		buf.WriteString("\n")
		writeAttr(&buf, 22, "vpc_security_group_ids",
			"["+networkRef(n.Resolved.NetworkID)+".default_security_group_id]")
	}

	if spec.KeyName != "" {
		buf.WriteString("\n")
		writeAttr(&buf, 8, "key_name", quote(spec.KeyName))
	}

	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderDBSubnetGroup(n *diagram.Node) string {
	id := Sanitize(n.ID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_db_subnet_group\" %q {\n", dbSubnetGroupPrefix+id)
	writeAttr(&buf, 10, "name", quote("grp-"+id))
	if n.Resolved.SubnetworkID != "" {
		writeAttr(&buf, 10, "subnet_ids", "["+subnetRef(n.Resolved.SubnetworkID)+".id]")
	}
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderDatabase(n *diagram.Node) string {
	spec := n.Database
	id := Sanitize(n.ID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_db_instance\" %q {\n", id)
	writeAttr(&buf, 22, "identifier", quote(n.ID))
	writeAttr(&buf, 22, "engine", quote(spec.Engine))
	writeAttr(&buf, 22, "instance_class", quote(spec.InstanceClass))
	writeAttr(&buf, 22, "allocated_storage", fmt.Sprintf("%d", spec.AllocatedStorage))
	writeAttr(&buf, 22, "username", quote(spec.Username))
	writeAttr(&buf, 22, "db_subnet_group_name",
		"aws_db_subnet_group."+dbSubnetGroupPrefix+id+".name")
	writeAttr(&buf, 22, "skip_final_snapshot", "true")
	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderBucket(n *diagram.Node) string {
	spec := n.Bucket

	// Bucket names combine the sanitized label with the sanitized node id so
	// that same-labeled buckets stay unique.
	bucketName := Sanitize(spec.Label) + "-" + Sanitize(n.ID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_s3_bucket\" %q {\n", Sanitize(n.ID))
	writeAttr(&buf, 13, "bucket", quote(bucketName))
	writeAttr(&buf, 13, "force_destroy", formatBool(spec.ForceDestroy))
	writeTags(&buf, spec.Label)
	buf.WriteString("}\n")
	return buf.String()
}

func (r *Renderer) renderBucketVersioning(n *diagram.Node) string {
	id := Sanitize(n.ID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resource \"aws_s3_bucket_versioning\" %q {\n", "ver_"+id)
	writeAttr(&buf, 6, "bucket", "aws_s3_bucket."+id+".id")
	buf.WriteString("\n  versioning_configuration {\n")
	buf.WriteString("    status = \"Enabled\"\n")
	buf.WriteString("  }\n")
	buf.WriteString("}\n")
	return buf.String()
}
