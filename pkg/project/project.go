// Package project provides persistence for saved diagrams. A project bundles
// a diagram snapshot with its compile settings and is stored as a JSON
// document in a pluggable blob backend.
package project

import (
	"encoding/json"
	"time"
)

// Defaults applied when a project omits its compile settings.
const (
	DefaultRegion           = "us-east-1"
	DefaultTerraformVersion = "1.5.0"
)

// Project is one saved diagram with its settings.
type Project struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	DiagramData      json.RawMessage `json:"diagram_data"`
	Metadata         map[string]any  `json:"meta_data,omitempty"`
	Region           string          `json:"region"`
	TerraformVersion string          `json:"terraform_version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Ref is the listing view of a project.
type Ref struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries a partial project update; nil fields are left unchanged.
type Update struct {
	Name             *string
	DiagramData      json.RawMessage
	Metadata         map[string]any
	Region           *string
	TerraformVersion *string
}
