package config

import "github.com/eetumartola/grapho/internal/core/domain"

// Planfile represents the structure of a plan YAML file.
type Planfile struct {
	Version  int                `yaml:"version"`
	Settings SettingsDTO        `yaml:"settings,omitempty"`
	Nodes    map[string]NodeDTO `yaml:"nodes"`
	Links    []LinkDTO          `yaml:"links,omitempty"`
	Output   string             `yaml:"output,omitempty"`
}

// SettingsDTO carries the persisted project settings.
type SettingsDTO struct {
	BaseColor []float32 `yaml:"base_color,omitempty"`
}

// NodeDTO represents a node definition in the plan. Save writes the node's
// full parameter block; hand-written plans may omit keys, which fall back to
// the type's defaults on load.
type NodeDTO struct {
	Type   string                       `yaml:"type"`
	Label  string                       `yaml:"label,omitempty"`
	Params map[string]domain.ParamValue `yaml:"params,omitempty"`
}

// LinkDTO represents a link as "<node-ref>.<pin-name>" endpoints.
type LinkDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
