package domain

// ProjectVersion is the current plan file format version.
const ProjectVersion = 1

// DefaultBaseColor is the neutral grey applied to snapshots when a plan does
// not set one.
var DefaultBaseColor = [3]float32{0.7, 0.72, 0.75}

// ProjectSettings carries the non-graph state a plan file round-trips. Only
// settings the headless engine consumes live here; viewport and panel layout
// belong to the editing front end.
type ProjectSettings struct {
	BaseColor [3]float32
}

// Project is a loaded plan: a graph plus its settings. No cache or report
// data is ever persisted with it.
type Project struct {
	Version  int
	Settings ProjectSettings
	Graph    *Graph
}

// NewProject creates an empty project with default settings.
func NewProject() *Project {
	return &Project{
		Version:  ProjectVersion,
		Settings: ProjectSettings{BaseColor: DefaultBaseColor},
		Graph:    NewGraph(),
	}
}
