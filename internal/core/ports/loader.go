package ports

import "github.com/eetumartola/grapho/internal/core/domain"

// PlanLoader reads and writes the persisted form of a graph. The serialized
// plan holds nodes with parameter blocks, links, and the designated output;
// never cache or report data.
type PlanLoader interface {
	// Load reads a plan file and reconstructs the project. Structural errors
	// in the plan (unknown types, bad link references) reject the whole file.
	Load(path string) (*domain.Project, error)

	// Save writes the project back in a form Load round-trips.
	Save(path string, project *domain.Project) error
}
