// Package eval implements the incremental dataflow evaluation engine:
// topological scheduling, version-based dirty tracking, cached execution, and
// per-run reporting.
package eval

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
)

// TopoOrder computes the evaluation order for the transitive input closure of
// root: a depth-first post-order over incoming links, so every node appears
// strictly after all of its input-providing nodes. Nodes outside the closure
// are excluded and never evaluated.
//
// A cycle in the closure aborts with ErrCycleDetected carrying the cycle path
// in its metadata; no partial order is returned.
func TopoOrder(g *domain.Graph, root domain.NodeID) ([]domain.NodeID, error) {
	const (
		unvisited = iota
		inProgress
		done
	)
	visited := make(map[domain.NodeID]int)
	var order []domain.NodeID
	var path []domain.NodeID

	var visit func(id domain.NodeID) error
	visit = func(id domain.NodeID) error {
		node, ok := g.Node(id)
		if !ok {
			return zerr.With(domain.ErrUnknownNode, "node", id.String())
		}
		visited[id] = inProgress
		path = append(path, id)

		for pin := range node.Type.Inputs {
			src, connected := g.InputSource(domain.PinAddr{Node: id, Pin: pin})
			if !connected {
				continue
			}
			switch visited[src.Node] {
			case inProgress:
				return cycleError(path, src.Node)
			case unvisited:
				if err := visit(src.Node); err != nil {
					return err
				}
			}
		}

		visited[id] = done
		path = path[:len(path)-1]
		order = append(order, id)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}

// cycleError builds ErrCycleDetected with the ordered cycle path. The "cycle"
// metadata is the human-readable path; "cycle_nodes" is the machine-readable
// id list.
func cycleError(path []domain.NodeID, entry domain.NodeID) error {
	start := 0
	for i, id := range path {
		if id == entry {
			start = i
			break
		}
	}
	cycle := path[start:]

	ids := make([]string, 0, len(cycle)+1)
	for _, id := range cycle {
		ids = append(ids, id.String())
	}
	pretty := strings.Join(ids, " -> ") + " -> " + entry.String()

	err := zerr.With(domain.ErrCycleDetected, "cycle", pretty)
	return zerr.With(err, "cycle_nodes", ids)
}

// CycleNodes extracts the node ids on the detected cycle from an
// ErrCycleDetected error, or nil for any other error.
func CycleNodes(err error) []string {
	zErr, ok := err.(*zerr.Error)
	if !ok {
		return nil
	}
	nodes, _ := zErr.Metadata()["cycle_nodes"].([]string)
	return nodes
}
