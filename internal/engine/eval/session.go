package eval

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
)

// Session evaluates one graph against one cache. It owns the memoised
// evaluation order and the output-version counter, and it wires the graph's
// invalidation callback into the cache so node removal cannot leave stale
// entries behind.
//
// A run is synchronous and single-threaded; concurrent Evaluate calls on the
// same session collapse into a single run and share its result. Structural
// graph mutation while a run is in flight is the caller's responsibility to
// avoid.
type Session struct {
	graph  *domain.Graph
	cache  ports.EvalCache
	exec   ports.Executor
	tracer ports.Tracer
	log    ports.Logger

	baseColor [3]float32

	// Evaluation order memoised against the store's topology version.
	order     []domain.NodeID
	orderTopo uint64
	orderRoot domain.NodeID

	// lastVersion stamps recomputed outputs. Monotonic per session, never
	// reused, so fingerprints of downstream consumers change whenever an
	// upstream recomputes.
	lastVersion uint64

	group singleflight.Group
}

// NewSession creates a session over the given graph and cache.
func NewSession(
	g *domain.Graph,
	cache ports.EvalCache,
	exec ports.Executor,
	tracer ports.Tracer,
	log ports.Logger,
) *Session {
	g.SetInvalidateFunc(func(id domain.NodeID, removed bool) {
		if removed {
			cache.Remove(id)
		} else {
			cache.Invalidate(id)
		}
	})
	return &Session{
		graph:     g,
		cache:     cache,
		exec:      exec,
		tracer:    tracer,
		log:       log,
		baseColor: domain.DefaultBaseColor,
	}
}

// SetBaseColor sets the base color applied to produced snapshots.
func (s *Session) SetBaseColor(c [3]float32) {
	s.baseColor = c
}

// Graph returns the graph this session evaluates.
func (s *Session) Graph() *domain.Graph {
	return s.graph
}

type evalOutcome struct {
	snapshot *domain.SceneSnapshot
	report   *Report
}

// Evaluate runs one full evaluation of the designated output node and returns
// the detached snapshot plus the run report. Concurrent callers share one
// run. A nil snapshot with a non-nil report means the output produced no
// usable mesh (failed subtree or non-mesh output).
func (s *Session) Evaluate(ctx context.Context) (*domain.SceneSnapshot, *Report, error) {
	v, err, _ := s.group.Do("evaluate", func() (any, error) {
		snap, rep, runErr := s.evaluate(ctx)
		return evalOutcome{snapshot: snap, report: rep}, runErr
	})
	out, _ := v.(evalOutcome)
	return out.snapshot, out.report, err
}

func (s *Session) evaluate(ctx context.Context) (*domain.SceneSnapshot, *Report, error) {
	root := s.graph.Output()
	if root.IsZero() {
		return nil, structuralReport(domain.ErrNoOutputNode), domain.ErrNoOutputNode
	}

	order, err := s.plan(root)
	if err != nil {
		return nil, structuralReport(err), err
	}

	labels := make([]string, len(order))
	for i, id := range order {
		if node, ok := s.graph.Node(id); ok {
			labels[i] = node.Label
		}
	}
	s.tracer.EmitPlan(ctx, labels)

	b := newReportBuilder()
	outputs := make(map[domain.NodeID][]domain.Value, len(order))
	versions := make(map[domain.NodeID]uint64, len(order))

	for _, id := range order {
		// Cancellation check-in point at every node boundary. Entries cached
		// so far stay valid; they are simply superseded by a later run.
		if ctx.Err() != nil {
			return nil, b.seal(), zerr.Wrap(ctx.Err(), "evaluation abandoned")
		}

		node, ok := s.graph.Node(id)
		if !ok {
			return nil, b.seal(), zerr.With(domain.ErrUnknownNode, "node", id.String())
		}

		fp := fingerprint(s.graph, node, versions)
		if entry, hit := s.cache.Get(id, fp); hit {
			_, span := s.tracer.Start(ctx, node.Label)
			span.Cached()
			if entry.Err != nil {
				span.RecordError(entry.Err)
			} else {
				span.End()
			}
			outputs[id] = entry.Outputs
			versions[id] = entry.OutputVersion
			b.add(hitReport(node, entry))
			continue
		}

		nctx, span := s.tracer.Start(ctx, node.Label)
		inputs, origin := s.resolveInputs(node, outputs)

		start := time.Now()
		var outs []domain.Value
		var computeErr error
		switch {
		case !origin.IsZero():
			// A consumed upstream output is invalid: fail without running
			// the compute function, keeping the chain traceable to origin.
			computeErr = upstreamError(node, origin)
			outs = tombstones(node.Type, origin)
		default:
			outs, computeErr = s.exec.Compute(nctx, node, inputs)
			if computeErr != nil {
				origin = id
				outs = tombstones(node.Type, id)
			}
		}
		dur := time.Since(start)

		s.lastVersion++
		s.cache.Put(id, domain.CacheEntry{
			Outputs:       outs,
			Fingerprint:   fp,
			OutputVersion: s.lastVersion,
			Err:           computeErr,
		})
		outputs[id] = outs
		versions[id] = s.lastVersion

		if computeErr != nil {
			span.RecordError(computeErr)
			s.log.Warn("node failed", "node", id.String(), "label", node.Label, "error", computeErr)
		}
		span.End()
		b.add(missReport(node, dur, computeErr, origin))
	}

	return s.snapshot(root, outputs), b.seal(), nil
}

// plan returns the memoised evaluation order, re-traversing only when the
// topology version or designated output changed since the last run.
func (s *Session) plan(root domain.NodeID) ([]domain.NodeID, error) {
	if s.order != nil && s.orderTopo == s.graph.TopologyVersion() && s.orderRoot == root {
		return s.order, nil
	}
	order, err := TopoOrder(s.graph, root)
	if err != nil {
		s.order = nil
		return nil, err
	}
	s.order = order
	s.orderTopo = s.graph.TopologyVersion()
	s.orderRoot = root
	return order, nil
}

// resolveInputs gathers the node's input values from this run's outputs.
// The second return names the origin of the first poisoned input, or the
// zero id when all connected inputs are valid.
func (s *Session) resolveInputs(node *domain.Node, outputs map[domain.NodeID][]domain.Value) ([]domain.Value, domain.NodeID) {
	inputs := make([]domain.Value, len(node.Type.Inputs))
	var origin domain.NodeID
	for i, pin := range node.Type.Inputs {
		src, connected := s.graph.InputSource(domain.PinAddr{Node: node.ID, Pin: i})
		if !connected {
			continue // zero Value marks the pin as unconnected
		}
		vals := outputs[src.Node]
		if src.Pin < len(vals) {
			inputs[i] = vals[src.Pin]
		} else {
			inputs[i] = domain.Tombstone(pin.Type, src.Node)
		}
		if !inputs[i].Valid && origin.IsZero() {
			origin = inputs[i].Origin
			if origin.IsZero() {
				origin = src.Node
			}
		}
	}
	return inputs, origin
}

// snapshot extracts the first valid mesh output of the root node into a
// detached snapshot, or nil when there is none.
func (s *Session) snapshot(root domain.NodeID, outputs map[domain.NodeID][]domain.Value) *domain.SceneSnapshot {
	for _, v := range outputs[root] {
		if v.Valid && v.Type == domain.PinTypeMesh && v.Mesh != nil {
			return domain.SnapshotFromMesh(v.Mesh, s.baseColor)
		}
	}
	return nil
}

func hitReport(node *domain.Node, entry *domain.CacheEntry) NodeReport {
	r := NodeReport{
		Node:     node.ID,
		Label:    node.Label,
		Status:   StatusClean,
		CacheHit: true,
		Err:      entry.Err,
	}
	if entry.Err != nil {
		r.Status = StatusFailed
		if errors.Is(entry.Err, domain.ErrUpstreamFailure) {
			r.Status = StatusPoisoned
			for _, v := range entry.Outputs {
				if !v.Origin.IsZero() {
					r.Origin = v.Origin
					break
				}
			}
		}
	}
	return r
}

func missReport(node *domain.Node, dur time.Duration, err error, origin domain.NodeID) NodeReport {
	r := NodeReport{
		Node:     node.ID,
		Label:    node.Label,
		Status:   StatusDone,
		Duration: dur,
		Err:      err,
	}
	if err != nil {
		r.Status = StatusFailed
		if errors.Is(err, domain.ErrUpstreamFailure) {
			r.Status = StatusPoisoned
			r.Origin = origin
		}
	}
	return r
}

func upstreamError(node *domain.Node, origin domain.NodeID) error {
	err := zerr.With(domain.ErrUpstreamFailure, "node", node.ID.String())
	return zerr.With(err, "origin", origin.String())
}

func tombstones(t *domain.NodeType, origin domain.NodeID) []domain.Value {
	outs := make([]domain.Value, len(t.Outputs))
	for i, pin := range t.Outputs {
		outs[i] = domain.Tombstone(pin.Type, origin)
	}
	return outs
}
