// Package config provides the YAML plan loader.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
)

var _ ports.PlanLoader = (*FileLoader)(nil)

// FileLoader implements ports.PlanLoader using YAML plan files. Node type
// names in the file are resolved against the registry; an unknown type
// rejects the whole plan.
type FileLoader struct {
	Registry ports.NodeRegistry
}

// NewFileLoader creates a loader backed by the given registry.
func NewFileLoader(registry ports.NodeRegistry) *FileLoader {
	return &FileLoader{Registry: registry}
}

// Load reads a plan file and reconstructs the project.
func (l *FileLoader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read plan file")
	}

	var plan Planfile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, zerr.Wrap(err, "failed to parse plan file")
	}

	if plan.Version != domain.ProjectVersion {
		err := zerr.New("unsupported plan version")
		return nil, zerr.With(zerr.With(err, "version", plan.Version), "supported", domain.ProjectVersion)
	}

	project := domain.NewProject()
	if c := plan.Settings.BaseColor; c != nil {
		if len(c) != 3 {
			return nil, zerr.With(zerr.New("base_color needs 3 components"), "got", len(c))
		}
		copy(project.Settings.BaseColor[:], c)
	}

	// Insert nodes in sorted ref order so ids are stable across loads of the
	// same file.
	refs := make([]string, 0, len(plan.Nodes))
	for ref := range plan.Nodes {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	g := project.Graph
	ids := make(map[string]domain.NodeID, len(refs))
	for _, ref := range refs {
		dto := plan.Nodes[ref]
		t, ok := l.Registry.Lookup(dto.Type)
		if !ok {
			err := zerr.With(domain.ErrUnknownType, "node", ref)
			return nil, zerr.With(err, "type", dto.Type)
		}
		label := dto.Label
		if label == "" {
			label = ref
		}
		id := g.AddNode(t, label)
		ids[ref] = id
		for key, value := range dto.Params {
			if err := g.SetParam(id, key, value); err != nil {
				return nil, zerr.With(err, "node", ref)
			}
		}
	}

	for _, link := range plan.Links {
		src, err := resolvePin(g, ids, link.From, pinOutput)
		if err != nil {
			return nil, err
		}
		dst, err := resolvePin(g, ids, link.To, pinInput)
		if err != nil {
			return nil, err
		}
		if err := g.Connect(src, dst); err != nil {
			return nil, zerr.With(zerr.With(err, "from", link.From), "to", link.To)
		}
	}

	output, err := resolveOutput(g, ids, plan.Output)
	if err != nil {
		return nil, err
	}
	if !output.IsZero() {
		if err := g.SetOutput(output); err != nil {
			return nil, err
		}
	}

	return project, nil
}

// Save writes the project back in a form Load round-trips. Node refs are
// derived from labels, uniquified with a numeric suffix on collision.
func (l *FileLoader) Save(path string, project *domain.Project) error {
	g := project.Graph

	plan := Planfile{
		Version: project.Version,
		Nodes:   make(map[string]NodeDTO, g.NodeCount()),
	}
	if project.Settings.BaseColor != domain.DefaultBaseColor {
		c := project.Settings.BaseColor
		plan.Settings.BaseColor = []float32{c[0], c[1], c[2]}
	}

	refs := make(map[domain.NodeID]string, g.NodeCount())
	used := make(map[string]bool, g.NodeCount())
	for node := range g.Nodes() {
		ref := sanitizeRef(node.Label)
		if ref == "" {
			ref = strings.ToLower(node.Type.Name)
		}
		base := ref
		for n := 2; used[ref]; n++ {
			ref = fmt.Sprintf("%s_%d", base, n)
		}
		used[ref] = true
		refs[node.ID] = ref

		plan.Nodes[ref] = NodeDTO{
			Type:   node.Type.Name,
			Label:  node.Label,
			Params: node.Params(),
		}
	}

	for _, link := range g.Links() {
		srcNode, _ := g.Node(link.Src.Node)
		dstNode, _ := g.Node(link.Dst.Node)
		plan.Links = append(plan.Links, LinkDTO{
			From: refs[link.Src.Node] + "." + srcNode.Type.Outputs[link.Src.Pin].Name,
			To:   refs[link.Dst.Node] + "." + dstNode.Type.Inputs[link.Dst.Pin].Name,
		})
	}
	sort.Slice(plan.Links, func(i, j int) bool {
		if plan.Links[i].To != plan.Links[j].To {
			return plan.Links[i].To < plan.Links[j].To
		}
		return plan.Links[i].From < plan.Links[j].From
	})

	if out := g.Output(); !out.IsZero() {
		plan.Output = refs[out]
	}

	data, err := yaml.Marshal(&plan)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize plan")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // plan files are not secrets
		return zerr.Wrap(err, "failed to write plan file")
	}
	return nil
}

type pinSide int

const (
	pinOutput pinSide = iota
	pinInput
)

// resolvePin parses a "<node-ref>.<pin-name>" endpoint against the node's
// type signature.
func resolvePin(g *domain.Graph, ids map[string]domain.NodeID, endpoint string, side pinSide) (domain.PinAddr, error) {
	ref, pinName, ok := strings.Cut(endpoint, ".")
	if !ok {
		return domain.PinAddr{}, zerr.With(zerr.New("link endpoint needs node.pin form"), "endpoint", endpoint)
	}
	id, ok := ids[ref]
	if !ok {
		return domain.PinAddr{}, zerr.With(zerr.New("link references unknown node"), "node", ref)
	}
	node, _ := g.Node(id)

	pins := node.Type.Outputs
	if side == pinInput {
		pins = node.Type.Inputs
	}
	for i, pin := range pins {
		if pin.Name == pinName {
			return domain.PinAddr{Node: id, Pin: i}, nil
		}
	}
	err := zerr.With(domain.ErrUnknownPin, "node", ref)
	return domain.PinAddr{}, zerr.With(err, "pin", pinName)
}

// resolveOutput picks the designated output: the explicit ref when given,
// otherwise the single node whose type category is "output". Plans without
// any such node load fine and fail at evaluation time instead.
func resolveOutput(g *domain.Graph, ids map[string]domain.NodeID, explicit string) (domain.NodeID, error) {
	if explicit != "" {
		id, ok := ids[explicit]
		if !ok {
			return domain.NodeID{}, zerr.With(zerr.New("output references unknown node"), "node", explicit)
		}
		return id, nil
	}

	var found domain.NodeID
	count := 0
	for node := range g.Nodes() {
		if node.Type.Category == "output" {
			found = node.ID
			count++
		}
	}
	if count > 1 {
		return domain.NodeID{}, zerr.With(zerr.New("plan has multiple output nodes, set output explicitly"), "count", count)
	}
	if count == 0 {
		return domain.NodeID{}, nil
	}
	return found, nil
}

// sanitizeRef lowercases a label and replaces separators so it can serve as
// a map key and link endpoint.
func sanitizeRef(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '/':
			b.WriteRune('_')
		}
	}
	return b.String()
}
