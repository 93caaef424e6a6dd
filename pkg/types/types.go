package types

import "errors"

// Validation errors
var (
	ErrEmptyLabel    = errors.New("label cannot be empty")
	ErrEmptyEndpoint = errors.New("edge source and target cannot be empty")
)

// NodeType classifies the biological role of a node in the regulatory network.
type NodeType string

const (
	NodeTypeReceptor            NodeType = "receptor"
	NodeTypeHormone             NodeType = "hormone"
	NodeTypeComplex             NodeType = "complex"
	NodeTypeAdapter             NodeType = "adapter"
	NodeTypeRepressor           NodeType = "repressor"
	NodeTypeTransporter         NodeType = "transporter"
	NodeTypeTranscriptionFactor NodeType = "transcription_factor"
	NodeTypeProcess             NodeType = "process"
)

// NodeClass is the SBGN entity class of a node. Exactly one node in a valid
// graph (the trait/process node) carries ClassBiologicalActivity; every other
// node is a macromolecule.
type NodeClass string

const (
	ClassMacromolecule      NodeClass = "macromolecule"
	ClassBiologicalActivity NodeClass = "biological_activity"
)

// EdgeClass is the causal influence category of an edge.
type EdgeClass string

const (
	EdgePositiveInfluence    EdgeClass = "positive_influence"
	EdgeNegativeInfluence    EdgeClass = "negative_influence"
	EdgeLogicArc             EdgeClass = "logic_arc"
	EdgeNecessaryStimulation EdgeClass = "necessary_stimulation"
)

// Confidence grades the strength of literature evidence behind an edge.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Node represents one entity in the causal regulatory network. Label is the
// node's natural key; no two nodes in a graph share a label.
type Node struct {
	Label       string    `json:"label" validate:"required"`
	Type        NodeType  `json:"type" validate:"required,oneof=receptor hormone complex adapter repressor transporter transcription_factor process"`
	Class       NodeClass `json:"class" validate:"required,oneof=macromolecule biological_activity"`
	Compartment string    `json:"compartment"`
}

// IsTrait reports whether this node is the single trait/process node
// representing the modeled biological outcome.
func (n *Node) IsTrait() bool {
	return n.Type == NodeTypeProcess
}

// Validate checks the fields that must be set regardless of schema rules.
func (n *Node) Validate() error {
	if n.Label == "" {
		return ErrEmptyLabel
	}
	return nil
}

// Edge represents one causal influence between two nodes, identified by their
// labels. Papers preserves the order of the comma-separated citation cell.
type Edge struct {
	Source     string     `json:"source" validate:"required"`
	Target     string     `json:"target" validate:"required"`
	Class      EdgeClass  `json:"class" validate:"required,oneof=positive_influence negative_influence logic_arc necessary_stimulation"`
	Confidence Confidence `json:"confidence" validate:"required,oneof=high medium low"`
	Papers     []string   `json:"papers,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Validate checks the fields that must be set regardless of schema rules.
func (e *Edge) Validate() error {
	if e.Source == "" || e.Target == "" {
		return ErrEmptyEndpoint
	}
	return nil
}

// Graph is the validated, immutable aggregate for one run: the node and edge
// sets after normalization, deduplication, and validation, plus a label index
// built once at construction time. Callers must not mutate Nodes or Edges
// after NewGraph.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index map[string]int
}

// NewGraph builds a graph and its label index. Node and edge order is
// preserved as given; downstream layout depends on it.
func NewGraph(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		Nodes: nodes,
		Edges: edges,
		index: make(map[string]int, len(nodes)),
	}
	for i, n := range nodes {
		if _, ok := g.index[n.Label]; !ok {
			g.index[n.Label] = i
		}
	}
	return g
}

// NodeByLabel resolves a label against the graph's node index.
func (g *Graph) NodeByLabel(label string) (*Node, bool) {
	i, ok := g.index[label]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// TraitNode returns the single process node, or false if the graph has none.
// A validated graph always has exactly one.
func (g *Graph) TraitNode() (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].IsTrait() {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.Edges) }
