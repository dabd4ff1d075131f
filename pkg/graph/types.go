package graph

import "errors"

// Attribute keys understood by the exporters.
const (
	AttrLabel = "ui.label"
	AttrStyle = "ui.style"
)

var (
	// ErrInvalidNodeID is returned when a node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrInvalidEdgeID is returned when an edge ID is empty.
	ErrInvalidEdgeID = errors.New("edge ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] on a strict graph
	// when the node already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDuplicateEdgeID is returned by [Graph.AddEdge] when an edge with the
	// same ID already exists.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrUnknownNode is returned when setting attributes on a missing node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge is returned when setting attributes on a missing edge.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when auto-create is
	// off and the From node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when auto-create is
	// off and the To node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Attrs are string attributes attached to a node or edge.
type Attrs map[string]string

// Node is a vertex of the graph.
type Node struct {
	ID    string `json:"id"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Label returns the display label, falling back to the ID when none is set.
// An explicitly empty label is returned as is.
func (n *Node) Label() string {
	if l, ok := n.Attrs[AttrLabel]; ok {
		return l
	}
	return n.ID
}

// Style returns the style attribute, or "" if unset.
func (n *Node) Style() string { return n.Attrs[AttrStyle] }

// Edge is a directed connection From → To.
type Edge struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Label returns the display label, or "" if unset.
func (e *Edge) Label() string { return e.Attrs[AttrLabel] }

// Style returns the style attribute, or "" if unset.
func (e *Edge) Style() string { return e.Attrs[AttrStyle] }

// Options configures a [Graph].
type Options struct {
	// Strict rejects AddNode for an existing ID.
	Strict bool
	// AutoCreate lets AddEdge create missing endpoint nodes.
	AutoCreate bool
}

// DefaultOptions returns a non-strict, auto-creating configuration.
func DefaultOptions() Options {
	return Options{Strict: false, AutoCreate: true}
}
