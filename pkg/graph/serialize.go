package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document - JSON form of a Graph
// =============================================================================

// Document is the serialization format for a [Graph].
// Node and edge order is preserved.
type Document struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ToDocument converts a graph to its serializable form.
func ToDocument(g *Graph) Document {
	doc := Document{
		Name:  g.Name(),
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{ID: n.ID, Attrs: cloneAttrs(n.Attrs)})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{ID: e.ID, From: e.From, To: e.To, Attrs: cloneAttrs(e.Attrs)})
	}
	return doc
}

// FromDocument builds a graph from a document. The graph is strict and does
// not auto-create, so a document with dangling edges is rejected.
func FromDocument(doc Document) (*Graph, error) {
	g := New(doc.Name, Options{Strict: true})
	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		for k, v := range n.Attrs {
			_ = g.SetNodeAttr(n.ID, k, v)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.ID, e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %q: %w", e.ID, err)
		}
		for k, v := range e.Attrs {
			_ = g.SetEdgeAttr(e.ID, k, v)
		}
	}
	g.opts = DefaultOptions()
	return g, nil
}

func cloneAttrs(a Attrs) Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromDocument(doc)
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
