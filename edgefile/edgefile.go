// Package edgefile reads and writes weighted edge lists as YAML documents:
//
//	nodes: [A, B, C, D]   # optional
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2.5}
//
// JSON is a YAML subset, so the same reader accepts {"edges": [...]}.
// The optional nodes list can name nodes that no edge touches; an edge list
// alone cannot express them.
package edgefile

import (
	"bytes"
	stderrors "errors"
	"io"
	"math"
	"os"

	"github.com/pingcap/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanning/graph"
)

// ErrInvalidEdge reports a record with an empty endpoint, a non-finite weight
// or an endpoint missing from the declared nodes list.
var ErrInvalidEdge = stderrors.New("edgefile: invalid edge")

// Record is one edge as stored on disk.
type Record struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Document is the on-disk form of a graph.
type Document struct {
	Nodes []string `yaml:"nodes,omitempty"`
	Edges []Record `yaml:"edges"`
}

// FromEdges converts an edge list into a Document without a nodes list.
func FromEdges(edges []graph.Edge[string, float64]) *Document {
	doc := &Document{Edges: make([]Record, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = Record{From: e.From.Value(), To: e.To.Value(), Weight: e.Weight}
	}

	return doc
}

// Graph returns the document's edges in file order.
func (d *Document) Graph() []graph.Edge[string, float64] {
	edges := make([]graph.Edge[string, float64], len(d.Edges))
	for i, r := range d.Edges {
		edges[i] = graph.NewEdge(r.Weight, r.From, r.To)
	}

	return edges
}

// Isolated returns the declared nodes that no edge touches, in declaration order.
func (d *Document) Isolated() []string {
	touched := make(map[string]struct{}, 2*len(d.Edges))
	for _, r := range d.Edges {
		touched[r.From] = struct{}{}
		touched[r.To] = struct{}{}
	}
	var out []string
	for _, n := range d.Nodes {
		if _, ok := touched[n]; !ok {
			out = append(out, n)
		}
	}

	return out
}

// Validate checks every record. The first offending record is reported as
// ErrInvalidEdge annotated with its position.
func (d *Document) Validate() error {
	var declared map[string]struct{}
	if len(d.Nodes) > 0 {
		declared = make(map[string]struct{}, len(d.Nodes))
		for _, n := range d.Nodes {
			declared[n] = struct{}{}
		}
	}
	for i, r := range d.Edges {
		switch {
		case r.From == "" || r.To == "":
			return errors.Annotatef(ErrInvalidEdge, "edge %d: empty endpoint", i)
		case math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0):
			return errors.Annotatef(ErrInvalidEdge, "edge %d: weight %v", i, r.Weight)
		}
		if declared == nil {
			continue
		}
		for _, end := range [2]string{r.From, r.To} {
			if _, ok := declared[end]; !ok {
				return errors.Annotatef(ErrInvalidEdge, "edge %d: node %q not declared", i, end)
			}
		}
	}

	return nil
}

// Decode parses and validates one document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, errors.Annotate(err, "decode edge list")
	}
	if err := doc.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return &doc, nil
}

// ReadFile decodes the document stored at path. "-" reads standard input.
func ReadFile(path string) (*Document, error) {
	if path == "-" {
		doc, err := Decode(os.Stdin)
		return doc, errors.Annotate(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Annotatef(err, "read %s", path)
	}

	return doc, nil
}

// Encode writes doc to w as YAML with two-space indentation.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Annotate(err, "encode edge list")
	}

	return errors.Trace(enc.Close())
}

// WriteFile encodes doc into path, replacing it. "-" writes standard output.
func WriteFile(path string, doc *Document) error {
	if path == "-" {
		return Encode(os.Stdout, doc)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}

	return errors.Annotatef(os.WriteFile(path, buf.Bytes(), 0o644), "write %s", path)
}
