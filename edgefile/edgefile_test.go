package edgefile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanning/edgefile"
	"github.com/katalvlaran/spanning/graph"
)

const sixNodes = `
nodes: ["1", "2", "3", "4", "5", "6"]
edges:
  - {from: "5", to: "4", weight: 9}
  - {from: "5", to: "1", weight: 4}
  - {from: "4", to: "3", weight: 5}
  - {from: "4", to: "2", weight: 3}
  - {from: "4", to: "1", weight: 1}
  - {from: "1", to: "2", weight: 2}
  - {from: "3", to: "6", weight: 8}
  - {from: "3", to: "2", weight: 3}
  - {from: "6", to: "2", weight: 7}
`

func TestDecode_YAML(t *testing.T) {
	doc, err := edgefile.Decode(strings.NewReader(sixNodes))
	require.NoError(t, err)
	require.Len(t, doc.Edges, 9)
	assert.Len(t, doc.Nodes, 6)
	assert.Empty(t, doc.Isolated())

	edges := doc.Graph()
	assert.Equal(t, graph.NewEdge(9.0, "5", "4"), edges[0])
	assert.Equal(t, 42.0, graph.TotalWeight(edges))
}

func TestDecode_JSON(t *testing.T) {
	doc, err := edgefile.Decode(strings.NewReader(`{"edges": [{"from": "A", "to": "B", "weight": 0.5}]}`))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge[string, float64]{graph.NewEdge(0.5, "A", "B")}, doc.Graph())
	assert.Nil(t, doc.Nodes)
}

func TestDecode_Empty(t *testing.T) {
	doc, err := edgefile.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Graph())
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"EmptyEndpoint", `edges: [{from: A, to: "", weight: 1}]`, true},
		{"NaNWeight", `edges: [{from: A, to: B, weight: .nan}]`, true},
		{"InfWeight", `edges: [{from: A, to: B, weight: .inf}]`, true},
		{"Undeclared", "nodes: [A]\nedges: [{from: A, to: B, weight: 1}]", true},
		{"UnknownField", `edges: [{from: A, to: B, cost: 1}]`, false},
		{"NotAList", `edges: 3`, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc, err := edgefile.Decode(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Nil(t, doc)
			if tc.invalid {
				assert.ErrorIs(t, err, edgefile.ErrInvalidEdge)
			} else {
				assert.NotErrorIs(t, err, edgefile.ErrInvalidEdge)
			}
		})
	}
}

func TestIsolated(t *testing.T) {
	doc, err := edgefile.Decode(strings.NewReader("nodes: [A, B, C, D]\nedges: [{from: A, to: B, weight: 1}]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, doc.Isolated())
}

func TestRoundTrip(t *testing.T) {
	edges := []graph.Edge[string, float64]{
		graph.NewEdge(1.0, "A", "B"),
		graph.NewEdge(2.25, "B", "C"),
	}
	var buf bytes.Buffer
	require.NoError(t, edgefile.Encode(&buf, edgefile.FromEdges(edges)))
	assert.NotContains(t, buf.String(), "nodes")

	doc, err := edgefile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, edges, doc.Graph())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")
	doc := &edgefile.Document{
		Nodes: []string{"X", "Y", "Z"},
		Edges: []edgefile.Record{{From: "X", To: "Y", Weight: 3}},
	}
	require.NoError(t, edgefile.WriteFile(path, doc))

	got, err := edgefile.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, []string{"Z"}, got.Isolated())

	_, err = edgefile.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`edges: [{from: A, to: "", weight: 1}]`), 0o644))
	_, err = edgefile.ReadFile(bad)
	assert.ErrorIs(t, err, edgefile.ErrInvalidEdge)
	assert.Contains(t, err.Error(), "bad.yaml")
}
