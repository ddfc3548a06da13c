package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/spanning/builder"
	"github.com/katalvlaran/spanning/disjointset"
	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
)

// buildTriangle returns A-B (1), B-C (2), A-C (3).
// Its MST is {A-B, B-C} with total weight 3.
func buildTriangle() []graph.Edge[string, int] {
	return []graph.Edge[string, int]{
		graph.NewEdge(1, "A", "B"),
		graph.NewEdge(2, "B", "C"),
		graph.NewEdge(3, "A", "C"),
	}
}

// buildSixNodes returns the six-node network used throughout the package
// examples. Two weight-3 edges tie; the MST weighs 17 either way.
func buildSixNodes() []graph.Edge[int, int] {
	return []graph.Edge[int, int]{
		graph.NewEdge(9, 5, 4),
		graph.NewEdge(4, 5, 1),
		graph.NewEdge(5, 4, 3),
		graph.NewEdge(3, 4, 2),
		graph.NewEdge(1, 4, 1),
		graph.NewEdge(2, 1, 2),
		graph.NewEdge(8, 3, 6),
		graph.NewEdge(3, 3, 2),
		graph.NewEdge(7, 6, 2),
	}
}

// buildMediumGraph returns a connected fixture: a spanning path over n
// vertices plus random chords with whole-number weights in [1, 20].
func buildMediumGraph(tb testing.TB, n int, p float64, seed int64) builder.Edges {
	tb.Helper()
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 20), builder.WithPrefixIDs("V")},
		builder.Path(n), builder.RandomSparse(n, p),
	)
	require.NoError(tb, err)

	return edges
}

// assertSpanningTree checks that mst has |V|-1 edges, contains no cycle and
// touches every node of edges.
func assertSpanningTree[T comparable, W any](t *testing.T, edges, mst []graph.Edge[T, W]) {
	t.Helper()
	nodes := graph.Nodes(edges)
	require.Len(t, mst, len(nodes)-1)

	forest := disjointset.NewWithCapacity[graph.Node[T]](len(nodes))
	for _, n := range nodes {
		forest.MakeSet(n)
	}
	for _, e := range mst {
		merged, err := forest.Union(e.From, e.To)
		require.NoError(t, err)
		require.True(t, merged, "edge %v closes a cycle", e)
	}
	assert.Equal(t, 1, forest.Size())
}

func TestTriangle(t *testing.T) {
	edges := buildTriangle()
	want := []graph.Edge[string, int]{graph.NewEdge(1, "A", "B"), graph.NewEdge(2, "B", "C")}

	k, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, want, k)

	p, err := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, want, p)
}

func TestSixNodes_BothAgree(t *testing.T) {
	edges := buildSixNodes()

	k, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	p, err := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)

	assert.Equal(t, 17, graph.TotalWeight(k))
	assert.Equal(t, graph.TotalWeight(k), graph.TotalWeight(p))
	assertSpanningTree(t, edges, k)
	assertSpanningTree(t, edges, p)
	assert.True(t, graph.SameEdgeSet(k, p))

	// Kruskal emits in weight order; ties keep input order (3-2 is the second weight-3 edge
	// and the first, 4-2, closes a cycle).
	assert.Equal(t, []graph.Edge[int, int]{
		graph.NewEdge(1, 4, 1),
		graph.NewEdge(2, 1, 2),
		graph.NewEdge(3, 3, 2),
		graph.NewEdge(4, 5, 1),
		graph.NewEdge(7, 6, 2),
	}, k)

	// Prim emits in attachment order from node 5, parent first.
	assert.Equal(t, []graph.Edge[int, int]{
		graph.NewEdge(4, 5, 1),
		graph.NewEdge(1, 1, 4),
		graph.NewEdge(2, 1, 2),
		graph.NewEdge(3, 2, 3),
		graph.NewEdge(7, 2, 6),
	}, p)
}

func TestPrim_StartIndependentWeight(t *testing.T) {
	edges := buildSixNodes()
	prim := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int])
	for start := 1; start <= 6; start++ {
		mst, err := prim.BuildMSTFrom(start)
		require.NoError(t, err, "start %d", start)
		assert.Equal(t, 17, graph.TotalWeight(mst), "start %d", start)
		assertSpanningTree(t, edges, mst)
	}

	_, err := prim.BuildMSTFrom(99)
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)
}

func TestPrim_SingleEdgeRelaxation(t *testing.T) {
	// A shortest-path tree from A would take A-C (1.5); the MST takes B-C.
	edges := []graph.Edge[string, float64]{
		graph.NewEdge(1.0, "A", "B"),
		graph.NewEdge(1.5, "A", "C"),
		graph.NewEdge(1.0, "B", "C"),
	}
	mst, err := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[float64]).BuildMSTFrom("A")
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge[string, float64]{
		graph.NewEdge(1.0, "A", "B"),
		graph.NewEdge(1.0, "B", "C"),
	}, mst)
}

func TestEmptyAndLoopOnly(t *testing.T) {
	var empty []graph.Edge[string, int]
	k, err := prim_kruskal.NewKruskal(empty, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.NotNil(t, k)
	assert.Empty(t, k)

	p, err := prim_kruskal.NewPrim(empty, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Empty(t, p)

	// One node, no usable edge: the spanning tree of a single node is empty.
	loop := []graph.Edge[string, int]{graph.NewEdge(5, "A", "A")}
	k, err = prim_kruskal.NewKruskal(loop, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Empty(t, k)
	p, err = prim_kruskal.NewPrim(loop, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestLoopsAndParallelEdges(t *testing.T) {
	edges := []graph.Edge[string, int]{
		graph.NewEdge(0, "A", "A"),
		graph.NewEdge(5, "A", "B"),
		graph.NewEdge(1, "B", "A"),
		graph.NewEdge(4, "B", "B"),
	}
	want := []graph.Edge[string, int]{graph.NewEdge(1, "B", "A")}

	k, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, want, k)

	p, err := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int]).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge[string, int]{graph.NewEdge(1, "A", "B")}, p)
	assert.True(t, graph.SameEdgeSet(want, p))
}

func TestDisconnected(t *testing.T) {
	edges := []graph.Edge[string, int]{
		graph.NewEdge(1, "A", "B"),
		graph.NewEdge(2, "C", "D"),
		graph.NewEdge(3, "D", "E"),
	}

	kruskal := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int])
	mst, err := kruskal.BuildMST()
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Nil(t, mst, "no partial tree on failure")
	assert.Contains(t, err.Error(), "selected 3 of 4 edges over 5 nodes")

	// The forest left behind holds the connected components.
	forest := kruskal.Forest()
	assert.Equal(t, 2, forest.Size())
	same, err := forest.Connected(graph.NewNode("C"), graph.NewNode("E"))
	require.NoError(t, err)
	assert.True(t, same)
	same, err = forest.Connected(graph.NewNode("A"), graph.NewNode("E"))
	require.NoError(t, err)
	assert.False(t, same)

	mst, err = prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int]).BuildMST()
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Nil(t, mst)
}

func TestKruskal_Reusable(t *testing.T) {
	kruskal := prim_kruskal.NewKruskal(buildSixNodes(), prim_kruskal.Ascending[int])
	first, err := kruskal.BuildMST()
	require.NoError(t, err)
	second, err := kruskal.BuildMST()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 6, kruskal.Forest().Len())
	assert.Equal(t, 1, kruskal.Forest().Size())
}

func TestNilComparator(t *testing.T) {
	edges := buildTriangle()

	_, err := prim_kruskal.NewKruskal(edges, nil).BuildMST()
	assert.ErrorIs(t, err, prim_kruskal.ErrNilComparator)

	prim := prim_kruskal.NewPrim(edges, nil)
	_, err = prim.BuildMST()
	assert.ErrorIs(t, err, prim_kruskal.ErrNilComparator)
	_, err = prim.BuildMSTFrom("A")
	assert.ErrorIs(t, err, prim_kruskal.ErrNilComparator)

	_, err = prim_kruskal.Compute(edges, nil, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	assert.ErrorIs(t, err, prim_kruskal.ErrNilComparator)
}

func TestMaximumSpanningTree(t *testing.T) {
	edges := buildSixNodes()
	desc := prim_kruskal.Descending(prim_kruskal.Ascending[int])

	k, err := prim_kruskal.NewKruskal(edges, desc).BuildMST()
	require.NoError(t, err)
	p, err := prim_kruskal.NewPrim(edges, desc).BuildMST()
	require.NoError(t, err)

	assert.Equal(t, 33, graph.TotalWeight(k))
	assert.Equal(t, 33, graph.TotalWeight(p))
	assertSpanningTree(t, edges, k)
	assertSpanningTree(t, edges, p)
}

func TestCompute(t *testing.T) {
	edges := buildSixNodes()
	asc := prim_kruskal.Ascending[int]

	def, err := prim_kruskal.Compute(edges, asc)
	require.NoError(t, err)
	direct, err := prim_kruskal.NewKruskal(edges, asc).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, direct, def, "Kruskal is the default method")

	fromOne, err := prim_kruskal.Compute(edges, asc,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithStart(1))
	require.NoError(t, err)
	assert.Equal(t, graph.NewNode(1), fromOne[0].From)
	assert.Equal(t, 17, graph.TotalWeight(fromOne))

	_, err = prim_kruskal.Compute(edges, asc,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithStart("1"))
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)
	assert.Contains(t, err.Error(), "is string, want int")

	_, err = prim_kruskal.Compute(edges, asc,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithStart(42))
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)

	_, err = prim_kruskal.Compute(edges, asc, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
	assert.Contains(t, err.Error(), `"boruvka"`)
}

func TestDefaultOptions(t *testing.T) {
	o := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, o.Method)
	assert.Nil(t, o.Start)
	require.NotNil(t, o.Logger)

	// A nil logger keeps the no-op default instead of panicking later.
	_, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.Ascending[int], prim_kruskal.WithLogger(nil))
	assert.NoError(t, err)
}

func TestLogger_EdgeDecisions(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(obs)
	edges := buildSixNodes()

	_, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int], prim_kruskal.WithLogger(log)).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, 5, logs.FilterMessage("kruskal: edge selected").Len())
	// 4-2 and 4-3 are popped before the fifth edge is found.
	assert.Equal(t, 2, logs.FilterMessage("kruskal: edge closes a cycle").Len())

	last := logs.FilterMessage("kruskal: edge selected").All()[4]
	assert.Equal(t, int64(1), last.ContextMap()["components"])

	_, err = prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[int], prim_kruskal.WithLogger(log)).BuildMST()
	require.NoError(t, err)
	assert.Equal(t, 5, logs.FilterMessage("prim: edge selected").Len())
}

func TestRandomGraphs_WeightAgreement(t *testing.T) {
	const n = 60
	for seed := int64(1); seed <= 20; seed++ {
		edges := buildMediumGraph(t, n, 0.15, seed)

		k, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[float64]).BuildMST()
		require.NoError(t, err, "seed %d", seed)
		prim := prim_kruskal.NewPrim(edges, prim_kruskal.Ascending[float64])
		p, err := prim.BuildMST()
		require.NoError(t, err, "seed %d", seed)
		q, err := prim.BuildMSTFrom("V37")
		require.NoError(t, err, "seed %d", seed)

		assertSpanningTree(t, edges, k)
		assertSpanningTree(t, edges, p)
		assertSpanningTree(t, edges, q)
		assert.Equal(t, graph.TotalWeight(k), graph.TotalWeight(p), "seed %d", seed)
		assert.Equal(t, graph.TotalWeight(k), graph.TotalWeight(q), "seed %d", seed)
	}
}
