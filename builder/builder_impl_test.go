// File: builder_impl_test.go
// Package builder_test contains functional tests for the topology
// constructors: node/link counts, attributes and the empty-model policy.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/core"
)

// degreeOf fails the test when id is missing.
func degreeOf(t *testing.T, g *core.Graph, id string) int {
	t.Helper()
	d, err := g.Degree(id)
	require.NoError(t, err)
	return d
}

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	ids5 := builder.NodeIDs("n", 5)

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Star(5)",
			ctor:  builder.Star(ids5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				hub, _ := g.Node("n1")
				assert.Equal(t, builder.RoleHub, hub.Role)
				assert.Equal(t, builder.DeviceSwitch, hub.DeviceType)
				leaf, _ := g.Node("n4")
				assert.Equal(t, builder.RoleEndpoint, leaf.Role)
				assert.Equal(t, builder.DeviceHost, leaf.DeviceType)
				attrs, ok := g.Edge("n4", "n1")
				require.True(t, ok)
				assert.Equal(t, core.LinkAttrs{Bandwidth: 1000, MTU: 1500, LinkType: "ethernet"}, attrs)
				assert.Equal(t, 4, degreeOf(t, g, "n1"))
			},
		},
		{
			name:  "Ring(5)",
			ctor:  builder.Ring(ids5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range ids5 {
					if d := degreeOf(t, g, id); d != 2 {
						t.Errorf("Ring: degree(%s)=%d, want 2", id, d)
					}
				}
				attrs, ok := g.Edge("n5", "n1")
				require.True(t, ok, "ring must close n5-n1")
				assert.Equal(t, builder.LinkSerial, attrs.LinkType)
				n, _ := g.Node("n3")
				assert.Equal(t, builder.DeviceRouter, n.DeviceType)
			},
		},
		{
			name:  "FullMesh(5)",
			ctor:  builder.FullMesh(ids5),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range ids5 {
					assert.Equal(t, 4, degreeOf(t, g, id))
				}
			},
		},
		{
			name:  "Bus(5)",
			ctor:  builder.Bus(ids5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 1, degreeOf(t, g, "n1"))
				assert.Equal(t, 1, degreeOf(t, g, "n5"))
				attrs, _ := g.Edge("n2", "n3")
				assert.Equal(t, builder.Bandwidth100M, attrs.Bandwidth)
				assert.Equal(t, builder.LinkCoax, attrs.LinkType)
				n, _ := g.Node("n2")
				assert.Equal(t, builder.DeviceWorkstation, n.DeviceType)
			},
		},
		{
			name:  "Tree(5,2)",
			ctor:  builder.Tree(ids5, 2),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				root, _ := g.Node("n1")
				assert.Equal(t, builder.RoleRoot, root.Role)
				assert.True(t, root.HasLevel)
				assert.Equal(t, 0, root.Level)
				// n2,n3 under n1; n4,n5 under n2.
				assert.True(t, g.HasEdge("n1", "n2"))
				assert.True(t, g.HasEdge("n1", "n3"))
				assert.True(t, g.HasEdge("n2", "n4"))
				assert.True(t, g.HasEdge("n2", "n5"))
				leaf, _ := g.Node("n5")
				assert.Equal(t, builder.RoleBranch, leaf.Role)
				assert.Equal(t, 2, leaf.Level)
			},
		},
		{
			name:  "SpineLeaf(2,3)",
			ctor:  builder.SpineLeaf(2, 3),
			wantV: 2 + 3 + 3*builder.HostsPerLeaf, wantE: 2*3 + 3*builder.HostsPerLeaf,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, degreeOf(t, g, "spine1"))
				assert.Equal(t, 2+builder.HostsPerLeaf, degreeOf(t, g, "leaf2"))
				fabric, _ := g.Edge("spine2", "leaf3")
				assert.Equal(t, builder.Bandwidth10G, fabric.Bandwidth)
				assert.Equal(t, builder.MTUJumbo, fabric.MTU)
				host, ok := g.Node("leaf1-host2")
				require.True(t, ok)
				assert.Equal(t, core.NodeAttrs{Role: "host", DeviceType: "server", Tier: "access"}, host)
				access, _ := g.Edge("leaf1", "leaf1-host2")
				assert.Equal(t, builder.MTUStandard, access.MTU)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount(), "node count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_TooFewNodes checks the strict constructors return ErrTooFewNodes
// and the New* wrappers return an empty model instead.
func TestBuilders_TooFewNodes(t *testing.T) {
	t.Parallel()

	one := []string{"A"}
	two := []string{"A", "B"}

	cases := []struct {
		name string
		ctor builder.Constructor
		soft *core.Graph
	}{
		{"Star", builder.Star(one), builder.NewStar(one)},
		{"Ring", builder.Ring(two), builder.NewRing(two)},
		{"Bus", builder.Bus(one), builder.NewBus(one)},
		{"Tree", builder.Tree(nil, 2), builder.NewTree(nil, 2)},
		{"TreeBranching", builder.Tree(two, 0), builder.NewTree(two, 0)},
		{"SpineLeaf", builder.SpineLeaf(-1, 2), builder.NewSpineLeaf(-1, 2)},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		if !errors.Is(err, builder.ErrTooFewNodes) {
			t.Errorf("%s: expected ErrTooFewNodes, got %v", tc.name, err)
		}
		assert.Equal(t, 0, tc.soft.NodeCount(), tc.name)
		assert.Equal(t, 0, tc.soft.EdgeCount(), tc.name)
	}
}

// TestBuildGraph_NilConstructor rejects nil constructors without panicking.
func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Star([]string{"A", "B"}), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_Composes checks several constructors share one graph.
func TestBuildGraph_Composes(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.Ring([]string{"A", "B", "C"}),
		builder.Star([]string{"C", "X", "Y"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	c, _ := g.Node("C")
	assert.Equal(t, builder.RoleHub, c.Role, "later constructor merges attributes")
}

// TestPartialMesh_RequiresRNG covers the strict RNG contract.
func TestPartialMesh_RequiresRNG(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.PartialMesh(builder.NodeIDs("r", 4)))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	g := builder.NewPartialMesh(builder.NodeIDs("r", 4))
	assert.Equal(t, 4, g.NodeCount(), "New* falls back to a time-seeded source")
}

// TestPartialMesh_Seeded checks reproducibility and structural bounds.
func TestPartialMesh_Seeded(t *testing.T) {
	ids := builder.NodeIDs("r", 8)
	g1 := builder.NewPartialMesh(ids, builder.WithSeed(42))
	g2 := builder.NewPartialMesh(ids, builder.WithSeed(42))

	require.Equal(t, g1.Edges(), g2.Edges(), "same seed, same mesh")

	// Each node initiates up to 3 links; with 8 nodes every node has degree ≥ 3
	// and the link total is at most 8*3.
	assert.LessOrEqual(t, g1.EdgeCount(), 8*builder.PartialMeshFanout)
	for _, id := range ids {
		assert.GreaterOrEqual(t, degreeOf(t, g1, id), builder.PartialMeshFanout)
	}
	allowed := map[int]bool{100: true, 1000: true, 10000: true}
	for _, e := range g1.Edges() {
		assert.True(t, allowed[e.Attrs.Bandwidth], "bandwidth %d", e.Attrs.Bandwidth)
		assert.Equal(t, builder.LinkEthernet, e.Attrs.LinkType)
	}
}

// TestPartialMesh_SmallInputs covers n ≤ 1 and n = 2.
func TestPartialMesh_SmallInputs(t *testing.T) {
	g := builder.NewPartialMesh([]string{"solo"}, builder.WithSeed(1))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	g = builder.NewPartialMesh([]string{"a", "b"}, builder.WithSeed(1))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestTree_FrontierRollsOver checks that leftovers move to the next level.
func TestTree_FrontierRollsOver(t *testing.T) {
	ids := builder.NodeIDs("t", 8) // 1 root, 3 children, 4 grandchildren
	g := builder.NewTree(ids, 3)
	assert.Equal(t, 7, g.EdgeCount())
	for _, id := range []string{"t2", "t3", "t4"} {
		assert.True(t, g.HasEdge("t1", id))
	}
	for _, id := range []string{"t5", "t6", "t7"} {
		assert.True(t, g.HasEdge("t2", id))
	}
	assert.True(t, g.HasEdge("t3", "t8"))
	n, _ := g.Node("t8")
	assert.Equal(t, 2, n.Level)
}

// TestHybrid_DefaultGroups checks the three-tier default layout.
func TestHybrid_DefaultGroups(t *testing.T) {
	g := builder.NewHybrid(builder.DefaultHybridGroups())

	// core mesh 1 + dist ring 3 + access star 3 + core-dist 4 + dist-access 3.
	assert.Equal(t, 9, g.NodeCount())
	assert.Equal(t, 14, g.EdgeCount())

	fiber, ok := g.Edge("core2", "dist2")
	require.True(t, ok)
	assert.Equal(t, builder.LinkFiber, fiber.LinkType)
	assert.Equal(t, builder.Bandwidth10G, fiber.Bandwidth)
	assert.False(t, g.HasEdge("core1", "dist3"), "interconnect is capped at the first two IDs")

	uplink, ok := g.Edge("dist3", "access1")
	require.True(t, ok)
	assert.Equal(t, builder.Bandwidth1G, uplink.Bandwidth)

	assert.Equal(t, []string{"core1", "core2", "dist1", "dist2", "dist3", "access1", "host1", "host2", "host3"}, g.Nodes())
}

// TestHybrid_OtherGroupsAndSmallGroups covers bus groups and skipped groups.
func TestHybrid_OtherGroupsAndSmallGroups(t *testing.T) {
	g := builder.NewHybrid(map[string][]string{
		"zeta":            {"z1", "z2"},
		"alpha":           {"a1", "a2", "a3"},
		"distribution":    {"d1", "d2"}, // too small for a ring
		builder.GroupCore: {"c1"},
	})

	// Group order: core, distribution, alpha, zeta.
	// core (1 node mesh) and distribution (ring < 3) contribute nodes only via
	// the interconnect; alpha and zeta are buses.
	assert.True(t, g.HasEdge("a1", "a2"))
	assert.True(t, g.HasEdge("z1", "z2"))
	assert.True(t, g.HasEdge("c1", "d1"))
	assert.True(t, g.HasEdge("c1", "d2"))
	assert.False(t, g.HasEdge("d1", "d2"))

	d1, _ := g.Node("d1")
	assert.Equal(t, core.NodeAttrs{}, d1, "interconnect endpoints are added bare")
	assert.Equal(t, []string{"c1", "a1", "a2", "a3", "z1", "z2", "d1", "d2"}, g.Nodes())
}

// TestNew_DuplicateIDsYieldEmpty checks a self-loop from repeated IDs is not fatal.
func TestNew_DuplicateIDsYieldEmpty(t *testing.T) {
	g := builder.NewBus([]string{"A", "A"})
	assert.Equal(t, 0, g.NodeCount())
}
