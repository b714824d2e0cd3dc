package compare_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/compare"
)

func TestCompare_InputOrder(t *testing.T) {
	shapes := []builder.Shape{builder.ShapeBus, builder.ShapeStar, builder.ShapeRing}
	rows := compare.Compare(shapes, builder.ProfileByName("small"))

	require.Len(t, rows, 3)
	for i, s := range shapes {
		assert.Equal(t, s, rows[i].Shape)
	}
	assert.Equal(t, 3, rows[0].Snapshot.EdgeCount) // bus of 4
	assert.Equal(t, 3, rows[1].Snapshot.EdgeCount) // star of 4
	assert.Equal(t, 4, rows[2].Snapshot.EdgeCount) // ring of 4
}

func TestCompare_DefaultShapesSmall(t *testing.T) {
	rows := compare.Compare(compare.DefaultShapes(), builder.ProfileByName("small"), builder.WithSeed(7))
	require.Len(t, rows, 6)

	byShape := map[builder.Shape]compare.Row{}
	for _, r := range rows {
		byShape[r.Shape] = r
		assert.True(t, r.Snapshot.IsConnected, r.Shape.String())
	}
	assert.Equal(t, 8, byShape[builder.ShapeSpineLeaf].Snapshot.NodeCount)
	assert.Equal(t, 3, byShape[builder.ShapeTree].Snapshot.EdgeCount)
}

func TestCompare_Reproducible(t *testing.T) {
	p := builder.ProfileByName("large")
	a := compare.Compare([]builder.Shape{builder.ShapeMesh}, p, builder.WithSeed(42))
	b := compare.Compare([]builder.Shape{builder.ShapeMesh}, p, builder.WithSeed(42))
	assert.Equal(t, a[0].Snapshot.EdgeCount, b[0].Snapshot.EdgeCount)
	assert.Equal(t, a[0].Snapshot.Density, b[0].Snapshot.Density)
}

func TestCompare_SharedRandIsSequential(t *testing.T) {
	shapes := []builder.Shape{builder.ShapeMesh, builder.ShapeMesh, builder.ShapeMesh}
	p := builder.ProfileByName("large")
	run := func() []compare.Row {
		return compare.Compare(shapes, p, builder.WithRand(rand.New(rand.NewSource(9))))
	}

	a, b := run(), run()
	require.Len(t, a, 3)
	for i := range a {
		assert.Equal(t, a[i].Snapshot, b[i].Snapshot, "row %d", i)
	}
}

func TestRow_Cells(t *testing.T) {
	rows := compare.Compare([]builder.Shape{builder.ShapeStar}, builder.SizeProfile{NodeCount: 3})
	assert.Equal(t, []string{"star", "3", "2", "0.667", "Yes", "1.3"}, rows[0].Cells())

	empty := compare.Compare([]builder.Shape{builder.ShapeRing}, builder.SizeProfile{NodeCount: 2})
	assert.Equal(t, []string{"ring", "0", "0", "0.000", "No", "0.0"}, empty[0].Cells())
}

func TestTable(t *testing.T) {
	out := compare.Table(compare.Compare([]builder.Shape{builder.ShapeStar, builder.ShapeBus}, builder.ProfileByName("small")))
	for _, h := range compare.Header {
		assert.True(t, strings.Contains(out, h), h)
	}
	assert.True(t, strings.Contains(out, "star"))
	assert.True(t, strings.Contains(out, "bus"))
	assert.True(t, strings.Contains(out, "0.500"))
}
