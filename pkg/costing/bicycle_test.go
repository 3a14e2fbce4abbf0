package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

func TestBicycleAccessVeto(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)

	edge := datastructure.NewDirectedEdge(1, 100.0, 0.0, pkg.ACCESS_AUTO, 0,
		pkg.SECONDARY, pkg.USE_ROAD)
	for _, uturn := range []bool{false, true} {
		assert.False(t, bc.Allowed(edge, 0, uturn, 500.0))
	}
}

func TestBicycleNoHierarchyTransitions(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)
	assert.False(t, bc.AllowTransitions())
}

func TestBicycleUturnOnlyAtDeadEnd(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)

	edge := datastructure.NewDirectedEdge(1, 100.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.RESIDENTIAL, pkg.USE_ROAD)
	assert.False(t, bc.Allowed(edge, 0, true, 500.0))

	edge.SetDeadEnd(true)
	assert.True(t, bc.Allowed(edge, 0, true, 500.0))
}

func TestBicycleSurfaceAndUseFactors(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)

	cycleway := datastructure.NewDirectedEdge(1, 500.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SERVICE_OTHER, pkg.USE_CYCLEWAY)
	road := datastructure.NewDirectedEdge(2, 500.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SECONDARY, pkg.USE_ROAD)
	unpavedRoad := datastructure.NewDirectedEdge(3, 500.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.TRACK, pkg.USE_TRACK)
	unpavedRoad.SetUnpaved(true)

	assert.Equal(t, bc.GetSeconds(cycleway), bc.GetCost(cycleway))
	assert.Greater(t, bc.GetCost(road), bc.GetCost(cycleway))
	assert.Greater(t, bc.GetCost(unpavedRoad), bc.GetCost(road))

	for _, e := range []*datastructure.DirectedEdge{cycleway, road, unpavedRoad} {
		assert.GreaterOrEqual(t, bc.GetCost(e), bc.GetSeconds(e))
	}
}

func TestBicycleRoundaboutPenalized(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)

	road := datastructure.NewDirectedEdge(1, 500.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SECONDARY, pkg.USE_ROAD)
	roundabout := datastructure.NewDirectedEdge(2, 500.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SECONDARY, pkg.USE_ROAD)
	roundabout.SetRoundabout(true)

	assert.Greater(t, bc.GetCost(roundabout), bc.GetCost(road))
	assert.GreaterOrEqual(t, bc.GetCost(roundabout), bc.GetSeconds(roundabout))
}

func TestBicycleFilter(t *testing.T) {
	bc, err := NewBicycleCost(nil)
	require.NoError(t, err)
	filter := bc.GetFilter()

	cycleway := datastructure.NewDirectedEdge(1, 100.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SERVICE_OTHER, pkg.USE_CYCLEWAY)
	assert.True(t, filter(cycleway))

	steps := datastructure.NewDirectedEdge(2, 100.0, 0.0, pkg.ACCESS_BICYCLE, 0,
		pkg.SERVICE_OTHER, pkg.USE_STEPS)
	assert.False(t, filter(steps))

	motorway := datastructure.NewDirectedEdge(3, 100.0, 100.0, pkg.ACCESS_ALL, 0,
		pkg.MOTORWAY, pkg.USE_ROAD)
	assert.False(t, filter(motorway))
}
