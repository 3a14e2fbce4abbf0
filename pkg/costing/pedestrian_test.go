package costing

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
)

func TestPedestrianNoHierarchyTransitions(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)

	// the search engine must never ascend a level for pedestrian,
	// regardless of how much budget the per-level limits still hold
	assert.False(t, pc.AllowTransitions())
	for i := range pc.GetHierarchyLimits() {
		assert.False(t, pc.AllowTransitions() && pc.GetHierarchyLimits()[i].AllowUpTransition())
	}
}

func TestPedestrianUturnAlwaysAllowed(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)

	edge := datastructure.NewDirectedEdge(1, 100.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.RESIDENTIAL, pkg.USE_ROAD)
	assert.True(t, pc.Allowed(edge, 0, true, 1000.0))
	assert.True(t, pc.Allowed(edge, 0, false, 1000.0))
}

func TestPedestrianBollardPassable(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)

	bollard := datastructure.NewNode(1, pkg.NODE_BOLLARD, pkg.ACCESS_NONE)
	assert.True(t, pc.AllowedNode(bollard))

	lockedGate := datastructure.NewNode(2, pkg.NODE_GATE, pkg.ACCESS_AUTO)
	assert.False(t, pc.AllowedNode(lockedGate))

	openGate := datastructure.NewNode(3, pkg.NODE_GATE, pkg.ACCESS_PEDESTRIAN)
	assert.True(t, pc.AllowedNode(openGate))
}

func TestPedestrianUseFactors(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)

	footway := datastructure.NewDirectedEdge(1, 100.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.SERVICE_OTHER, pkg.USE_FOOTWAY)
	road := datastructure.NewDirectedEdge(2, 100.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.SECONDARY, pkg.USE_ROAD)
	steps := datastructure.NewDirectedEdge(3, 100.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.SERVICE_OTHER, pkg.USE_STEPS)

	assert.Equal(t, pc.GetSeconds(footway), pc.GetCost(footway))
	assert.Greater(t, pc.GetCost(road), pc.GetCost(footway))
	assert.Greater(t, pc.GetCost(steps), pc.GetCost(road))
}

// the heuristic factor times great-circle distance must never exceed the
// cost of actually walking that distance along any edge.
func TestPedestrianAStarFactorAdmissible(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)

	from := geo.NewCoordinate(-7.797068, 110.370529)
	to := geo.NewCoordinate(-7.801194, 110.364917)

	straightLine := geo.CalculateHaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon) * 1000.0
	approx := geo.NewDistanceApproximator(to)
	assert.InDelta(t, straightLine, approx.DistanceTo(from), straightLine*0.01)

	uses := []pkg.Use{pkg.USE_FOOTWAY, pkg.USE_ROAD, pkg.USE_STEPS}
	for _, use := range uses {
		// an edge can never be shorter than the straight line between
		// its endpoints
		edge := datastructure.NewDirectedEdge(1, straightLine, 0.0,
			pkg.ACCESS_PEDESTRIAN, 0, pkg.RESIDENTIAL, use)
		estimate := pc.AStarCostFactor() * straightLine
		assert.LessOrEqual(t, estimate, pc.GetCost(edge)+1e-9)
		assert.LessOrEqual(t, estimate, pc.GetSeconds(edge)+1e-9)
	}
}

// motorways and trunks stay unwalkable even when the access mask is
// permissive.
func TestPedestrianRejectsHighSpeedRoads(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)
	filter := pc.GetFilter()

	classes := []pkg.RoadClass{pkg.MOTORWAY, pkg.MOTORWAY_LINK, pkg.TRUNK, pkg.TRUNK_LINK}
	for _, class := range classes {
		edge := datastructure.NewDirectedEdge(1, 200.0, 0.0, pkg.ACCESS_ALL, 0,
			class, pkg.USE_ROAD)
		assert.False(t, pc.Allowed(edge, 0, false, 1000.0))
		assert.False(t, filter(edge))
	}

	primary := datastructure.NewDirectedEdge(2, 200.0, 0.0, pkg.ACCESS_ALL, 0,
		pkg.PRIMARY, pkg.USE_ROAD)
	assert.True(t, pc.Allowed(primary, 0, false, 1000.0))
	assert.True(t, filter(primary))
}

func TestPedestrianMaxWalkingDistance(t *testing.T) {
	v := viper.New()
	v.Set("costing.pedestrian", map[string]interface{}{
		"max_walking_distance": 10000.0,
	})
	pc, err := NewPedestrianCost(v)
	require.NoError(t, err)

	shortEdge := datastructure.NewDirectedEdge(1, 200.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.RESIDENTIAL, pkg.USE_ROAD)
	longEdge := datastructure.NewDirectedEdge(2, 500000.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.RESIDENTIAL, pkg.USE_ROAD)

	// an edge longer than the walking range is rejected regardless of how
	// close the destination is
	assert.False(t, pc.Allowed(longEdge, 0, false, 100.0))

	// the remaining crow-flight distance is bounded the same way
	assert.True(t, pc.Allowed(shortEdge, 0, false, 10000.0))
	assert.False(t, pc.Allowed(shortEdge, 0, false, 10000.1))

	// the default range still admits ordinary urban spans
	defaults, err := NewPedestrianCost(nil)
	require.NoError(t, err)
	assert.True(t, defaults.Allowed(shortEdge, 0, false, 50000.0))
	assert.False(t, defaults.Allowed(longEdge, 0, false, 100.0))
}

func TestPedestrianFilter(t *testing.T) {
	pc, err := NewPedestrianCost(nil)
	require.NoError(t, err)
	filter := pc.GetFilter()

	motorway := datastructure.NewDirectedEdge(1, 100.0, 100.0, pkg.ACCESS_ALL, 0,
		pkg.MOTORWAY, pkg.USE_ROAD)
	assert.False(t, filter(motorway))

	footway := datastructure.NewDirectedEdge(2, 100.0, 0.0, pkg.ACCESS_PEDESTRIAN, 0,
		pkg.SERVICE_OTHER, pkg.USE_FOOTWAY)
	assert.True(t, filter(footway))
}
