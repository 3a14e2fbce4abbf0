package costing

import (
	"github.com/spf13/viper"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// PedestrianCost. costing for walking. travel time at a fixed walking speed
// with factors favoring dedicated footways over shared roadways. motorways
// and trunks are never walkable, and the walking range is capped by
// max_walking_distance.
//
// hierarchy transitions are disabled: the shortcut levels encode motor-road
// topology and mean nothing on foot.
//
// u-turn rule: immediate reversal is always permitted. a walker can turn
// around anywhere.
type PedestrianCost struct {
	baseCost

	walkingSpeedKPH    float64
	roadFactor         float64
	stepsFactor        float64
	maxWalkingDistance float64
	unitSize           float64

	astarCostFactor float64
}

func NewPedestrianCost(v *viper.Viper) (*PedestrianCost, error) {
	opts := DefaultPedestrianOptions()
	if err := loadOptions(v, "pedestrian", &opts); err != nil {
		return nil, err
	}

	return &PedestrianCost{
		baseCost:           newBaseCost(),
		walkingSpeedKPH:    opts.WalkingSpeedKPH,
		roadFactor:         opts.RoadFactor,
		stepsFactor:        opts.StepsFactor,
		maxWalkingDistance: opts.MaxWalkingDistance,
		unitSize:           opts.UnitSize,
		astarCostFactor:    1.0 / (opts.WalkingSpeedKPH * pkg.KMH_TO_METER_PER_SECOND),
	}, nil
}

func (pc *PedestrianCost) AllowTransitions() bool {
	return false
}

func (pc *PedestrianCost) Allowed(edge *datastructure.DirectedEdge, restrictionMask uint32,
	isUturn bool, distToDest float64) bool {
	if !edge.GetAccess().Includes(pkg.ACCESS_PEDESTRIAN) {
		return false
	}
	if isHighSpeedRoad(edge.GetClassification()) {
		return false
	}
	if turnRestricted(edge, restrictionMask) {
		return false
	}
	// cap how far a walking route may reach: neither a single edge nor the
	// remaining crow-flight distance may exceed the walking range
	if edge.GetLength() > pc.maxWalkingDistance || distToDest > pc.maxWalkingDistance {
		return false
	}
	// u-turns always allowed on foot
	return !pc.notThruRejected(edge, distToDest)
}

// isHighSpeedRoad. motorways and trunks never carry foot traffic even when
// the access mask was left permissive by sloppy tagging.
func isHighSpeedRoad(class pkg.RoadClass) bool {
	switch class {
	case pkg.MOTORWAY, pkg.MOTORWAY_LINK, pkg.TRUNK, pkg.TRUNK_LINK:
		return true
	}
	return false
}

func (pc *PedestrianCost) AllowedNode(node *datastructure.Node) bool {
	if !node.IsBarrier() {
		return true
	}
	// bollards block vehicles, not walkers, unless access says otherwise
	if node.GetNodeType() == pkg.NODE_BOLLARD {
		return true
	}
	return node.GetAccess().Includes(pkg.ACCESS_PEDESTRIAN)
}

func (pc *PedestrianCost) GetSeconds(edge *datastructure.DirectedEdge) float64 {
	return edge.GetLength() / (pc.walkingSpeedKPH * pkg.KMH_TO_METER_PER_SECOND)
}

func (pc *PedestrianCost) GetCost(edge *datastructure.DirectedEdge) float64 {
	cost := pc.GetSeconds(edge)
	switch edge.GetUse() {
	case pkg.USE_FOOTWAY, pkg.USE_CYCLEWAY, pkg.USE_TRACK:
		// dedicated paths carry no penalty
	case pkg.USE_STEPS:
		cost *= pc.stepsFactor
	default:
		cost *= pc.roadFactor
	}
	return cost
}

func (pc *PedestrianCost) AStarCostFactor() float64 {
	return pc.astarCostFactor
}

func (pc *PedestrianCost) UnitSize() float64 {
	return pc.unitSize
}

func (pc *PedestrianCost) GetFilter() EdgeFilter {
	return func(edge *datastructure.DirectedEdge) bool {
		if !edge.GetAccess().Includes(pkg.ACCESS_PEDESTRIAN) {
			return false
		}
		return !isHighSpeedRoad(edge.GetClassification())
	}
}
