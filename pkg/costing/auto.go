package costing

import (
	"github.com/spf13/viper"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// AutoCost. costing for motor vehicles. optimizes travel time with penalty
// factors for minor road classes, toll roads, and unpaved surfaces.
//
// u-turn rule: an immediate reversal is rejected everywhere except onto a
// dead-end edge, where turning around is the only way out.
type AutoCost struct {
	baseCost

	maxSpeedKPH     float64
	roadClassFactor float64
	tollFactor      float64
	unpavedFactor   float64
	destOnlyFactor  float64
	unitSize        float64

	// seconds per meter at max speed, precomputed once per instance.
	astarCostFactor float64
}

func NewAutoCost(v *viper.Viper) (*AutoCost, error) {
	opts := DefaultAutoOptions()
	if err := loadOptions(v, "auto", &opts); err != nil {
		return nil, err
	}

	return &AutoCost{
		baseCost:        newBaseCost(),
		maxSpeedKPH:     opts.MaxSpeedKPH,
		roadClassFactor: opts.RoadClassFactor,
		tollFactor:      opts.TollFactor,
		unpavedFactor:   opts.UnpavedFactor,
		destOnlyFactor:  opts.DestOnlyFactor,
		unitSize:        opts.UnitSize,
		astarCostFactor: 1.0 / (opts.MaxSpeedKPH * pkg.KMH_TO_METER_PER_SECOND),
	}, nil
}

func (ac *AutoCost) AllowTransitions() bool {
	return true
}

func (ac *AutoCost) Allowed(edge *datastructure.DirectedEdge, restrictionMask uint32,
	isUturn bool, distToDest float64) bool {
	if !edge.GetAccess().Includes(pkg.ACCESS_AUTO) {
		return false
	}
	if turnRestricted(edge, restrictionMask) {
		return false
	}
	if isUturn && !edge.IsDeadEnd() {
		return false
	}
	return !ac.notThruRejected(edge, distToDest)
}

func (ac *AutoCost) AllowedNode(node *datastructure.Node) bool {
	if !node.IsBarrier() {
		return true
	}
	return node.GetAccess().Includes(pkg.ACCESS_AUTO)
}

func (ac *AutoCost) GetSeconds(edge *datastructure.DirectedEdge) float64 {
	speed := edge.GetEdgeSpeed()
	if speed <= 0 || speed > ac.maxSpeedKPH {
		speed = ac.maxSpeedKPH
	}
	return edge.GetLength() / (speed * pkg.KMH_TO_METER_PER_SECOND)
}

// GetCost. travel time scaled by per-edge penalty factors. every factor is
// >= 1, so the cost never undercuts the free-flow time AStarCostFactor
// assumes.
func (ac *AutoCost) GetCost(edge *datastructure.DirectedEdge) float64 {
	cost := ac.GetSeconds(edge)
	switch edge.GetClassification() {
	case pkg.RESIDENTIAL, pkg.SERVICE_OTHER, pkg.UNCLASSIFIED,
		pkg.LIVING_STREET, pkg.ROAD, pkg.TRACK:
		cost *= ac.roadClassFactor
	}
	if edge.IsToll() {
		cost *= ac.tollFactor
	}
	if edge.IsUnpaved() {
		cost *= ac.unpavedFactor
	}
	// destination-only streets stay traversable but are biased against so
	// routes only cut through them when nothing else works
	if edge.IsDestinationOnly() {
		cost *= ac.destOnlyFactor
	}
	return cost
}

func (ac *AutoCost) AStarCostFactor() float64 {
	return ac.astarCostFactor
}

func (ac *AutoCost) UnitSize() float64 {
	return ac.unitSize
}

func (ac *AutoCost) GetFilter() EdgeFilter {
	return func(edge *datastructure.DirectedEdge) bool {
		if !edge.GetAccess().Includes(pkg.ACCESS_AUTO) {
			return false
		}
		switch edge.GetUse() {
		case pkg.USE_FOOTWAY, pkg.USE_STEPS, pkg.USE_CYCLEWAY:
			return false
		}
		return true
	}
}
