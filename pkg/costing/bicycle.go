package costing

import (
	"github.com/spf13/viper"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// BicycleCost. costing for cycling. travel time at a configured cruising
// speed with factors penalizing shared roadways and unpaved surfaces.
//
// hierarchy transitions are disabled: shortcut levels follow motorway
// topology that bicycles cannot use.
//
// u-turn rule: same as auto, immediate reversal only onto a dead-end edge.
type BicycleCost struct {
	baseCost

	cyclingSpeedKPH  float64
	roadFactor       float64
	unpavedFactor    float64
	roundaboutFactor float64
	unitSize         float64

	astarCostFactor float64
}

func NewBicycleCost(v *viper.Viper) (*BicycleCost, error) {
	opts := DefaultBicycleOptions()
	if err := loadOptions(v, "bicycle", &opts); err != nil {
		return nil, err
	}

	return &BicycleCost{
		baseCost:         newBaseCost(),
		cyclingSpeedKPH:  opts.CyclingSpeedKPH,
		roadFactor:       opts.RoadFactor,
		unpavedFactor:    opts.UnpavedFactor,
		roundaboutFactor: opts.RoundaboutFactor,
		unitSize:         opts.UnitSize,
		astarCostFactor:  1.0 / (opts.CyclingSpeedKPH * pkg.KMH_TO_METER_PER_SECOND),
	}, nil
}

func (bc *BicycleCost) AllowTransitions() bool {
	return false
}

func (bc *BicycleCost) Allowed(edge *datastructure.DirectedEdge, restrictionMask uint32,
	isUturn bool, distToDest float64) bool {
	if !edge.GetAccess().Includes(pkg.ACCESS_BICYCLE) {
		return false
	}
	if turnRestricted(edge, restrictionMask) {
		return false
	}
	if isUturn && !edge.IsDeadEnd() {
		return false
	}
	return !bc.notThruRejected(edge, distToDest)
}

func (bc *BicycleCost) AllowedNode(node *datastructure.Node) bool {
	if !node.IsBarrier() {
		return true
	}
	return node.GetAccess().Includes(pkg.ACCESS_BICYCLE)
}

func (bc *BicycleCost) GetSeconds(edge *datastructure.DirectedEdge) float64 {
	return edge.GetLength() / (bc.cyclingSpeedKPH * pkg.KMH_TO_METER_PER_SECOND)
}

func (bc *BicycleCost) GetCost(edge *datastructure.DirectedEdge) float64 {
	cost := bc.GetSeconds(edge)
	if edge.GetUse() != pkg.USE_CYCLEWAY {
		cost *= bc.roadFactor
	}
	if edge.IsUnpaved() {
		cost *= bc.unpavedFactor
	}
	// mixing with circulating traffic is the uncomfortable part of cycling
	// a roundabout
	if edge.IsRoundabout() {
		cost *= bc.roundaboutFactor
	}
	return cost
}

func (bc *BicycleCost) AStarCostFactor() float64 {
	return bc.astarCostFactor
}

func (bc *BicycleCost) UnitSize() float64 {
	return bc.unitSize
}

func (bc *BicycleCost) GetFilter() EdgeFilter {
	return func(edge *datastructure.DirectedEdge) bool {
		if !edge.GetAccess().Includes(pkg.ACCESS_BICYCLE) {
			return false
		}
		switch edge.GetUse() {
		case pkg.USE_STEPS, pkg.USE_FOOTWAY:
			return false
		}
		switch edge.GetClassification() {
		case pkg.MOTORWAY, pkg.MOTORWAY_LINK:
			return false
		}
		return true
	}
}
