package costing

import (
	"github.com/spf13/viper"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

var (
	_ DynamicCost = (*AutoCost)(nil)
	_ DynamicCost = (*PedestrianCost)(nil)
	_ DynamicCost = (*BicycleCost)(nil)
)

// NewCost. construct the costing for a travel mode from the costing.<mode>
// subtree of the config (nil viper means mode defaults). the mode set is
// closed, so the switch is exhaustive; an unknown value is a programming
// error surfaced as ErrUnknownMode.
//
// the returned interface value is the shared handle for exactly one route
// request: one search, then discard.
func NewCost(mode pkg.TravelMode, v *viper.Viper) (DynamicCost, error) {
	var (
		cost DynamicCost
		err  error
	)
	switch mode {
	case pkg.TRAVEL_MODE_AUTO:
		cost, err = NewAutoCost(v)
	case pkg.TRAVEL_MODE_PEDESTRIAN:
		cost, err = NewPedestrianCost(v)
	case pkg.TRAVEL_MODE_BICYCLE:
		cost, err = NewBicycleCost(v)
	default:
		return nil, util.WrapErrorf(nil, util.ErrUnknownMode,
			"costing: no costing registered for travel mode %d", mode)
	}
	if err != nil {
		// a plain nil interface, never a typed-nil concrete pointer
		return nil, err
	}
	return cost, nil
}
