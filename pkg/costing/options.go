package costing

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/lintang-b-s/tilenav/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AutoOptions. recognized parameters for the auto costing. all penalty
// factors must stay >= 1 so the cost never drops below free-flow travel time
// and the A* factor derived from max_speed stays admissible.
type AutoOptions struct {
	MaxSpeedKPH     float64 `mapstructure:"max_speed" validate:"gt=0,lte=140"`
	RoadClassFactor float64 `mapstructure:"road_class_factor" validate:"gte=1"`
	TollFactor      float64 `mapstructure:"toll_factor" validate:"gte=1"`
	UnpavedFactor   float64 `mapstructure:"unpaved_factor" validate:"gte=1"`
	DestOnlyFactor  float64 `mapstructure:"dest_only_factor" validate:"gte=1"`
	UnitSize        float64 `mapstructure:"unit_size" validate:"gt=0"`
}

func DefaultAutoOptions() AutoOptions {
	return AutoOptions{
		MaxSpeedKPH:     120.0,
		RoadClassFactor: 1.1,
		TollFactor:      1.5,
		UnpavedFactor:   1.8,
		DestOnlyFactor:  2.0,
		UnitSize:        1.0,
	}
}

// PedestrianOptions. recognized parameters for the pedestrian costing.
// max_walking_distance (meters) bounds how far a route on foot may reach:
// edges longer than it, or expansions farther than it from the destination,
// are rejected outright.
type PedestrianOptions struct {
	WalkingSpeedKPH    float64 `mapstructure:"walking_speed" validate:"gt=0,lte=25"`
	RoadFactor         float64 `mapstructure:"road_factor" validate:"gte=1"`
	StepsFactor        float64 `mapstructure:"steps_factor" validate:"gte=1"`
	MaxWalkingDistance float64 `mapstructure:"max_walking_distance" validate:"gt=0"`
	UnitSize           float64 `mapstructure:"unit_size" validate:"gt=0"`
}

func DefaultPedestrianOptions() PedestrianOptions {
	return PedestrianOptions{
		WalkingSpeedKPH:    5.1,
		RoadFactor:         1.2,
		StepsFactor:        1.5,
		MaxWalkingDistance: 100000.0,
		UnitSize:           5.0,
	}
}

// BicycleOptions. recognized parameters for the bicycle costing.
type BicycleOptions struct {
	CyclingSpeedKPH  float64 `mapstructure:"cycling_speed" validate:"gt=0,lte=60"`
	RoadFactor       float64 `mapstructure:"road_factor" validate:"gte=1"`
	UnpavedFactor    float64 `mapstructure:"unpaved_factor" validate:"gte=1"`
	RoundaboutFactor float64 `mapstructure:"roundabout_factor" validate:"gte=1"`
	UnitSize         float64 `mapstructure:"unit_size" validate:"gt=0"`
}

func DefaultBicycleOptions() BicycleOptions {
	return BicycleOptions{
		CyclingSpeedKPH:  18.0,
		RoadFactor:       1.15,
		UnpavedFactor:    1.6,
		RoundaboutFactor: 1.5,
		UnitSize:         2.0,
	}
}

// loadOptions. overlay the costing.<mode> subtree of the config onto the
// mode's defaults, then validate. malformed or out-of-range parameters fail
// here, at construction, never mid-search.
func loadOptions(v *viper.Viper, key string, opts interface{}) error {
	if v != nil {
		if sub := v.Sub("costing." + key); sub != nil {
			if err := sub.Unmarshal(opts); err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput,
					"costing: unmarshal %s options", key)
			}
		}
	}
	if err := validate.Struct(opts); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput,
			"costing: invalid %s options", key)
	}
	return nil
}
