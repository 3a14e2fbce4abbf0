// Package osmtags maps OSM way tagging onto the edge attributes the costing
// layer reads: the per-mode access mask, road class, use, and a default
// speed. graph builders call this once per way at tile build time.
package osmtags

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"

	"github.com/lintang-b-s/tilenav/pkg"
)

// default speed per highway class, in kph. used when the way carries no
// usable maxspeed tag.
var defaultSpeedKPH = map[pkg.RoadClass]float64{
	pkg.MOTORWAY:       100.0,
	pkg.TRUNK:          80.0,
	pkg.PRIMARY:        60.0,
	pkg.SECONDARY:      50.0,
	pkg.TERTIARY:       40.0,
	pkg.UNCLASSIFIED:   30.0,
	pkg.RESIDENTIAL:    30.0,
	pkg.SERVICE_OTHER:  20.0,
	pkg.MOTORWAY_LINK:  60.0,
	pkg.TRUNK_LINK:     50.0,
	pkg.PRIMARY_LINK:   40.0,
	pkg.SECONDARY_LINK: 30.0,
	pkg.TERTIARY_LINK:  30.0,
	pkg.LIVING_STREET:  10.0,
	pkg.ROAD:           30.0,
	pkg.TRACK:          15.0,
	pkg.UNKNOWN:        20.0,
}

// highway values that never carry motor traffic.
var nonMotorHighway = map[string]struct{}{
	"cycleway":   {},
	"footway":    {},
	"pedestrian": {},
	"path":       {},
	"steps":      {},
	"corridor":   {},
	"elevator":   {},
	"escalator":  {},
	"bridleway":  {},
}

// AccessFromTags. derive the access bitmask for a way: which travel modes
// may traverse it at all. mode-specific access tags (motor_vehicle, bicycle,
// foot) override the highway-class default, and access=no/private strips
// everything not explicitly re-allowed.
func AccessFromTags(tags osm.Tags) pkg.AccessMask {
	highway := tags.Find("highway")
	if highway == "" {
		return pkg.ACCESS_NONE
	}

	access := pkg.ACCESS_NONE
	if _, nonMotor := nonMotorHighway[highway]; !nonMotor {
		access |= pkg.ACCESS_AUTO | pkg.ACCESS_TRUCK | pkg.ACCESS_BUS | pkg.ACCESS_TAXI | pkg.ACCESS_EMERGENCY
	}

	switch highway {
	case "motorway", "motorway_link":
		// no walking or cycling on motorways
	case "cycleway":
		access |= pkg.ACCESS_BICYCLE
	case "footway", "pedestrian", "steps", "corridor", "elevator", "escalator":
		access |= pkg.ACCESS_PEDESTRIAN
	case "path", "bridleway", "track":
		access |= pkg.ACCESS_PEDESTRIAN | pkg.ACCESS_BICYCLE
	default:
		access |= pkg.ACCESS_PEDESTRIAN | pkg.ACCESS_BICYCLE
	}

	switch tags.Find("access") {
	case "no", "private":
		access = pkg.ACCESS_NONE
	}

	access = applyModeTag(access, tags.Find("motor_vehicle"), pkg.ACCESS_AUTO|pkg.ACCESS_TRUCK|pkg.ACCESS_BUS|pkg.ACCESS_TAXI)
	access = applyModeTag(access, tags.Find("motorcar"), pkg.ACCESS_AUTO|pkg.ACCESS_TAXI)
	access = applyModeTag(access, tags.Find("bicycle"), pkg.ACCESS_BICYCLE)
	access = applyModeTag(access, tags.Find("foot"), pkg.ACCESS_PEDESTRIAN)

	return access
}

func applyModeTag(access pkg.AccessMask, value string, mask pkg.AccessMask) pkg.AccessMask {
	switch value {
	case "yes", "designated", "permissive":
		return access | mask
	case "no", "private", "use_sidepath":
		return access &^ mask
	default:
		return access
	}
}

// SpeedFromTags. speed in kph for the way: parsed maxspeed when present and
// sane, otherwise the highway-class default.
func SpeedFromTags(tags osm.Tags) float64 {
	class := pkg.GetRoadClass(tags.Find("highway"))

	maxspeed := strings.TrimSpace(tags.Find("maxspeed"))
	if maxspeed == "" || maxspeed == "none" || maxspeed == "signals" {
		return defaultSpeedKPH[class]
	}

	factor := 1.0
	if strings.HasSuffix(maxspeed, "mph") {
		maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "mph"))
		factor = 1.609344
	}
	val, err := strconv.ParseFloat(maxspeed, 64)
	if err != nil || val <= 0 {
		return defaultSpeedKPH[class]
	}
	return val * factor
}

// UseFromTags. finer-grained usage classification for the way.
func UseFromTags(tags osm.Tags) pkg.Use {
	return pkg.GetUse(tags.Find("highway"))
}

// NodeTypeFromTags. barrier classification for a node.
func NodeTypeFromTags(tags osm.Tags) pkg.NodeType {
	switch tags.Find("barrier") {
	case "gate", "lift_gate", "swing_gate":
		return pkg.NODE_GATE
	case "bollard", "block":
		return pkg.NODE_BOLLARD
	case "toll_booth":
		return pkg.NODE_TOLL_BOOTH
	case "border_control":
		return pkg.NODE_BORDER_CONTROL
	default:
		return pkg.NODE_STREET_INTERSECTION
	}
}

// IsOneWay. whether the way is routable in one direction only. roundabouts
// are implicitly one-way.
func IsOneWay(tags osm.Tags) bool {
	switch tags.Find("oneway") {
	case "yes", "true", "1", "-1":
		return true
	}
	return tags.Find("junction") == "roundabout"
}

// IsRoundabout. circular junction membership.
func IsRoundabout(tags osm.Tags) bool {
	return tags.Find("junction") == "roundabout"
}

// IsNotThru. ways tagged for destination-only local traffic. the costing
// layer conditionally excludes these away from the destination.
func IsNotThru(tags osm.Tags) bool {
	switch tags.Find("access") {
	case "destination", "delivery", "customers":
		return true
	}
	switch tags.Find("motor_vehicle") {
	case "destination", "delivery", "customers":
		return true
	}
	return false
}
