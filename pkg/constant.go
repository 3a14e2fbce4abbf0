package pkg

// enum of travel_mode. closed set: every costing variant in pkg/costing
// belongs to exactly one of these.
type TravelMode uint8

const (
	TRAVEL_MODE_AUTO TravelMode = iota
	TRAVEL_MODE_PEDESTRIAN
	TRAVEL_MODE_BICYCLE
)

func (tm TravelMode) String() string {
	switch tm {
	case TRAVEL_MODE_AUTO:
		return "auto"
	case TRAVEL_MODE_PEDESTRIAN:
		return "pedestrian"
	case TRAVEL_MODE_BICYCLE:
		return "bicycle"
	default:
		return "unknown"
	}
}

// AccessMask. bitmask of travel modes allowed to traverse an edge or pass a node.
type AccessMask uint16

const (
	ACCESS_AUTO       AccessMask = 1 << 0
	ACCESS_PEDESTRIAN AccessMask = 1 << 1
	ACCESS_BICYCLE    AccessMask = 1 << 2
	ACCESS_TRUCK      AccessMask = 1 << 3
	ACCESS_BUS        AccessMask = 1 << 4
	ACCESS_TAXI       AccessMask = 1 << 5
	ACCESS_EMERGENCY  AccessMask = 1 << 6

	ACCESS_ALL  AccessMask = ACCESS_AUTO | ACCESS_PEDESTRIAN | ACCESS_BICYCLE | ACCESS_TRUCK | ACCESS_BUS | ACCESS_TAXI | ACCESS_EMERGENCY
	ACCESS_NONE AccessMask = 0
)

func (am AccessMask) Includes(other AccessMask) bool {
	return am&other != 0
}

const (
	KMH_TO_METER_PER_SECOND = 1.0 / 3.6
)

type RoadClass uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       RoadClass = 0
	TRUNK          RoadClass = 1
	PRIMARY        RoadClass = 2
	SECONDARY      RoadClass = 3
	TERTIARY       RoadClass = 4
	RESIDENTIAL    RoadClass = 5
	SERVICE_OTHER  RoadClass = 6
	UNCLASSIFIED   RoadClass = 7
	MOTORWAY_LINK  RoadClass = 8
	TRUNK_LINK     RoadClass = 9
	PRIMARY_LINK   RoadClass = 10
	SECONDARY_LINK RoadClass = 11
	TERTIARY_LINK  RoadClass = 12
	LIVING_STREET  RoadClass = 13
	ROAD           RoadClass = 14
	TRACK          RoadClass = 15
	UNKNOWN        RoadClass = 16
)

func GetRoadClass(roadType string) RoadClass {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE_OTHER
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	default:
		return UNKNOWN
	}
}

// Use. finer-grained edge usage than RoadClass, needed by the pedestrian &
// bicycle costing to prefer dedicated paths.
type Use uint8

const (
	USE_ROAD Use = iota
	USE_RAMP
	USE_CYCLEWAY
	USE_FOOTWAY
	USE_STEPS
	USE_TRACK
	USE_ALLEY
	USE_DRIVEWAY
	USE_PARKING_AISLE
	USE_FERRY
	USE_OTHER
)

func GetUse(highway string) Use {
	switch highway {
	case "cycleway":
		return USE_CYCLEWAY
	case "footway", "pedestrian", "path", "corridor":
		return USE_FOOTWAY
	case "steps":
		return USE_STEPS
	case "track":
		return USE_TRACK
	case "motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link":
		return USE_RAMP
	default:
		return USE_ROAD
	}
}

// NodeType. physical type of a graph vertex. gates and bollards restrict
// who can pass through the node itself.
type NodeType uint8

const (
	NODE_STREET_INTERSECTION NodeType = iota
	NODE_GATE
	NODE_BOLLARD
	NODE_TOLL_BOOTH
	NODE_BORDER_CONTROL
)
