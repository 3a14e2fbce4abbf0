// Package costing is the policy layer a route search consults on every edge
// and node it visits: whether traversal is permitted, what it costs, how long
// it takes, how to bound the remaining cost for the A* heuristic, and how
// coarsely the frontier may quantize cost comparisons. one DynamicCost
// instance serves exactly one in-flight search; hierarchy-limit state and the
// not-thru distance are mutated during that search, so concurrent requests
// each construct their own instance.
package costing

import (
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

// EdgeFilter. side-effect-free predicate used by location snapping to discard
// edges a travel mode can never use, before any search begins. returns true
// if the edge is usable. safe to evaluate concurrently: it closes over
// read-only configuration only, never over per-search state.
type EdgeFilter func(edge *datastructure.DirectedEdge) bool

// DynamicCost. the dynamic edge costing contract. every travel-mode variant
// implements all of it. the interface value is the shared handle the request
// pipeline and the search loop both hold for the duration of one request.
//
// methods must stay pure over their arguments plus read-only configuration
// (SetNotThruDistance and the hierarchy-limit counters are the only mutable
// state), must never block, and must run in time proportional to the edge's
// attribute count, never to graph size.
type DynamicCost interface {
	// AllowTransitions. whether this mode may use hierarchical shortcut
	// levels at all. modes without a meaningful hierarchy (pedestrian,
	// bicycle) return false and the search stays on the local level.
	AllowTransitions() bool

	// Allowed. whether the directed edge may be traversed. the access-mask
	// veto dominates every other check. restrictionMask is a bitmask of
	// local edge indices at the end node onto which turning is always
	// forbidden. isUturn marks an immediate reversal onto the opposing
	// edge; each mode documents its own exception rule. distToDest (meters)
	// gates not-thru edges against the configured not-thru distance.
	Allowed(edge *datastructure.DirectedEdge, restrictionMask uint32,
		isUturn bool, distToDest float64) bool

	// AllowedNode. whether the mode can pass through the node itself.
	// independent of the edge-level check: both must pass for a transition
	// through the node to be legal.
	AllowedNode(node *datastructure.Node) bool

	// GetCost. the scalar cost to traverse the edge: travel time plus
	// mode-specific penalties. deterministic and path-independent, the
	// precondition for a valid shortest-path metric.
	GetCost(edge *datastructure.DirectedEdge) float64

	// GetSeconds. wall-clock traversal time in seconds, reported for ETA
	// independently of the optimization metric.
	GetSeconds(edge *datastructure.DirectedEdge) float64

	// AStarCostFactor. a constant k such that k * straight-line-distance
	// never exceeds the true minimal remaining cost. derived from the
	// maximum speed the cost function can ever assign, so the heuristic
	// stays admissible.
	AStarCostFactor() float64

	// UnitSize. the bucket quantum for the frontier's approximate sort:
	// costs within one unit are treated as tied. always > 0 and in the
	// same units GetCost returns.
	UnitSize() float64

	// GetFilter. the edge predicate handed to location snapping.
	GetFilter() EdgeFilter

	// SetNotThruDistance. distance from the destination (meters) inside
	// which not-thru edges become usable. called once before the search
	// starts; idempotent.
	SetNotThruDistance(d float64)

	// GetHierarchyLimits. the per-level limit sequence, one entry per graph
	// hierarchy level. the returned slice shares backing storage with the
	// instance so the search engine can bump per-level counters in place;
	// it stays valid for the instance's lifetime.
	GetHierarchyLimits() []HierarchyLimits
}

const (
	// not-thru edges are usable only within this distance of the
	// destination unless overridden per request.
	DEFAULT_NOT_THRU_DISTANCE = 5000.0
)

// baseCost. state shared by every costing variant: the not-thru threshold
// and the hierarchy limit sequence. embedded by the concrete modes.
type baseCost struct {
	hierarchyLimits []HierarchyLimits
	notThruDistance float64
}

func newBaseCost() baseCost {
	return baseCost{
		hierarchyLimits: DefaultHierarchyLimits(),
		notThruDistance: DEFAULT_NOT_THRU_DISTANCE,
	}
}

func (b *baseCost) SetNotThruDistance(d float64) {
	b.notThruDistance = d
}

func (b *baseCost) GetHierarchyLimits() []HierarchyLimits {
	return b.hierarchyLimits
}

// notThruRejected. a not-thru edge is rejected only while the search is
// farther from the destination than the configured threshold. at or within
// the threshold the flag alone never rejects.
func (b *baseCost) notThruRejected(edge *datastructure.DirectedEdge, distToDest float64) bool {
	return edge.IsNotThru() && distToDest > b.notThruDistance
}

// turnRestricted. restriction masks are indexed by the local edge index at
// the end node.
func turnRestricted(edge *datastructure.DirectedEdge, restrictionMask uint32) bool {
	return restrictionMask&(1<<edge.GetLocalEdgeIdx()) != 0
}
