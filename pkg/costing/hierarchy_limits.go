package costing

// LevelState. per-search lifecycle of one hierarchy level. a level starts
// open; once the search closes it the level never reopens for that search.
// there is no reset: a new search constructs a fresh cost model.
type LevelState uint8

const (
	LEVEL_OPEN LevelState = iota
	LEVEL_CLOSED
)

// HierarchyLimits. mutable threshold/counter state for one graph hierarchy
// level. owned by the cost model instance, read and bumped by the search
// engine as nodes are expanded.
type HierarchyLimits struct {
	maxUpTransitions uint32
	// expansion on this level is allowed only within this distance of the
	// destination (meters). 0 means unlimited.
	expansionWithinDist float64

	upTransitionCount uint32
	state             LevelState
}

func NewHierarchyLimits(maxUpTransitions uint32, expansionWithinDist float64) HierarchyLimits {
	return HierarchyLimits{
		maxUpTransitions:    maxUpTransitions,
		expansionWithinDist: expansionWithinDist,
		state:               LEVEL_OPEN,
	}
}

// DefaultHierarchyLimits. one entry per graph level: highway, arterial,
// local. the local level has no transition budget of its own.
func DefaultHierarchyLimits() []HierarchyLimits {
	return []HierarchyLimits{
		NewHierarchyLimits(0, 0),
		NewHierarchyLimits(400, 100000.0),
		NewHierarchyLimits(100, 20000.0),
	}
}

func (h *HierarchyLimits) GetUpTransitionCount() uint32 {
	return h.upTransitionCount
}

func (h *HierarchyLimits) GetMaxUpTransitions() uint32 {
	return h.maxUpTransitions
}

func (h *HierarchyLimits) Closed() bool {
	return h.state == LEVEL_CLOSED
}

// AllowUpTransition. whether the search may still ascend out of this level.
func (h *HierarchyLimits) AllowUpTransition() bool {
	return h.state == LEVEL_OPEN && h.upTransitionCount < h.maxUpTransitions
}

// RecordUpTransition. count one ascent out of this level and close the
// level once the budget is spent. closing is terminal for this search.
func (h *HierarchyLimits) RecordUpTransition() {
	if h.state == LEVEL_CLOSED {
		return
	}
	h.upTransitionCount++
	if h.upTransitionCount >= h.maxUpTransitions {
		h.state = LEVEL_CLOSED
	}
}

// ExpandWithin. whether a node at distToDest meters from the destination may
// still be expanded on this level.
func (h *HierarchyLimits) ExpandWithin(distToDest float64) bool {
	if h.state == LEVEL_CLOSED {
		return false
	}
	return h.expansionWithinDist == 0 || distToDest <= h.expansionWithinDist
}

// Close. mark the level exhausted for the remainder of this search.
func (h *HierarchyLimits) Close() {
	h.state = LEVEL_CLOSED
}
