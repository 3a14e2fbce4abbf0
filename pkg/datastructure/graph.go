package datastructure

import (
	"github.com/lintang-b-s/tilenav/pkg"
)

type Index uint32

const (
	INVALID_INDEX Index = 0xFFFFFFFF
)

// DirectedEdge. one-directional traversable segment of the routable graph.
// immutable for the duration of a search: the costing layer and the search
// engine only ever read it. references handed out to costing methods are
// borrowed from the enclosing tile and stay valid while the tile is loaded.
type DirectedEdge struct {
	id     Index
	length float64 // meters
	speed  float64 // kph

	access         pkg.AccessMask
	localEdgeIdx   uint8
	classification pkg.RoadClass
	use            pkg.Use

	notThru    bool
	deadEnd    bool
	oneWay     bool
	roundabout bool
	toll       bool
	unpaved    bool
	destOnly   bool
}

func NewDirectedEdge(id Index, length, speedKPH float64, access pkg.AccessMask,
	localEdgeIdx uint8, classification pkg.RoadClass, use pkg.Use) *DirectedEdge {
	return &DirectedEdge{
		id:             id,
		length:         length,
		speed:          speedKPH,
		access:         access,
		localEdgeIdx:   localEdgeIdx,
		classification: classification,
		use:            use,
	}
}

func (e *DirectedEdge) GetEdgeId() Index {
	return e.id
}

func (e *DirectedEdge) GetLength() float64 {
	return e.length
}

func (e *DirectedEdge) GetEdgeSpeed() float64 {
	return e.speed
}

func (e *DirectedEdge) GetAccess() pkg.AccessMask {
	return e.access
}

// GetLocalEdgeIdx. index of this edge among the sibling edges at its end
// node. restriction masks are indexed by this value.
func (e *DirectedEdge) GetLocalEdgeIdx() uint8 {
	return e.localEdgeIdx
}

func (e *DirectedEdge) GetClassification() pkg.RoadClass {
	return e.classification
}

func (e *DirectedEdge) GetUse() pkg.Use {
	return e.use
}

// IsNotThru. edge belongs to a local street pattern not meant for
// through-traffic. conditionally excluded by costing based on how far the
// search still is from the destination.
func (e *DirectedEdge) IsNotThru() bool {
	return e.notThru
}

func (e *DirectedEdge) IsDeadEnd() bool {
	return e.deadEnd
}

// IsOneWay. the opposing direction of the underlying way is not routable.
// directionality itself is already baked into the directed-edge topology;
// the flag marks edges where no opposing edge exists at all.
func (e *DirectedEdge) IsOneWay() bool {
	return e.oneWay
}

func (e *DirectedEdge) IsRoundabout() bool {
	return e.roundabout
}

func (e *DirectedEdge) IsToll() bool {
	return e.toll
}

func (e *DirectedEdge) IsUnpaved() bool {
	return e.unpaved
}

func (e *DirectedEdge) IsDestinationOnly() bool {
	return e.destOnly
}

func (e *DirectedEdge) SetNotThru(notThru bool) {
	e.notThru = notThru
}

func (e *DirectedEdge) SetDeadEnd(deadEnd bool) {
	e.deadEnd = deadEnd
}

func (e *DirectedEdge) SetOneWay(oneWay bool) {
	e.oneWay = oneWay
}

func (e *DirectedEdge) SetRoundabout(roundabout bool) {
	e.roundabout = roundabout
}

func (e *DirectedEdge) SetToll(toll bool) {
	e.toll = toll
}

func (e *DirectedEdge) SetUnpaved(unpaved bool) {
	e.unpaved = unpaved
}

func (e *DirectedEdge) SetDestinationOnly(destOnly bool) {
	e.destOnly = destOnly
}

// Node. graph vertex where directed edges meet. may carry a physical
// access barrier (gate, bollard) restricting which modes can pass.
type Node struct {
	id       Index
	nodeType pkg.NodeType
	access   pkg.AccessMask
}

func NewNode(id Index, nodeType pkg.NodeType, access pkg.AccessMask) *Node {
	return &Node{
		id:       id,
		nodeType: nodeType,
		access:   access,
	}
}

func (n *Node) GetNodeId() Index {
	return n.id
}

func (n *Node) GetNodeType() pkg.NodeType {
	return n.nodeType
}

func (n *Node) GetAccess() pkg.AccessMask {
	return n.access
}

// IsBarrier. true if the node physically blocks some modes (the access
// mask decides which).
func (n *Node) IsBarrier() bool {
	return n.nodeType == pkg.NODE_GATE || n.nodeType == pkg.NODE_BOLLARD
}
