package datastructure

import (
	"errors"
	"math"
)

// BucketQueue. approximate double-bucket priority queue used as the search
// frontier. costs are quantized into buckets of size bucketSize (the cost
// model's unit size), so two costs within one bucket are treated as tied and
// popped in insertion order. costs beyond the bucket range go to an overflow
// bucket which is redistributed lazily once the in-range buckets drain.
//
// labelCost resolves the current sort cost of a label; the queue itself never
// stores costs, so a label whose cost was decreased is moved with DecreaseCost.
type BucketQueue struct {
	bucketSize  float64
	bucketCount int

	minCost float64
	maxCost float64

	currentBucket int
	buckets       [][]Index
	overflow      []Index

	labelCost func(Index) float64
}

var ErrInvalidBucketSize = errors.New("bucket size must be positive")

func NewBucketQueue(minCost, bucketRange, bucketSize float64,
	labelCost func(Index) float64) (*BucketQueue, error) {
	if bucketSize <= 0 {
		return nil, ErrInvalidBucketSize
	}
	if minCost < 0 {
		minCost = 0
	}

	bucketCount := int(math.Ceil(bucketRange/bucketSize)) + 1
	buckets := make([][]Index, bucketCount)
	for i := range buckets {
		buckets[i] = make([]Index, 0, 4)
	}

	return &BucketQueue{
		bucketSize:    bucketSize,
		bucketCount:   bucketCount,
		minCost:       minCost,
		maxCost:       minCost + float64(bucketCount)*bucketSize,
		currentBucket: 0,
		buckets:       buckets,
		overflow:      make([]Index, 0),
		labelCost:     labelCost,
	}, nil
}

func (bq *BucketQueue) bucketIndex(cost float64) int {
	return int((cost - bq.minCost) / bq.bucketSize)
}

// Add. insert a label with the given sort cost. costs below the current
// bucket (possible with an approximate ordering) land in the current bucket
// rather than a stale earlier one.
func (bq *BucketQueue) Add(label Index, sortCost float64) {
	if sortCost >= bq.maxCost {
		bq.overflow = append(bq.overflow, label)
		return
	}
	idx := bq.bucketIndex(sortCost)
	if idx < bq.currentBucket {
		idx = bq.currentBucket
	}
	bq.buckets[idx] = append(bq.buckets[idx], label)
}

// DecreaseCost. move a label from the bucket holding prevCost to the bucket
// for newCost. no-op if the two costs quantize to the same bucket.
func (bq *BucketQueue) DecreaseCost(label Index, prevCost, newCost float64) {
	if prevCost >= bq.maxCost {
		bq.removeFromOverflow(label)
		bq.Add(label, newCost)
		return
	}

	prevIdx := bq.bucketIndex(prevCost)
	if prevIdx < bq.currentBucket {
		prevIdx = bq.currentBucket
	}
	newIdx := bq.bucketIndex(newCost)
	if newIdx < bq.currentBucket {
		newIdx = bq.currentBucket
	}
	if prevIdx == newIdx {
		return
	}

	bq.removeFromBucket(prevIdx, label)
	bq.buckets[newIdx] = append(bq.buckets[newIdx], label)
}

// Pop. remove and return the lowest-bucket label. returns INVALID_INDEX and
// false once the queue is exhausted.
func (bq *BucketQueue) Pop() (Index, bool) {
	for {
		for bq.currentBucket < bq.bucketCount {
			bucket := bq.buckets[bq.currentBucket]
			if len(bucket) > 0 {
				label := bucket[0]
				bq.buckets[bq.currentBucket] = bucket[1:]
				return label, true
			}
			bq.currentBucket++
		}

		if len(bq.overflow) == 0 {
			return INVALID_INDEX, false
		}
		bq.redistributeOverflow()
	}
}

func (bq *BucketQueue) IsEmpty() bool {
	if len(bq.overflow) > 0 {
		return false
	}
	for i := bq.currentBucket; i < bq.bucketCount; i++ {
		if len(bq.buckets[i]) > 0 {
			return false
		}
	}
	return true
}

// redistributeOverflow. rebase the bucket range at the smallest overflow
// cost and re-add every overflow label.
func (bq *BucketQueue) redistributeOverflow() {
	newMin := math.Inf(1)
	for _, label := range bq.overflow {
		if c := bq.labelCost(label); c < newMin {
			newMin = c
		}
	}

	bq.minCost = newMin
	bq.maxCost = newMin + float64(bq.bucketCount)*bq.bucketSize
	bq.currentBucket = 0

	pending := bq.overflow
	bq.overflow = make([]Index, 0)
	for _, label := range pending {
		bq.Add(label, bq.labelCost(label))
	}
}

func (bq *BucketQueue) removeFromBucket(idx int, label Index) {
	bucket := bq.buckets[idx]
	for i, l := range bucket {
		if l == label {
			bq.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

func (bq *BucketQueue) removeFromOverflow(label Index) {
	for i, l := range bq.overflow {
		if l == label {
			bq.overflow = append(bq.overflow[:i], bq.overflow[i+1:]...)
			return
		}
	}
}
