package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueueWithCosts(t *testing.T, minCost, bucketRange, bucketSize float64,
	costs map[Index]float64) *BucketQueue {
	bq, err := NewBucketQueue(minCost, bucketRange, bucketSize, func(label Index) float64 {
		return costs[label]
	})
	require.NoError(t, err)
	return bq
}

func TestBucketQueueRejectsInvalidUnitSize(t *testing.T) {
	_, err := NewBucketQueue(0, 100.0, 0.0, func(Index) float64 { return 0 })
	assert.ErrorIs(t, err, ErrInvalidBucketSize)

	_, err = NewBucketQueue(0, 100.0, -1.0, func(Index) float64 { return 0 })
	assert.ErrorIs(t, err, ErrInvalidBucketSize)
}

// costs at least one bucket apart must pop in cost order.
func TestBucketQueueMonotonicAcrossBuckets(t *testing.T) {
	costs := map[Index]float64{1: 30.0, 2: 10.0, 3: 20.0, 4: 0.5}
	bq := newQueueWithCosts(t, 0, 100.0, 1.0, costs)
	for label, cost := range costs {
		bq.Add(label, cost)
	}

	var order []Index
	for {
		label, ok := bq.Pop()
		if !ok {
			break
		}
		order = append(order, label)
	}
	assert.Equal(t, []Index{4, 2, 3, 1}, order)
}

// costs within one unit may collide into the same bucket; ties pop in
// insertion order.
func TestBucketQueueTiesWithinUnit(t *testing.T) {
	costs := map[Index]float64{7: 10.2, 8: 10.7, 9: 10.4}
	bq := newQueueWithCosts(t, 0, 100.0, 1.0, costs)
	bq.Add(7, costs[7])
	bq.Add(8, costs[8])
	bq.Add(9, costs[9])

	first, ok := bq.Pop()
	require.True(t, ok)
	assert.Equal(t, Index(7), first)

	second, ok := bq.Pop()
	require.True(t, ok)
	assert.Equal(t, Index(8), second)
}

func TestBucketQueueDecreaseCost(t *testing.T) {
	costs := map[Index]float64{1: 50.0, 2: 10.0}
	bq := newQueueWithCosts(t, 0, 100.0, 1.0, costs)
	bq.Add(1, 50.0)
	bq.Add(2, 10.0)

	// label 1 found via a cheaper path: must now pop before label 2
	costs[1] = 5.0
	bq.DecreaseCost(1, 50.0, 5.0)

	first, ok := bq.Pop()
	require.True(t, ok)
	assert.Equal(t, Index(1), first)
}

func TestBucketQueueOverflowRedistribution(t *testing.T) {
	costs := map[Index]float64{1: 5.0, 2: 250.0, 3: 300.0, 4: 260.0}
	bq := newQueueWithCosts(t, 0, 100.0, 1.0, costs)
	for label, cost := range costs {
		bq.Add(label, cost)
	}

	var order []Index
	for {
		label, ok := bq.Pop()
		if !ok {
			break
		}
		order = append(order, label)
	}
	assert.Equal(t, []Index{1, 2, 4, 3}, order)
	assert.True(t, bq.IsEmpty())
}

func TestBucketQueueEmptyPop(t *testing.T) {
	bq := newQueueWithCosts(t, 0, 10.0, 1.0, map[Index]float64{})
	label, ok := bq.Pop()
	assert.False(t, ok)
	assert.Equal(t, INVALID_INDEX, label)
	assert.True(t, bq.IsEmpty())
}
