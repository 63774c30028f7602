package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](0, 0)
	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, defaultBuffer, cap(queue.partitions[0]))
}

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](4, 8)
	queue.Publish("edge1", 1)
	queue.Publish("edge1", 2)

	idx := partitionIndex("edge1", 4)
	assert.Len(t, queue.partitions[idx], 2)
	assert.Equal(t, 1, <-queue.partitions[idx])
	assert.Equal(t, 2, <-queue.partitions[idx])
}

func TestPartitionedQueue_TryPublishFull(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 1)
	assert.True(t, queue.TryPublish("edge1", 1))
	assert.False(t, queue.TryPublish("edge1", 2), "second publish should not block on a full lane")
}

func TestPartitionIndex_InRange(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "edge1", "edge2", "a-very-long-server-name.example.com"} {
		idx := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		assert.Equal(t, idx, partitionIndex(key, 8), "partitioning must be deterministic")
	}
}
