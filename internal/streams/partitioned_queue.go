package streams

import (
	"encoding/binary"
	"hash/fnv"
)

type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

// NewPartitionedQueue creates numPartitions buffered lanes. Non-positive arguments fall back to defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks until the partition for partitionKey has room.
func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	queue.partitions[queue.partitionFor(partitionKey)] <- msg
}

// TryPublish enqueues msg without blocking and reports whether it was accepted.
func (queue *PartitionedQueue[T]) TryPublish(partitionKey string, msg T) bool {
	select {
	case queue.partitions[queue.partitionFor(partitionKey)] <- msg:
		return true
	default:
		return false
	}
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func (queue *PartitionedQueue[T]) partitionFor(key string) int {
	return partitionIndex(key, len(queue.partitions))
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
