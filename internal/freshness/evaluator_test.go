package freshness

import (
	"math"
	"testing"
	"time"

	"github.com/chanderlud/dstat-frontend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluator_NoSample(t *testing.T) {
	t.Parallel()

	evaluator := NewEvaluator(DefaultStaleThreshold)
	for _, now := range []int64{0, 1, 1000, -1000, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, int64(0), evaluator.CurrentRate(nil, now), "now=%d", now)
		assert.False(t, evaluator.IsOnline(nil, now), "now=%d", now)
	}
}

func TestEvaluator_Freshness(t *testing.T) {
	t.Parallel()

	sample := &models.Sample{Time: 1000, ServerName: "edge1", RPS: 500}

	tests := []struct {
		name       string
		threshold  time.Duration
		now        int64
		wantOnline bool
		wantRate   int64
	}{
		{"same second", 2 * time.Second, 1000, true, 500},
		{"one second old", 2 * time.Second, 1001, true, 500},
		{"exactly at threshold", 2 * time.Second, 1002, true, 500},
		{"one past threshold", 2 * time.Second, 1003, false, 0},
		{"long silent", 2 * time.Second, 1010, false, 0},
		{"clock skew future sample", 2 * time.Second, 990, true, 500},
		{"zero threshold same second", 0, 1000, true, 500},
		{"zero threshold next second", 0, 1001, false, 0},
		{"wider threshold", 10 * time.Second, 1010, true, 500},
		{"sub-second threshold truncates", 1500 * time.Millisecond, 1002, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := NewEvaluator(tt.threshold)
			assert.Equal(t, tt.wantOnline, evaluator.IsOnline(sample, tt.now))
			assert.Equal(t, tt.wantRate, evaluator.CurrentRate(sample, tt.now))
		})
	}
}

func TestEvaluator_ZeroLoadIsOnline(t *testing.T) {
	t.Parallel()

	evaluator := NewEvaluator(DefaultStaleThreshold)
	sample := &models.Sample{Time: 1000, ServerName: "edge1", RPS: 0}

	assert.True(t, evaluator.IsOnline(sample, 1001))
	assert.Equal(t, int64(0), evaluator.CurrentRate(sample, 1001))
}

func TestEvaluator_ThresholdProperty(t *testing.T) {
	t.Parallel()

	evaluator := NewEvaluator(DefaultStaleThreshold)
	threshold := int64(evaluator.Threshold() / time.Second)
	assert.Equal(t, int64(2), threshold)

	for ts := int64(0); ts < 50; ts++ {
		sample := &models.Sample{Time: ts, ServerName: "edge1", RPS: ts + 1}
		for now := ts - 5; now < ts+10; now++ {
			fresh := now-ts <= threshold
			assert.Equal(t, fresh, evaluator.IsOnline(sample, now), "ts=%d now=%d", ts, now)
			if fresh {
				assert.Equal(t, sample.RPS, evaluator.CurrentRate(sample, now))
			} else {
				assert.Equal(t, int64(0), evaluator.CurrentRate(sample, now))
			}
		}
	}
}

func TestNewEvaluator_NegativeThresholdClamped(t *testing.T) {
	t.Parallel()

	evaluator := NewEvaluator(-5 * time.Second)
	assert.Equal(t, time.Duration(0), evaluator.Threshold())
}
