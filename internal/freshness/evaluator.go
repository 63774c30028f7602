package freshness

import (
	"time"

	"github.com/chanderlud/dstat-frontend/internal/models"
)

// DefaultStaleThreshold matches the expected one-second report cadence with one report of slack.
const DefaultStaleThreshold = 2 * time.Second

// Evaluator derives the current rate and liveness of a server from the age of its newest sample.
// It performs no I/O and never fails; a nil sample means the server has never reported.
//
// The threshold is inclusive: a sample exactly threshold seconds old is still fresh.
// Samples from the future (reporter clock ahead of ours) count as fresh.
type Evaluator struct {
	thresholdSecs int64
}

// NewEvaluator creates an Evaluator. Sub-second thresholds are truncated to whole seconds
// because sample times have second granularity.
func NewEvaluator(threshold time.Duration) *Evaluator {
	secs := int64(threshold / time.Second)
	if secs < 0 {
		secs = 0
	}
	return &Evaluator{thresholdSecs: secs}
}

// Threshold returns the staleness threshold in effect.
func (e *Evaluator) Threshold() time.Duration {
	return time.Duration(e.thresholdSecs) * time.Second
}

// IsOnline reports whether latest is recent enough at now.
func (e *Evaluator) IsOnline(latest *models.Sample, now int64) bool {
	if latest == nil {
		return false
	}
	return latest.Age(now) <= e.thresholdSecs
}

// CurrentRate returns latest.RPS while the sample is fresh and 0 otherwise.
// A stale server and a server reporting zero load are indistinguishable here.
func (e *Evaluator) CurrentRate(latest *models.Sample, now int64) int64 {
	if !e.IsOnline(latest, now) {
		return 0
	}
	return latest.RPS
}
