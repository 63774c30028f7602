package models

// WindowSummary describes the most recent bounded window of samples for a server.
//
// Samples are ordered newest first. An empty window has Count 0 and zero-valued statistics.
//
// Example JSON:
//
//	{
//	  "serverName": "edge1",
//	  "count": 3,
//	  "minRps": 480,
//	  "maxRps": 520,
//	  "avgRps": 500,
//	  "latestTime": 1735408995,
//	  "currentRps": 500,
//	  "online": true,
//	  "samples": [...]
//	}
type WindowSummary struct {
	ServerName string    `json:"serverName"`
	Count      int       `json:"count"`
	MinRPS     int64     `json:"minRps"`
	MaxRPS     int64     `json:"maxRps"`
	AvgRPS     float64   `json:"avgRps"`
	LatestTime int64     `json:"latestTime"`
	CurrentRPS int64     `json:"currentRps"`
	Online     bool      `json:"online"`
	Samples    []*Sample `json:"samples"`
}

// NewWindowSummary computes statistics over samples, which must be ordered newest first.
// CurrentRPS and Online are left for the caller since they depend on the clock.
func NewWindowSummary(serverName string, samples []*Sample) *WindowSummary {
	summary := &WindowSummary{
		ServerName: serverName,
		Samples:    samples,
	}
	if len(samples) == 0 {
		summary.Samples = []*Sample{}
		return summary
	}

	summary.Count = len(samples)
	summary.LatestTime = samples[0].Time
	summary.MinRPS = samples[0].RPS
	summary.MaxRPS = samples[0].RPS

	var total int64
	for _, s := range samples {
		total += s.RPS
		if s.RPS < summary.MinRPS {
			summary.MinRPS = s.RPS
		}
		if s.RPS > summary.MaxRPS {
			summary.MaxRPS = s.RPS
		}
		if s.Time > summary.LatestTime {
			summary.LatestTime = s.Time
		}
	}
	summary.AvgRPS = float64(total) / float64(len(samples))

	return summary
}

// Latest returns the newest sample in the window, or nil for an empty window.
func (w *WindowSummary) Latest() *Sample {
	if len(w.Samples) == 0 {
		return nil
	}
	return w.Samples[0]
}
