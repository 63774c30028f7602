package models

// Sample is one throughput report for a server. It is immutable once stored.
//
// Example JSON:
//
//	{
//	  "time": 1735408995,
//	  "serverName": "edge1",
//	  "rps": 500
//	}
type Sample struct {
	Time       int64  `json:"time"` // unix seconds, assigned at ingestion
	ServerName string `json:"serverName"`
	RPS        int64  `json:"rps"`
}

// Age returns how many seconds old the sample is at now. Negative under clock skew.
func (s *Sample) Age(now int64) int64 {
	return now - s.Time
}
