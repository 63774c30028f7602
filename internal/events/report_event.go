package events

// ReportEvent is published after a report has been appended to the log.
// It feeds observability only; queries always read the log store.
//
// Example JSON:
//
//	{
//	  "serverName": "edge1",
//	  "time": 1735408995,
//	  "rps": 500
//	}
type ReportEvent struct {
	ServerName string `json:"serverName"`
	Time       int64  `json:"time"`
	RPS        int64  `json:"rps"`
}
