package models

// ServerStatus is one row of the fleet status page.
type ServerStatus struct {
	ServerName string `json:"serverName"`
	Online     bool   `json:"online"`
}

// DashboardTarget is the render-ready payload for the dashboard of one server.
type DashboardTarget struct {
	ID  string `json:"id"` // server name, used as the dashboard id
	URL string `json:"url"`
}
