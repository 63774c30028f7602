package models

// ServerRef is a catalog entry for a known server. ServerName is unique and joins to Sample.ServerName.
type ServerRef struct {
	ServerID   string `json:"serverId" yaml:"server_id"`
	Category   string `json:"category" yaml:"category"`
	ServerName string `json:"serverName" yaml:"server_name"`
	URL        string `json:"url" yaml:"url"`
}
