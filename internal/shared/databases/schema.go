package databases

// LogsSchema keys samples by (time, server_name) so two servers reporting in
// the same second do not collide.
const LogsSchema = `
CREATE TABLE IF NOT EXISTS logs (
    time BIGINT NOT NULL,
    server_name TEXT NOT NULL,
    rps BIGINT NOT NULL,
    PRIMARY KEY (time, server_name)
)`

const LogsServerTimeIndex = `CREATE INDEX IF NOT EXISTS idx_logs_server_time ON logs(server_name, time DESC)`

// ServersSchema is the catalog of known servers. Its rows are owned outside the service.
const ServersSchema = `
CREATE TABLE IF NOT EXISTS servers (
    server_id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    server_name TEXT NOT NULL UNIQUE,
    url TEXT NOT NULL
)`

var schemaStatements = []string{
	LogsSchema,
	LogsServerTimeIndex,
	ServersSchema,
}
