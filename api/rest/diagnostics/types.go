package diagnostics

// Response is the status record the probe reports. Field values are
// human-readable status strings; the endpoint is diagnostic-only and never
// fails the request.
type Response struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
