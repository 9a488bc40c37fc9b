package domain

// Status page row names.
const (
	RowRegistryConnection = "Registry connection status"
	RowSCMConnection      = "SCM connection status"
)

// ConfigEntry is one sanitized configuration key and value.
type ConfigEntry struct {
	Key   string
	Value string
}

// StatusRow is one OK / NOT OK line of the status page.
type StatusRow struct {
	Name string
	OK   bool
}

// StatusPage is the read-only model rendered by the human-readable status page.
type StatusPage struct {
	Health   HealthSnapshot
	Config   ValidationConfig
	Outcome  ValidationOutcome
	Settings []ConfigEntry
}

// Rows returns the connection rows in display order.
func (p StatusPage) Rows() []StatusRow {
	return []StatusRow{
		{Name: RowRegistryConnection, OK: p.Health.ConnectionOpen},
		{Name: RowSCMConnection, OK: p.Outcome.OK},
	}
}
