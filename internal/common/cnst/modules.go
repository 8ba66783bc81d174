package cnst

// Module identifiers used by the access policy and the navigation shell.
const (
	ModuleDashboard  = "dashboard"
	ModuleUsers      = "users"
	ModuleInventory  = "inventory"
	ModuleProduction = "production"
	ModuleBattery    = "battery"
	ModuleQuality    = "quality"
	ModuleCosts      = "costs"
	ModuleReports    = "reports"
)

// Report kinds accepted by the report exporter.
const (
	ReportProduction = "production"
	ReportInventory  = "inventory"
	ReportQuality    = "quality"
	ReportCost       = "cost"
)
