package database

import (
	"context"
)

// Database defines the record store operations backing every module.
// Relationships between entities are by denormalized vehicle id only;
// deletes never cascade.
type Database interface {
	// Close closes the database connection.
	Close() error

	ListUsers(ctx context.Context) ([]*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)

	// ListMaterials filters by exact category (empty or "all" matches
	// everything) and a case-insensitive substring over name, sku and
	// supplier.
	ListMaterials(ctx context.Context, category, search string) ([]*Material, error)
	GetMaterialByID(ctx context.Context, id string) (*Material, error)
	GetMaterialBySKU(ctx context.Context, sku string) (*Material, error)
	CreateMaterial(ctx context.Context, material *Material) error
	UpdateMaterial(ctx context.Context, material *Material) error
	DeleteMaterial(ctx context.Context, id string) error

	ListSchedules(ctx context.Context, status string) ([]*ProductionSchedule, error)
	GetScheduleByID(ctx context.Context, id string) (*ProductionSchedule, error)
	CreateSchedule(ctx context.Context, schedule *ProductionSchedule) error
	UpdateSchedule(ctx context.Context, schedule *ProductionSchedule) error
	DeleteSchedule(ctx context.Context, id string) error

	ListAssemblies(ctx context.Context) ([]*Assembly, error)
	GetAssemblyByID(ctx context.Context, id string) (*Assembly, error)
	GetAssemblyByVehicleID(ctx context.Context, vehicleID string) (*Assembly, error)
	CreateAssembly(ctx context.Context, assembly *Assembly) error
	UpdateAssembly(ctx context.Context, assembly *Assembly) error
	DeleteAssembly(ctx context.Context, id string) error

	ListInspections(ctx context.Context, result string) ([]*Inspection, error)
	CreateInspection(ctx context.Context, inspection *Inspection) error

	ListCosts(ctx context.Context) ([]*ProductionCost, error)
	CreateCost(ctx context.Context, cost *ProductionCost) error

	// ListRecentMetrics returns the latest n metrics, most recent first.
	ListRecentMetrics(ctx context.Context, n int) ([]*PerformanceMetric, error)
	CreateMetric(ctx context.Context, metric *PerformanceMetric) error
	// ListMetricTrend returns the latest n metrics reordered oldest-first
	// for chart display.
	ListMetricTrend(ctx context.Context, n int) ([]*PerformanceMetric, error)

	// ListRecentActivities returns the latest n feed entries, newest first.
	ListRecentActivities(ctx context.Context, n int) ([]*Activity, error)
	CreateActivity(ctx context.Context, activity *Activity) error
}
