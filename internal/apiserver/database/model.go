package database

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin             UserRole = "admin"
	RoleProductionManager UserRole = "production_manager"
	RoleQualityInspector  UserRole = "quality_inspector"
)

// UserStatus represents the account status of a user
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User represents an operator account. The password hash is never serialized.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      UserRole   `json:"role" gorm:"type:varchar(32);not null;default:'production_manager'"`
	Status    UserStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt time.Time  `json:"createdAt"`
}

// BeforeCreate assigns an id and normalizes the email for the unique index.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(u.Email)
	return nil
}

// MaterialCategory represents the inventory category of a material
type MaterialCategory string

const (
	CategoryBattery     MaterialCategory = "battery"
	CategoryMotor       MaterialCategory = "motor"
	CategoryController  MaterialCategory = "controller"
	CategoryChassis     MaterialCategory = "chassis"
	CategoryTires       MaterialCategory = "tires"
	CategoryInterior    MaterialCategory = "interior"
	CategoryElectronics MaterialCategory = "electronics"
)

// Material represents a raw material or component held in inventory.
// A material is "low stock" when quantity < minStock; that predicate is
// derived by the stats package, never stored.
type Material struct {
	ID              string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string           `json:"name" gorm:"not null"`
	SKU             string           `json:"sku" gorm:"column:sku;type:varchar(64);uniqueIndex;not null"`
	Category        MaterialCategory `json:"category" gorm:"type:varchar(32);not null;default:'electronics'"`
	Quantity        int              `json:"quantity" gorm:"not null;default:0"`
	Unit            string           `json:"unit" gorm:"not null;default:'units'"`
	MinStock        int              `json:"minStock" gorm:"not null;default:0"`
	UnitCost        float64          `json:"unitCost" gorm:"not null;default:0"`
	Supplier        string           `json:"supplier" gorm:"not null"`
	SupplierContact string           `json:"supplierContact"`
	LastUpdated     time.Time        `json:"lastUpdated" gorm:"autoUpdateTime:false"`
}

func (m *Material) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.LastUpdated.IsZero() {
		m.LastUpdated = time.Now()
	}
	return nil
}

// ScheduleType represents the planning horizon of a production schedule
type ScheduleType string

const (
	ScheduleDaily   ScheduleType = "daily"
	ScheduleWeekly  ScheduleType = "weekly"
	ScheduleMonthly ScheduleType = "monthly"
)

// ProductionStatus represents the status of a production schedule
type ProductionStatus string

const (
	StatusPending    ProductionStatus = "pending"
	StatusInProgress ProductionStatus = "in_progress"
	StatusCompleted  ProductionStatus = "completed"
)

// ProductionSchedule represents a planned production run for one vehicle model.
// Assigned machines are stored serialized in one column and exposed to the
// API as an ordered list; the round trip is lossless.
type ProductionSchedule struct {
	ID                string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleModel      string           `json:"vehicleModel" gorm:"not null"`
	ScheduleType      ScheduleType     `json:"scheduleType" gorm:"type:varchar(16);not null;default:'daily'"`
	TargetQuantity    int              `json:"targetQuantity" gorm:"not null;default:0"`
	CompletedQuantity int              `json:"completedQuantity" gorm:"not null;default:0"`
	StartDate         time.Time        `json:"startDate" gorm:"not null"`
	EndDate           *time.Time       `json:"endDate,omitempty"`
	MachinesRaw       string           `json:"-" gorm:"column:assigned_machines;not null;default:'[]'"`
	Machines          []string         `json:"assignedMachines" gorm:"-"`
	AssignedLabor     int              `json:"assignedLabor" gorm:"not null;default:0"`
	Status            ProductionStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt         time.Time        `json:"createdAt"`
}

func (s *ProductionSchedule) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// EncodeMachines serializes Machines into the stored column.
func (s *ProductionSchedule) EncodeMachines() error {
	if s.Machines == nil {
		s.Machines = []string{}
	}
	raw, err := json.Marshal(s.Machines)
	if err != nil {
		return err
	}
	s.MachinesRaw = string(raw)
	return nil
}

// DecodeMachines deserializes the stored column into Machines.
func (s *ProductionSchedule) DecodeMachines() error {
	if s.MachinesRaw == "" {
		s.Machines = []string{}
		return nil
	}
	return json.Unmarshal([]byte(s.MachinesRaw), &s.Machines)
}

// AssemblyStatus represents the status of a battery/powertrain assembly
type AssemblyStatus string

const (
	AssemblyInAssembly AssemblyStatus = "in_assembly"
	AssemblyTesting    AssemblyStatus = "testing"
	AssemblyCompleted  AssemblyStatus = "completed"
)

// Assembly represents a battery and powertrain assembly record for one vehicle.
type Assembly struct {
	ID                string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleID         string         `json:"vehicleId" gorm:"type:varchar(64);uniqueIndex;not null"`
	VehicleModel      string         `json:"vehicleModel" gorm:"not null"`
	BatteryType       string         `json:"batteryType" gorm:"not null"`
	MotorSpec         string         `json:"motorSpec" gorm:"not null"`
	ControllerModel   string         `json:"controllerModel" gorm:"not null"`
	Status            AssemblyStatus `json:"status" gorm:"type:varchar(16);not null;default:'in_assembly'"`
	AssemblyStartDate time.Time      `json:"assemblyStartDate" gorm:"not null"`
	CompletionDate    *time.Time     `json:"completionDate,omitempty"`
	AssembledBy       string         `json:"assembledBy" gorm:"not null"`
}

func (a *Assembly) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AssemblyStartDate.IsZero() {
		a.AssemblyStartDate = time.Now()
	}
	return nil
}

// InspectionType represents the kind of quality inspection performed
type InspectionType string

const (
	InspectionVisual      InspectionType = "visual"
	InspectionElectrical  InspectionType = "electrical"
	InspectionPerformance InspectionType = "performance"
	InspectionSafety      InspectionType = "safety"
)

// InspectionResult represents the outcome of a quality inspection
type InspectionResult string

const (
	ResultPass InspectionResult = "pass"
	ResultFail InspectionResult = "fail"
)

// Inspection represents a quality inspection of one vehicle. Approved mirrors
// result == pass at creation time and is not independently editable.
type Inspection struct {
	ID                string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleID         string           `json:"vehicleId" gorm:"type:varchar(64);not null"`
	VehicleModel      string           `json:"vehicleModel" gorm:"not null"`
	InspectionType    InspectionType   `json:"inspectionType" gorm:"type:varchar(16);not null;default:'visual'"`
	Result            InspectionResult `json:"result" gorm:"type:varchar(8);not null;default:'pass'"`
	DefectDescription string           `json:"defectDescription,omitempty"`
	Inspector         string           `json:"inspector" gorm:"not null"`
	InspectionDate    time.Time        `json:"inspectionDate" gorm:"not null"`
	Approved          bool             `json:"approved" gorm:"not null;default:false"`
}

func (i *Inspection) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.InspectionDate.IsZero() {
		i.InspectionDate = time.Now()
	}
	return nil
}

// ProductionCost represents the cost breakdown for producing one vehicle.
// TotalCost is always material + labor + overhead, computed at write time.
type ProductionCost struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleID    string    `json:"vehicleId" gorm:"type:varchar(64);not null"`
	VehicleModel string    `json:"vehicleModel" gorm:"not null"`
	MaterialCost float64   `json:"materialCost" gorm:"not null;default:0"`
	LaborCost    float64   `json:"laborCost" gorm:"not null;default:0"`
	OverheadCost float64   `json:"overheadCost" gorm:"not null;default:0"`
	TotalCost    float64   `json:"totalCost" gorm:"not null;default:0"`
	CalculatedAt time.Time `json:"calculatedAt" gorm:"not null"`
}

func (c *ProductionCost) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CalculatedAt.IsZero() {
		c.CalculatedAt = time.Now()
	}
	return nil
}

// PerformanceMetric represents one day of factory performance figures.
type PerformanceMetric struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Date             time.Time `json:"date" gorm:"not null"`
	Efficiency       float64   `json:"efficiency" gorm:"not null;default:0"`
	Productivity     float64   `json:"productivity" gorm:"not null;default:0"`
	QualityRate      float64   `json:"qualityRate" gorm:"not null;default:0"`
	VehiclesProduced int       `json:"vehiclesProduced" gorm:"not null;default:0"`
	DefectCount      int       `json:"defectCount" gorm:"not null;default:0"`
}

func (m *PerformanceMetric) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ActivityType classifies an activity feed entry
type ActivityType string

const (
	ActivitySuccess ActivityType = "success"
	ActivityWarning ActivityType = "warning"
	ActivityError   ActivityType = "error"
	ActivityInfo    ActivityType = "info"
)

// Activity is an append-only log entry shown in the dashboard feed.
type Activity struct {
	ID        string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Action    string       `json:"action" gorm:"not null"`
	Details   string       `json:"details"`
	Type      ActivityType `json:"type" gorm:"type:varchar(16);not null;default:'info'"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
