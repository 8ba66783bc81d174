package database

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// seeding guards against two near-simultaneous first requests both running
// the bootstrap. The inserts below are additionally keyed on unique columns
// where the schema has them, so a lost race stays harmless.
var seeding atomic.Bool

// SeedIfEmpty populates initial demo data when the store holds no users.
// Calling it again, or concurrently, is a no-op.
func SeedIfEmpty(ctx context.Context, db Database, logger *zap.Logger) error {
	if !seeding.CompareAndSwap(false, true) {
		return nil
	}
	defer seeding.Store(false)

	count, err := db.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding empty database")
	if err := seed(ctx, db); err != nil {
		return err
	}
	logger.Info("database seeded")
	return nil
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

func seed(ctx context.Context, db Database) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hashed)

	users := []*User{
		{Email: "john.mitchell@evmanufacturing.com", Name: "John Mitchell", Password: password, Role: RoleAdmin, Status: UserActive},
		{Email: "sarah.chen@evmanufacturing.com", Name: "Sarah Chen", Password: password, Role: RoleProductionManager, Status: UserActive},
		{Email: "michael.rodriguez@evmanufacturing.com", Name: "Michael Rodriguez", Password: password, Role: RoleQualityInspector, Status: UserActive},
		{Email: "emily.watson@evmanufacturing.com", Name: "Emily Watson", Password: password, Role: RoleProductionManager, Status: UserActive},
		{Email: "david.kim@evmanufacturing.com", Name: "David Kim", Password: password, Role: RoleQualityInspector, Status: UserInactive},
		{Email: "lisa.thompson@evmanufacturing.com", Name: "Lisa Thompson", Password: password, Role: RoleAdmin, Status: UserActive},
		{Email: "james.wilson@evmanufacturing.com", Name: "James Wilson", Password: password, Role: RoleQualityInspector, Status: UserActive},
	}
	for _, u := range users {
		if _, err := db.GetUserByEmail(ctx, u.Email); err == nil {
			continue
		}
		if err := db.CreateUser(ctx, u); err != nil {
			return err
		}
	}

	materials := []*Material{
		{Name: "Li-ion Battery Pack 60kWh", SKU: "BAT-LI-60K", Category: CategoryBattery, Quantity: 245, Unit: "units", MinStock: 100, UnitCost: 8500, Supplier: "LG Energy Solution", SupplierContact: "procurement@lgensol.com"},
		{Name: "Li-ion Battery Pack 80kWh", SKU: "BAT-LI-80K", Category: CategoryBattery, Quantity: 85, Unit: "units", MinStock: 80, UnitCost: 12000, Supplier: "CATL", SupplierContact: "supply@catl.com"},
		{Name: "Li-ion Battery Pack 40kWh", SKU: "BAT-LI-40K", Category: CategoryBattery, Quantity: 190, Unit: "units", MinStock: 80, UnitCost: 5500, Supplier: "Panasonic", SupplierContact: "ev@panasonic.com"},
		{Name: "Electric Motor 150kW", SKU: "MOT-150KW", Category: CategoryMotor, Quantity: 320, Unit: "units", MinStock: 150, UnitCost: 4200, Supplier: "Bosch", SupplierContact: "automotive@bosch.com"},
		{Name: "Electric Motor 200kW", SKU: "MOT-200KW", Category: CategoryMotor, Quantity: 45, Unit: "units", MinStock: 50, UnitCost: 5800, Supplier: "Nidec", SupplierContact: "sales@nidec.com"},
		{Name: "Electric Motor 100kW", SKU: "MOT-100KW", Category: CategoryMotor, Quantity: 275, Unit: "units", MinStock: 120, UnitCost: 3100, Supplier: "Bosch", SupplierContact: "automotive@bosch.com"},
		{Name: "Motor Controller Unit", SKU: "CTRL-MCU-01", Category: CategoryController, Quantity: 410, Unit: "units", MinStock: 200, UnitCost: 1850, Supplier: "BorgWarner", SupplierContact: "powertrain@borgwarner.com"},
		{Name: "Vehicle Chassis Frame", SKU: "CHS-FRAME-01", Category: CategoryChassis, Quantity: 180, Unit: "units", MinStock: 100, UnitCost: 3200, Supplier: "Magna International", SupplierContact: "structures@magna.com"},
		{Name: "All-Season Tires 19\"", SKU: "TIRE-19-AS", Category: CategoryTires, Quantity: 720, Unit: "units", MinStock: 400, UnitCost: 180, Supplier: "Michelin", SupplierContact: "fleet@michelin.com"},
		{Name: "Premium Leather Seats", SKU: "INT-SEAT-PL", Category: CategoryInterior, Quantity: 95, Unit: "sets", MinStock: 80, UnitCost: 2400, Supplier: "Adient", SupplierContact: "seating@adient.com"},
		{Name: "Infotainment Display 15\"", SKU: "ELEC-INF-15", Category: CategoryElectronics, Quantity: 280, Unit: "units", MinStock: 120, UnitCost: 950, Supplier: "Panasonic Automotive", SupplierContact: "infotainment@panasonic.com"},
		{Name: "Battery Management System", SKU: "ELEC-BMS-01", Category: CategoryElectronics, Quantity: 38, Unit: "units", MinStock: 100, UnitCost: 1200, Supplier: "NXP Semiconductors", SupplierContact: "auto@nxp.com"},
	}
	for _, m := range materials {
		if _, err := db.GetMaterialBySKU(ctx, m.SKU); err == nil {
			continue
		}
		if err := db.CreateMaterial(ctx, m); err != nil {
			return err
		}
	}

	schedules := []*ProductionSchedule{
		{VehicleModel: "EV-Compact", ScheduleType: ScheduleDaily, TargetQuantity: 45, CompletedQuantity: 42, StartDate: date("2024-12-18"), EndDate: datePtr("2024-12-18"), Machines: []string{"Assembly Line A", "Assembly Line B"}, AssignedLabor: 28, Status: StatusInProgress},
		{VehicleModel: "EV-Sedan", ScheduleType: ScheduleDaily, TargetQuantity: 35, CompletedQuantity: 35, StartDate: date("2024-12-17"), EndDate: datePtr("2024-12-17"), Machines: []string{"Assembly Line C"}, AssignedLabor: 22, Status: StatusCompleted},
		{VehicleModel: "EV-SUV", ScheduleType: ScheduleWeekly, TargetQuantity: 180, CompletedQuantity: 125, StartDate: date("2024-12-16"), EndDate: datePtr("2024-12-22"), Machines: []string{"Assembly Line D", "Assembly Line E"}, AssignedLabor: 45, Status: StatusInProgress},
		{VehicleModel: "EV-Premium", ScheduleType: ScheduleMonthly, TargetQuantity: 80, CompletedQuantity: 0, StartDate: date("2024-12-23"), EndDate: datePtr("2024-12-31"), Machines: []string{"Assembly Line F"}, AssignedLabor: 18, Status: StatusPending},
		{VehicleModel: "EV-Compact", ScheduleType: ScheduleDaily, TargetQuantity: 50, CompletedQuantity: 50, StartDate: date("2024-12-16"), EndDate: datePtr("2024-12-16"), Machines: []string{"Assembly Line A"}, AssignedLabor: 30, Status: StatusCompleted},
		{VehicleModel: "EV-Sedan", ScheduleType: ScheduleWeekly, TargetQuantity: 200, CompletedQuantity: 178, StartDate: date("2024-12-09"), EndDate: datePtr("2024-12-15"), Machines: []string{"Assembly Line C", "Assembly Line D"}, AssignedLabor: 52, Status: StatusCompleted},
	}
	for _, s := range schedules {
		if err := db.CreateSchedule(ctx, s); err != nil {
			return err
		}
	}

	assemblies := []*Assembly{
		{VehicleID: "VEH-2024-001", VehicleModel: "EV-Compact", BatteryType: "Li-ion 40kWh", MotorSpec: "100kW", ControllerModel: "BorgWarner MCU-100", Status: AssemblyCompleted, AssemblyStartDate: date("2024-12-16"), CompletionDate: datePtr("2024-12-17"), AssembledBy: "Tech Team A"},
		{VehicleID: "VEH-2024-002", VehicleModel: "EV-Sedan", BatteryType: "Li-ion 60kWh", MotorSpec: "150kW", ControllerModel: "BorgWarner MCU-150", Status: AssemblyTesting, AssemblyStartDate: date("2024-12-17"), AssembledBy: "Tech Team B"},
		{VehicleID: "VEH-2024-003", VehicleModel: "EV-SUV", BatteryType: "Li-ion 80kWh", MotorSpec: "200kW", ControllerModel: "BorgWarner MCU-200", Status: AssemblyInAssembly, AssemblyStartDate: date("2024-12-18"), AssembledBy: "Tech Team A"},
		{VehicleID: "VEH-2024-004", VehicleModel: "EV-Premium", BatteryType: "Li-ion 80kWh", MotorSpec: "200kW", ControllerModel: "BorgWarner MCU-200P", Status: AssemblyInAssembly, AssemblyStartDate: date("2024-12-18"), AssembledBy: "Tech Team C"},
		{VehicleID: "VEH-2024-005", VehicleModel: "EV-Compact", BatteryType: "Li-ion 40kWh", MotorSpec: "100kW", ControllerModel: "BorgWarner MCU-100", Status: AssemblyCompleted, AssemblyStartDate: date("2024-12-15"), CompletionDate: datePtr("2024-12-16"), AssembledBy: "Tech Team B"},
		{VehicleID: "VEH-2024-006", VehicleModel: "EV-Sedan", BatteryType: "Li-ion 60kWh", MotorSpec: "150kW", ControllerModel: "BorgWarner MCU-150", Status: AssemblyTesting, AssemblyStartDate: date("2024-12-17"), AssembledBy: "Tech Team A"},
		{VehicleID: "VEH-2024-007", VehicleModel: "EV-SUV", BatteryType: "Li-ion 80kWh", MotorSpec: "200kW", ControllerModel: "BorgWarner MCU-200", Status: AssemblyCompleted, AssemblyStartDate: date("2024-12-14"), CompletionDate: datePtr("2024-12-16"), AssembledBy: "Tech Team C"},
	}
	for _, a := range assemblies {
		if _, err := db.GetAssemblyByVehicleID(ctx, a.VehicleID); err == nil {
			continue
		}
		if err := db.CreateAssembly(ctx, a); err != nil {
			return err
		}
	}

	inspections := []*Inspection{
		{VehicleID: "VEH-2024-001", VehicleModel: "EV-Compact", InspectionType: InspectionVisual, Result: ResultPass, Inspector: "Michael Rodriguez", InspectionDate: date("2024-12-17"), Approved: true},
		{VehicleID: "VEH-2024-002", VehicleModel: "EV-Sedan", InspectionType: InspectionElectrical, Result: ResultFail, DefectDescription: "Battery management system communication error detected during initialization sequence", Inspector: "James Wilson", InspectionDate: date("2024-12-18")},
		{VehicleID: "VEH-2024-005", VehicleModel: "EV-Compact", InspectionType: InspectionPerformance, Result: ResultPass, Inspector: "Michael Rodriguez", InspectionDate: date("2024-12-16"), Approved: true},
		{VehicleID: "VEH-2024-007", VehicleModel: "EV-SUV", InspectionType: InspectionSafety, Result: ResultPass, Inspector: "James Wilson", InspectionDate: date("2024-12-16"), Approved: true},
		{VehicleID: "VEH-2024-003", VehicleModel: "EV-SUV", InspectionType: InspectionVisual, Result: ResultFail, DefectDescription: "Paint defect on driver side door panel - minor scratch marks", Inspector: "Michael Rodriguez", InspectionDate: date("2024-12-17")},
		{VehicleID: "VEH-2024-008", VehicleModel: "EV-Sedan", InspectionType: InspectionElectrical, Result: ResultPass, Inspector: "James Wilson", InspectionDate: date("2024-12-18"), Approved: true},
		{VehicleID: "VEH-2024-009", VehicleModel: "EV-Premium", InspectionType: InspectionPerformance, Result: ResultPass, Inspector: "Michael Rodriguez", InspectionDate: date("2024-12-17"), Approved: true},
		{VehicleID: "VEH-2024-010", VehicleModel: "EV-Compact", InspectionType: InspectionSafety, Result: ResultFail, DefectDescription: "Airbag warning light malfunction in dashboard display", Inspector: "James Wilson", InspectionDate: date("2024-12-18")},
	}
	for _, i := range inspections {
		if err := db.CreateInspection(ctx, i); err != nil {
			return err
		}
	}

	costs := []*ProductionCost{
		{VehicleID: "VEH-2024-001", VehicleModel: "EV-Compact", MaterialCost: 15800, LaborCost: 3200, OverheadCost: 2100, TotalCost: 21100, CalculatedAt: date("2024-12-17")},
		{VehicleID: "VEH-2024-002", VehicleModel: "EV-Sedan", MaterialCost: 22400, LaborCost: 4100, OverheadCost: 2800, TotalCost: 29300, CalculatedAt: date("2024-12-17")},
		{VehicleID: "VEH-2024-003", VehicleModel: "EV-SUV", MaterialCost: 28600, LaborCost: 5200, OverheadCost: 3500, TotalCost: 37300, CalculatedAt: date("2024-12-18")},
		{VehicleID: "VEH-2024-004", VehicleModel: "EV-Premium", MaterialCost: 35200, LaborCost: 6800, OverheadCost: 4500, TotalCost: 46500, CalculatedAt: date("2024-12-18")},
		{VehicleID: "VEH-2024-005", VehicleModel: "EV-Compact", MaterialCost: 15600, LaborCost: 3100, OverheadCost: 2050, TotalCost: 20750, CalculatedAt: date("2024-12-16")},
	}
	for _, c := range costs {
		if err := db.CreateCost(ctx, c); err != nil {
			return err
		}
	}

	metrics := []*PerformanceMetric{
		{Date: date("2024-12-12"), Efficiency: 92.5, Productivity: 87.3, QualityRate: 97.8, VehiclesProduced: 145, DefectCount: 3},
		{Date: date("2024-12-13"), Efficiency: 88.2, Productivity: 85.1, QualityRate: 96.2, VehiclesProduced: 138, DefectCount: 5},
		{Date: date("2024-12-14"), Efficiency: 94.1, Productivity: 89.5, QualityRate: 98.1, VehiclesProduced: 152, DefectCount: 3},
		{Date: date("2024-12-15"), Efficiency: 91.8, Productivity: 86.7, QualityRate: 97.5, VehiclesProduced: 148, DefectCount: 4},
		{Date: date("2024-12-16"), Efficiency: 93.2, Productivity: 88.9, QualityRate: 98.4, VehiclesProduced: 155, DefectCount: 2},
		{Date: date("2024-12-17"), Efficiency: 89.6, Productivity: 84.2, QualityRate: 96.8, VehiclesProduced: 142, DefectCount: 4},
		{Date: date("2024-12-18"), Efficiency: 95.3, Productivity: 91.2, QualityRate: 98.6, VehiclesProduced: 158, DefectCount: 2},
	}
	// Metrics have no unique key; only insert when none exist yet
	if existing, err := db.ListRecentMetrics(ctx, 1); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, m := range metrics {
			if err := db.CreateMetric(ctx, m); err != nil {
				return err
			}
		}
	}

	activities := []*Activity{
		{Action: "Production completed", Details: "EV-Compact batch #1247 finished", Type: ActivitySuccess},
		{Action: "Quality inspection", Details: "VEH-2024-002 failed electrical test", Type: ActivityWarning},
		{Action: "Inventory alert", Details: "Battery Management System below minimum stock", Type: ActivityError},
		{Action: "New schedule created", Details: "Weekly production for EV-SUV started", Type: ActivityInfo},
		{Action: "Assembly completed", Details: "VEH-2024-007 powertrain assembly done", Type: ActivitySuccess},
		{Action: "Cost calculated", Details: "EV-Premium cost analysis updated", Type: ActivityInfo},
	}
	for _, a := range activities {
		if err := db.CreateActivity(ctx, a); err != nil {
			return err
		}
	}

	return nil
}
