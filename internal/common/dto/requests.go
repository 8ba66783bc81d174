package dto

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest is the user creation payload
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserRequest is the partial user update payload; empty fields keep
// their prior value
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// CreateMaterialRequest is the material creation payload
type CreateMaterialRequest struct {
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	Category        string    `json:"category"`
	Quantity        FlexInt   `json:"quantity"`
	Unit            string    `json:"unit"`
	MinStock        FlexInt   `json:"minStock"`
	UnitCost        FlexFloat `json:"unitCost"`
	Supplier        string    `json:"supplier"`
	SupplierContact string    `json:"supplierContact"`
}

// UpdateMaterialRequest is the partial material update payload
type UpdateMaterialRequest struct {
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        *FlexInt   `json:"quantity"`
	Unit            string     `json:"unit"`
	MinStock        *FlexInt   `json:"minStock"`
	UnitCost        *FlexFloat `json:"unitCost"`
	Supplier        string     `json:"supplier"`
	SupplierContact string     `json:"supplierContact"`
}

// CreateScheduleRequest is the production schedule creation payload
type CreateScheduleRequest struct {
	VehicleModel      string   `json:"vehicleModel"`
	ScheduleType      string   `json:"scheduleType"`
	TargetQuantity    FlexInt  `json:"targetQuantity"`
	CompletedQuantity FlexInt  `json:"completedQuantity"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	AssignedMachines  []string `json:"assignedMachines"`
	AssignedLabor     FlexInt  `json:"assignedLabor"`
	Status            string   `json:"status"`
}

// UpdateScheduleRequest is the partial schedule update payload
type UpdateScheduleRequest struct {
	VehicleModel      string    `json:"vehicleModel"`
	ScheduleType      string    `json:"scheduleType"`
	TargetQuantity    *FlexInt  `json:"targetQuantity"`
	CompletedQuantity *FlexInt  `json:"completedQuantity"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate"`
	AssignedMachines  *[]string `json:"assignedMachines"`
	AssignedLabor     *FlexInt  `json:"assignedLabor"`
	Status            string    `json:"status"`
}

// CreateAssemblyRequest is the assembly creation payload
type CreateAssemblyRequest struct {
	VehicleID       string `json:"vehicleId"`
	VehicleModel    string `json:"vehicleModel"`
	BatteryType     string `json:"batteryType"`
	MotorSpec       string `json:"motorSpec"`
	ControllerModel string `json:"controllerModel"`
	Status          string `json:"status"`
	AssembledBy     string `json:"assembledBy"`
}

// UpdateAssemblyRequest is the partial assembly update payload
type UpdateAssemblyRequest struct {
	VehicleModel    string `json:"vehicleModel"`
	BatteryType     string `json:"batteryType"`
	MotorSpec       string `json:"motorSpec"`
	ControllerModel string `json:"controllerModel"`
	Status          string `json:"status"`
	AssembledBy     string `json:"assembledBy"`
}

// CreateInspectionRequest is the inspection creation payload
type CreateInspectionRequest struct {
	VehicleID         string `json:"vehicleId"`
	VehicleModel      string `json:"vehicleModel"`
	InspectionType    string `json:"inspectionType"`
	Result            string `json:"result"`
	DefectDescription string `json:"defectDescription"`
	Inspector         string `json:"inspector"`
}

// CreateCostRequest is the production cost creation payload; the total is
// always computed server-side
type CreateCostRequest struct {
	VehicleID    string    `json:"vehicleId"`
	VehicleModel string    `json:"vehicleModel"`
	MaterialCost FlexFloat `json:"materialCost"`
	LaborCost    FlexFloat `json:"laborCost"`
	OverheadCost FlexFloat `json:"overheadCost"`
}
