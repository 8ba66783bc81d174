package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltline/evmis/internal/apiserver/database"
)

func schedule(model string, status database.ProductionStatus, target, completed int) *database.ProductionSchedule {
	return &database.ProductionSchedule{
		VehicleModel:      model,
		Status:            status,
		TargetQuantity:    target,
		CompletedQuantity: completed,
	}
}

func inspection(result database.InspectionResult) *database.Inspection {
	return &database.Inspection{Result: result}
}

func TestLowStock_StrictlyBelowMinimum(t *testing.T) {
	assert.True(t, LowStock(&database.Material{Quantity: 4, MinStock: 5}))
	assert.False(t, LowStock(&database.Material{Quantity: 5, MinStock: 5}))
	assert.False(t, LowStock(&database.Material{Quantity: 6, MinStock: 5}))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(10, 0))
	assert.Equal(t, 50, Progress(5, 10))
	assert.Equal(t, 33, Progress(1, 3))
	assert.Equal(t, 100, Progress(10, 10))
}

func TestDefectRate(t *testing.T) {
	assert.Equal(t, 0.0, DefectRate(nil))

	inspections := []*database.Inspection{
		inspection(database.ResultFail),
		inspection(database.ResultFail),
		inspection(database.ResultFail),
		inspection(database.ResultPass),
		inspection(database.ResultPass),
		inspection(database.ResultPass),
		inspection(database.ResultPass),
		inspection(database.ResultPass),
	}
	assert.Equal(t, 37.5, DefectRate(inspections))
	assert.Equal(t, 62.5, PassRate(inspections))
}

func TestDefectRate_Rounding(t *testing.T) {
	// 1 of 3 = 33.333... rounds to 33.3
	inspections := []*database.Inspection{
		inspection(database.ResultFail),
		inspection(database.ResultPass),
		inspection(database.ResultPass),
	}
	assert.Equal(t, 33.3, DefectRate(inspections))
	assert.Equal(t, 66.7, PassRate(inspections))
}

func TestComputeSummary(t *testing.T) {
	schedules := []*database.ProductionSchedule{
		schedule("EV-Compact", database.StatusInProgress, 100, 40),
		schedule("EV-Sedan", database.StatusPending, 50, 0),
		schedule("EV-SUV", database.StatusCompleted, 30, 30),
	}
	materials := []*database.Material{
		{Quantity: 2, MinStock: 10},
		{Quantity: 10, MinStock: 10},
	}
	inspections := []*database.Inspection{
		inspection(database.ResultPass),
		inspection(database.ResultFail),
	}
	costs := []*database.ProductionCost{
		{TotalCost: 21100, MaterialCost: 15000, LaborCost: 4000, OverheadCost: 2100},
		{TotalCost: 29300},
		{TotalCost: 37300},
		{TotalCost: 46500},
		{TotalCost: 20750},
	}

	s := ComputeSummary(schedules, materials, inspections, costs)
	assert.Equal(t, 70, s.TotalVehiclesProduced)
	assert.Equal(t, 1, s.PendingOrders)
	assert.Equal(t, 1, s.ActiveProductionLines)
	assert.Equal(t, 1, s.LowStockAlerts)
	assert.Equal(t, 50.0, s.DefectRate)
	assert.Equal(t, 154950.0, s.TotalProductionCost)
	assert.Equal(t, 30990.0, s.AvgCostPerVehicle)
}

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(nil, nil, nil, nil)
	assert.Equal(t, Summary{}, s)
}

func TestModelDistribution_SumsAndKeepsFirstSeenOrder(t *testing.T) {
	schedules := []*database.ProductionSchedule{
		schedule("A", database.StatusPending, 10, 0),
		schedule("A", database.StatusCompleted, 10, 10),
		schedule("B", database.StatusCompleted, 5, 5),
	}
	assert.Equal(t, []NameValue{
		{Name: "A", Value: 10},
		{Name: "B", Value: 5},
	}, ModelDistribution(schedules))
}

func TestStatusDistribution_CountsAndHumanizes(t *testing.T) {
	schedules := []*database.ProductionSchedule{
		schedule("A", database.StatusPending, 10, 0),
		schedule("A", database.StatusCompleted, 10, 10),
		schedule("B", database.StatusCompleted, 5, 5),
	}
	assert.Equal(t, []NameValue{
		{Name: "Pending", Value: 1},
		{Name: "Completed", Value: 2},
	}, StatusDistribution(schedules))
}

func TestHumanizeStatus(t *testing.T) {
	assert.Equal(t, "In Progress", HumanizeStatus("in_progress"))
	assert.Equal(t, "Pending", HumanizeStatus("pending"))
	assert.Equal(t, "In Assembly", HumanizeStatus("in_assembly"))
}

func TestCostBreakdown(t *testing.T) {
	costs := []*database.ProductionCost{
		{MaterialCost: 600, LaborCost: 300, OverheadCost: 100},
		{MaterialCost: 400, LaborCost: 200, OverheadCost: 400},
	}
	b := ComputeCostBreakdown(costs)
	assert.Equal(t, CostBreakdown{Material: 1000, Labor: 500, Overhead: 500}, b)

	material, labor, overhead := b.Percentages()
	assert.Equal(t, 50, material)
	assert.Equal(t, 25, labor)
	assert.Equal(t, 25, overhead)
}

func TestCostBreakdown_ZeroTotal(t *testing.T) {
	material, labor, overhead := CostBreakdown{}.Percentages()
	assert.Equal(t, 0, material)
	assert.Equal(t, 0, labor)
	assert.Equal(t, 0, overhead)
}

func TestComputeProductionStats(t *testing.T) {
	schedules := []*database.ProductionSchedule{
		schedule("A", database.StatusCompleted, 10, 10),
		schedule("A", database.StatusInProgress, 20, 5),
		schedule("B", database.StatusPending, 30, 0),
	}
	s := ComputeProductionStats(schedules)
	assert.Equal(t, ProductionStats{
		Total:             3,
		Completed:         1,
		InProgress:        1,
		TargetQuantity:    60,
		CompletedQuantity: 15,
	}, s)
}

func TestComputeInventoryStats(t *testing.T) {
	materials := []*database.Material{
		{Quantity: 2, MinStock: 10, UnitCost: 5},
		{Quantity: 100, MinStock: 10, UnitCost: 1.5},
	}
	s := ComputeInventoryStats(materials)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 160.0, s.TotalValue)
}

func TestComputeQualityStats(t *testing.T) {
	inspections := []*database.Inspection{
		inspection(database.ResultPass),
		inspection(database.ResultPass),
		inspection(database.ResultFail),
	}
	s := ComputeQualityStats(inspections)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 66.7, s.PassRate)

	assert.Equal(t, QualityStats{}, ComputeQualityStats(nil))
}

func TestComputeCostStats(t *testing.T) {
	costs := []*database.ProductionCost{
		{TotalCost: 100, MaterialCost: 60, LaborCost: 30, OverheadCost: 10},
		{TotalCost: 300, MaterialCost: 200, LaborCost: 50, OverheadCost: 50},
	}
	s := ComputeCostStats(costs)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 400.0, s.TotalCost)
	assert.Equal(t, 200.0, s.AvgCost)
	assert.Equal(t, 260.0, s.Material)
	assert.Equal(t, 80.0, s.Labor)
	assert.Equal(t, 60.0, s.Overhead)

	assert.Equal(t, 0.0, ComputeCostStats(nil).AvgCost)
}
