// Package stats is the single source of every derived figure in the system.
// The dashboard, the per-module statistic endpoints and the report exporter
// all call through these functions, so shared figures can never disagree
// between views. Every ratio guards its divisor and yields 0 instead of NaN.
package stats

import (
	"math"
	"strings"

	"github.com/voltline/evmis/internal/apiserver/database"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Summary is the dashboard headline block.
type Summary struct {
	TotalVehiclesProduced int     `json:"totalVehiclesProduced"`
	PendingOrders         int     `json:"pendingOrders"`
	LowStockAlerts        int     `json:"lowStockAlerts"`
	DefectRate            float64 `json:"defectRate"`
	TotalProductionCost   float64 `json:"totalProductionCost"`
	AvgCostPerVehicle     float64 `json:"avgCostPerVehicle"`
	ActiveProductionLines int     `json:"activeProductionLines"`
}

// NameValue is one slice of a distribution chart.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CostBreakdown holds the independent sums of the three cost components.
type CostBreakdown struct {
	Material float64 `json:"material"`
	Labor    float64 `json:"labor"`
	Overhead float64 `json:"overhead"`
}

// ProductionStats is the production planning module block.
type ProductionStats struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	InProgress        int `json:"inProgress"`
	TargetQuantity    int `json:"targetQuantity"`
	CompletedQuantity int `json:"completedQuantity"`
}

// InventoryStats is the inventory module block.
type InventoryStats struct {
	Total      int     `json:"total"`
	LowStock   int     `json:"lowStock"`
	TotalValue float64 `json:"totalValue"`
}

// QualityStats is the quality control module block.
type QualityStats struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	PassRate float64 `json:"passRate"`
}

// CostStats is the cost and performance module block.
type CostStats struct {
	Total     int     `json:"total"`
	TotalCost float64 `json:"totalCost"`
	AvgCost   float64 `json:"avgCost"`
	Material  float64 `json:"material"`
	Labor     float64 `json:"labor"`
	Overhead  float64 `json:"overhead"`
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// LowStock reports whether a material is strictly below its minimum stock.
func LowStock(m *database.Material) bool {
	return m.Quantity < m.MinStock
}

// Progress returns the completion percentage of a schedule as a whole
// number, 0 when the target is 0.
func Progress(completed, target int) int {
	if target == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(target) * 100))
}

// DefectRate returns the failed-inspection percentage rounded to one
// decimal, 0 when there are no inspections.
func DefectRate(inspections []*database.Inspection) float64 {
	if len(inspections) == 0 {
		return 0
	}
	failed := 0
	for _, i := range inspections {
		if i.Result == database.ResultFail {
			failed++
		}
	}
	return round1(float64(failed) / float64(len(inspections)) * 100)
}

// PassRate returns the passed-inspection percentage rounded to one decimal,
// 0 when there are no inspections.
func PassRate(inspections []*database.Inspection) float64 {
	if len(inspections) == 0 {
		return 0
	}
	passed := 0
	for _, i := range inspections {
		if i.Result == database.ResultPass {
			passed++
		}
	}
	return round1(float64(passed) / float64(len(inspections)) * 100)
}

// ComputeSummary reduces the four collections into the dashboard headline.
func ComputeSummary(
	schedules []*database.ProductionSchedule,
	materials []*database.Material,
	inspections []*database.Inspection,
	costs []*database.ProductionCost,
) Summary {
	var s Summary
	for _, sched := range schedules {
		s.TotalVehiclesProduced += sched.CompletedQuantity
		switch sched.Status {
		case database.StatusPending:
			s.PendingOrders++
		case database.StatusInProgress:
			s.ActiveProductionLines++
		}
	}
	for _, m := range materials {
		if LowStock(m) {
			s.LowStockAlerts++
		}
	}
	s.DefectRate = DefectRate(inspections)
	for _, c := range costs {
		s.TotalProductionCost += c.TotalCost
	}
	if len(costs) > 0 {
		s.AvgCostPerVehicle = s.TotalProductionCost / float64(len(costs))
	}
	return s
}

// ModelDistribution groups schedules by vehicle model and sums completed
// quantities. Order is first-observed and stable for a given input.
func ModelDistribution(schedules []*database.ProductionSchedule) []NameValue {
	index := make(map[string]int)
	out := make([]NameValue, 0)
	for _, s := range schedules {
		i, ok := index[s.VehicleModel]
		if !ok {
			i = len(out)
			index[s.VehicleModel] = i
			out = append(out, NameValue{Name: s.VehicleModel})
		}
		out[i].Value += s.CompletedQuantity
	}
	return out
}

// StatusDistribution groups schedules by status and counts them. Labels are
// humanized for display: in_progress becomes "In Progress".
func StatusDistribution(schedules []*database.ProductionSchedule) []NameValue {
	index := make(map[string]int)
	out := make([]NameValue, 0)
	for _, s := range schedules {
		label := HumanizeStatus(string(s.Status))
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, NameValue{Name: label})
		}
		out[i].Value++
	}
	return out
}

// HumanizeStatus replaces underscores with spaces and capitalizes each word.
func HumanizeStatus(status string) string {
	return titleCaser.String(strings.ReplaceAll(status, "_", " "))
}

// ComputeCostBreakdown sums the three cost components independently.
func ComputeCostBreakdown(costs []*database.ProductionCost) CostBreakdown {
	var b CostBreakdown
	for _, c := range costs {
		b.Material += c.MaterialCost
		b.Labor += c.LaborCost
		b.Overhead += c.OverheadCost
	}
	return b
}

// Percentages converts the breakdown sums to integer percentages for chart
// display. All zeros when the total is 0.
func (b CostBreakdown) Percentages() (material, labor, overhead int) {
	total := b.Material + b.Labor + b.Overhead
	if total == 0 {
		return 0, 0, 0
	}
	material = int(math.Round(b.Material / total * 100))
	labor = int(math.Round(b.Labor / total * 100))
	overhead = int(math.Round(b.Overhead / total * 100))
	return material, labor, overhead
}

// ComputeProductionStats reduces schedules into the production module block.
func ComputeProductionStats(schedules []*database.ProductionSchedule) ProductionStats {
	s := ProductionStats{Total: len(schedules)}
	for _, sched := range schedules {
		s.TargetQuantity += sched.TargetQuantity
		s.CompletedQuantity += sched.CompletedQuantity
		switch sched.Status {
		case database.StatusCompleted:
			s.Completed++
		case database.StatusInProgress:
			s.InProgress++
		}
	}
	return s
}

// ComputeInventoryStats reduces materials into the inventory module block.
func ComputeInventoryStats(materials []*database.Material) InventoryStats {
	s := InventoryStats{Total: len(materials)}
	for _, m := range materials {
		if LowStock(m) {
			s.LowStock++
		}
		s.TotalValue += float64(m.Quantity) * m.UnitCost
	}
	return s
}

// ComputeQualityStats reduces inspections into the quality module block.
func ComputeQualityStats(inspections []*database.Inspection) QualityStats {
	s := QualityStats{Total: len(inspections)}
	for _, i := range inspections {
		if i.Result == database.ResultPass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	s.PassRate = PassRate(inspections)
	return s
}

// ComputeCostStats reduces cost records into the cost module block.
func ComputeCostStats(costs []*database.ProductionCost) CostStats {
	s := CostStats{Total: len(costs)}
	for _, c := range costs {
		s.TotalCost += c.TotalCost
		s.Material += c.MaterialCost
		s.Labor += c.LaborCost
		s.Overhead += c.OverheadCost
	}
	if len(costs) > 0 {
		s.AvgCost = s.TotalCost / float64(len(costs))
	}
	return s
}
