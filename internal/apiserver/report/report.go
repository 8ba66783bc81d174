// Package report flattens entity collections into downloadable CSV files.
// Derived columns (schedule progress, stock status) go through the stats
// package so exports always match what the screens show.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/apiserver/stats"
	"github.com/voltline/evmis/internal/common/cnst"
)

const delimiter = ","

// Filename returns the download name for a report kind, embedding the
// current date: production_report_2024-12-18.csv.
func Filename(kind string, now time.Time) string {
	return fmt.Sprintf("%s_report_%s.csv", kind, now.Format("2006-01-02"))
}

// IsValidKind reports whether the exporter knows the report kind.
func IsValidKind(kind string) bool {
	switch kind {
	case cnst.ReportProduction, cnst.ReportInventory, cnst.ReportQuality, cnst.ReportCost:
		return true
	}
	return false
}

// Production renders the production schedule report.
func Production(schedules []*database.ProductionSchedule) string {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		end := ""
		if s.EndDate != nil {
			end = formatDate(*s.EndDate)
		}
		rows = append(rows, []string{
			shortID(s.ID),
			s.VehicleModel,
			string(s.ScheduleType),
			strconv.Itoa(s.TargetQuantity),
			strconv.Itoa(s.CompletedQuantity),
			strconv.Itoa(stats.Progress(s.CompletedQuantity, s.TargetQuantity)),
			string(s.Status),
			formatDate(s.StartDate),
			end,
		})
	}
	return render(
		[]string{"ID", "Model", "Type", "Target", "Completed", "Progress %", "Status", "Start Date", "End Date"},
		rows,
	)
}

// Inventory renders the material inventory report.
func Inventory(materials []*database.Material) string {
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		status := "In Stock"
		if stats.LowStock(m) {
			status = "Low Stock"
		}
		rows = append(rows, []string{
			m.SKU,
			m.Name,
			string(m.Category),
			strconv.Itoa(m.Quantity),
			m.Unit,
			strconv.Itoa(m.MinStock),
			status,
			formatNumber(m.UnitCost),
			m.Supplier,
		})
	}
	return render(
		[]string{"SKU", "Name", "Category", "Quantity", "Unit", "Min Stock", "Status", "Unit Cost", "Supplier"},
		rows,
	)
}

// Quality renders the inspection report.
func Quality(inspections []*database.Inspection) string {
	rows := make([][]string, 0, len(inspections))
	for _, i := range inspections {
		approved := "No"
		if i.Approved {
			approved = "Yes"
		}
		rows = append(rows, []string{
			shortID(i.ID),
			i.VehicleID,
			i.VehicleModel,
			string(i.InspectionType),
			string(i.Result),
			i.Inspector,
			formatDate(i.InspectionDate),
			approved,
			i.DefectDescription,
		})
	}
	return render(
		[]string{"ID", "Vehicle ID", "Model", "Type", "Result", "Inspector", "Date", "Approved", "Defect"},
		rows,
	)
}

// Cost renders the production cost report.
func Cost(costs []*database.ProductionCost) string {
	rows := make([][]string, 0, len(costs))
	for _, c := range costs {
		rows = append(rows, []string{
			shortID(c.ID),
			c.VehicleID,
			c.VehicleModel,
			formatNumber(c.MaterialCost),
			formatNumber(c.LaborCost),
			formatNumber(c.OverheadCost),
			formatNumber(c.TotalCost),
			formatDate(c.CalculatedAt),
		})
	}
	return render(
		[]string{"ID", "Vehicle ID", "Model", "Material", "Labor", "Overhead", "Total", "Date"},
		rows,
	)
}

// render joins header and rows. The header is emitted even when there are
// no rows; every field is quoted so embedded delimiters stay intact.
func render(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, delimiter))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteString(delimiter)
			}
			b.WriteString(quote(field))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// formatNumber renders a cost value as a plain number without currency
// symbol, dropping a trailing .00 the way the screens do.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
