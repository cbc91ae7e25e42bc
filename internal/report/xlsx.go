package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
)

// BuildWorkbook lays the snapshot and the raw collections out as an
// XLSX workbook: a Summary sheet plus one sheet per collection.
// Currency cells carry a two-decimal number format; the underlying
// values are written unrounded.
func BuildWorkbook(snap Snapshot, income []core.IncomeEntry, expenses []core.ExpenseEntry, mileage []core.MileageEntry) (*excelize.File, error) {
	f := excelize.NewFile()

	currency, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("create currency style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"Report ID", snap.ID},
		{"Generated At", snap.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Period", snap.Period},
		{"Total Income", snap.Summary.TotalIncome},
		{"Total Expenses", snap.Summary.TotalExpenses},
		{"Net Profit", snap.Summary.NetProfit},
		{"Total Mileage", snap.Summary.TotalMileage},
		{"Business Mileage", snap.Summary.BusinessMileage},
		{"Profit Margin %", snap.ProfitMargin},
		{"Per-Mile Profit", snap.PerMileProfit},
		{"Mileage Deduction", snap.MileageDeduction},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle("Summary", "B4", "B11", currency); err != nil {
		return nil, fmt.Errorf("style summary: %w", err)
	}

	if err := writeSheet(f, "Income",
		[]interface{}{"Date", "Amount", "Platform", "Notes", "Start", "End"},
		len(income),
		func(i int) []interface{} {
			e := income[i]
			return []interface{}{e.Date.String(), e.Amount, e.Platform, e.Notes, e.StartTime, e.EndTime}
		}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle("Income", "B2", fmt.Sprintf("B%d", len(income)+1), currency); err != nil {
		return nil, fmt.Errorf("style income: %w", err)
	}

	if err := writeSheet(f, "Expenses",
		[]interface{}{"Date", "Amount", "Category", "Description"},
		len(expenses),
		func(i int) []interface{} {
			e := expenses[i]
			return []interface{}{e.Date.String(), e.Amount, e.Category, e.Description}
		}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle("Expenses", "B2", fmt.Sprintf("B%d", len(expenses)+1), currency); err != nil {
		return nil, fmt.Errorf("style expenses: %w", err)
	}

	if err := writeSheet(f, "Mileage",
		[]interface{}{"Date", "Start Odometer", "End Odometer", "Miles", "Purpose", "Description"},
		len(mileage),
		func(i int) []interface{} {
			e := mileage[i]
			return []interface{}{e.Date.String(), e.StartMileage, e.EndMileage, e.Miles(), string(e.Purpose), e.Description}
		}); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows int, row func(int) []interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := row(i)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}
