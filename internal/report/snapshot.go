// Package report produces one-way report artifacts from the ledger:
// a JSON snapshot, an XLSX workbook and PNG charts. Snapshots are
// exports for the user, not a re-importable format.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
	"github.com/hassankh203/drive-smart-finance-flow/internal/services"
)

// Snapshot bundles the dashboard summary, the derived metrics, the
// full-history category breakdown and the income time series at one
// point in time.
type Snapshot struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Period      string    `json:"period"`

	Summary          core.DashboardSummary    `json:"summary"`
	ProfitMargin     float64                  `json:"profitMargin"`
	PerMileProfit    float64                  `json:"perMileProfit"`
	MileageDeduction float64                  `json:"mileageDeduction"`
	Expenses         []core.CategoryBreakdown `json:"expenses"`
	Income           []core.DailyIncome       `json:"income"`
}

// BuildSnapshot evaluates the query operations and stamps the result
// with a fresh id and the UTC generation time. The derived metrics are
// computed from the summary; they are presentation values and are
// never fed back into aggregation.
func BuildSnapshot(agg *services.Aggregator, period services.Period, days int, now time.Time) Snapshot {
	summary := agg.DashboardSummary(period)
	return Snapshot{
		ID:               uuid.NewString(),
		GeneratedAt:      now.UTC(),
		Period:           string(period),
		Summary:          summary,
		ProfitMargin:     services.ProfitMargin(summary),
		PerMileProfit:    services.PerMileProfit(summary),
		MileageDeduction: services.MileageDeduction(summary),
		Expenses:         agg.ExpensesByCategory(),
		Income:           agg.IncomeOverTime(days),
	}
}
