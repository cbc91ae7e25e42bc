package core

// DashboardSummary holds the headline figures for one period window.
// All sums are zero when no record falls inside the window.
type DashboardSummary struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	NetProfit       float64 `json:"netProfit"`
	TotalMileage    float64 `json:"totalMileage"`
	BusinessMileage float64 `json:"businessMileage"`
}

// CategoryBreakdown is the full-history expense total for one category
// name. Count is the number of expense entries carrying that name.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// DailyIncome is one point of the income time series: the summed
// income amount for a single calendar day.
type DailyIncome struct {
	Date   Date    `json:"date"`
	Amount float64 `json:"amount"`
}
