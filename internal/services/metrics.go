package services

import "github.com/hassankh203/drive-smart-finance-flow/internal/core"

// StandardMileageRate is the fixed per-mile dollar rate used to
// estimate the business mileage tax deduction.
const StandardMileageRate = 0.655

// ProfitMargin returns the net profit as a percentage of income, or 0
// when there is no income. The result is a presentation value; it must
// not be fed back into aggregation.
func ProfitMargin(s core.DashboardSummary) float64 {
	if s.TotalIncome == 0 {
		return 0
	}
	return s.NetProfit / s.TotalIncome * 100
}

// PerMileProfit returns the net profit per business mile driven, or 0
// when no business mileage was logged.
func PerMileProfit(s core.DashboardSummary) float64 {
	if s.BusinessMileage == 0 {
		return 0
	}
	return s.NetProfit / s.BusinessMileage
}

// MileageDeduction estimates the tax deduction for the summary's
// business mileage at the standard mileage rate.
func MileageDeduction(s core.DashboardSummary) float64 {
	return s.BusinessMileage * StandardMileageRate
}
