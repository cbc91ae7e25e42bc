package services

import (
	"math"
	"testing"

	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
)

func TestProfitMargin(t *testing.T) {
	cases := []struct {
		name    string
		summary core.DashboardSummary
		want    float64
	}{
		{"zero income", core.DashboardSummary{TotalIncome: 0, NetProfit: -10}, 0},
		{"half margin", core.DashboardSummary{TotalIncome: 200, NetProfit: 100}, 50},
		{"negative margin", core.DashboardSummary{TotalIncome: 100, NetProfit: -25}, -25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProfitMargin(tc.summary)
			if got != tc.want {
				t.Fatalf("ProfitMargin = %v, want %v", got, tc.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatal("margin must be a finite number")
			}
		})
	}
}

func TestPerMileProfit(t *testing.T) {
	cases := []struct {
		name    string
		summary core.DashboardSummary
		want    float64
	}{
		{"zero business mileage", core.DashboardSummary{BusinessMileage: 0, NetProfit: 100}, 0},
		{"per mile", core.DashboardSummary{BusinessMileage: 50, NetProfit: 100}, 2},
		{"loss per mile", core.DashboardSummary{BusinessMileage: 40, NetProfit: -10}, -0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PerMileProfit(tc.summary)
			if got != tc.want {
				t.Fatalf("PerMileProfit = %v, want %v", got, tc.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatal("per-mile profit must be a finite number")
			}
		})
	}
}

func TestMileageDeduction(t *testing.T) {
	s := core.DashboardSummary{BusinessMileage: 100}
	if got := MileageDeduction(s); got != 65.5 {
		t.Fatalf("MileageDeduction = %v, want 65.5", got)
	}
	if got := MileageDeduction(core.DashboardSummary{}); got != 0 {
		t.Fatalf("deduction with no mileage = %v, want 0", got)
	}
}
