package services

import (
	"fmt"
	"time"

	"github.com/hassankh203/drive-smart-finance-flow/internal/cache"
	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
)

// queryCacheSize bounds the memoized query results. Keys embed the
// ledger generation, so superseded entries simply age out.
const queryCacheSize = 16

// Aggregator derives summary figures, category breakdowns and daily
// time series from the ledger's collections. Queries never mutate
// state; two calls with no intervening ledger mutation return equal
// results.
type Aggregator struct {
	ledger *Ledger
	now    func() time.Time

	breakdowns *cache.LRUCache[[]core.CategoryBreakdown]
	series     *cache.LRUCache[[]core.DailyIncome]
}

// NewAggregator creates an aggregator over ledger. now overrides the
// clock for tests; nil defaults to time.Now.
func NewAggregator(ledger *Ledger, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		ledger:     ledger,
		now:        now,
		breakdowns: cache.NewLRUCache[[]core.CategoryBreakdown](queryCacheSize),
		series:     cache.NewLRUCache[[]core.DailyIncome](queryCacheSize),
	}
}

// DashboardSummary filters all three collections by the resolved
// period window and reduces them to the headline figures. Record dates
// are compared as local midnights against the window bounds. With no
// matching records every figure is zero.
func (a *Aggregator) DashboardSummary(period Period) core.DashboardSummary {
	now := a.now()
	window := period.Resolve(now)
	loc := now.Location()

	var s core.DashboardSummary
	for _, e := range a.ledger.Income() {
		if window.Contains(e.Date.Midnight(loc)) {
			s.TotalIncome += e.Amount
		}
	}
	for _, e := range a.ledger.Expenses() {
		if window.Contains(e.Date.Midnight(loc)) {
			s.TotalExpenses += e.Amount
		}
	}
	for _, e := range a.ledger.MileageEntries() {
		if !window.Contains(e.Date.Midnight(loc)) {
			continue
		}
		s.TotalMileage += e.Miles()
		if e.Purpose == core.Business {
			s.BusinessMileage += e.Miles()
		}
	}
	s.NetProfit = s.TotalIncome - s.TotalExpenses
	return s
}

// ExpensesByCategory reduces the entire expense collection, not a
// period window: it is the full-history view behind the category
// breakdown chart. Entries are grouped by the category name stored on
// the expense, so a since-deleted category still shows up with its
// recorded totals. Categories never referenced by an expense are
// absent. Order follows the first occurrence of each name in the
// collection.
func (a *Aggregator) ExpensesByCategory() []core.CategoryBreakdown {
	key := fmt.Sprintf("%d", a.ledger.Generation())
	if cached, ok := a.breakdowns.Get(key); ok {
		return cloneBreakdowns(cached)
	}

	index := make(map[string]int)
	var out []core.CategoryBreakdown
	for _, e := range a.ledger.Expenses() {
		i, seen := index[e.Category]
		if !seen {
			i = len(out)
			index[e.Category] = i
			out = append(out, core.CategoryBreakdown{Category: e.Category})
		}
		out[i].Amount += e.Amount
		out[i].Count++
	}

	a.breakdowns.Set(key, cloneBreakdowns(out))
	return out
}

// IncomeOverTime returns exactly days points, one per calendar day,
// oldest first, ending on the current day. A day's amount is the sum
// of income entries whose date equals that exact calendar day; days
// with no income carry zero.
func (a *Aggregator) IncomeOverTime(days int) []core.DailyIncome {
	if days <= 0 {
		return nil
	}

	today := core.DateOf(a.now())
	key := fmt.Sprintf("%d/%s/%d", a.ledger.Generation(), today, days)
	if cached, ok := a.series.Get(key); ok {
		return cloneSeries(cached)
	}

	byDay := make(map[core.Date]float64)
	for _, e := range a.ledger.Income() {
		byDay[e.Date] += e.Amount
	}

	out := make([]core.DailyIncome, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		out = append(out, core.DailyIncome{Date: day, Amount: byDay[day]})
	}

	a.series.Set(key, cloneSeries(out))
	return out
}

func cloneBreakdowns(in []core.CategoryBreakdown) []core.CategoryBreakdown {
	out := make([]core.CategoryBreakdown, len(in))
	copy(out, in)
	return out
}

func cloneSeries(in []core.DailyIncome) []core.DailyIncome {
	out := make([]core.DailyIncome, len(in))
	copy(out, in)
	return out
}
