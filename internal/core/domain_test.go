package core

import (
	"testing"
	"time"
)

func TestIncomeEntryValidate(t *testing.T) {
	valid := IncomeEntry{
		Date:     NewDate(2024, time.January, 10),
		Amount:   52.40,
		Platform: "Uber",
	}

	cases := []struct {
		name   string
		mutate func(*IncomeEntry)
		want   error
	}{
		{"valid", func(e *IncomeEntry) {}, nil},
		{"zero amount is allowed", func(e *IncomeEntry) { e.Amount = 0 }, nil},
		{"negative amount", func(e *IncomeEntry) { e.Amount = -1 }, ErrInvalidAmount},
		{"empty platform", func(e *IncomeEntry) { e.Platform = "  " }, ErrEmptyPlatform},
		{"zero date", func(e *IncomeEntry) { e.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestExpenseEntryValidate(t *testing.T) {
	valid := ExpenseEntry{
		Date:     NewDate(2024, time.January, 10),
		Amount:   40,
		Category: "Gas",
	}

	cases := []struct {
		name   string
		mutate func(*ExpenseEntry)
		want   error
	}{
		{"valid", func(e *ExpenseEntry) {}, nil},
		{"negative amount", func(e *ExpenseEntry) { e.Amount = -0.01 }, ErrInvalidAmount},
		{"empty category", func(e *ExpenseEntry) { e.Category = "" }, ErrEmptyCategory},
		{"zero date", func(e *ExpenseEntry) { e.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMileageEntryValidate(t *testing.T) {
	valid := MileageEntry{
		Date:         NewDate(2024, time.January, 10),
		StartMileage: 100,
		EndMileage:   150,
		Purpose:      Business,
	}

	cases := []struct {
		name   string
		mutate func(*MileageEntry)
		want   error
	}{
		{"valid business", func(e *MileageEntry) {}, nil},
		{"valid personal", func(e *MileageEntry) { e.Purpose = Personal }, nil},
		{"end equals start", func(e *MileageEntry) { e.EndMileage = 100 }, ErrInvalidMileageRange},
		{"end below start", func(e *MileageEntry) { e.EndMileage = 99 }, ErrInvalidMileageRange},
		{"unknown purpose", func(e *MileageEntry) { e.Purpose = "commute" }, ErrInvalidPurpose},
		{"zero date", func(e *MileageEntry) { e.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMileageEntryMiles(t *testing.T) {
	e := MileageEntry{StartMileage: 100.5, EndMileage: 150.5}
	if got := e.Miles(); got != 50 {
		t.Fatalf("expected 50 miles, got %v", got)
	}
}

func TestSeeds(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 seed categories, got %d", len(cats))
	}
	for _, c := range cats {
		if !c.IsDefault {
			t.Fatalf("seed category %q must be marked default", c.Name)
		}
	}

	if got := len(DefaultPlatforms()); got != 7 {
		t.Fatalf("expected 7 seed platforms, got %d", got)
	}
}
