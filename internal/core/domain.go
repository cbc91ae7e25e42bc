package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Business MileagePurpose = "business"
	Personal MileagePurpose = "personal"
)

type (
	// MileagePurpose classifies a logged trip.
	MileagePurpose string

	// IncomeEntry is one earning record from a gig platform.
	IncomeEntry struct {
		ID        string    `json:"id"`
		Date      Date      `json:"date"`
		Amount    float64   `json:"amount"`
		Platform  string    `json:"platform"`
		Notes     string    `json:"notes,omitempty"`
		StartTime string    `json:"startTime,omitempty"` // clock time, "15:04"
		EndTime   string    `json:"endTime,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// ExpenseEntry is one business expense. Category holds the category
	// name as it read at entry time; deleting or renaming a category
	// later does not rewrite it.
	ExpenseEntry struct {
		ID           string    `json:"id"`
		Date         Date      `json:"date"`
		Amount       float64   `json:"amount"`
		Category     string    `json:"category"`
		Description  string    `json:"description,omitempty"`
		ReceiptPhoto string    `json:"receiptPhoto,omitempty"` // opaque reference, e.g. a data URL
		CreatedAt    time.Time `json:"createdAt"`
	}

	// MileageEntry is one logged trip, recorded as a pair of odometer
	// readings.
	MileageEntry struct {
		ID           string         `json:"id"`
		Date         Date           `json:"date"`
		StartMileage float64        `json:"startMileage"`
		EndMileage   float64        `json:"endMileage"`
		Purpose      MileagePurpose `json:"purpose"`
		Description  string         `json:"description,omitempty"`
		CreatedAt    time.Time      `json:"createdAt"`
	}

	// Category is a soft tag for expenses. It is a dictionary entry for
	// UI pickers, not a foreign key: expense records keep whatever name
	// the category had when they were written.
	Category struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		IsDefault bool   `json:"isDefault"`
	}
)

var (
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrEmptyPlatform       = errors.New("empty platform")
	ErrEmptyCategory       = errors.New("empty category")
	ErrEmptyCategoryName   = errors.New("empty category name")
	ErrInvalidPurpose      = errors.New("purpose must be business or personal")
	ErrInvalidMileageRange = errors.New("end mileage must be greater than start mileage")
)

// IsValid reports whether p is a known purpose.
func (p MileagePurpose) IsValid() bool {
	return p == Business || p == Personal
}

// Miles returns the trip distance derived from the odometer readings.
func (e MileageEntry) Miles() float64 {
	return e.EndMileage - e.StartMileage
}

// Validate checks the fields supplied by the caller. ID and CreatedAt
// are assigned by the ledger and are not checked here.
func (e IncomeEntry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if e.Amount < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Platform) == "" {
		return ErrEmptyPlatform
	}
	return nil
}

// Validate checks the fields supplied by the caller. The category is a
// free string at this layer; it is not checked against the registry.
func (e ExpenseEntry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if e.Amount < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Validate checks the fields supplied by the caller, including the
// odometer ordering invariant. The invariant is enforced at creation
// only; stored entries are never re-validated.
func (e MileageEntry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.Purpose.IsValid() {
		return ErrInvalidPurpose
	}
	if e.EndMileage <= e.StartMileage {
		return ErrInvalidMileageRange
	}
	return nil
}

// DefaultCategories returns the category seed used when no category
// document exists in storage yet.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Gas", IsDefault: true},
		{ID: "2", Name: "Maintenance", IsDefault: true},
		{ID: "3", Name: "Car Wash", IsDefault: true},
		{ID: "4", Name: "Phone", IsDefault: true},
		{ID: "5", Name: "Insurance", IsDefault: true},
		{ID: "6", Name: "Tolls", IsDefault: true},
	}
}

// DefaultPlatforms returns the seed list of gig platforms offered in
// income entry forms.
func DefaultPlatforms() []string {
	return []string{
		"Uber",
		"Lyft",
		"DoorDash",
		"UberEats",
		"Grubhub",
		"Instacart",
		"Other",
	}
}
