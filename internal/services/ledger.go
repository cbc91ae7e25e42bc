package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
	"github.com/hassankh203/drive-smart-finance-flow/internal/storage"
)

// Ledger owns the three record collections and the category registry.
// It is the single writer: collections live in memory and every
// mutation synchronously rewrites the whole affected collection in the
// document store before returning, so a query issued after a mutation
// always observes it.
//
// A failed persist leaves the in-memory state already changed; the
// error is surfaced to the caller so it can warn that the change may
// not survive a restart.
type Ledger struct {
	store storage.DocumentStore

	income     []core.IncomeEntry
	expenses   []core.ExpenseEntry
	mileage    []core.MileageEntry
	categories []core.Category
	platforms  []string

	// persistPlatforms mirrors the PERSIST_PLATFORMS config choice.
	// Off (the historical behavior), the platform list is session-local
	// while categories persist.
	persistPlatforms bool

	now        func() time.Time
	lastID     int64
	generation uint64
}

// LedgerOptions configures NewLedger. The zero value is usable.
type LedgerOptions struct {
	// PersistPlatforms stores the platform list under its own document
	// key, like categories. Default false keeps it session-local.
	PersistPlatforms bool

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewLedger loads all collections from the store. An absent document
// means "never written": categories and platforms fall back to their
// seed lists, record collections start empty.
func NewLedger(ctx context.Context, store storage.DocumentStore, opts LedgerOptions) (*Ledger, error) {
	l := &Ledger{
		store:            store,
		persistPlatforms: opts.PersistPlatforms,
		now:              opts.Now,
	}
	if l.now == nil {
		l.now = time.Now
	}

	if err := loadDoc(ctx, store, storage.DocIncome, &l.income); err != nil {
		return nil, err
	}
	if err := loadDoc(ctx, store, storage.DocExpenses, &l.expenses); err != nil {
		return nil, err
	}
	if err := loadDoc(ctx, store, storage.DocMileage, &l.mileage); err != nil {
		return nil, err
	}

	loaded, err := loadOptionalDoc(ctx, store, storage.DocCategories, &l.categories)
	if err != nil {
		return nil, err
	}
	if !loaded {
		l.categories = core.DefaultCategories()
	}

	l.platforms = core.DefaultPlatforms()
	if l.persistPlatforms {
		var persisted []string
		loaded, err := loadOptionalDoc(ctx, store, storage.DocPlatforms, &persisted)
		if err != nil {
			return nil, err
		}
		if loaded {
			l.platforms = persisted
		}
	}

	slog.InfoContext(ctx, "Ledger loaded",
		"income", len(l.income),
		"expenses", len(l.expenses),
		"mileage", len(l.mileage),
		"categories", len(l.categories))

	return l, nil
}

func loadDoc[T any](ctx context.Context, store storage.DocumentStore, key string, dst *[]T) error {
	_, err := loadOptionalDoc(ctx, store, key, dst)
	return err
}

func loadOptionalDoc[T any](ctx context.Context, store storage.DocumentStore, key string, dst *[]T) (bool, error) {
	data, ok, err := store.Read(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// AddIncome validates e, assigns its ID and creation timestamp,
// prepends it to the income collection and persists the collection.
// On a persist failure the entry is still returned alongside the
// error: it exists in memory but may not survive a restart.
func (l *Ledger) AddIncome(ctx context.Context, e core.IncomeEntry) (core.IncomeEntry, error) {
	if err := e.Validate(); err != nil {
		return core.IncomeEntry{}, fmt.Errorf("add income: %w", err)
	}

	l.stamp(&e.ID, &e.CreatedAt)
	l.income = append([]core.IncomeEntry{e}, l.income...)
	l.generation++

	if err := l.persist(ctx, storage.DocIncome, l.income); err != nil {
		return e, err
	}

	slog.InfoContext(ctx, "Income recorded",
		"id", e.ID, "date", e.Date.String(), "amount", e.Amount, "platform", e.Platform)
	return e, nil
}

// AddExpense validates e, assigns its ID and creation timestamp,
// prepends it to the expense collection and persists the collection.
// The category is stored as given; it is not checked against the
// registry.
func (l *Ledger) AddExpense(ctx context.Context, e core.ExpenseEntry) (core.ExpenseEntry, error) {
	if err := e.Validate(); err != nil {
		return core.ExpenseEntry{}, fmt.Errorf("add expense: %w", err)
	}

	l.stamp(&e.ID, &e.CreatedAt)
	l.expenses = append([]core.ExpenseEntry{e}, l.expenses...)
	l.generation++

	if err := l.persist(ctx, storage.DocExpenses, l.expenses); err != nil {
		return e, err
	}

	slog.InfoContext(ctx, "Expense recorded",
		"id", e.ID, "date", e.Date.String(), "amount", e.Amount, "category", e.Category)
	return e, nil
}

// AddMileageEntry validates e (including the end > start odometer
// invariant), assigns its ID and creation timestamp, prepends it to
// the mileage collection and persists the collection.
func (l *Ledger) AddMileageEntry(ctx context.Context, e core.MileageEntry) (core.MileageEntry, error) {
	if err := e.Validate(); err != nil {
		return core.MileageEntry{}, fmt.Errorf("add mileage: %w", err)
	}

	l.stamp(&e.ID, &e.CreatedAt)
	l.mileage = append([]core.MileageEntry{e}, l.mileage...)
	l.generation++

	if err := l.persist(ctx, storage.DocMileage, l.mileage); err != nil {
		return e, err
	}

	slog.InfoContext(ctx, "Mileage recorded",
		"id", e.ID, "date", e.Date.String(), "miles", e.Miles(), "purpose", string(e.Purpose))
	return e, nil
}

// AddCategory appends a non-default category with the given name.
// Duplicate names are not rejected; listings must tolerate them.
func (l *Ledger) AddCategory(ctx context.Context, name string) (core.Category, error) {
	if strings.TrimSpace(name) == "" {
		return core.Category{}, fmt.Errorf("add category: %w", core.ErrEmptyCategoryName)
	}

	c := core.Category{Name: name, IsDefault: false}
	var createdAt time.Time
	l.stamp(&c.ID, &createdAt)
	l.categories = append(l.categories, c)
	l.generation++

	if err := l.persist(ctx, storage.DocCategories, l.categories); err != nil {
		return c, err
	}

	slog.InfoContext(ctx, "Category added", "id", c.ID, "name", c.Name)
	return c, nil
}

// DeleteCategory removes every category whose name matches exactly.
// Expense records keep the name they were written with; nothing
// cascades. Deleting a name that does not exist is a no-op.
func (l *Ledger) DeleteCategory(ctx context.Context, name string) error {
	kept := l.categories[:0:0]
	removed := 0
	for _, c := range l.categories {
		if c.Name == name {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	l.categories = kept
	l.generation++

	if err := l.persist(ctx, storage.DocCategories, l.categories); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Category deleted", "name", name, "removed", removed)
	return nil
}

// AddPlatform appends a platform label to the session list. It is
// persisted only when platform persistence is enabled; otherwise the
// addition lasts until the process exits, matching how categories and
// platforms have always behaved differently.
func (l *Ledger) AddPlatform(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("add platform: %w", core.ErrEmptyPlatform)
	}

	l.platforms = append(l.platforms, name)
	if !l.persistPlatforms {
		return nil
	}
	return l.persist(ctx, storage.DocPlatforms, l.platforms)
}

// Income returns a copy of the income collection, most recent first.
func (l *Ledger) Income() []core.IncomeEntry {
	out := make([]core.IncomeEntry, len(l.income))
	copy(out, l.income)
	return out
}

// Expenses returns a copy of the expense collection, most recent first.
func (l *Ledger) Expenses() []core.ExpenseEntry {
	out := make([]core.ExpenseEntry, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// MileageEntries returns a copy of the mileage collection, most recent
// first.
func (l *Ledger) MileageEntries() []core.MileageEntry {
	out := make([]core.MileageEntry, len(l.mileage))
	copy(out, l.mileage)
	return out
}

// Categories returns a copy of the category registry in insertion
// order.
func (l *Ledger) Categories() []core.Category {
	out := make([]core.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// Platforms returns a copy of the platform list.
func (l *Ledger) Platforms() []string {
	out := make([]string, len(l.platforms))
	copy(out, l.platforms)
	return out
}

// Generation returns the mutation counter. It increases on every
// mutation and is used to key memoized query results.
func (l *Ledger) Generation() uint64 {
	return l.generation
}

// stamp assigns the record identity: a current-time-derived token and
// the UTC creation timestamp. The token is bumped past the previously
// issued one when the clock has not advanced, keeping IDs unique
// within the session.
func (l *Ledger) stamp(id *string, createdAt *time.Time) {
	now := l.now()
	token := now.UnixNano()
	if token <= l.lastID {
		token = l.lastID + 1
	}
	l.lastID = token

	*id = strconv.FormatInt(token, 10)
	*createdAt = now.UTC()
}

func (l *Ledger) persist(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Write(ctx, key, data); err != nil {
		slog.ErrorContext(ctx, "Persist failed; in-memory state is ahead of storage",
			"key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
