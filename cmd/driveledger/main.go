package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hassankh203/drive-smart-finance-flow/internal/cli"
	"github.com/hassankh203/drive-smart-finance-flow/internal/core"
	"github.com/hassankh203/drive-smart-finance-flow/internal/services"
)

const usage = `driveledger tracks gig-driving income, expenses and mileage.

Usage:
  driveledger <command> [flags]

Commands:
  add-income    record an income entry
  add-expense   record an expense entry
  add-mileage   record a mileage entry
  categories    list, add or delete expense categories
  platforms     list or add income platforms
  list          print all recorded entries
  summary       print the dashboard summary for a period
  trend         print the daily income series
  export        write the JSON, XLSX and chart report files

Run 'driveledger <command> -h' for command flags.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(cfg)

	ctx, cancel := cli.SignalContext()
	defer cancel()

	app, err := cli.InitApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add-income":
		return addIncome(ctx, app, rest)
	case "add-expense":
		return addExpense(ctx, app, rest)
	case "add-mileage":
		return addMileage(ctx, app, rest)
	case "categories":
		return categories(ctx, app, rest)
	case "platforms":
		return platforms(ctx, app, rest)
	case "list":
		return list(app)
	case "summary":
		return summary(app, rest)
	case "trend":
		return trend(app, rest)
	case "export":
		return export(ctx, app, rest)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// parseDateFlag interprets an empty date flag as today.
func parseDateFlag(value string) (core.Date, error) {
	if value == "" {
		return core.DateOf(time.Now()), nil
	}
	return core.ParseDate(value)
}

func addIncome(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("add-income", flag.ExitOnError)
	date := fs.String("date", "", "entry date as YYYY-MM-DD (default today)")
	amount := fs.Float64("amount", 0, "amount earned")
	platform := fs.String("platform", "", "platform the income came from")
	notes := fs.String("notes", "", "free-form notes")
	start := fs.String("start", "", "shift start time, e.g. 09:00")
	end := fs.String("end", "", "shift end time, e.g. 17:30")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := parseDateFlag(*date)
	if err != nil {
		return err
	}
	entry, err := app.Ledger.AddIncome(ctx, core.IncomeEntry{
		Date:      d,
		Amount:    *amount,
		Platform:  *platform,
		Notes:     *notes,
		StartTime: *start,
		EndTime:   *end,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded income %s: $%.2f from %s on %s\n", entry.ID, entry.Amount, entry.Platform, entry.Date)
	return nil
}

func addExpense(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("add-expense", flag.ExitOnError)
	date := fs.String("date", "", "entry date as YYYY-MM-DD (default today)")
	amount := fs.Float64("amount", 0, "amount spent")
	category := fs.String("category", "", "expense category")
	description := fs.String("description", "", "what the money went to")
	receipt := fs.String("receipt", "", "path or reference to a receipt photo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := parseDateFlag(*date)
	if err != nil {
		return err
	}
	entry, err := app.Ledger.AddExpense(ctx, core.ExpenseEntry{
		Date:         d,
		Amount:       *amount,
		Category:     *category,
		Description:  *description,
		ReceiptPhoto: *receipt,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded expense %s: $%.2f for %s on %s\n", entry.ID, entry.Amount, entry.Category, entry.Date)
	return nil
}

func addMileage(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("add-mileage", flag.ExitOnError)
	date := fs.String("date", "", "entry date as YYYY-MM-DD (default today)")
	start := fs.Float64("start", 0, "odometer reading at the start")
	end := fs.Float64("end", 0, "odometer reading at the end")
	purpose := fs.String("purpose", string(core.Business), "business or personal")
	description := fs.String("description", "", "trip description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := parseDateFlag(*date)
	if err != nil {
		return err
	}
	entry, err := app.Ledger.AddMileageEntry(ctx, core.MileageEntry{
		Date:         d,
		StartMileage: *start,
		EndMileage:   *end,
		Purpose:      core.MileagePurpose(*purpose),
		Description:  *description,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %.1f %s miles on %s\n", entry.Miles(), entry.Purpose, entry.Date)
	return nil
}

func categories(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	add := fs.String("add", "", "add a category with this name")
	del := fs.String("delete", "", "delete every category with this name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *add != "":
		cat, err := app.Ledger.AddCategory(ctx, *add)
		if err != nil {
			return err
		}
		fmt.Printf("Added category %q (id %s)\n", cat.Name, cat.ID)
	case *del != "":
		if err := app.Ledger.DeleteCategory(ctx, *del); err != nil {
			return err
		}
		fmt.Printf("Deleted category %q\n", *del)
	default:
		for _, cat := range app.Ledger.Categories() {
			marker := ""
			if cat.IsDefault {
				marker = " (default)"
			}
			fmt.Printf("%s\t%s%s\n", cat.ID, cat.Name, marker)
		}
	}
	return nil
}

func platforms(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("platforms", flag.ExitOnError)
	add := fs.String("add", "", "add a platform with this name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *add != "" {
		if err := app.Ledger.AddPlatform(ctx, *add); err != nil {
			return err
		}
		fmt.Printf("Added platform %q\n", *add)
		return nil
	}
	for _, p := range app.Ledger.Platforms() {
		fmt.Println(p)
	}
	return nil
}

func list(app *cli.App) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "INCOME")
	fmt.Fprintln(w, "DATE\tAMOUNT\tPLATFORM\tNOTES")
	for _, e := range app.Ledger.Income() {
		fmt.Fprintf(w, "%s\t$%.2f\t%s\t%s\n", e.Date, e.Amount, e.Platform, e.Notes)
	}

	fmt.Fprintln(w, "\nEXPENSES")
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, e := range app.Ledger.Expenses() {
		fmt.Fprintf(w, "%s\t$%.2f\t%s\t%s\n", e.Date, e.Amount, e.Category, e.Description)
	}

	fmt.Fprintln(w, "\nMILEAGE")
	fmt.Fprintln(w, "DATE\tMILES\tPURPOSE\tDESCRIPTION")
	for _, e := range app.Ledger.MileageEntries() {
		fmt.Fprintf(w, "%s\t%.1f\t%s\t%s\n", e.Date, e.Miles(), e.Purpose, e.Description)
	}

	return w.Flush()
}

func summary(app *cli.App, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	period := fs.String("period", string(services.PeriodToday), "today, week or month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := services.Period(strings.ToLower(*period))
	if !p.IsValid() {
		return fmt.Errorf("unknown period %q: must be today, week or month", *period)
	}

	s := app.Aggregator.DashboardSummary(p)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Period\t%s\n", p)
	fmt.Fprintf(w, "Total Income\t$%.2f\n", s.TotalIncome)
	fmt.Fprintf(w, "Total Expenses\t$%.2f\n", s.TotalExpenses)
	fmt.Fprintf(w, "Net Profit\t$%.2f\n", s.NetProfit)
	fmt.Fprintf(w, "Total Mileage\t%.1f mi\n", s.TotalMileage)
	fmt.Fprintf(w, "Business Mileage\t%.1f mi\n", s.BusinessMileage)
	fmt.Fprintf(w, "Profit Margin\t%.2f%%\n", services.ProfitMargin(s))
	fmt.Fprintf(w, "Per-Mile Profit\t$%.2f\n", services.PerMileProfit(s))
	fmt.Fprintf(w, "Mileage Deduction\t$%.2f\n", services.MileageDeduction(s))
	return w.Flush()
}

func trend(app *cli.App, args []string) error {
	fs := flag.NewFlagSet("trend", flag.ExitOnError)
	days := fs.Int("days", 7, "number of days to include, ending today")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *days <= 0 {
		return fmt.Errorf("days must be positive, got %d", *days)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tINCOME")
	for _, p := range app.Aggregator.IncomeOverTime(*days) {
		fmt.Fprintf(w, "%s\t$%.2f\n", p.Date, p.Amount)
	}
	return w.Flush()
}

func export(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	period := fs.String("period", string(services.PeriodMonth), "summary period for the report")
	days := fs.Int("days", 7, "days of income history to include")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := services.Period(strings.ToLower(*period))
	if !p.IsValid() {
		return fmt.Errorf("unknown period %q: must be today, week or month", *period)
	}
	if *days <= 0 {
		return fmt.Errorf("days must be positive, got %d", *days)
	}

	res, err := app.Exporter.ExportAll(ctx, p, *days)
	if err != nil {
		return err
	}
	fmt.Println("Wrote", res.JSONPath)
	fmt.Println("Wrote", res.XLSXPath)
	if res.TrendPath != "" {
		fmt.Println("Wrote", res.TrendPath)
	}
	if res.PiePath != "" {
		fmt.Println("Wrote", res.PiePath)
	}
	return nil
}
