package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hassankh203/drive-smart-finance-flow/internal/log"
	"github.com/hassankh203/drive-smart-finance-flow/internal/services"
)

// Exporter writes report artifacts into a directory. File names carry
// the export date, so exporting twice on the same day overwrites the
// earlier files.
type Exporter struct {
	dir    string
	ledger *services.Ledger
	agg    *services.Aggregator
	logger *log.Logger
	now    func() time.Time
}

// ExporterOptions tunes an Exporter beyond its required collaborators.
type ExporterOptions struct {
	// Now supplies the export timestamp. Defaults to time.Now.
	Now func() time.Time
}

func NewExporter(dir string, ledger *services.Ledger, agg *services.Aggregator, logger *log.Logger, opts ExporterOptions) *Exporter {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Exporter{
		dir:    dir,
		ledger: ledger,
		agg:    agg,
		logger: logger,
		now:    now,
	}
}

// Result lists the files an export produced. Chart paths are empty
// when there was nothing to chart.
type Result struct {
	JSONPath  string
	XLSXPath  string
	TrendPath string
	PiePath   string
}

// ExportJSON writes the snapshot as indented JSON and returns the
// file path.
func (x *Exporter) ExportJSON(snap Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	path := x.artifactPath(snap, "json")
	if err := x.writeFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// ExportXLSX writes the snapshot and the raw collections as an XLSX
// workbook and returns the file path.
func (x *Exporter) ExportXLSX(snap Snapshot) (string, error) {
	f, err := BuildWorkbook(snap, x.ledger.Income(), x.ledger.Expenses(), x.ledger.MileageEntries())
	if err != nil {
		return "", fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	path := x.artifactPath(snap, "xlsx")
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ExportCharts renders the income trend and category pie charts. A
// chart with nothing meaningful to draw is skipped and its returned
// path is empty.
func (x *Exporter) ExportCharts(snap Snapshot) (trendPath, piePath string, err error) {
	trend, err := IncomeTrendPNG(snap.Income)
	if err != nil {
		return "", "", err
	}
	if trend != nil {
		trendPath = filepath.Join(x.dir, fmt.Sprintf("income-trend-%s.png", snap.GeneratedAt.Format("2006-01-02")))
		if err := x.writeFile(trendPath, trend); err != nil {
			return "", "", err
		}
	}

	pie, err := CategoryPiePNG(snap.Expenses)
	if err != nil {
		return "", "", err
	}
	if pie != nil {
		piePath = filepath.Join(x.dir, fmt.Sprintf("expense-categories-%s.png", snap.GeneratedAt.Format("2006-01-02")))
		if err := x.writeFile(piePath, pie); err != nil {
			return "", "", err
		}
	}
	return trendPath, piePath, nil
}

// ExportAll builds one snapshot and writes every artifact from it,
// fanning the independent writes out concurrently. The snapshot is
// built once up front so all artifacts agree on the numbers.
func (x *Exporter) ExportAll(ctx context.Context, period services.Period, days int) (Result, error) {
	snap := BuildSnapshot(x.agg, period, days, x.now())
	x.logger.InfoContext(ctx, "exporting report", "id", snap.ID, "period", snap.Period, "dir", x.dir)

	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		path, err := x.ExportJSON(snap)
		if err != nil {
			return err
		}
		res.JSONPath = path
		return nil
	})
	g.Go(func() error {
		path, err := x.ExportXLSX(snap)
		if err != nil {
			return err
		}
		res.XLSXPath = path
		return nil
	})
	g.Go(func() error {
		trend, pie, err := x.ExportCharts(snap)
		if err != nil {
			return err
		}
		res.TrendPath = trend
		res.PiePath = pie
		return nil
	})
	if err := g.Wait(); err != nil {
		x.logger.ErrorContext(ctx, "export failed", "id", snap.ID, "error", err)
		return Result{}, err
	}
	return res, nil
}

func (x *Exporter) artifactPath(snap Snapshot, ext string) string {
	return filepath.Join(x.dir, fmt.Sprintf("financial-report-%s.%s", snap.GeneratedAt.Format("2006-01-02"), ext))
}

func (x *Exporter) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
