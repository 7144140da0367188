package app

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/registry-ingest/internal/db"
	"github.com/yungbote/registry-ingest/internal/export"
	"github.com/yungbote/registry-ingest/internal/ingest"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
	"github.com/yungbote/registry-ingest/internal/report"
)

// App owns the batch lifecycle: open storage, ingest the document batch,
// build the report, write the sinks, close storage.
type App struct {
	cfg      Config
	log      *logger.Logger
	handle   *gorm.DB
	pipeline *ingest.Pipeline
	builder  *report.Builder
}

func New(cfg Config) (*App, error) {
	log, err := logger.New(cfg.Log.Mode, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	handle, err := db.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	repos := ingest.NewRepos(handle, log)
	gateway := ingest.NewGateway(handle, repos, log)
	pipeline := ingest.NewPipeline(ingest.Config{
		InputDir:   cfg.Input.Dir,
		Recursive:  cfg.Input.Recursive,
		Workers:    cfg.Workers,
		DocTimeout: time.Duration(cfg.DocTimeout),
	}, gateway, log)

	builder := report.NewBuilder(report.Deps{
		Files:     repos.Files,
		Mains:     repos.Mains,
		Rights:    repos.Rights,
		Restricts: repos.Restricts,
		Deals:     repos.Deals,
		Parties:   repos.Parties,
		Log:       log,
	})

	return &App{cfg: cfg, log: log, handle: handle, pipeline: pipeline, builder: builder}, nil
}

// Run executes one batch. The ingest summary comes back even when some
// documents failed; only a missing input directory or a report-stage fault
// is an error.
func (a *App) Run(ctx context.Context) (*ingest.Summary, error) {
	summary, err := a.pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		// Cancelled mid-batch: committed documents stay, but a report over
		// a partial batch would mislead.
		a.log.Warn("run cancelled, skipping report emission")
		return summary, nil
	}

	rows, err := a.builder.Build(ctx)
	if err != nil {
		return summary, err
	}
	if err := export.WriteCSV(a.cfg.Output.CSV, rows); err != nil {
		return summary, &report.ReportError{Op: "write csv", Err: err}
	}
	if err := export.WriteXLSX(a.cfg.Output.XLSX, rows); err != nil {
		return summary, &report.ReportError{Op: "write xlsx", Err: err}
	}
	a.log.Info("report written", "csv", a.cfg.Output.CSV, "xlsx", a.cfg.Output.XLSX, "rows", len(rows))

	return summary, nil
}

func (a *App) Close() {
	if err := db.Close(a.handle); err != nil {
		a.log.Warn("closing database", "error", err)
	}
	a.log.Sync()
}

func (a *App) Logger() *logger.Logger { return a.log }
