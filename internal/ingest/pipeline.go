package ingest

import (
	"context"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/registry-ingest/internal/extract"
	"github.com/yungbote/registry-ingest/internal/normalize"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

const (
	DefaultWorkers    = 4
	DefaultDocTimeout = 2 * time.Minute
)

// Config holds the batch parameters for one run.
type Config struct {
	InputDir   string
	Recursive  bool
	Workers    int
	DocTimeout time.Duration
}

// Pipeline fans the document list out over a bounded worker pool. Each
// worker runs extract → normalize → persist for one document; a document's
// failure is recorded and never aborts the batch.
type Pipeline struct {
	cfg     Config
	gateway Gateway
	log     *logger.Logger
}

func NewPipeline(cfg Config, gw Gateway, baseLog *logger.Logger) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.DocTimeout <= 0 {
		cfg.DocTimeout = DefaultDocTimeout
	}
	return &Pipeline{cfg: cfg, gateway: gw, log: baseLog.With("component", "pipeline")}
}

// Run ingests every document under the configured directory and returns the
// batch summary. Only a missing input directory is a fatal error.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	paths, err := extract.ListDocuments(p.cfg.InputDir, p.cfg.Recursive)
	if err != nil {
		return nil, err
	}
	p.log.Info("batch start", "documents", len(paths), "workers", p.cfg.Workers)

	summary := &Summary{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for _, path := range paths {
		if gctx.Err() != nil {
			mu.Lock()
			summary.Skipped++
			mu.Unlock()
			continue
		}
		path := path
		g.Go(func() error {
			procErr := p.processDocument(gctx, path)

			mu.Lock()
			defer mu.Unlock()
			if procErr != nil {
				kind := classifyFailure(procErr)
				summary.Failed++
				summary.Failures = append(summary.Failures, DocumentFailure{Path: path, Kind: kind, Err: procErr})
				p.log.Error("document failed", "file", path, "kind", string(kind), "error", procErr)
				return nil
			}
			summary.Processed++
			p.log.Info("document ingested", "file", path)
			return nil
		})
	}

	_ = g.Wait()

	p.log.Info("batch done",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed)
	return summary, nil
}

func (p *Pipeline) processDocument(ctx context.Context, path string) error {
	dctx, cancel := context.WithTimeout(ctx, p.cfg.DocTimeout)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return &extract.DocumentError{Code: extract.DocumentErrorMalformedXML, Err: err}
	}
	defer f.Close()

	raw, err := extract.Decode(f)
	if err != nil {
		return err
	}

	bundle, err := normalize.Statement(raw, path, p.log)
	if err != nil {
		return err
	}

	return p.gateway.PersistStatement(dctx, bundle)
}
