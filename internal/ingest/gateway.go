package ingest

import (
	"context"

	"gorm.io/gorm"

	repos "github.com/yungbote/registry-ingest/internal/data/repos/registry"
	"github.com/yungbote/registry-ingest/internal/normalize"
	"github.com/yungbote/registry-ingest/internal/platform/dbctx"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

// Gateway persists one normalized document atomically. Implementations must
// be safe for concurrent use by the worker pool.
type Gateway interface {
	PersistStatement(ctx context.Context, bundle *normalize.Bundle) error
}

// Repos bundles the per-entity repositories the gateway writes through.
type Repos struct {
	Files     repos.FileRecordRepo
	Mains     repos.MainRecordRepo
	Rights    repos.RightRecordRepo
	Restricts repos.RestrictRecordRepo
	Deals     repos.DealRecordRepo
	Parties   repos.DealPartyRepo
}

func NewRepos(db *gorm.DB, baseLog *logger.Logger) Repos {
	return Repos{
		Files:     repos.NewFileRecordRepo(db, baseLog),
		Mains:     repos.NewMainRecordRepo(db, baseLog),
		Rights:    repos.NewRightRecordRepo(db, baseLog),
		Restricts: repos.NewRestrictRecordRepo(db, baseLog),
		Deals:     repos.NewDealRecordRepo(db, baseLog),
		Parties:   repos.NewDealPartyRepo(db, baseLog),
	}
}

type gormGateway struct {
	db    *gorm.DB
	repos Repos
	log   *logger.Logger
}

// NewGateway wraps the repositories in a one-transaction-per-document
// gateway. Parent identities are resolved top-down inside the transaction,
// so a re-run of an already ingested statement walks the same rows and
// writes nothing.
func NewGateway(db *gorm.DB, r Repos, baseLog *logger.Logger) Gateway {
	return &gormGateway{db: db, repos: r, log: baseLog.With("component", "gateway")}
}

func (g *gormGateway) PersistStatement(ctx context.Context, bundle *normalize.Bundle) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.WithTx(ctx, tx)

		file, created, err := g.repos.Files.Upsert(dbc, &bundle.File)
		if err != nil {
			return classifyPersistError("upsert file record", err)
		}
		if !created {
			g.log.Debug("statement seen before, children resolve to existing rows",
				"registration_number", file.RegistrationNumber)
		}

		bundle.Main.FileRecordID = file.ID
		main, _, err := g.repos.Mains.Upsert(dbc, &bundle.Main)
		if err != nil {
			return classifyPersistError("upsert main record", err)
		}

		for i := range bundle.Rights {
			bundle.Rights[i].MainRecordID = main.ID
			if _, _, err := g.repos.Rights.Upsert(dbc, &bundle.Rights[i]); err != nil {
				return classifyPersistError("upsert right record", err)
			}
		}

		for i := range bundle.Restricts {
			bundle.Restricts[i].MainRecordID = main.ID
			if _, _, err := g.repos.Restricts.Upsert(dbc, &bundle.Restricts[i]); err != nil {
				return classifyPersistError("upsert restrict record", err)
			}
		}

		for i := range bundle.Deals {
			bundle.Deals[i].Record.MainRecordID = main.ID
			deal, _, err := g.repos.Deals.Upsert(dbc, &bundle.Deals[i].Record)
			if err != nil {
				return classifyPersistError("upsert deal record", err)
			}
			for j := range bundle.Deals[i].Parties {
				bundle.Deals[i].Parties[j].DealRecordID = deal.ID
				if _, _, err := g.repos.Parties.Upsert(dbc, &bundle.Deals[i].Parties[j]); err != nil {
					return classifyPersistError("upsert deal party", err)
				}
			}
		}

		return nil
	})
}
