package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	repos "github.com/yungbote/registry-ingest/internal/data/repos/registry"
	"github.com/yungbote/registry-ingest/internal/domain/registry"
	"github.com/yungbote/registry-ingest/internal/normalize"
	"github.com/yungbote/registry-ingest/internal/platform/dbctx"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

// ReportError aborts report emission; a partial report misleads.
type ReportError struct {
	Op  string
	Err error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report: %s: %v", e.Op, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }

// Deps are the read-side repositories the builder aggregates over.
type Deps struct {
	Files     repos.FileRecordRepo
	Mains     repos.MainRecordRepo
	Rights    repos.RightRecordRepo
	Restricts repos.RestrictRecordRepo
	Deals     repos.DealRecordRepo
	Parties   repos.DealPartyRepo
	Log       *logger.Logger
}

// Builder turns the persisted record set into flat report rows. For each
// parcel it emits the cross product of the parcel's deals and restrictions;
// when either side is empty, one row per element of the other side with the
// missing side blank; when both are empty, exactly one row. Ownership is a
// per-parcel summary cell, never cross-joined. Output order is fully
// deterministic.
type Builder struct {
	deps Deps
	log  *logger.Logger
}

func NewBuilder(deps Deps) *Builder {
	return &Builder{deps: deps, log: deps.Log.With("component", "report")}
}

func (b *Builder) Build(ctx context.Context) ([]Row, error) {
	dbc := dbctx.New(ctx)

	mains, err := b.deps.Mains.List(dbc)
	if err != nil {
		return nil, &ReportError{Op: "list parcels", Err: err}
	}
	if len(mains) == 0 {
		return []Row{}, nil
	}

	fileIDs := make([]uuid.UUID, 0, len(mains))
	mainIDs := make([]uuid.UUID, 0, len(mains))
	for _, m := range mains {
		fileIDs = append(fileIDs, m.FileRecordID)
		mainIDs = append(mainIDs, m.ID)
	}

	files, err := b.deps.Files.GetByIDs(dbc, fileIDs)
	if err != nil {
		return nil, &ReportError{Op: "load file records", Err: err}
	}
	fileByID := make(map[uuid.UUID]*registry.FileRecord, len(files))
	for _, f := range files {
		fileByID[f.ID] = f
	}

	rights, err := b.deps.Rights.GetByMainRecordIDs(dbc, mainIDs)
	if err != nil {
		return nil, &ReportError{Op: "load right records", Err: err}
	}
	restricts, err := b.deps.Restricts.GetByMainRecordIDs(dbc, mainIDs)
	if err != nil {
		return nil, &ReportError{Op: "load restrict records", Err: err}
	}
	deals, err := b.deps.Deals.GetByMainRecordIDs(dbc, mainIDs)
	if err != nil {
		return nil, &ReportError{Op: "load deal records", Err: err}
	}

	dealIDs := make([]uuid.UUID, 0, len(deals))
	for _, d := range deals {
		dealIDs = append(dealIDs, d.ID)
	}
	parties, err := b.deps.Parties.GetByDealRecordIDs(dbc, dealIDs)
	if err != nil {
		return nil, &ReportError{Op: "load deal parties", Err: err}
	}

	rightsByMain := groupBy(rights, func(r *registry.RightRecord) uuid.UUID { return r.MainRecordID })
	restrictsByMain := groupBy(restricts, func(r *registry.RestrictRecord) uuid.UUID { return r.MainRecordID })
	dealsByMain := groupBy(deals, func(d *registry.DealRecord) uuid.UUID { return d.MainRecordID })
	partiesByDeal := groupBy(parties, func(p *registry.DealParty) uuid.UUID { return p.DealRecordID })

	// Parcel order: cadastral number, then statement number for amendments
	// of the same parcel across documents.
	sort.SliceStable(mains, func(i, j int) bool {
		if mains[i].CadNumber != mains[j].CadNumber {
			return mains[i].CadNumber < mains[j].CadNumber
		}
		return statementNumber(fileByID, mains[i]) < statementNumber(fileByID, mains[j])
	})

	var rows []Row
	for _, main := range mains {
		base := b.parcelBase(main, fileByID[main.FileRecordID], rightsByMain[main.ID])

		parcelDeals := dealsByMain[main.ID]
		parcelRestricts := restrictsByMain[main.ID]
		sort.SliceStable(parcelDeals, func(i, j int) bool {
			if !parcelDeals[i].RegistrationDate.Equal(parcelDeals[j].RegistrationDate) {
				return parcelDeals[i].RegistrationDate.Before(parcelDeals[j].RegistrationDate)
			}
			return parcelDeals[i].DealNumber < parcelDeals[j].DealNumber
		})
		sort.SliceStable(parcelRestricts, func(i, j int) bool {
			if !parcelRestricts[i].RegistrationDate.Equal(parcelRestricts[j].RegistrationDate) {
				return parcelRestricts[i].RegistrationDate.Before(parcelRestricts[j].RegistrationDate)
			}
			return parcelRestricts[i].RestrictionNumber < parcelRestricts[j].RestrictionNumber
		})

		switch {
		case len(parcelDeals) > 0 && len(parcelRestricts) > 0:
			for _, d := range parcelDeals {
				for _, r := range parcelRestricts {
					row := base
					fillDeal(&row, d, partiesByDeal[d.ID])
					fillRestriction(&row, r)
					rows = append(rows, row)
				}
			}
		case len(parcelDeals) > 0:
			for _, d := range parcelDeals {
				row := base
				fillDeal(&row, d, partiesByDeal[d.ID])
				rows = append(rows, row)
			}
		case len(parcelRestricts) > 0:
			for _, r := range parcelRestricts {
				row := base
				fillRestriction(&row, r)
				rows = append(rows, row)
			}
		default:
			rows = append(rows, base)
		}
	}

	for i := range rows {
		rows[i].RowNumber = i + 1
	}
	b.log.Info("report built", "parcels", len(mains), "rows", len(rows))
	return rows, nil
}

func (b *Builder) parcelBase(main *registry.MainRecord, file *registry.FileRecord, rights []*registry.RightRecord) Row {
	row := Row{
		CadNumber:    main.CadNumber,
		Address:      main.ReadableAddress,
		LandCategory: main.CategoryValue,
		PermittedUse: main.PermittedUse,
		Area:         formatFloat(main.Area),
	}
	if file != nil {
		row.StatementNumber = file.RegistrationNumber
	}

	var names, inns []string
	for _, r := range rights {
		var holders []registry.Holder
		if len(r.Holders) > 0 {
			if err := json.Unmarshal(r.Holders, &holders); err != nil {
				b.log.Warn("holders column is not valid JSON", "right_number", r.RightNumber)
			}
		}
		for _, h := range holders {
			if h.Name != "" {
				names = append(names, h.Name)
			}
			if h.INN != "" {
				inns = append(inns, h.INN)
			}
		}
	}
	row.HolderNames = strings.Join(dedupe(names), "; ")
	row.HolderINNs = strings.Join(dedupe(inns), "; ")

	if len(rights) > 0 {
		first := rights[0]
		row.RightType = first.RightType
		row.RightNumber = first.RightNumber
		row.RightRegistrationDate = normalize.FormatDate(first.RegistrationDate)
	}
	return row
}

func fillDeal(row *Row, d *registry.DealRecord, parties []*registry.DealParty) {
	row.DealNumber = d.DealNumber
	row.DealType = d.DealTypeValue
	row.DealRegistrationDate = normalize.FormatDate(d.RegistrationDate)
	if d.FirstDDUDate != nil {
		row.DealConcludedDate = normalize.FormatDate(*d.FirstDDUDate)
	}
	row.DealObjectType = d.ObjectType
	row.DealObjectNumber = d.ObjectNumber
	if d.FloorNumber != nil {
		row.DealFloor = strconv.Itoa(*d.FloorNumber)
	}
	row.DealObjectArea = formatFloat(d.ObjectArea)
	row.DealBank = d.Bank
	row.DealBankINN = d.BankINN
	row.DealMortgageFlag = d.MortgageFlag
	row.DealGuaranteePeriod = d.GuaranteePeriod

	var rendered []string
	for _, p := range parties {
		role := p.PartyTypeValue
		if role == "" {
			role = p.PartyTypeCode
		}
		if role != "" {
			rendered = append(rendered, role+": "+p.PartyInfo)
		} else {
			rendered = append(rendered, p.PartyInfo)
		}
	}
	row.DealParties = strings.Join(rendered, "; ")
}

func fillRestriction(row *Row, r *registry.RestrictRecord) {
	row.RestrictionNumber = r.RestrictionNumber
	row.RestrictionType = r.RestrictionType
	row.RestrictionRegistrationDate = normalize.FormatDate(r.RegistrationDate)
	if r.StartDate != nil {
		row.RestrictionStartDate = normalize.FormatDate(*r.StartDate)
	}
	row.RestrictionGuaranteePeriod = r.GuaranteePeriod
	row.RestrictionBank = r.Bank
	row.RestrictionBankINN = r.BankINN
	row.RestrictionMortgageFlag = r.MortgageFlag
}

func statementNumber(fileByID map[uuid.UUID]*registry.FileRecord, main *registry.MainRecord) string {
	if f, ok := fileByID[main.FileRecordID]; ok {
		return f.RegistrationNumber
	}
	return ""
}

func groupBy[T any](items []T, key func(T) uuid.UUID) map[uuid.UUID][]T {
	out := make(map[uuid.UUID][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func itoa(i int) string { return strconv.Itoa(i) }
