package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/registry-ingest/internal/domain/registry"
	"github.com/yungbote/registry-ingest/internal/extract"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

// ErrMissingStatementNumber means the document carries no statement
// registration number, so there is no natural key to persist it under.
var ErrMissingStatementNumber = errors.New("statement registration number missing")

// Deal couples a normalized deal record with its party list; the party
// foreign keys are resolved at persist time, once the deal's identity is
// known.
type Deal struct {
	Record  registry.DealRecord
	Parties []registry.DealParty
}

// Bundle is one document's worth of normalized records. Parent references
// inside it are structural (Main belongs to File, children to Main); the
// actual UUID foreign keys are filled in by the persistence gateway as each
// parent's identity is settled.
type Bundle struct {
	File      registry.FileRecord
	Main      registry.MainRecord
	Rights    []registry.RightRecord
	Restricts []registry.RestrictRecord
	Deals     []Deal
}

// Statement maps a raw extract to canonical entities. Dates that take part
// in natural keys must parse or the document fails; optional dates degrade
// to NULL with a warning. String fields are whitespace-collapsed, case
// untouched.
func Statement(raw *extract.RawStatement, sourceFile string, log *logger.Logger) (*Bundle, error) {
	regNumber := CollapseSpace(raw.Statement.RegistrationNumber)
	if regNumber == "" {
		return nil, ErrMissingStatementNumber
	}

	file := registry.FileRecord{
		SourceFile:         filepath.Base(sourceFile),
		RegistrationOrgan:  CollapseSpace(raw.Statement.RegistrationOrgan),
		RegistrationNumber: regNumber,
		ParsedAt:           time.Now().UTC(),
	}
	file.DateFormation = optionalDate(raw.Statement.DateFormation, "date_formation", sourceFile, log)
	file.RequestReceivedAt = optionalDate(raw.Request.DateReceived, "date_received_request", sourceFile, log)
	file.RequestReceivedByAuthority = optionalDate(raw.Request.DateReceivedByAuthority, "date_receipt_request_reg_authority_rights", sourceFile, log)

	main := registry.MainRecord{
		CadNumber:       CollapseSpace(raw.Land.CadNumber),
		ReadableAddress: CollapseSpace(raw.Land.ReadableAddress),
		CategoryCode:    CollapseSpace(raw.Land.CategoryCode),
		CategoryValue:   CollapseSpace(raw.Land.CategoryValue),
		PermittedUse:    CollapseSpace(raw.Land.PermittedUse),
		Area:            optionalFloat(raw.Land.Area, "area", sourceFile, log),
	}

	bundle := &Bundle{File: file, Main: main}

	for _, r := range raw.Rights {
		regDate, err := ParseDate(r.RegistrationDate)
		if err != nil {
			return nil, fmt.Errorf("right record %q registration date: %w", CollapseSpace(r.RightNumber), err)
		}
		row := registry.RightRecord{
			RightNumber:      CollapseSpace(r.RightNumber),
			RightTypeCode:    CollapseSpace(r.RightTypeCode),
			RightType:        CollapseSpace(r.RightType),
			RegistrationDate: regDate,
			Holders:          holdersJSON(r.Holders),
			Documents:        documentsJSON(r.Documents),
		}
		bundle.Rights = append(bundle.Rights, row)
	}

	for _, r := range raw.Restricts {
		regDate, err := ParseDate(r.RegistrationDate)
		if err != nil {
			return nil, fmt.Errorf("restrict record %q registration date: %w", CollapseSpace(r.RestrictionNumber), err)
		}
		row := registry.RestrictRecord{
			RestrictionNumber:   CollapseSpace(r.RestrictionNumber),
			RestrictionTypeCode: CollapseSpace(r.RestrictionTypeCode),
			RestrictionType:     CollapseSpace(r.RestrictionType),
			RegistrationDate:    regDate,
			StartDate:           optionalDate(r.StartDate, "start_date", sourceFile, log),
			DealValidityTime:    CollapseSpace(r.DealValidityTime),
			MortgageFlag:        CollapseSpace(r.MortgageFlag),
			GuaranteePeriod:     CollapseSpace(r.GuaranteePeriod),
			Documents:           documentsJSON(r.Documents),
			DealNumber:          dealNumberFromDocuments(r.Documents),
		}
		if len(r.Holders) > 0 {
			row.Bank = CollapseSpace(r.Holders[0].Name)
			row.BankINN = CollapseSpace(r.Holders[0].INN)
		}
		bundle.Restricts = append(bundle.Restricts, row)
	}

	for _, d := range raw.Deals {
		regDate, err := ParseDate(d.RegistrationDate)
		if err != nil {
			return nil, fmt.Errorf("deal record %q registration date: %w", CollapseSpace(d.DealNumber), err)
		}
		row := registry.DealRecord{
			DealNumber:       CollapseSpace(d.DealNumber),
			DealTypeCode:     CollapseSpace(d.DealTypeCode),
			DealTypeValue:    CollapseSpace(d.DealTypeValue),
			RegistrationDate: regDate,
			FirstDDUDate:     optionalDate(d.FirstDDUDate, "first_ddu_date", sourceFile, log),
			ObjectType:       CollapseSpace(d.ObjectType),
			ObjectNumber:     CollapseSpace(d.ObjectNumber),
			FloorNumber:      optionalInt(d.FloorNumber, "floor_number", sourceFile, log),
			ObjectArea:       optionalFloat(d.ObjectArea, "room_area", sourceFile, log),
			Bank:             CollapseSpace(d.Bank),
			GuaranteePeriod:  CollapseSpace(d.GuaranteePeriod),
			MortgageFlag:     CollapseSpace(d.MortgageFlag),
			Documents:        documentsJSON(d.Documents),
		}
		deal := Deal{Record: row}
		for _, p := range d.Parties {
			deal.Parties = append(deal.Parties, registry.DealParty{
				PartyTypeCode:  CollapseSpace(p.PartyTypeCode),
				PartyTypeValue: CollapseSpace(p.PartyTypeValue),
				PartyInfo:      CollapseSpace(p.PartyInfo),
				ConcessionMark: CollapseSpace(p.ConcessionMark),
			})
		}
		bundle.Deals = append(bundle.Deals, deal)
	}

	return bundle, nil
}

func optionalDate(raw, field, sourceFile string, log *logger.Logger) *time.Time {
	t, err := ParseOptionalDate(raw)
	if err != nil {
		log.Warn("unparseable optional date, storing null", "file", sourceFile, "field", field, "raw", strings.TrimSpace(raw))
		return nil
	}
	return t
}

func optionalFloat(raw, field, sourceFile string, log *logger.Logger) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Warn("unparseable numeric field, storing null", "file", sourceFile, "field", field, "raw", s)
		return nil
	}
	return &f
}

func optionalInt(raw, field, sourceFile string, log *logger.Logger) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Warn("unparseable integer field, storing null", "file", sourceFile, "field", field, "raw", s)
		return nil
	}
	return &i
}

func holdersJSON(raw []extract.RawHolder) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	holders := make([]registry.Holder, 0, len(raw))
	for _, h := range raw {
		holders = append(holders, registry.Holder{
			Name: CollapseSpace(h.Name),
			INN:  CollapseSpace(h.INN),
			OGRN: CollapseSpace(h.OGRN),
		})
	}
	b, err := json.Marshal(holders)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func documentsJSON(raw []extract.RawUnderlyingDoc) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	docs := make([]registry.UnderlyingDocument, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, registry.UnderlyingDocument{
			Code:       CollapseSpace(d.Code),
			CodeValue:  CollapseSpace(d.CodeValue),
			Name:       CollapseSpace(d.Name),
			Number:     CollapseSpace(d.Number),
			Date:       CollapseSpace(d.Date),
			DealNumber: CollapseSpace(d.DealNumber),
			DealDate:   CollapseSpace(d.DealDate),
			DealOrgan:  CollapseSpace(d.DealOrgan),
		})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func dealNumberFromDocuments(raw []extract.RawUnderlyingDoc) string {
	for _, d := range raw {
		if n := CollapseSpace(d.DealNumber); n != "" {
			return n
		}
	}
	return ""
}
