package registry

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/registry-ingest/internal/domain/registry"
	"github.com/yungbote/registry-ingest/internal/platform/dbctx"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

type DealPartyRepo interface {
	Upsert(dbc dbctx.Context, row *types.DealParty) (*types.DealParty, bool, error)
	GetByDealRecordIDs(dbc dbctx.Context, dealIDs []uuid.UUID) ([]*types.DealParty, error)
}

type dealPartyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDealPartyRepo(db *gorm.DB, baseLog *logger.Logger) DealPartyRepo {
	return &dealPartyRepo{db: db, log: baseLog.With("repo", "DealPartyRepo")}
}

func (r *dealPartyRepo) Upsert(dbc dbctx.Context, row *types.DealParty) (*types.DealParty, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.DealRecordID == uuid.Nil {
		return nil, false, fmt.Errorf("deal party requires a parent deal record")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "deal_record_id"},
				{Name: "party_info"},
				{Name: "party_type_code"},
			},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	var existing types.DealParty
	if err := t.WithContext(dbc.Ctx).
		Where("deal_record_id = ? AND party_info = ? AND party_type_code = ?",
			row.DealRecordID, row.PartyInfo, row.PartyTypeCode).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *dealPartyRepo) GetByDealRecordIDs(dbc dbctx.Context, dealIDs []uuid.UUID) ([]*types.DealParty, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.DealParty
	if len(dealIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("deal_record_id IN ?", dealIDs).
		Order("party_type_code, party_info").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
