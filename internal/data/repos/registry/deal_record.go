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

type DealRecordRepo interface {
	Upsert(dbc dbctx.Context, row *types.DealRecord) (*types.DealRecord, bool, error)
	GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.DealRecord, error)
}

type dealRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDealRecordRepo(db *gorm.DB, baseLog *logger.Logger) DealRecordRepo {
	return &dealRecordRepo{db: db, log: baseLog.With("repo", "DealRecordRepo")}
}

func (r *dealRecordRepo) Upsert(dbc dbctx.Context, row *types.DealRecord) (*types.DealRecord, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.MainRecordID == uuid.Nil {
		return nil, false, fmt.Errorf("deal record requires a parent main record")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "main_record_id"},
				{Name: "deal_number"},
				{Name: "deal_type_code"},
				{Name: "registration_date"},
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

	var existing types.DealRecord
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id = ? AND deal_number = ? AND deal_type_code = ? AND registration_date = ?",
			row.MainRecordID, row.DealNumber, row.DealTypeCode, row.RegistrationDate).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *dealRecordRepo) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.DealRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.DealRecord
	if len(mainIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id IN ?", mainIDs).
		Order("registration_date, deal_number").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
