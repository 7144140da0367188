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

type RestrictRecordRepo interface {
	Upsert(dbc dbctx.Context, row *types.RestrictRecord) (*types.RestrictRecord, bool, error)
	GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.RestrictRecord, error)
}

type restrictRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestrictRecordRepo(db *gorm.DB, baseLog *logger.Logger) RestrictRecordRepo {
	return &restrictRecordRepo{db: db, log: baseLog.With("repo", "RestrictRecordRepo")}
}

func (r *restrictRecordRepo) Upsert(dbc dbctx.Context, row *types.RestrictRecord) (*types.RestrictRecord, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.MainRecordID == uuid.Nil {
		return nil, false, fmt.Errorf("restrict record requires a parent main record")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "main_record_id"},
				{Name: "restriction_number"},
				{Name: "restriction_type_code"},
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

	var existing types.RestrictRecord
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id = ? AND restriction_number = ? AND restriction_type_code = ? AND registration_date = ?",
			row.MainRecordID, row.RestrictionNumber, row.RestrictionTypeCode, row.RegistrationDate).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *restrictRecordRepo) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.RestrictRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.RestrictRecord
	if len(mainIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id IN ?", mainIDs).
		Order("registration_date, restriction_number").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
