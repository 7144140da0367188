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

type RightRecordRepo interface {
	Upsert(dbc dbctx.Context, row *types.RightRecord) (*types.RightRecord, bool, error)
	GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.RightRecord, error)
}

type rightRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRightRecordRepo(db *gorm.DB, baseLog *logger.Logger) RightRecordRepo {
	return &rightRecordRepo{db: db, log: baseLog.With("repo", "RightRecordRepo")}
}

func (r *rightRecordRepo) Upsert(dbc dbctx.Context, row *types.RightRecord) (*types.RightRecord, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.MainRecordID == uuid.Nil {
		return nil, false, fmt.Errorf("right record requires a parent main record")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "main_record_id"},
				{Name: "right_number"},
				{Name: "right_type_code"},
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

	var existing types.RightRecord
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id = ? AND right_number = ? AND right_type_code = ? AND registration_date = ?",
			row.MainRecordID, row.RightNumber, row.RightTypeCode, row.RegistrationDate).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *rightRecordRepo) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*types.RightRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.RightRecord
	if len(mainIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("main_record_id IN ?", mainIDs).
		Order("registration_date, right_number").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
