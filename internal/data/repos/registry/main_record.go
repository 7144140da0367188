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

type MainRecordRepo interface {
	Upsert(dbc dbctx.Context, row *types.MainRecord) (*types.MainRecord, bool, error)
	// List returns every stored parcel record, ordered by cadastral number
	// for stable downstream processing.
	List(dbc dbctx.Context) ([]*types.MainRecord, error)
}

type mainRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMainRecordRepo(db *gorm.DB, baseLog *logger.Logger) MainRecordRepo {
	return &mainRecordRepo{db: db, log: baseLog.With("repo", "MainRecordRepo")}
}

func (r *mainRecordRepo) Upsert(dbc dbctx.Context, row *types.MainRecord) (*types.MainRecord, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.CadNumber == "" || row.FileRecordID == uuid.Nil {
		return nil, false, fmt.Errorf("main record requires a cadastral number and file record")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "file_record_id"}, {Name: "cad_number"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	var existing types.MainRecord
	if err := t.WithContext(dbc.Ctx).
		Where("file_record_id = ? AND cad_number = ?", row.FileRecordID, row.CadNumber).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *mainRecordRepo) List(dbc dbctx.Context) ([]*types.MainRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.MainRecord
	if err := t.WithContext(dbc.Ctx).
		Order("cad_number").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
