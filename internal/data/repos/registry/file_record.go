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

type FileRecordRepo interface {
	// Upsert inserts the record or, when its registration number is already
	// stored, returns the existing row. The bool reports whether a new row
	// was created.
	Upsert(dbc dbctx.Context, row *types.FileRecord) (*types.FileRecord, bool, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.FileRecord, error)
}

type fileRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFileRecordRepo(db *gorm.DB, baseLog *logger.Logger) FileRecordRepo {
	return &fileRecordRepo{db: db, log: baseLog.With("repo", "FileRecordRepo")}
}

func (r *fileRecordRepo) Upsert(dbc dbctx.Context, row *types.FileRecord) (*types.FileRecord, bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.RegistrationNumber == "" {
		return nil, false, fmt.Errorf("file record requires a registration number")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "registration_number"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	var existing types.FileRecord
	if err := t.WithContext(dbc.Ctx).
		Where("registration_number = ?", row.RegistrationNumber).
		Take(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *fileRecordRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.FileRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.FileRecord
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
