package registry

import (
	"github.com/google/uuid"
)

// MainRecord is one land parcel as described by one statement. A parcel
// amended by a later statement shows up as a second MainRecord under the
// newer FileRecord; the unique index is scoped to the file on purpose.
type MainRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_main_record_file_cad,priority:1" json:"file_record_id"`

	CadNumber       string   `gorm:"column:cad_number;not null;index;uniqueIndex:idx_main_record_file_cad,priority:2" json:"cad_number"`
	ReadableAddress string   `gorm:"column:readable_address" json:"readable_address,omitempty"`
	CategoryCode    string   `gorm:"column:category_code" json:"category_code,omitempty"`
	CategoryValue   string   `gorm:"column:category_value" json:"category_value,omitempty"`
	PermittedUse    string   `gorm:"column:permitted_use" json:"permitted_use,omitempty"`
	Area            *float64 `gorm:"column:area" json:"area,omitempty"`
}

func (MainRecord) TableName() string { return "main_record" }
