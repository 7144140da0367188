package registry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Holder is one entry of a right record's holder list, stored inside the
// holders JSON column.
type Holder struct {
	Name string `json:"name"`
	INN  string `json:"inn,omitempty"`
	OGRN string `json:"ogrn,omitempty"`
}

// UnderlyingDocument is one entry of an underlying-documents list, stored
// as JSON on the owning record.
type UnderlyingDocument struct {
	Code       string `json:"code,omitempty"`
	CodeValue  string `json:"code_value,omitempty"`
	Name       string `json:"name,omitempty"`
	Number     string `json:"number,omitempty"`
	Date       string `json:"date,omitempty"`
	DealNumber string `json:"deal_number,omitempty"`
	DealDate   string `json:"deal_date,omitempty"`
	DealOrgan  string `json:"deal_organ,omitempty"`
}

// RightRecord is one registered ownership/interest entry for a parcel.
type RightRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MainRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_right_record_natural,priority:1" json:"main_record_id"`

	RightNumber   string `gorm:"column:right_number;not null;uniqueIndex:idx_right_record_natural,priority:2" json:"right_number"`
	RightTypeCode string `gorm:"column:right_type_code;not null;uniqueIndex:idx_right_record_natural,priority:3" json:"right_type_code"`
	RightType     string `gorm:"column:right_type" json:"right_type,omitempty"`
	// RegistrationDate is part of the natural key and therefore mandatory:
	// a NULL here would defeat the ON CONFLICT idempotence guard.
	RegistrationDate time.Time `gorm:"column:registration_date;not null;uniqueIndex:idx_right_record_natural,priority:4" json:"registration_date"`

	Holders   datatypes.JSON `gorm:"column:holders" json:"holders,omitempty"`
	Documents datatypes.JSON `gorm:"column:documents" json:"documents,omitempty"`
}

func (RightRecord) TableName() string { return "right_record" }
