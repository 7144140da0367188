package registry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DealRecord is one registered transaction referencing a parcel.
type DealRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MainRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_deal_record_natural,priority:1" json:"main_record_id"`

	DealNumber    string `gorm:"column:deal_number;not null;uniqueIndex:idx_deal_record_natural,priority:2" json:"deal_number"`
	DealTypeCode  string `gorm:"column:deal_type_code;not null;uniqueIndex:idx_deal_record_natural,priority:3" json:"deal_type_code"`
	DealTypeValue string `gorm:"column:deal_type_value" json:"deal_type_value,omitempty"`
	// RegistrationDate is part of the natural key; NULL would defeat the
	// ON CONFLICT idempotence guard.
	RegistrationDate time.Time  `gorm:"column:registration_date;not null;uniqueIndex:idx_deal_record_natural,priority:4" json:"registration_date"`
	FirstDDUDate     *time.Time `gorm:"column:first_ddu_date" json:"first_ddu_date,omitempty"`

	ObjectType   string   `gorm:"column:object_type" json:"object_type,omitempty"`
	ObjectNumber string   `gorm:"column:object_number" json:"object_number,omitempty"`
	FloorNumber  *int     `gorm:"column:floor_number" json:"floor_number,omitempty"`
	ObjectArea   *float64 `gorm:"column:object_area" json:"object_area,omitempty"`

	Bank            string `gorm:"column:bank" json:"bank,omitempty"`
	BankINN         string `gorm:"column:bank_inn" json:"bank_inn,omitempty"`
	GuaranteePeriod string `gorm:"column:guarantee_period" json:"guarantee_period,omitempty"`
	MortgageFlag    string `gorm:"column:mortgage_flag" json:"mortgage_flag,omitempty"`

	Documents datatypes.JSON `gorm:"column:documents" json:"documents,omitempty"`
}

func (DealRecord) TableName() string { return "deal_record" }
