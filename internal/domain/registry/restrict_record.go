package registry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestrictRecord is one encumbrance/restriction entry for a parcel.
type RestrictRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MainRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_restrict_record_natural,priority:1" json:"main_record_id"`

	RestrictionNumber   string `gorm:"column:restriction_number;not null;uniqueIndex:idx_restrict_record_natural,priority:2" json:"restriction_number"`
	RestrictionTypeCode string `gorm:"column:restriction_type_code;not null;uniqueIndex:idx_restrict_record_natural,priority:3" json:"restriction_type_code"`
	RestrictionType     string `gorm:"column:restriction_type" json:"restriction_type,omitempty"`
	// RegistrationDate is part of the natural key; NULL would defeat the
	// ON CONFLICT idempotence guard.
	RegistrationDate time.Time  `gorm:"column:registration_date;not null;uniqueIndex:idx_restrict_record_natural,priority:4" json:"registration_date"`
	StartDate        *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`

	DealValidityTime string `gorm:"column:deal_validity_time" json:"deal_validity_time,omitempty"`
	MortgageFlag     string `gorm:"column:mortgage_flag" json:"mortgage_flag,omitempty"`
	GuaranteePeriod  string `gorm:"column:guarantee_period" json:"guarantee_period,omitempty"`
	Bank             string `gorm:"column:bank" json:"bank,omitempty"`
	BankINN          string `gorm:"column:bank_inn" json:"bank_inn,omitempty"`

	// DealNumber ties the restriction back to a registered deal when the
	// underlying documents name one. Report pairing does not depend on it.
	DealNumber string         `gorm:"column:deal_number;index" json:"deal_number,omitempty"`
	Documents  datatypes.JSON `gorm:"column:documents" json:"documents,omitempty"`
}

func (RestrictRecord) TableName() string { return "restrict_record" }
