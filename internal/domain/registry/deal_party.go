package registry

import (
	"github.com/google/uuid"
)

// DealParty is one participant of a deal record.
type DealParty struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DealRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_deal_party_natural,priority:1" json:"deal_record_id"`

	PartyTypeCode  string `gorm:"column:party_type_code;not null;uniqueIndex:idx_deal_party_natural,priority:3" json:"party_type_code"`
	PartyTypeValue string `gorm:"column:party_type_value" json:"party_type_value,omitempty"`
	PartyInfo      string `gorm:"column:party_info;not null;uniqueIndex:idx_deal_party_natural,priority:2" json:"party_info"`
	ConcessionMark string `gorm:"column:concession_mark" json:"concession_mark,omitempty"`
}

func (DealParty) TableName() string { return "deal_party" }
