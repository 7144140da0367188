package registry

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is one ingested extract document. The statement registration
// number is the document-level natural key: re-processing the same extract
// conflicts here and the whole statement becomes a no-op.
type FileRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	SourceFile         string     `gorm:"column:source_file;not null" json:"source_file"`
	RegistrationOrgan  string     `gorm:"column:registration_organ" json:"registration_organ,omitempty"`
	RegistrationNumber string     `gorm:"column:registration_number;not null;uniqueIndex:idx_file_record_number" json:"registration_number"`
	DateFormation      *time.Time `gorm:"column:date_formation" json:"date_formation,omitempty"`

	RequestReceivedAt          *time.Time `gorm:"column:request_received_at" json:"request_received_at,omitempty"`
	RequestReceivedByAuthority *time.Time `gorm:"column:request_received_by_authority" json:"request_received_by_authority,omitempty"`

	ParsedAt time.Time `gorm:"column:parsed_at;not null" json:"parsed_at"`
}

func (FileRecord) TableName() string { return "file_record" }
