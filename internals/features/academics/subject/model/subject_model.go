// file: internals/features/academics/subject/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE: subject/grade memakai token arsip "Archive" (bukan "Archived") —
// kosakata status memang beda per keluarga entitas.
type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey;column:subject_id" json:"subject_id"`

	SubjectName        string  `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`
	SubjectDescription *string `gorm:"type:text;column:subject_description" json:"subject_description,omitempty"`

	SubjectStatus string `gorm:"type:varchar(10);not null;default:'Live';column:subject_status" json:"subject_status"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
