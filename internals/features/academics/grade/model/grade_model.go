// file: internals/features/academics/grade/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GradeModel struct {
	GradeID uuid.UUID `gorm:"type:uuid;primaryKey;column:grade_id" json:"grade_id"`

	GradeName        string  `gorm:"type:varchar(120);not null;column:grade_name" json:"grade_name"`
	GradeDescription *string `gorm:"type:text;column:grade_description" json:"grade_description,omitempty"`

	// Ordered list {subject_id, status}
	GradeSubjects datatypes.JSON `gorm:"column:grade_subjects" json:"grade_subjects"`

	// Live | Archive (token arsip keluarga akademik)
	GradeStatus string `gorm:"type:varchar(10);not null;default:'Live';column:grade_status" json:"grade_status"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;not null;autoUpdateTime" json:"grade_updated_at"`
}

func (GradeModel) TableName() string { return "grades" }

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}

// GradeSubjectEntry: satu entri pelajaran milik grade.
type GradeSubjectEntry struct {
	SubjectID string `json:"subject_id"`
	Status    string `json:"status"`
}
