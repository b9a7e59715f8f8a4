// file: internals/features/people/teacher/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id" json:"teacher_id"`

	// Identitas
	TeacherName     string `gorm:"type:varchar(100);not null;column:teacher_name" json:"teacher_name"`
	TeacherEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:teacher_email" json:"teacher_email"`
	TeacherMobile   string `gorm:"type:varchar(20);not null;column:teacher_mobile" json:"teacher_mobile"`
	TeacherPassword string `gorm:"not null;column:teacher_password" json:"-"`

	// Alamat domisili (embedded kolom)
	TeacherAddress string  `gorm:"type:varchar(255);not null;column:teacher_address" json:"teacher_address"`
	TeacherCity    string  `gorm:"type:varchar(100);not null;column:teacher_city" json:"teacher_city"`
	TeacherState   string  `gorm:"type:varchar(100);not null;column:teacher_state" json:"teacher_state"`
	TeacherCountry string  `gorm:"type:varchar(100);not null;column:teacher_country" json:"teacher_country"`
	TeacherZipCode *string `gorm:"type:varchar(20);column:teacher_zip_code" json:"teacher_zip_code,omitempty"`

	// Role-specific
	TeacherQualification string `gorm:"type:varchar(120);not null;column:teacher_qualification" json:"teacher_qualification"`
	// Ordered list {grade_subject_id}, disimpan JSON supaya urutan submit terjaga
	TeacherGradeSubjects datatypes.JSON `gorm:"column:teacher_grade_subjects" json:"teacher_grade_subjects"`

	// Lifecycle: Live | Archived. Archive hanya flip status, tidak pernah delete.
	TeacherStatus string `gorm:"type:varchar(10);not null;default:'Live';column:teacher_status" json:"teacher_status"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

// GradeSubjectEntry: satu entri pada daftar grade-subject milik teacher.
type GradeSubjectEntry struct {
	GradeSubjectID string `json:"grade_subject_id"`
}
