// file: internals/features/people/student/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentName     string `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:student_email" json:"student_email"`
	StudentMobile   string `gorm:"type:varchar(20);not null;column:student_mobile" json:"student_mobile"`
	StudentPassword string `gorm:"not null;column:student_password" json:"-"`

	StudentAddress string  `gorm:"type:varchar(255);not null;column:student_address" json:"student_address"`
	StudentCity    string  `gorm:"type:varchar(100);not null;column:student_city" json:"student_city"`
	StudentState   string  `gorm:"type:varchar(100);not null;column:student_state" json:"student_state"`
	StudentCountry string  `gorm:"type:varchar(100);not null;column:student_country" json:"student_country"`
	StudentZipCode *string `gorm:"type:varchar(20);column:student_zip_code" json:"student_zip_code,omitempty"`

	// Relasi (ID saja)
	StudentParentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_parent_id" json:"student_parent_id"`
	StudentGradeID  uuid.UUID `gorm:"type:uuid;not null;index;column:student_grade_id" json:"student_grade_id"`

	// Ordered list {subject_id, teacher_id, status}
	StudentSubjects datatypes.JSON `gorm:"column:student_subjects" json:"student_subjects"`

	StudentStatus string `gorm:"type:varchar(10);not null;default:'Live';column:student_status" json:"student_status"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

// SubjectEntry: satu entri pelajaran yang diambil student.
// Status entri default "Live" bila tidak dikirim dari form.
type SubjectEntry struct {
	SubjectID string `json:"subject_id"`
	TeacherID string `json:"teacher_id"`
	Status    string `json:"status"`
}
