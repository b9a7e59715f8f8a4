// file: internals/features/academics/assignment/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentTitle       string    `gorm:"type:varchar(160);not null;column:assignment_title" json:"assignment_title"`
	AssignmentDescription string    `gorm:"type:text;not null;column:assignment_description" json:"assignment_description"`
	AssignmentDueDate     time.Time `gorm:"column:assignment_due_date;not null" json:"assignment_due_date"`
	AssignmentGradeID     uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_grade_id" json:"assignment_grade_id"`

	// Lampiran (URL), text[]
	AssignmentAttachmentURLs pq.StringArray `gorm:"type:text[];column:assignment_attachment_urls" json:"assignment_attachment_urls,omitempty"`

	// Live | Archived
	AssignmentStatus string `gorm:"type:varchar(10);not null;default:'Live';column:assignment_status" json:"assignment_status"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;not null;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}
