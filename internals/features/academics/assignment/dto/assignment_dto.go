// file: internals/features/academics/assignment/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/academics/assignment/model"
)

type CreateAssignmentRequest struct {
	AssignmentTitle       string    `json:"assignment_title" validate:"required,max=160"`
	AssignmentDescription string    `json:"assignment_description" validate:"required"`
	AssignmentDueDate     time.Time `json:"assignment_due_date" validate:"required"`
	AssignmentGradeID     uuid.UUID `json:"assignment_grade_id" validate:"required"`

	AssignmentAttachmentURLs []string `json:"assignment_attachment_urls" validate:"omitempty,dive,url"`

	AssignmentStatus *string `json:"assignment_status" validate:"omitempty,oneof=Live Archived"`
}

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string    `json:"assignment_title" validate:"omitempty,max=160"`
	AssignmentDescription *string    `json:"assignment_description" validate:"omitempty"`
	AssignmentDueDate     *time.Time `json:"assignment_due_date" validate:"omitempty"`
	AssignmentGradeID     *uuid.UUID `json:"assignment_grade_id" validate:"omitempty"`

	AssignmentAttachmentURLs *[]string `json:"assignment_attachment_urls" validate:"omitempty,dive,url"`
}

func (r CreateAssignmentRequest) ToModel() model.AssignmentModel {
	m := model.AssignmentModel{
		AssignmentTitle:          strings.TrimSpace(r.AssignmentTitle),
		AssignmentDescription:    strings.TrimSpace(r.AssignmentDescription),
		AssignmentDueDate:        r.AssignmentDueDate,
		AssignmentGradeID:        r.AssignmentGradeID,
		AssignmentAttachmentURLs: pq.StringArray(r.AssignmentAttachmentURLs),
		AssignmentStatus:         constants.StatusLive,
	}
	if r.AssignmentStatus != nil {
		m.AssignmentStatus = *r.AssignmentStatus
	}
	return m
}

func (r UpdateAssignmentRequest) Apply(m *model.AssignmentModel) {
	if r.AssignmentTitle != nil {
		m.AssignmentTitle = strings.TrimSpace(*r.AssignmentTitle)
	}
	if r.AssignmentDescription != nil {
		m.AssignmentDescription = strings.TrimSpace(*r.AssignmentDescription)
	}
	if r.AssignmentDueDate != nil {
		m.AssignmentDueDate = *r.AssignmentDueDate
	}
	if r.AssignmentGradeID != nil {
		m.AssignmentGradeID = *r.AssignmentGradeID
	}
	if r.AssignmentAttachmentURLs != nil {
		m.AssignmentAttachmentURLs = pq.StringArray(*r.AssignmentAttachmentURLs)
	}
}
