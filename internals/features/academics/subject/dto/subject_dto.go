// file: internals/features/academics/subject/dto/subject_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/academics/subject/model"
	helper "sekolahku_backend/internals/helpers"
)

// Status subject memakai token {Live, Archive}.
type CreateSubjectRequest struct {
	SubjectName        string  `json:"subject_name" validate:"required,max=120"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty"`
	SubjectStatus      *string `json:"subject_status" validate:"omitempty,oneof=Live Archive"`
}

type UpdateSubjectRequest struct {
	SubjectName        *string `json:"subject_name" validate:"omitempty,max=120"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty"`
}

// ValidateName: nama wajib non-empty SETELAH trim (tag required saja
// meloloskan whitespace).
func (r CreateSubjectRequest) ValidateName() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if strings.TrimSpace(r.SubjectName) == "" {
		fe.Add("subject_name", "wajib diisi")
	}
	return fe
}

func (r UpdateSubjectRequest) ValidateName() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if r.SubjectName != nil && strings.TrimSpace(*r.SubjectName) == "" {
		fe.Add("subject_name", "wajib diisi")
	}
	return fe
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	m := model.SubjectModel{
		SubjectName:        strings.TrimSpace(r.SubjectName),
		SubjectDescription: trimPtr(r.SubjectDescription),
		SubjectStatus:      constants.StatusLive,
	}
	if r.SubjectStatus != nil {
		m.SubjectStatus = *r.SubjectStatus
	}
	return m
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectDescription != nil {
		m.SubjectDescription = trimPtr(r.SubjectDescription)
	}
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
