// file: internals/features/academics/grade/dto/grade_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/academics/grade/model"
	helper "sekolahku_backend/internals/helpers"
)

type GradeSubjectItem struct {
	SubjectID string `json:"subject_id" validate:"required"`
	// Default Live; token keluarga akademik.
	Status string `json:"status" validate:"omitempty,oneof=Live Archive"`
}

type CreateGradeRequest struct {
	GradeName        string             `json:"grade_name" validate:"required,max=120"`
	GradeDescription *string            `json:"grade_description" validate:"omitempty"`
	GradeSubjects    []GradeSubjectItem `json:"grade_subjects" validate:"dive"`
	GradeStatus      *string            `json:"grade_status" validate:"omitempty,oneof=Live Archive"`
}

type UpdateGradeRequest struct {
	GradeName        *string             `json:"grade_name" validate:"omitempty,max=120"`
	GradeDescription *string             `json:"grade_description" validate:"omitempty"`
	GradeSubjects    *[]GradeSubjectItem `json:"grade_subjects" validate:"omitempty,dive"`
}

func (r CreateGradeRequest) ValidateName() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if strings.TrimSpace(r.GradeName) == "" {
		fe.Add("grade_name", "wajib diisi")
	}
	return fe
}

func (r UpdateGradeRequest) ValidateName() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if r.GradeName != nil && strings.TrimSpace(*r.GradeName) == "" {
		fe.Add("grade_name", "wajib diisi")
	}
	return fe
}

func (r CreateGradeRequest) ToModel() model.GradeModel {
	m := model.GradeModel{
		GradeName:        strings.TrimSpace(r.GradeName),
		GradeDescription: trimPtr(r.GradeDescription),
		GradeSubjects:    marshalGradeSubjects(r.GradeSubjects),
		GradeStatus:      constants.StatusLive,
	}
	if r.GradeStatus != nil {
		m.GradeStatus = *r.GradeStatus
	}
	return m
}

func (r UpdateGradeRequest) Apply(m *model.GradeModel) {
	if r.GradeName != nil {
		m.GradeName = strings.TrimSpace(*r.GradeName)
	}
	if r.GradeDescription != nil {
		m.GradeDescription = trimPtr(r.GradeDescription)
	}
	if r.GradeSubjects != nil {
		m.GradeSubjects = marshalGradeSubjects(*r.GradeSubjects)
	}
}

func marshalGradeSubjects(items []GradeSubjectItem) datatypes.JSON {
	entries := make([]model.GradeSubjectEntry, 0, len(items))
	for _, it := range items {
		status := it.Status
		if status == "" {
			status = constants.StatusLive
		}
		entries = append(entries, model.GradeSubjectEntry{
			SubjectID: strings.TrimSpace(it.SubjectID),
			Status:    status,
		})
	}
	raw, _ := json.Marshal(entries)
	return datatypes.JSON(raw)
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
