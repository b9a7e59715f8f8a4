// file: internals/features/people/teacher/dto/teacher_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/people/teacher/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type GradeSubjectItem struct {
	GradeSubjectID string `json:"grade_subject_id" validate:"required"`
}

// Create (admin add). Status opsional, default Live; selain token person ditolak.
type CreateTeacherRequest struct {
	TeacherName     string  `json:"teacher_name" validate:"required,min=2,max=100"`
	TeacherEmail    string  `json:"teacher_email" validate:"required,email"`
	TeacherMobile   string  `json:"teacher_mobile" validate:"required,min=6,max=20"`
	TeacherPassword string  `json:"teacher_password" validate:"required,min=8"`
	TeacherAddress  string  `json:"teacher_address" validate:"required,max=255"`
	TeacherCity     string  `json:"teacher_city" validate:"required,max=100"`
	TeacherState    string  `json:"teacher_state" validate:"required,max=100"`
	TeacherCountry  string  `json:"teacher_country" validate:"required,max=100"`
	TeacherZipCode  *string `json:"teacher_zip_code" validate:"omitempty,max=20"`

	TeacherQualification string             `json:"teacher_qualification" validate:"required,max=120"`
	TeacherGradeSubjects []GradeSubjectItem `json:"teacher_grade_subjects" validate:"dive"`

	TeacherStatus *string `json:"teacher_status" validate:"omitempty,oneof=Live Archived"`
}

// Update (partial): hanya field yang dikirim yang diubah; ID immutable.
type UpdateTeacherRequest struct {
	TeacherName    *string `json:"teacher_name" validate:"omitempty,min=2,max=100"`
	TeacherMobile  *string `json:"teacher_mobile" validate:"omitempty,min=6,max=20"`
	TeacherAddress *string `json:"teacher_address" validate:"omitempty,max=255"`
	TeacherCity    *string `json:"teacher_city" validate:"omitempty,max=100"`
	TeacherState   *string `json:"teacher_state" validate:"omitempty,max=100"`
	TeacherCountry *string `json:"teacher_country" validate:"omitempty,max=100"`
	TeacherZipCode *string `json:"teacher_zip_code" validate:"omitempty,max=20"`

	TeacherQualification *string             `json:"teacher_qualification" validate:"omitempty,max=120"`
	TeacherGradeSubjects *[]GradeSubjectItem `json:"teacher_grade_subjects" validate:"omitempty,dive"`
}

/* =========================================================
   2) MAPPERS
========================================================= */

func (r CreateTeacherRequest) ToModel(passwordHash string) model.TeacherModel {
	m := model.TeacherModel{
		TeacherName:          strings.TrimSpace(r.TeacherName),
		TeacherEmail:         strings.ToLower(strings.TrimSpace(r.TeacherEmail)),
		TeacherMobile:        strings.TrimSpace(r.TeacherMobile),
		TeacherPassword:      passwordHash,
		TeacherAddress:       strings.TrimSpace(r.TeacherAddress),
		TeacherCity:          strings.TrimSpace(r.TeacherCity),
		TeacherState:         strings.TrimSpace(r.TeacherState),
		TeacherCountry:       strings.TrimSpace(r.TeacherCountry),
		TeacherZipCode:       trimPtr(r.TeacherZipCode),
		TeacherQualification: strings.TrimSpace(r.TeacherQualification),
		TeacherGradeSubjects: marshalGradeSubjects(r.TeacherGradeSubjects),
		TeacherStatus:        constants.StatusLive,
	}
	if r.TeacherStatus != nil {
		m.TeacherStatus = *r.TeacherStatus
	}
	return m
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherMobile != nil {
		m.TeacherMobile = strings.TrimSpace(*r.TeacherMobile)
	}
	if r.TeacherAddress != nil {
		m.TeacherAddress = strings.TrimSpace(*r.TeacherAddress)
	}
	if r.TeacherCity != nil {
		m.TeacherCity = strings.TrimSpace(*r.TeacherCity)
	}
	if r.TeacherState != nil {
		m.TeacherState = strings.TrimSpace(*r.TeacherState)
	}
	if r.TeacherCountry != nil {
		m.TeacherCountry = strings.TrimSpace(*r.TeacherCountry)
	}
	if r.TeacherZipCode != nil {
		m.TeacherZipCode = trimPtr(r.TeacherZipCode)
	}
	if r.TeacherQualification != nil {
		m.TeacherQualification = strings.TrimSpace(*r.TeacherQualification)
	}
	if r.TeacherGradeSubjects != nil {
		m.TeacherGradeSubjects = marshalGradeSubjects(*r.TeacherGradeSubjects)
	}
}

func marshalGradeSubjects(items []GradeSubjectItem) datatypes.JSON {
	entries := make([]model.GradeSubjectEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.GradeSubjectEntry{
			GradeSubjectID: strings.TrimSpace(it.GradeSubjectID),
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
