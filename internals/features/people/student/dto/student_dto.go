// file: internals/features/people/student/dto/student_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/people/student/model"
)

type StudentSubjectItem struct {
	SubjectID string `json:"subject_id" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=Live Archived"`
}

type CreateStudentRequest struct {
	StudentName     string  `json:"student_name" validate:"required,min=2,max=100"`
	StudentEmail    string  `json:"student_email" validate:"required,email"`
	StudentMobile   string  `json:"student_mobile" validate:"required,min=6,max=20"`
	StudentPassword string  `json:"student_password" validate:"required,min=8"`
	StudentAddress  string  `json:"student_address" validate:"required,max=255"`
	StudentCity     string  `json:"student_city" validate:"required,max=100"`
	StudentState    string  `json:"student_state" validate:"required,max=100"`
	StudentCountry  string  `json:"student_country" validate:"required,max=100"`
	StudentZipCode  *string `json:"student_zip_code" validate:"omitempty,max=20"`

	StudentParentID uuid.UUID            `json:"student_parent_id" validate:"required"`
	StudentGradeID  uuid.UUID            `json:"student_grade_id" validate:"required"`
	StudentSubjects []StudentSubjectItem `json:"student_subjects" validate:"dive"`

	StudentStatus *string `json:"student_status" validate:"omitempty,oneof=Live Archived"`
}

type UpdateStudentRequest struct {
	StudentName    *string `json:"student_name" validate:"omitempty,min=2,max=100"`
	StudentMobile  *string `json:"student_mobile" validate:"omitempty,min=6,max=20"`
	StudentAddress *string `json:"student_address" validate:"omitempty,max=255"`
	StudentCity    *string `json:"student_city" validate:"omitempty,max=100"`
	StudentState   *string `json:"student_state" validate:"omitempty,max=100"`
	StudentCountry *string `json:"student_country" validate:"omitempty,max=100"`
	StudentZipCode *string `json:"student_zip_code" validate:"omitempty,max=20"`

	StudentParentID *uuid.UUID            `json:"student_parent_id" validate:"omitempty"`
	StudentGradeID  *uuid.UUID            `json:"student_grade_id" validate:"omitempty"`
	StudentSubjects *[]StudentSubjectItem `json:"student_subjects" validate:"omitempty,dive"`
}

func (r CreateStudentRequest) ToModel(passwordHash string) model.StudentModel {
	m := model.StudentModel{
		StudentName:     strings.TrimSpace(r.StudentName),
		StudentEmail:    strings.ToLower(strings.TrimSpace(r.StudentEmail)),
		StudentMobile:   strings.TrimSpace(r.StudentMobile),
		StudentPassword: passwordHash,
		StudentAddress:  strings.TrimSpace(r.StudentAddress),
		StudentCity:     strings.TrimSpace(r.StudentCity),
		StudentState:    strings.TrimSpace(r.StudentState),
		StudentCountry:  strings.TrimSpace(r.StudentCountry),
		StudentZipCode:  trimPtr(r.StudentZipCode),
		StudentParentID: r.StudentParentID,
		StudentGradeID:  r.StudentGradeID,
		StudentSubjects: marshalSubjects(r.StudentSubjects),
		StudentStatus:   constants.StatusLive,
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	return m
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentMobile != nil {
		m.StudentMobile = strings.TrimSpace(*r.StudentMobile)
	}
	if r.StudentAddress != nil {
		m.StudentAddress = strings.TrimSpace(*r.StudentAddress)
	}
	if r.StudentCity != nil {
		m.StudentCity = strings.TrimSpace(*r.StudentCity)
	}
	if r.StudentState != nil {
		m.StudentState = strings.TrimSpace(*r.StudentState)
	}
	if r.StudentCountry != nil {
		m.StudentCountry = strings.TrimSpace(*r.StudentCountry)
	}
	if r.StudentZipCode != nil {
		m.StudentZipCode = trimPtr(r.StudentZipCode)
	}
	if r.StudentParentID != nil {
		m.StudentParentID = *r.StudentParentID
	}
	if r.StudentGradeID != nil {
		m.StudentGradeID = *r.StudentGradeID
	}
	if r.StudentSubjects != nil {
		m.StudentSubjects = marshalSubjects(*r.StudentSubjects)
	}
}

// marshalSubjects: entri tanpa status diisi default Live.
func marshalSubjects(items []StudentSubjectItem) datatypes.JSON {
	entries := make([]model.SubjectEntry, 0, len(items))
	for _, it := range items {
		status := it.Status
		if status == "" {
			status = constants.StatusLive
		}
		entries = append(entries, model.SubjectEntry{
			SubjectID: strings.TrimSpace(it.SubjectID),
			TeacherID: strings.TrimSpace(it.TeacherID),
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
