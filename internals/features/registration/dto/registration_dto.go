// file: internals/features/registration/dto/registration_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
)

/* =========================================================
   1) REQUEST DTO — tagged union atas role
   Field milik role non-aktif TIDAK dikirim (blok extension nil).
========================================================= */

type AddressRequest struct {
	Address string  `json:"address" validate:"required,max=255"`
	City    string  `json:"city" validate:"required,max=100"`
	State   string  `json:"state" validate:"required,max=100"`
	Country string  `json:"country" validate:"required,max=100"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`
}

type GradeSubjectRequest struct {
	GradeSubjectID string `json:"grade_subject_id" validate:"required"`
}

type StudentSubjectRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
	// Default "Live" bila kosong; selain token person → ditolak validator.
	Status string `json:"status" validate:"omitempty,oneof=Live Archived"`
}

type TeacherExtensionRequest struct {
	Qualification string                `json:"qualification" validate:"required,max=120"`
	// Boleh kosong (zero entri); tiap entri wajib punya grade_subject_id.
	GradeSubjects []GradeSubjectRequest `json:"grade_subjects" validate:"dive"`
}

type StudentExtensionRequest struct {
	ParentID uuid.UUID               `json:"parent_id" validate:"required"`
	GradeID  uuid.UUID               `json:"grade_id" validate:"required"`
	Subjects []StudentSubjectRequest `json:"subjects" validate:"dive"`
}

type RegisterRequest struct {
	Role string `json:"role" validate:"required,oneof=student teacher parent"`

	Name               string         `json:"name" validate:"required,min=2,max=100"`
	Email              string         `json:"email" validate:"required,email"`
	Mobile             string         `json:"mobile" validate:"required,min=6,max=20"`
	Password           string         `json:"password" validate:"required,min=8"`
	ResidentialAddress AddressRequest `json:"residential_address"`

	// Blok role-specific; tepat satu yang dibaca sesuai tag Role.
	Teacher *TeacherExtensionRequest `json:"teacher,omitempty"`
	Student *StudentExtensionRequest `json:"student,omitempty"`
}

/* =========================================================
   2) MAPPERS — request → model per role
========================================================= */

func (r RegisterRequest) ToTeacherModel(passwordHash string) teacherModel.TeacherModel {
	entries := make([]teacherModel.GradeSubjectEntry, 0, len(r.Teacher.GradeSubjects))
	for _, gs := range r.Teacher.GradeSubjects {
		entries = append(entries, teacherModel.GradeSubjectEntry{
			GradeSubjectID: strings.TrimSpace(gs.GradeSubjectID),
		})
	}
	raw, _ := json.Marshal(entries)

	return teacherModel.TeacherModel{
		TeacherName:          strings.TrimSpace(r.Name),
		TeacherEmail:         strings.ToLower(strings.TrimSpace(r.Email)),
		TeacherMobile:        strings.TrimSpace(r.Mobile),
		TeacherPassword:      passwordHash,
		TeacherAddress:       strings.TrimSpace(r.ResidentialAddress.Address),
		TeacherCity:          strings.TrimSpace(r.ResidentialAddress.City),
		TeacherState:         strings.TrimSpace(r.ResidentialAddress.State),
		TeacherCountry:       strings.TrimSpace(r.ResidentialAddress.Country),
		TeacherZipCode:       trimPtr(r.ResidentialAddress.ZipCode),
		TeacherQualification: strings.TrimSpace(r.Teacher.Qualification),
		TeacherGradeSubjects: datatypes.JSON(raw),
		TeacherStatus:        constants.StatusLive,
	}
}

func (r RegisterRequest) ToStudentModel(passwordHash string) studentModel.StudentModel {
	entries := make([]studentModel.SubjectEntry, 0, len(r.Student.Subjects))
	for _, s := range r.Student.Subjects {
		status := s.Status
		if status == "" {
			status = constants.StatusLive
		}
		entries = append(entries, studentModel.SubjectEntry{
			SubjectID: strings.TrimSpace(s.SubjectID),
			TeacherID: strings.TrimSpace(s.TeacherID),
			Status:    status,
		})
	}
	raw, _ := json.Marshal(entries)

	return studentModel.StudentModel{
		StudentName:     strings.TrimSpace(r.Name),
		StudentEmail:    strings.ToLower(strings.TrimSpace(r.Email)),
		StudentMobile:   strings.TrimSpace(r.Mobile),
		StudentPassword: passwordHash,
		StudentAddress:  strings.TrimSpace(r.ResidentialAddress.Address),
		StudentCity:     strings.TrimSpace(r.ResidentialAddress.City),
		StudentState:    strings.TrimSpace(r.ResidentialAddress.State),
		StudentCountry:  strings.TrimSpace(r.ResidentialAddress.Country),
		StudentZipCode:  trimPtr(r.ResidentialAddress.ZipCode),
		StudentParentID: r.Student.ParentID,
		StudentGradeID:  r.Student.GradeID,
		StudentSubjects: datatypes.JSON(raw),
		StudentStatus:   constants.StatusLive,
	}
}

func (r RegisterRequest) ToParentModel(passwordHash string) parentModel.ParentModel {
	return parentModel.ParentModel{
		ParentName:     strings.TrimSpace(r.Name),
		ParentEmail:    strings.ToLower(strings.TrimSpace(r.Email)),
		ParentMobile:   strings.TrimSpace(r.Mobile),
		ParentPassword: passwordHash,
		ParentAddress:  strings.TrimSpace(r.ResidentialAddress.Address),
		ParentCity:     strings.TrimSpace(r.ResidentialAddress.City),
		ParentState:    strings.TrimSpace(r.ResidentialAddress.State),
		ParentCountry:  strings.TrimSpace(r.ResidentialAddress.Country),
		ParentZipCode:  trimPtr(r.ResidentialAddress.ZipCode),
		ParentStatus:   constants.StatusLive,
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
