// file: internals/features/registration/form/form.go
//
// Form model pendaftaran multi-role: state murni di memori, tanpa
// validasi dan tanpa persistensi. Dua daftar repeating sub-form
// (grade_subjects utk teacher, subjects utk student) tumbuh/menyusut bebas;
// seeding satu entri kosong HANYA terjadi saat transisi role menemukan
// daftarnya masih kosong.
package form

import (
	"fmt"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/registration/dto"
)

type Form struct {
	role string

	Name     string
	Email    string
	Mobile   string
	Password string
	Address  dto.AddressRequest

	Qualification string
	GradeSubjects []dto.GradeSubjectRequest

	ParentID string
	GradeID  string
	Subjects []dto.StudentSubjectRequest
}

func New() *Form {
	return &Form{}
}

func (f *Form) Role() string { return f.role }

// SetRole: transisi penuh antar role (bukan aditif). Masuk ke teacher/student
// dengan daftar kosong menyemai tepat satu entri kosong; daftar yang sudah
// berisi tidak disentuh.
func (f *Form) SetRole(role string) error {
	if !constants.IsRegisterRole(role) {
		return fmt.Errorf("role tidak dikenal: %q", role)
	}
	f.role = role

	switch role {
	case constants.RoleTeacher:
		if len(f.GradeSubjects) == 0 {
			f.GradeSubjects = []dto.GradeSubjectRequest{{GradeSubjectID: ""}}
		}
	case constants.RoleStudent:
		if len(f.Subjects) == 0 {
			f.Subjects = []dto.StudentSubjectRequest{{
				SubjectID: "",
				TeacherID: "",
				Status:    constants.StatusLive,
			}}
		}
	}
	return nil
}

func (f *Form) AddGradeSubject() {
	f.GradeSubjects = append(f.GradeSubjects, dto.GradeSubjectRequest{GradeSubjectID: ""})
}

// RemoveGradeSubject menghapus entri pada index i. Entri terakhir boleh
// dihapus; daftar dibiarkan kosong (tidak auto-seed) sampai role di-toggle.
func (f *Form) RemoveGradeSubject(i int) {
	if i < 0 || i >= len(f.GradeSubjects) {
		return
	}
	f.GradeSubjects = append(f.GradeSubjects[:i], f.GradeSubjects[i+1:]...)
}

func (f *Form) AddSubject() {
	f.Subjects = append(f.Subjects, dto.StudentSubjectRequest{
		SubjectID: "",
		TeacherID: "",
		Status:    constants.StatusLive,
	})
}

func (f *Form) RemoveSubject(i int) {
	if i < 0 || i >= len(f.Subjects) {
		return
	}
	f.Subjects = append(f.Subjects[:i], f.Subjects[i+1:]...)
}

// Payload menserialisasi state form menjadi request register. Field milik
// role non-aktif TIDAK ikut (blok extension-nya nil).
func (f *Form) Payload() (*dto.RegisterRequest, error) {
	if f.role == "" {
		return nil, fmt.Errorf("role belum dipilih")
	}

	req := &dto.RegisterRequest{
		Role:               f.role,
		Name:               f.Name,
		Email:              f.Email,
		Mobile:             f.Mobile,
		Password:           f.Password,
		ResidentialAddress: f.Address,
	}

	switch f.role {
	case constants.RoleTeacher:
		req.Teacher = &dto.TeacherExtensionRequest{
			Qualification: f.Qualification,
			GradeSubjects: append([]dto.GradeSubjectRequest(nil), f.GradeSubjects...),
		}
	case constants.RoleStudent:
		ext := &dto.StudentExtensionRequest{
			Subjects: append([]dto.StudentSubjectRequest(nil), f.Subjects...),
		}
		// parent_id / grade_id string dari form; biarkan kosong = uuid.Nil,
		// validator yang menolak, bukan form.
		if f.ParentID != "" {
			if err := ext.ParentID.UnmarshalText([]byte(f.ParentID)); err != nil {
				return nil, fmt.Errorf("parent_id tidak valid: %w", err)
			}
		}
		if f.GradeID != "" {
			if err := ext.GradeID.UnmarshalText([]byte(f.GradeID)); err != nil {
				return nil, fmt.Errorf("grade_id tidak valid: %w", err)
			}
		}
		req.Student = ext
	}

	return req, nil
}

// Seeded mengembalikan form model awal untuk sebuah role, dipakai endpoint
// GET /api/register/form agar klien bisa merender entri kosong awal.
func Seeded(role string) (*Form, error) {
	f := New()
	if err := f.SetRole(role); err != nil {
		return nil, err
	}
	return f, nil
}
