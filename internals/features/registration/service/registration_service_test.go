// file: internals/features/registration/service/registration_service_test.go
package service

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
	dto "sekolahku_backend/internals/features/registration/dto"
	helper "sekolahku_backend/internals/helpers"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&teacherModel.TeacherModel{},
		&parentModel.ParentModel{},
		&studentModel.StudentModel{},
		&gradeModel.GradeModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedParent(t *testing.T, db *gorm.DB) parentModel.ParentModel {
	t.Helper()
	p := parentModel.ParentModel{
		ParentName:     "Ibu Sari",
		ParentEmail:    "sari@example.com",
		ParentMobile:   "081234567890",
		ParentPassword: "x",
		ParentAddress:  "Jl. Melati 1",
		ParentCity:     "Bandung",
		ParentState:    "Jawa Barat",
		ParentCountry:  "Indonesia",
		ParentStatus:   constants.StatusLive,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	return p
}

func seedGrade(t *testing.T, db *gorm.DB) gradeModel.GradeModel {
	t.Helper()
	g := gradeModel.GradeModel{
		GradeName:   "Kelas 7A",
		GradeStatus: constants.StatusLive,
	}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed grade: %v", err)
	}
	return g
}

func baseRequest(role, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Role:     role,
		Name:     "Budi Santoso",
		Email:    email,
		Mobile:   "081298765432",
		Password: "rahasia123",
		ResidentialAddress: dto.AddressRequest{
			Address: "Jl. Kenanga 5",
			City:    "Jakarta",
			State:   "DKI Jakarta",
			Country: "Indonesia",
		},
	}
}

func TestRegisterTeacher(t *testing.T) {
	db := testDB(t)

	req := baseRequest(constants.RoleTeacher, "Guru@Example.com")
	req.Teacher = &dto.TeacherExtensionRequest{
		Qualification: "S1 Pendidikan Matematika",
		GradeSubjects: []dto.GradeSubjectRequest{
			{GradeSubjectID: "GS-1"},
			{GradeSubjectID: "GS-2"},
			{GradeSubjectID: "GS-3"},
		},
	}

	created, err := Register(db, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	m, ok := created.(teacherModel.TeacherModel)
	if !ok {
		t.Fatalf("created bukan TeacherModel: %T", created)
	}
	if m.TeacherStatus != constants.StatusLive {
		t.Fatalf("status = %q, want Live", m.TeacherStatus)
	}
	if m.TeacherEmail != "guru@example.com" {
		t.Fatalf("email tidak dinormalkan: %q", m.TeacherEmail)
	}
	if m.TeacherQualification != "S1 Pendidikan Matematika" {
		t.Fatalf("qualification = %q", m.TeacherQualification)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.TeacherPassword), []byte("rahasia123")); err != nil {
		t.Fatal("password tidak tersimpan sebagai hash bcrypt yang cocok")
	}

	// urutan grade_subjects harus dipertahankan
	var entries []teacherModel.GradeSubjectEntry
	if err := json.Unmarshal(m.TeacherGradeSubjects, &entries); err != nil {
		t.Fatalf("unmarshal grade_subjects: %v", err)
	}
	want := []string{"GS-1", "GS-2", "GS-3"}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].GradeSubjectID != w {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].GradeSubjectID, w)
		}
	}
}

func TestRegisterTeacherEmptyGradeSubjects(t *testing.T) {
	db := testDB(t)

	req := baseRequest(constants.RoleTeacher, "guru2@example.com")
	req.Teacher = &dto.TeacherExtensionRequest{Qualification: "S1 Fisika"}

	if _, err := Register(db, req); err != nil {
		t.Fatalf("daftar grade_subjects kosong harus diterima, got: %v", err)
	}
}

func TestRegisterStudent(t *testing.T) {
	db := testDB(t)
	p := seedParent(t, db)
	g := seedGrade(t, db)

	req := baseRequest(constants.RoleStudent, "siswa@example.com")
	req.Student = &dto.StudentExtensionRequest{
		ParentID: p.ParentID,
		GradeID:  g.GradeID,
		Subjects: []dto.StudentSubjectRequest{
			{SubjectID: "SUB-1", TeacherID: "T-1"}, // status kosong → default Live
			{SubjectID: "SUB-2", TeacherID: "T-2", Status: constants.StatusArchived},
		},
	}

	created, err := Register(db, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	m, ok := created.(studentModel.StudentModel)
	if !ok {
		t.Fatalf("created bukan StudentModel: %T", created)
	}

	var entries []studentModel.SubjectEntry
	if err := json.Unmarshal(m.StudentSubjects, &entries); err != nil {
		t.Fatalf("unmarshal subjects: %v", err)
	}
	if entries[0].Status != constants.StatusLive {
		t.Fatalf("status kosong harus default Live, got %q", entries[0].Status)
	}
	if entries[1].Status != constants.StatusArchived {
		t.Fatalf("status eksplisit berubah: %q", entries[1].Status)
	}
}

func TestRegisterStudentUnknownParentAndGrade(t *testing.T) {
	db := testDB(t)
	g := seedGrade(t, db)

	req := baseRequest(constants.RoleStudent, "siswa2@example.com")
	req.Student = &dto.StudentExtensionRequest{
		ParentID: uuid.New(), // tidak ada
		GradeID:  g.GradeID,
	}

	_, err := Register(db, req)
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if _, has := ve.Fields["student.parent_id"]; !has {
		t.Fatalf("field student.parent_id tidak dilaporkan: %v", ve.Fields)
	}

	// gagal cek referensi = tidak ada record student tertulis
	var n int64
	if err := db.Model(&studentModel.StudentModel{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("ada %d student tertulis padahal validasi gagal", n)
	}
}

func TestRegisterMissingRequiredFields(t *testing.T) {
	db := testDB(t)

	for _, role := range constants.RegisterRoles {
		req := baseRequest(role, "")
		req.Teacher = &dto.TeacherExtensionRequest{Qualification: "x"}
		req.Student = &dto.StudentExtensionRequest{ParentID: uuid.New(), GradeID: uuid.New()}

		_, err := Register(db, req)
		ve, ok := helper.AsValidationError(err)
		if !ok {
			t.Fatalf("role %s: want ValidationError, got %v", role, err)
		}
		if _, has := ve.Fields["email"]; !has {
			t.Fatalf("role %s: email kosong tidak dilaporkan: %v", role, ve.Fields)
		}
	}
}

func TestRegisterMissingExtensionBlock(t *testing.T) {
	db := testDB(t)

	req := baseRequest(constants.RoleTeacher, "guru3@example.com")
	// req.Teacher nil

	_, err := Register(db, req)
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if _, has := ve.Fields["teacher"]; !has {
		t.Fatalf("blok teacher hilang tidak dilaporkan: %v", ve.Fields)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	db := testDB(t)

	req := baseRequest("admin", "admin@example.com")
	_, err := Register(db, req)
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if _, has := ve.Fields["role"]; !has {
		t.Fatalf("role asing tidak dilaporkan: %v", ve.Fields)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)

	first := baseRequest(constants.RoleParent, "sama@example.com")
	if _, err := Register(db, first); err != nil {
		t.Fatalf("register pertama: %v", err)
	}

	second := baseRequest(constants.RoleParent, "SAMA@example.com") // normalisasi lowercase
	_, err := Register(db, second)
	if err == nil {
		t.Fatal("email duplikat harus ditolak")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("want *fiber.Error 409, got %v", err)
	}

	var n int64
	if err := db.Model(&parentModel.ParentModel{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("parents tersimpan = %d, want 1", n)
	}
}
