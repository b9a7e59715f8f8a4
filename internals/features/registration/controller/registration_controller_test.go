// file: internals/features/registration/controller/registration_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
)

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()
	ctl := NewRegistrationController(db)
	app.Post("/register", ctl.Register)
	app.Get("/register/form", ctl.FormModel)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var parsed map[string]any
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func TestRegisterTeacherEndpoint(t *testing.T) {
	app, db := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/register", fiber.Map{
		"role":     "teacher",
		"name":     "Pak Budi",
		"email":    "budi@example.com",
		"mobile":   "081234567890",
		"password": "rahasia123",
		"residential_address": fiber.Map{
			"address": "Jl. Melati 1",
			"city":    "Bandung",
			"state":   "Jawa Barat",
			"country": "Indonesia",
		},
		"teacher": fiber.Map{
			"qualification": "S1 Kimia",
			"grade_subjects": []fiber.Map{
				{"grade_subject_id": "GS-1"},
			},
		},
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	var n int64
	if err := db.Model(&teacherModel.TeacherModel{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("teachers = %d, want 1", n)
	}
}

func TestRegisterValidationEnvelope(t *testing.T) {
	app, _ := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/register", fiber.Map{
		"role": "teacher",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if code, _ := body["error_code"].(string); code != "VALIDATION_ERROR" {
		t.Fatalf("error_code = %q, body = %v", code, body)
	}

	// semua field pelanggar dilaporkan sekaligus, termasuk nested address
	errs, _ := body["errors"].(map[string]any)
	for _, field := range []string{"name", "email", "password", "residential_address.address", "teacher"} {
		if _, has := errs[field]; !has {
			t.Fatalf("field %q tidak dilaporkan: %v", field, errs)
		}
	}
}

func TestFormModelSeedsPerRole(t *testing.T) {
	app, _ := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/register/form?role=teacher", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ := body["data"].(map[string]any)
	gs, _ := data["grade_subjects"].([]any)
	if len(gs) != 1 {
		t.Fatalf("teacher form seeded %d grade_subjects, want 1", len(gs))
	}
	if _, leak := data["subjects"]; leak {
		t.Fatal("field student bocor ke form teacher")
	}

	// default role = student
	resp, body = doJSON(t, app, fiber.MethodGet, "/register/form", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ = body["data"].(map[string]any)
	if got, _ := data["role"].(string); got != constants.RoleStudent {
		t.Fatalf("role default = %q, want student", got)
	}
	subs, _ := data["subjects"].([]any)
	if len(subs) != 1 {
		t.Fatalf("student form seeded %d subjects, want 1", len(subs))
	}

	// role asing ditolak
	resp, _ = doJSON(t, app, fiber.MethodGet, "/register/form?role=admin", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("role admin = %d, want 400", resp.StatusCode)
	}
}
