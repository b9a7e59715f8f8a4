// file: internals/features/people/teacher/controller/teacher_controller_test.go
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
	model "sekolahku_backend/internals/features/people/teacher/model"
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
	if err := db.AutoMigrate(&model.TeacherModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	app := fiber.New()
	ctl := NewTeacherController(db)
	app.Post("/teachers", ctl.Create)
	app.Get("/teachers", ctl.List)
	app.Get("/teachers/:id", ctl.GetByID)
	app.Patch("/teachers/:id", ctl.Update)
	app.Patch("/teachers/:id/archive", ctl.Archive)
	app.Patch("/teachers/:id/restore", ctl.Restore)
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

func createPayload(email string) fiber.Map {
	return fiber.Map{
		"teacher_name":          "Pak Andi",
		"teacher_email":         email,
		"teacher_mobile":        "081234567890",
		"teacher_password":      "rahasia123",
		"teacher_address":       "Jl. Merdeka 10",
		"teacher_city":          "Surabaya",
		"teacher_state":         "Jawa Timur",
		"teacher_country":       "Indonesia",
		"teacher_qualification": "S1 Bahasa Inggris",
		"teacher_grade_subjects": []fiber.Map{
			{"grade_subject_id": "GS-1"},
		},
	}
}

func TestCreateTeacher(t *testing.T) {
	app, db := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("andi@example.com"))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	var m model.TeacherModel
	if err := db.First(&m).Error; err != nil {
		t.Fatal(err)
	}
	if m.TeacherStatus != constants.StatusLive {
		t.Fatalf("status awal = %q, want Live", m.TeacherStatus)
	}
	if m.TeacherPassword == "rahasia123" {
		t.Fatal("password tersimpan plaintext")
	}

	// password tidak boleh bocor di response
	data, _ := body["data"].(map[string]any)
	if _, leak := data["teacher_password"]; leak {
		t.Fatal("teacher_password ikut terserialisasi")
	}
}

func TestCreateTeacherDuplicateEmail(t *testing.T) {
	app, _ := testApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("dobel@example.com"))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register pertama = %d", resp.StatusCode)
	}
	resp, body := doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("dobel@example.com"))
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("email duplikat = %d (%v), want 409", resp.StatusCode, body)
	}
}

func TestCreateTeacherValidationCollectsAllFields(t *testing.T) {
	app, _ := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/teachers", fiber.Map{
		"teacher_name": "X", // min=2
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	errs, _ := body["errors"].(map[string]any)
	for _, field := range []string{"teacher_name", "teacher_email", "teacher_password", "teacher_qualification"} {
		if _, has := errs[field]; !has {
			t.Fatalf("field %q tidak dilaporkan: %v", field, errs)
		}
	}
}

func TestUpdateTeacherPartial(t *testing.T) {
	app, db := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("edit@example.com"))

	var m model.TeacherModel
	if err := db.First(&m).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := doJSON(t, app, fiber.MethodPatch, "/teachers/"+m.TeacherID.String(), fiber.Map{
		"teacher_city": "Malang",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	var got model.TeacherModel
	if err := db.First(&got, "teacher_id = ?", m.TeacherID).Error; err != nil {
		t.Fatal(err)
	}
	if got.TeacherCity != "Malang" {
		t.Fatalf("city = %q", got.TeacherCity)
	}
	if got.TeacherName != m.TeacherName || got.TeacherEmail != m.TeacherEmail {
		t.Fatal("field yang tidak dikirim ikut berubah")
	}
}

func TestArchiveRestoreTeacher(t *testing.T) {
	app, db := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("arsip@example.com"))

	var m model.TeacherModel
	if err := db.First(&m).Error; err != nil {
		t.Fatal(err)
	}
	id := m.TeacherID.String()

	resp, _ := doJSON(t, app, fiber.MethodPatch, "/teachers/"+id+"/archive", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("archive = %d", resp.StatusCode)
	}

	var got model.TeacherModel
	if err := db.First(&got, "teacher_id = ?", m.TeacherID).Error; err != nil {
		t.Fatal(err)
	}
	// keluarga person memakai token "Archived"
	if got.TeacherStatus != constants.StatusArchived {
		t.Fatalf("status arsip = %q, want %q", got.TeacherStatus, constants.StatusArchived)
	}

	// record masih ada, tidak pernah delete
	var n int64
	if err := db.Model(&model.TeacherModel{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("teachers = %d, want 1", n)
	}

	resp, _ = doJSON(t, app, fiber.MethodPatch, "/teachers/"+id+"/restore", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("restore = %d", resp.StatusCode)
	}
	if err := db.First(&got, "teacher_id = ?", m.TeacherID).Error; err != nil {
		t.Fatal(err)
	}
	if got.TeacherStatus != constants.StatusLive {
		t.Fatalf("status setelah restore = %q, want Live", got.TeacherStatus)
	}
}

func TestListTeachersFilterAndPaging(t *testing.T) {
	app, _ := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("a@example.com"))
	doJSON(t, app, fiber.MethodPost, "/teachers", createPayload("b@example.com"))

	resp, body := doJSON(t, app, fiber.MethodGet, "/teachers?status=Archived", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ := body["data"].([]any)
	if len(data) != 0 {
		t.Fatalf("filter Archived = %d baris, want 0", len(data))
	}

	resp, body = doJSON(t, app, fiber.MethodGet, "/teachers?per_page=1&page=2", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ = body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("page 2 per_page 1 = %d baris, want 1", len(data))
	}
}
