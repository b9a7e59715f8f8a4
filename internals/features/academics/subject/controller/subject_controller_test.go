// file: internals/features/academics/subject/controller/subject_controller_test.go
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
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/academics/subject/model"
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
	if err := db.AutoMigrate(&model.SubjectModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	app := fiber.New()
	ctl := NewSubjectController(db)
	app.Post("/subjects", ctl.Create)
	app.Get("/subjects", ctl.List)
	app.Get("/subjects/:id", ctl.GetByID)
	app.Patch("/subjects/:id", ctl.Update)
	app.Patch("/subjects/:id/archive", ctl.Archive)
	app.Patch("/subjects/:id/restore", ctl.Restore)
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

func seedSubject(t *testing.T, db *gorm.DB, name, status string) model.SubjectModel {
	t.Helper()
	m := model.SubjectModel{SubjectName: name, SubjectStatus: status}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return m
}

func TestCreateSubject(t *testing.T) {
	app, db := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/subjects", fiber.Map{
		"subject_name": "  Matematika  ",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	var m model.SubjectModel
	if err := db.First(&m).Error; err != nil {
		t.Fatal(err)
	}
	if m.SubjectName != "Matematika" {
		t.Fatalf("nama tidak di-trim: %q", m.SubjectName)
	}
	if m.SubjectStatus != constants.StatusLive {
		t.Fatalf("status awal = %q, want Live", m.SubjectStatus)
	}
}

func TestCreateSubjectBlankName(t *testing.T) {
	app, _ := testApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/subjects", fiber.Map{
		"subject_name": "   ",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("nama whitespace harus 400, got %d (%v)", resp.StatusCode, body)
	}
}

func TestUpdateSubjectPartial(t *testing.T) {
	app, db := testApp(t)
	desc := "Aljabar dan geometri"
	m := seedSubject(t, db, "Matematika", constants.StatusLive)
	if err := db.Model(&m).Update("subject_description", desc).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := doJSON(t, app, fiber.MethodPatch, "/subjects/"+m.SubjectID.String(), fiber.Map{
		"subject_name": "Matematika Dasar",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	var got model.SubjectModel
	if err := db.First(&got, "subject_id = ?", m.SubjectID).Error; err != nil {
		t.Fatal(err)
	}
	if got.SubjectName != "Matematika Dasar" {
		t.Fatalf("nama = %q", got.SubjectName)
	}
	// field yang tidak dikirim tidak berubah
	if got.SubjectDescription == nil || *got.SubjectDescription != desc {
		t.Fatalf("deskripsi ikut berubah: %v", got.SubjectDescription)
	}
}

func TestArchiveRestoreSubjectTokens(t *testing.T) {
	app, db := testApp(t)
	m := seedSubject(t, db, "Fisika", constants.StatusLive)

	resp, _ := doJSON(t, app, fiber.MethodPatch, "/subjects/"+m.SubjectID.String()+"/archive", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("archive status = %d", resp.StatusCode)
	}

	var got model.SubjectModel
	if err := db.First(&got, "subject_id = ?", m.SubjectID).Error; err != nil {
		t.Fatal(err)
	}
	// keluarga akademik memakai token "Archive", bukan "Archived"
	if got.SubjectStatus != constants.StatusArchive {
		t.Fatalf("status arsip = %q, want %q", got.SubjectStatus, constants.StatusArchive)
	}

	// archive idempotent
	resp, _ = doJSON(t, app, fiber.MethodPatch, "/subjects/"+m.SubjectID.String()+"/archive", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("archive kedua status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodPatch, "/subjects/"+m.SubjectID.String()+"/restore", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("restore status = %d", resp.StatusCode)
	}
	if err := db.First(&got, "subject_id = ?", m.SubjectID).Error; err != nil {
		t.Fatal(err)
	}
	if got.SubjectStatus != constants.StatusLive {
		t.Fatalf("status setelah restore = %q, want Live", got.SubjectStatus)
	}
}

func TestSubjectNotFound(t *testing.T) {
	app, _ := testApp(t)
	id := uuid.NewString()

	for _, path := range []string{
		"/subjects/" + id,
		"/subjects/" + id + "/archive",
		"/subjects/" + id + "/restore",
	} {
		method := fiber.MethodPatch
		if path == "/subjects/"+id {
			method = fiber.MethodGet
		}
		resp, _ := doJSON(t, app, method, path, nil)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("%s %s = %d, want 404", method, path, resp.StatusCode)
		}
	}
}

func TestListSubjectsStatusFilter(t *testing.T) {
	app, db := testApp(t)
	seedSubject(t, db, "Biologi", constants.StatusLive)
	seedSubject(t, db, "Kimia", constants.StatusArchive)

	resp, body := doJSON(t, app, fiber.MethodGet, "/subjects?status=Live", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("filter Live mengembalikan %d baris, want 1", len(data))
	}

	// token keluarga person ditolak di keluarga akademik
	resp, _ = doJSON(t, app, fiber.MethodGet, "/subjects?status=Archived", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("filter Archived harus 400, got %d", resp.StatusCode)
	}
}
