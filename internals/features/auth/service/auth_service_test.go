// file: internals/features/auth/service/auth_service_test.go
package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
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
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestFindAccountByEmail(t *testing.T) {
	db := testDB(t)

	p := parentModel.ParentModel{
		ParentName:     "Ibu Sari",
		ParentEmail:    "sari@example.com",
		ParentMobile:   "0812",
		ParentPassword: hash(t, "rahasia123"),
		ParentAddress:  "Jl. Melati 1",
		ParentCity:     "Bandung",
		ParentState:    "Jawa Barat",
		ParentCountry:  "Indonesia",
		ParentStatus:   constants.StatusLive,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatal(err)
	}

	// lookup tidak peka kapital & spasi
	acc, err := FindAccountByEmail(db, "  SARI@Example.com ")
	if err != nil {
		t.Fatalf("FindAccountByEmail: %v", err)
	}
	if acc.Role != constants.RoleParent {
		t.Fatalf("role = %q, want parent", acc.Role)
	}
	if acc.ID != p.ParentID.String() {
		t.Fatalf("id = %s", acc.ID)
	}

	if err := CheckPassword(acc.PasswordHash, "rahasia123"); err != nil {
		t.Fatalf("password benar ditolak: %v", err)
	}
	if err := CheckPassword(acc.PasswordHash, "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("password salah harus ErrInvalidCredentials, got %v", err)
	}

	if _, err := FindAccountByEmail(db, "tidakada@example.com"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("email asing harus ErrInvalidCredentials, got %v", err)
	}
}

func TestIssueAccessToken(t *testing.T) {
	now := time.Now().UTC()
	acc := &Account{ID: "abc", Name: "Pak Andi", Role: constants.RoleTeacher}

	token, err := IssueAccessToken("secret-123", acc, now)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret-123"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}

	claims, _ := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "abc" {
		t.Fatalf("sub = %v", claims["sub"])
	}
	if claims["role"] != constants.RoleTeacher {
		t.Fatalf("role = %v", claims["role"])
	}
	exp := int64(claims["exp"].(float64))
	if exp != now.Add(accessTTL).Unix() {
		t.Fatalf("exp = %d", exp)
	}
}
