// file: internals/features/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	teacherModel "sekolahku_backend/internals/features/people/teacher/model"
)

const accessTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("email atau password salah")

// Account adalah hasil lookup lintas tabel untuk login.
type Account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

// FindAccountByEmail mencari akun berdasarkan email, urut: teacher, parent, student.
// Email di semua tabel disimpan lowercase, jadi cukup dinormalkan sekali di sini.
func FindAccountByEmail(db *gorm.DB, email string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var t teacherModel.TeacherModel
	if err := db.Where("teacher_email = ?", email).First(&t).Error; err == nil {
		return &Account{
			ID:           t.TeacherID.String(),
			Name:         t.TeacherName,
			Email:        t.TeacherEmail,
			Role:         constants.RoleTeacher,
			PasswordHash: t.TeacherPassword,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var p parentModel.ParentModel
	if err := db.Where("parent_email = ?", email).First(&p).Error; err == nil {
		return &Account{
			ID:           p.ParentID.String(),
			Name:         p.ParentName,
			Email:        p.ParentEmail,
			Role:         constants.RoleParent,
			PasswordHash: p.ParentPassword,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var s studentModel.StudentModel
	if err := db.Where("student_email = ?", email).First(&s).Error; err == nil {
		return &Account{
			ID:           s.StudentID.String(),
			Name:         s.StudentName,
			Email:        s.StudentEmail,
			Role:         constants.RoleStudent,
			PasswordHash: s.StudentPassword,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}

// CheckPassword membandingkan hash bcrypt dengan password plaintext.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken menandatangani JWT HS256 dengan klaim sub + role.
func IssueAccessToken(secret string, acc *Account, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  acc.ID,
		"role": acc.Role,
		"name": acc.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// AccessTokenExpiry dipakai controller untuk masa berlaku cookie.
func AccessTokenExpiry(now time.Time) time.Time { return now.Add(accessTTL) }
