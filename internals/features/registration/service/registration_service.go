// file: internals/features/registration/service/registration_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	dto "sekolahku_backend/internals/features/registration/dto"
	helper "sekolahku_backend/internals/helpers"
)

/* ==========================
   Role → rule table
   Satu tabel untuk validasi + shaping; tidak ada ladder if/else
   yang duplikat antara validator dan orchestrator.
========================== */

type roleRule struct {
	// validate: cek tambahan di luar tag struct (kehadiran blok extension).
	validate func(req *dto.RegisterRequest) helper.FieldErrors
	// create: shape model role-specific lalu insert DALAM transaksi tx.
	create func(tx *gorm.DB, req *dto.RegisterRequest, passwordHash string) (any, error)
}

var roleRules = map[string]roleRule{
	constants.RoleTeacher: {
		validate: func(req *dto.RegisterRequest) helper.FieldErrors {
			fe := helper.FieldErrors{}
			if req.Teacher == nil {
				fe.Add("teacher", "wajib diisi untuk role teacher")
			}
			return fe
		},
		create: func(tx *gorm.DB, req *dto.RegisterRequest, hash string) (any, error) {
			m := req.ToTeacherModel(hash)
			if err := tx.Create(&m).Error; err != nil {
				return nil, err
			}
			return m, nil
		},
	},

	constants.RoleStudent: {
		validate: func(req *dto.RegisterRequest) helper.FieldErrors {
			fe := helper.FieldErrors{}
			if req.Student == nil {
				fe.Add("student", "wajib diisi untuk role student")
			}
			return fe
		},
		create: func(tx *gorm.DB, req *dto.RegisterRequest, hash string) (any, error) {
			// Referensi parent & grade dicek dalam transaksi yang sama
			// dengan insert: gagal cek = tidak ada tulisan parsial.
			var parentCount int64
			if err := tx.Model(&parentModel.ParentModel{}).
				Where("parent_id = ?", req.Student.ParentID).
				Count(&parentCount).Error; err != nil {
				return nil, err
			}
			if parentCount == 0 {
				return nil, helper.NewValidationError(helper.FieldErrors{
					"student.parent_id": {"parent tidak ditemukan"},
				})
			}

			var gradeCount int64
			if err := tx.Model(&gradeModel.GradeModel{}).
				Where("grade_id = ?", req.Student.GradeID).
				Count(&gradeCount).Error; err != nil {
				return nil, err
			}
			if gradeCount == 0 {
				return nil, helper.NewValidationError(helper.FieldErrors{
					"student.grade_id": {"grade tidak ditemukan"},
				})
			}

			m := req.ToStudentModel(hash)
			if err := tx.Create(&m).Error; err != nil {
				return nil, err
			}
			return m, nil
		},
	},

	constants.RoleParent: {
		validate: func(req *dto.RegisterRequest) helper.FieldErrors {
			// Parent tidak punya field tambahan.
			return helper.FieldErrors{}
		},
		create: func(tx *gorm.DB, req *dto.RegisterRequest, hash string) (any, error) {
			m := req.ToParentModel(hash)
			if err := tx.Create(&m).Error; err != nil {
				return nil, err
			}
			return m, nil
		},
	},
}

/* ==========================
   Orchestrator
========================== */

// Register memvalidasi payload sesuai role, lalu membuat TEPAT SATU record
// baru secara atomik. Tidak ada tulisan sebelum validasi lolos.
//
// Error yang mungkin keluar:
//   - *helper.ValidationError  → 400, semua field pelanggar dilaporkan
//   - *fiber.Error 409         → email sudah terdaftar (unique index)
//   - error lain               → 500 (kegagalan store)
func Register(db *gorm.DB, req *dto.RegisterRequest) (any, error) {
	fe := helper.ValidateStruct(req)

	rule, ok := roleRules[req.Role]
	if !ok {
		// tag oneof sudah menambahkan pesan untuk role; pastikan tetap ada
		// kalau payload mengirim role kosong/asing.
		if _, has := fe["role"]; !has {
			fe.Add("role", "harus salah satu dari: student teacher parent")
		}
		return nil, helper.NewValidationError(fe)
	}

	fe.Merge(rule.validate(req))
	if !fe.Empty() {
		return nil, helper.NewValidationError(fe)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hashing password")
	}

	var created any
	err = db.Transaction(func(tx *gorm.DB) error {
		c, err := rule.create(tx, req, string(hash))
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		var ve *helper.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		if helper.IsDuplicateKey(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return nil, err
	}

	return created, nil
}
