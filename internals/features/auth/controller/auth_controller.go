// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/auth/dto"
	service "sekolahku_backend/internals/features/auth/service"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg configs.Config
}

func NewAuthController(db *gorm.DB, cfg configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /api/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	acc, err := ctl.resolveAccount(c, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	now := time.Now().UTC()
	token, err := service.IssueAccessToken(ctl.Cfg.JWTSecret, acc, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  service.AccessTokenExpiry(now),
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user": dto.LoginResponseUser{
			ID:    acc.ID,
			Name:  acc.Name,
			Email: acc.Email,
			Role:  acc.Role,
		},
		"access_token": token,
	})
}

// POST /api/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// resolveAccount: admin dari env lebih dulu, lalu lookup lintas tabel.
func (ctl *AuthController) resolveAccount(c *fiber.Ctx, req dto.LoginRequest) (*service.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if ctl.Cfg.AdminEmail != "" && email == strings.ToLower(ctl.Cfg.AdminEmail) {
		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(ctl.Cfg.AdminPassword)) != 1 {
			return nil, service.ErrInvalidCredentials
		}
		return &service.Account{
			ID:    "admin",
			Name:  "Administrator",
			Email: email,
			Role:  constants.RoleAdmin,
		}, nil
	}

	acc, err := service.FindAccountByEmail(ctl.DB.WithContext(c.Context()), email)
	if err != nil {
		return nil, err
	}
	if err := service.CheckPassword(acc.PasswordHash, req.Password); err != nil {
		return nil, err
	}
	return acc, nil
}
