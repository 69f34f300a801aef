package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/features/users/auth/dto"
	"presensiku_backend/internals/features/users/auth/model"
	"presensiku_backend/internals/features/users/auth/service"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Service  *service.AuthService
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Service:  service.NewAuthService(service.NewGormAdminStore(db)),
		validate: helper.NewValidator(),
	}
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	admin, err := ctrl.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"admin_id": admin.AdminID,
		"username": admin.Username,
		"jti":      uuid.NewString(),
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	resp := dto.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}
	resp.Admin.AdminID = admin.AdminID
	resp.Admin.Username = admin.Username
	resp.Admin.FullName = admin.FullName

	return helper.JsonOK(c, "Login successful", resp)
}

/* ===================== PROFILE ===================== */
// GET /api/auth/profile
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	if adminID == service.StaticAdminID {
		return helper.JsonOK(c, "OK", fiber.Map{
			"admin_id":  service.StaticAdminID,
			"username":  configs.AdminUsername,
			"full_name": "Administrator",
		})
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "OK", admin)
}
