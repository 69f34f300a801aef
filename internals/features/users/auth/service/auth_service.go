package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/features/users/auth/model"
)

var ErrInvalidCredentials = errors.New("username atau password salah")

// StaticAdminID — identitas admin bootstrap dari ENV, tidak ada barisnya di DB.
const StaticAdminID = 0

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

type AdminStore interface {
	ByUsername(username string) (*model.AdminModel, error)
	TouchLastLogin(adminID int, at time.Time) error
}

type gormAdminStore struct{ db *gorm.DB }

func NewGormAdminStore(db *gorm.DB) AdminStore { return &gormAdminStore{db: db} }

func (s *gormAdminStore) ByUsername(username string) (*model.AdminModel, error) {
	var admin model.AdminModel
	if err := s.db.Where("admin_username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *gormAdminStore) TouchLastLogin(adminID int, at time.Time) error {
	return s.db.Model(&model.AdminModel{}).
		Where("admin_id = ?", adminID).
		Update("admin_last_login", at).Error
}

type AuthService struct {
	Store AdminStore

	Now func() time.Time
}

func NewAuthService(store AdminStore) *AuthService {
	return &AuthService{Store: store, Now: time.Now}
}

type AuthenticatedAdmin struct {
	AdminID  int
	Username string
	FullName string
}

// Login memverifikasi kredensial: admin statis dari ENV dicek dulu
// (constant-time), baru admin di DB dengan bcrypt. Username tak dikenal dan
// password salah mengembalikan error yang sama.
func (s *AuthService) Login(username, password string) (*AuthenticatedAdmin, error) {
	if configs.AdminPassword != "" &&
		subtle.ConstantTimeCompare([]byte(username), []byte(configs.AdminUsername)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(configs.AdminPassword)) == 1 {
		return &AuthenticatedAdmin{
			AdminID:  StaticAdminID,
			Username: configs.AdminUsername,
			FullName: "Administrator",
		}, nil
	}

	admin, err := s.Store.ByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(admin.AdminPasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	// last_login hanya penanda, gagal update tidak membatalkan login
	_ = s.Store.TouchLastLogin(admin.AdminID, s.Now())

	return &AuthenticatedAdmin{
		AdminID:  admin.AdminID,
		Username: admin.AdminUsername,
		FullName: admin.AdminFullName,
	}, nil
}
