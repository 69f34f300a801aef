package service

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/features/users/auth/model"
)

type mockAdminStore struct {
	admins    map[string]*model.AdminModel
	lastLogin map[int]time.Time
}

func (m *mockAdminStore) ByUsername(username string) (*model.AdminModel, error) {
	if a, ok := m.admins[username]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminStore) TouchLastLogin(adminID int, at time.Time) error {
	if m.lastLogin == nil {
		m.lastLogin = map[int]time.Time{}
	}
	m.lastLogin[adminID] = at
	return nil
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "rahasia123") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "salah") {
		t.Error("wrong password should not verify")
	}
}

func TestLoginStaticAdmin(t *testing.T) {
	configs.AdminUsername = "admin"
	configs.AdminPassword = "env-password"
	defer func() { configs.AdminPassword = "" }()

	svc := NewAuthService(&mockAdminStore{})

	admin, err := svc.Login("admin", "env-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if admin.AdminID != StaticAdminID {
		t.Errorf("static admin id = %d", admin.AdminID)
	}
	if admin.Username != "admin" {
		t.Errorf("username = %q", admin.Username)
	}
}

func TestLoginStaticAdminDisabledWithoutPassword(t *testing.T) {
	configs.AdminUsername = "admin"
	configs.AdminPassword = ""

	svc := NewAuthService(&mockAdminStore{})

	if _, err := svc.Login("admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty ADMIN_PASSWORD must disable static login, got %v", err)
	}
}

func TestLoginDatabaseAdmin(t *testing.T) {
	configs.AdminPassword = ""

	hash, err := HashPassword("db-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &mockAdminStore{admins: map[string]*model.AdminModel{
		"guru": {AdminID: 3, AdminUsername: "guru", AdminPasswordHash: hash, AdminFullName: "Pak Guru"},
	}}

	svc := NewAuthService(store)
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	admin, err := svc.Login("guru", "db-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if admin.AdminID != 3 || admin.FullName != "Pak Guru" {
		t.Errorf("admin = %+v", admin)
	}
	if got := store.lastLogin[3]; !got.Equal(now) {
		t.Errorf("last login not touched: %v", got)
	}

	if _, err := svc.Login("guru", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := svc.Login("tidak-ada", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown username: got %v", err)
	}
}
