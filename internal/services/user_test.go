package services

import (
	"strings"
	"testing"

	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/internal/utils"
)

func TestUserCreate(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.Create(&CreateUserRequest{
		Username: "carlos",
		Email:    "carlos@habitat.example",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.Role != models.RoleStaff {
		t.Errorf("expected default role staff, got %q", user.Role)
	}
	if user.PasswordHash == "secret123" || !strings.HasPrefix(user.PasswordHash, "$2") {
		t.Error("password must be stored as a bcrypt hash")
	}
	if !utils.CheckPassword("secret123", user.PasswordHash) {
		t.Error("stored hash does not verify against the password")
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	svc.Create(&CreateUserRequest{Username: "carlos", Email: "c1@x.com", Password: "secret123"})
	if _, err := svc.Create(&CreateUserRequest{Username: "carlos", Email: "c2@x.com", Password: "secret123"}); err == nil {
		t.Error("expected conflict on duplicate username")
	}
}

func TestUserCreate_InvalidRole(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	if _, err := svc.Create(&CreateUserRequest{
		Username: "eve",
		Email:    "eve@x.com",
		Password: "secret123",
		Role:     "superuser",
	}); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestUserUpdate_RehashesPassword(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, _ := svc.Create(&CreateUserRequest{Username: "carlos", Email: "c@x.com", Password: "oldpass1"})
	oldHash := user.PasswordHash

	newPass := "newpass1"
	newRole := models.RoleManager
	updated, err := svc.Update(user.ID, &UpdateUserRequest{Password: &newPass, Role: &newRole})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.PasswordHash == oldHash {
		t.Error("password hash unchanged after update")
	}
	if !utils.CheckPassword("newpass1", updated.PasswordHash) {
		t.Error("new password does not verify")
	}
	if updated.Role != models.RoleManager {
		t.Errorf("role not updated, got %q", updated.Role)
	}

	// Empty password leaves the hash alone
	empty := ""
	kept, _ := svc.Update(user.ID, &UpdateUserRequest{Password: &empty})
	if kept.PasswordHash != updated.PasswordHash {
		t.Error("empty password must not rehash")
	}
}

func TestUserDelete(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, _ := svc.Create(&CreateUserRequest{Username: "gone", Email: "g@x.com", Password: "secret123"})
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := svc.Get(user.ID); err == nil {
		t.Error("expected not found after delete")
	}
}
