package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryStaffRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test Cashier", "kasir@example.com", password, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staff := repo.staff["kasir@example.com"]
	if staff == nil {
		t.Fatalf("staff not found")
	}

	if staff.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegister_DefaultsToCashierRole(t *testing.T) {
	service := NewService(NewInMemoryStaffRepository())

	staff, err := service.Register("Test", "a@example.com", "secret", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staff.Role != RoleCashier {
		t.Fatalf("expected role %s, got %s", RoleCashier, staff.Role)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	service := NewService(NewInMemoryStaffRepository())

	if _, err := service.Register("Test", "b@example.com", "secret", "JANITOR"); err == nil {
		t.Fatalf("expected unknown role to be rejected")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryStaffRepository())

	if _, err := service.Register("A", "dup@example.com", "secret", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "dup@example.com", "secret", ""); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryStaffRepository())

	if _, err := service.Register("Test", "login@example.com", "secret", RoleManager); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staff, err := service.Login("login@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if staff.Role != RoleManager {
		t.Fatalf("expected manager role, got %s", staff.Role)
	}

	if _, err := service.Login("login@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
