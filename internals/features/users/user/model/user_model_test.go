package model

import "testing"

func TestBeforeSaveHashesPlainPassword(t *testing.T) {
	u := &UserModel{UserName: "kurator", Email: "kurator@galeri.test", Password: "rahasia123"}

	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if u.Password == "rahasia123" {
		t.Fatal("password was stored in plaintext")
	}
	if !IsPasswordHash(u.Password) {
		t.Errorf("password %q is not a bcrypt hash", u.Password)
	}
	if !u.CheckPassword("rahasia123") {
		t.Error("CheckPassword rejected the original password")
	}
	if u.CheckPassword("salah") {
		t.Error("CheckPassword accepted a wrong password")
	}
	if u.Role != "user" {
		t.Errorf("Role = %q, want default user", u.Role)
	}
}

func TestBeforeSaveKeepsExistingHash(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	u := &UserModel{Password: hashed, Role: "admin"}

	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if u.Password != hashed {
		t.Error("already hashed password was hashed again")
	}
	if u.Role != "admin" {
		t.Errorf("Role overwritten to %q", u.Role)
	}
}
