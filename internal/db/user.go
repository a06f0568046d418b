package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RoleAdmin gates every editing surface and the management panel.
const RoleAdmin = "admin"

// User is an authenticated principal. Role decides what the session may do;
// anything other than RoleAdmin is treated as a read-only visitor account.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"size:20;not null;default:viewer"`
}

// EnsureAdmin creates a bcrypt-hashed admin account when both credentials are
// provided and no user with that name exists yet. Used at startup bootstrap.
func EnsureAdmin(username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := DB.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return DB.Create(&User{Username: trimmedUser, Password: string(hashed), Role: RoleAdmin}).Error
	}

	return nil
}
