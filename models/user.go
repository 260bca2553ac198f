package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User owns favorites. Users are created out-of-band (see the `user create`
// command); the HTTP API only lists them.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"` // never serialized
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "user"
}

// SetPassword hashes the given password and sets it on the user model.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the given password matches the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
