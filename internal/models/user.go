package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	Role         string  `gorm:"default:'user'" json:"role"`
	TokenVersion int     `gorm:"default:1" json:"-"`
	Wallet       *Wallet `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
}

// CreateUserInput is the payload accepted by user registration.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
