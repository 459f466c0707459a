package models

import (
	"time"
)

// Product categories
const (
	CategoryA = "A"
	CategoryB = "B"
	CategoryC = "C"
)

type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null;index" json:"category"`
	Image       string  `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidCategory reports whether the category code is one of the known
// cashback categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryA, CategoryB, CategoryC:
		return true
	}
	return false
}
