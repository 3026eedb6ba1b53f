package repository

import (
	"errors"

	"gorm.io/gorm"

	"paydeck/app/models"
)

// ErrNotFound is returned when an operation targets a payment id that does
// not exist in the store.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository defines the interface for payment-related database
// operations. Create validates the status against the allowed set before
// any write; List reflects the latest committed state at call time.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	List() ([]models.Payment, error)
	Delete(id string) error
	Count() (int64, error)
	Search(email string) ([]models.Payment, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Payment PaymentRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Payment: NewPaymentRepository(db),
	}
}
