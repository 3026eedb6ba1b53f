package repository

import (
	"errors"

	"gorm.io/gorm"

	"paydeck/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment record. The status is checked against the
// allowed set first; on violation no write is attempted.
func (r *paymentRepository) Create(payment *models.Payment) error {
	if !models.IsValidStatus(payment.Status) {
		return &models.InvalidStatusError{Status: payment.Status}
	}
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment record by its id
func (r *paymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// List retrieves all payment records in store order
func (r *paymentRepository) List() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Find(&payments).Error
	return payments, err
}

// Delete removes a payment record by its id. Deleting an absent id is an
// error, not a no-op.
func (r *paymentRepository) Delete(id string) error {
	tx := r.db.Delete(&models.Payment{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of payment records
func (r *paymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}

// Search retrieves payment records whose email contains the given substring
func (r *paymentRepository) Search(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("email LIKE ?", "%"+email+"%").Find(&payments).Error
	return payments, err
}
