package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Payment statuses. The set is closed: no other value is valid anywhere
// in the system, and the store layer rejects writes outside of it.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSuccess    = "success"
	StatusFailed     = "failed"
)

// ValidStatuses lists the allowed payment statuses in display order.
var ValidStatuses = []string{StatusPending, StatusProcessing, StatusSuccess, StatusFailed}

// Payment represents a single payment record
type Payment struct {
	ID     string  `gorm:"primaryKey;type:varchar(32)" json:"id" validate:"required"`
	Amount float64 `gorm:"not null" json:"amount" validate:"gte=0"`
	Status string  `gorm:"type:varchar(20);not null;index" json:"status" validate:"required,oneof=pending processing success failed"`
	Email  string  `gorm:"type:varchar(255);not null" json:"email" validate:"required"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsValidStatus reports whether s is exactly one of the allowed statuses.
// Matching is case-sensitive and performs no trimming.
func IsValidStatus(s string) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// InvalidStatusError is returned when a write carries a status outside the
// allowed set. It names the rejected value and the full allowed set so the
// caller can surface it verbatim.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("Status invalid: %s. Must be one of %s", e.Status, strings.Join(ValidStatuses, ", "))
}
