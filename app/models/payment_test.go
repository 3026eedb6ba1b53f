package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentValidate(t *testing.T) {
	p := &Payment{
		ID:     "20260828-A1B",
		Amount: 316,
		Status: StatusSuccess,
		Email:  "ken99@example.com",
	}

	assert.NoError(t, p.Validate())
}

func TestPaymentValidateRejectsBadStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		valid  bool
	}{
		{"pending", StatusPending, true},
		{"processing", StatusProcessing, true},
		{"success", StatusSuccess, true},
		{"failed", StatusFailed, true},
		{"uppercase", "Pending", false},
		{"trailing space", "pending ", false},
		{"unknown", "done", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{
				ID:     "20260828-A1B",
				Amount: 10,
				Status: tt.status,
				Email:  "a@b.com",
			}
			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			assert.Equal(t, tt.valid, IsValidStatus(tt.status))
		})
	}
}

func TestInvalidStatusErrorMessage(t *testing.T) {
	err := InvalidStatusError{Status: "done"}
	assert.Equal(t, "Status invalid: done. Must be one of pending, processing, success, failed", err.Error())
}

func TestPaymentFormValidate(t *testing.T) {
	form := PaymentForm{
		ID:     "20260828-A1B",
		Amount: "12.5",
		Status: StatusPending,
		Email:  "ken99@example.com",
	}

	require.Empty(t, form.Validate())

	p, err := form.ToPayment()
	require.NoError(t, err)
	assert.Equal(t, "20260828-A1B", p.ID)
	assert.Equal(t, 12.5, p.Amount)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "ken99@example.com", p.Email)
}

func TestPaymentFormValidateRequiredFields(t *testing.T) {
	form := PaymentForm{}
	errs := form.Validate()

	assert.Equal(t, "Payment ID is required", errs["id"])
	assert.Equal(t, "Amount is required", errs["amount"])
	assert.Equal(t, "Status is required", errs["status"])
	assert.Equal(t, "Email is required", errs["email"])
}

func TestPaymentFormValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0", true},
		{"12", true},
		{"12.5", true},
		{"12.50", true},
		{"abc", false},
		{"12.", false},
		{".5", false},
		{"-3", false},
		{"12,50", false},
		{"1e3", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("amount %q", tt.amount), func(t *testing.T) {
			form := PaymentForm{ID: "X", Amount: tt.amount, Status: StatusPending, Email: "a@b.c"}
			errs := form.Validate()
			if tt.valid {
				assert.NotContains(t, errs, "amount")
			} else {
				assert.Equal(t, "Invalid amount", errs["amount"])
			}
		})
	}
}

func TestPaymentFormValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ken99@example.com", true},
		{"a@b", true},
		{"no-at-sign", false},
		{"spaces in@local.part", false},
		{"@missing-local", false},
		{"missing-domain@", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("email %q", tt.email), func(t *testing.T) {
			form := PaymentForm{ID: "X", Amount: "1", Status: StatusPending, Email: tt.email}
			errs := form.Validate()
			if tt.valid {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Equal(t, "Invalid email address", errs["email"])
			}
		})
	}
}
