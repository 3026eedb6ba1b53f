package models

import (
	"regexp"
	"strconv"
)

// Form-level input patterns. These mirror what the admin form accepts:
// amounts are digits with an optional decimal part, emails only need the
// minimal "something@something" shape and are not verified as deliverable.
var (
	amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	emailPattern  = regexp.MustCompile(`^\S+@\S+$`)
)

// PaymentForm holds the raw form values of the add-payment dialog before
// they are parsed into a Payment. Amount stays a string here because the
// browser submits text and parsing is part of validation.
type PaymentForm struct {
	ID     string
	Amount string
	Status string
	Email  string
}

// Validate checks the form and returns one message per failing field.
// A non-empty result blocks submission; nothing reaches the store layer.
func (f *PaymentForm) Validate() map[string]string {
	errs := make(map[string]string)

	if f.ID == "" {
		errs["id"] = "Payment ID is required"
	}

	switch {
	case f.Amount == "":
		errs["amount"] = "Amount is required"
	case !amountPattern.MatchString(f.Amount):
		errs["amount"] = "Invalid amount"
	}

	switch {
	case f.Status == "":
		errs["status"] = "Status is required"
	case !IsValidStatus(f.Status):
		errs["status"] = (&InvalidStatusError{Status: f.Status}).Error()
	}

	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Invalid email address"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToPayment converts a validated form into a Payment. Callers must run
// Validate first; a malformed amount yields an error here as a backstop.
func (f *PaymentForm) ToPayment() (*Payment, error) {
	amount, err := strconv.ParseFloat(f.Amount, 64)
	if err != nil {
		return nil, err
	}

	return &Payment{
		ID:     f.ID,
		Amount: amount,
		Status: f.Status,
		Email:  f.Email,
	}, nil
}
