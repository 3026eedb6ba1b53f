package constants

// Static route constants
const (
	PaymentsRoute      = "/admin/payments"
	PaymentsStoreRoute = "/admin/payments/store"
	PaymentsUndoRoute  = "/admin/payments/undo"
	PaymentsPrintRoute = "/admin/payments/print"
	APIPaymentsRoute   = "/api/v1/payments"
)
