package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"paydeck/app/models"
	"paydeck/app/repository"
	"paydeck/internal/pkg/constants"
	"paydeck/internal/pkg/coordinator"
	"paydeck/internal/pkg/recordid"
	"paydeck/internal/pkg/session"
	"paydeck/internal/pkg/tableview"
	"paydeck/internal/pkg/viewmodel"
)

// undoKeyPrefix namespaces pending inverse actions inside the session.
const undoKeyPrefix = "undo:"

// PaymentController handles the payments admin screen: the table page,
// create and delete submissions, and the undo of either.
type PaymentController struct {
	paymentRepo repository.PaymentRepository
	coord       *coordinator.Coordinator
}

// NewPaymentController creates a new payment controller with repository
func NewPaymentController(paymentRepo repository.PaymentRepository) *PaymentController {
	return &PaymentController{
		paymentRepo: paymentRepo,
		coord:       coordinator.New(paymentRepo),
	}
}

// handleError is a helper method for consistent error handling
func (pc *PaymentController) handleError(c *fiber.Ctx, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect(constants.PaymentsRoute)
}

// HandlePayments renders the payment records table. Sort, filter, column
// visibility, selection and page all travel in the query string; the row
// set is derived fresh from the store on every request.
func (pc *PaymentController) HandlePayments(c *fiber.Ctx) error {
	records, err := pc.paymentRepo.List()
	if err != nil {
		return pc.handleError(c, "Failed to load payments", err)
	}

	state := viewStateFromQuery(c)
	view := tableview.Derive(records, state)

	fm := flash.Get(c)
	vm := paymentTableViewModel(view, state)
	vm.FormValues, vm.FieldErrors = formStateFromFlash(fm)

	return c.Render("payments/index", fiber.Map{
		"Layout": viewmodel.Layout{Page: "payments", Title: "Payment Records", Msg: fm},
		"Table":  vm,
	}, "layouts/main")
}

// HandlePaymentStore handles the add-payment form submission. Validation
// failures stay client-local: they re-render the form with inline field
// messages and never reach the store.
func (pc *PaymentController) HandlePaymentStore(c *fiber.Ctx) error {
	form := models.PaymentForm{
		ID:     c.FormValue("id"),
		Amount: c.FormValue("amount"),
		Status: c.FormValue("status"),
		Email:  c.FormValue("email"),
	}

	// A blank id gets a generated one (date prefix + random suffix)
	if form.ID == "" {
		id, err := recordid.New(time.Now())
		if err != nil {
			return pc.handleError(c, "Failed to generate payment id", err)
		}
		form.ID = id
	}

	if errs := form.Validate(); errs != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Please correct the highlighted fields",
		}
		for field, msg := range errs {
			fm["error_"+field] = msg
		}
		fm["form_id"] = form.ID
		fm["form_amount"] = form.Amount
		fm["form_status"] = form.Status
		fm["form_email"] = form.Email
		return flash.WithError(c, fm).Redirect(constants.PaymentsRoute)
	}

	payment, err := form.ToPayment()
	if err != nil {
		return pc.handleError(c, "Invalid amount", err)
	}

	outcome, err := pc.coord.SubmitAdd(*payment)
	if err != nil {
		return pc.handleError(c, "Failed to create payment", err)
	}

	return pc.settle(c, outcome, "Payment added successfully")
}

// HandlePaymentDelete removes a single payment record and offers an undo
// that re-inserts it with the original id, amount, status and email.
func (pc *PaymentController) HandlePaymentDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Redirect(constants.PaymentsRoute)
	}

	payment, err := pc.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fm := fiber.Map{
				"type":    "error",
				"message": "Payment not found",
			}
			return flash.WithError(c, fm).Redirect(constants.PaymentsRoute)
		}
		return pc.handleError(c, "Failed to load payment", err)
	}

	outcome, err := pc.coord.SubmitDelete(*payment)
	if err != nil {
		return pc.handleError(c, "Failed to delete payment", err)
	}

	return pc.settle(c, outcome, "Payment deleted successfully")
}

// HandlePaymentUndo performs the inverse action stored for the given
// token. Undo is single-shot: the descriptor is dropped once used.
func (pc *PaymentController) HandlePaymentUndo(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Redirect(constants.PaymentsRoute)
	}

	payload := session.GetSessionValue(c, undoKeyPrefix+token)
	if payload == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Undo is no longer available",
		}
		return flash.WithError(c, fm).Redirect(constants.PaymentsRoute)
	}

	var inverse coordinator.Inverse
	if err := json.Unmarshal([]byte(payload), &inverse); err != nil {
		return pc.handleError(c, "Failed to read undo action", err)
	}

	if _, err := pc.coord.Undo(inverse); err != nil {
		// Re-creation can fail when the id was taken again in the
		// meantime; the undo is reported as failed, not silently dropped.
		return pc.handleError(c, "Undo failed", err)
	}

	if err := session.DeleteSessionValue(c, undoKeyPrefix+token); err != nil {
		return pc.handleError(c, "Failed to clear undo action", err)
	}

	fm := fiber.Map{
		"type":        "success",
		"message":     "Action undone",
		"description": timestampLine(time.Now()),
	}
	return flash.WithSuccess(c, fm).Redirect(constants.PaymentsRoute)
}

// HandlePaymentsPrint renders a printable view of the filtered and sorted
// collection without pagination.
func (pc *PaymentController) HandlePaymentsPrint(c *fiber.Ctx) error {
	records, err := pc.paymentRepo.List()
	if err != nil {
		return pc.handleError(c, "Failed to load payments", err)
	}

	state := viewStateFromQuery(c)
	state.Page = 0
	if len(records) > 0 {
		state.PageSize = len(records)
	}
	view := tableview.Derive(records, state)

	return c.Render("payments/print", fiber.Map{
		"Table":     paymentTableViewModel(view, state),
		"Timestamp": timestampLine(time.Now()),
	})
}

// settle stores the outcome's inverse under a fresh token and emits the
// success notification offering the undo.
func (pc *PaymentController) settle(c *fiber.Ctx, outcome coordinator.Outcome, message string) error {
	fm := fiber.Map{
		"type":        "success",
		"message":     message,
		"description": timestampLine(time.Now()),
	}

	if outcome.Inverse != nil {
		payload, err := json.Marshal(outcome.Inverse)
		if err != nil {
			return pc.handleError(c, "Failed to record undo action", err)
		}

		token := uuid.NewString()
		if err := session.SetSessionValue(c, undoKeyPrefix+token, string(payload)); err != nil {
			return pc.handleError(c, "Failed to record undo action", err)
		}
		fm["undo_url"] = constants.PaymentsUndoRoute + "?token=" + token
	}

	return flash.WithSuccess(c, fm).Redirect(constants.PaymentsRoute)
}

// paymentTableViewModel converts a derived view into the template model.
func paymentTableViewModel(view tableview.View, state tableview.ViewState) viewmodel.PaymentTable {
	rows := make([]viewmodel.PaymentRow, 0, len(view.Rows))
	for _, p := range view.Rows {
		rows = append(rows, viewmodel.PaymentRow{
			ID:              p.ID,
			Status:          p.Status,
			Email:           p.Email,
			Amount:          p.Amount,
			FormattedAmount: formatAmount(p.Amount),
			Selected:        state.Selected[p.ID],
		})
	}

	columns := make(map[string]bool, len(tableview.HideableColumns))
	for _, col := range view.Columns {
		columns[col] = true
	}

	return viewmodel.PaymentTable{
		Rows:         rows,
		View:         view,
		State:        state,
		Columns:      columns,
		Filter:       view.Filter,
		SortColumn:   view.SortColumn,
		SortDesc:     view.SortDesc,
		Page:         view.Page + 1,
		PageCount:    view.PageCount,
		PrevPage:     view.Page,
		NextPage:     view.Page + 2,
		HasPrev:      view.Page > 0,
		HasNext:      view.Page < view.PageCount-1,
		SelectedRows: view.SelectedRows,
		FilteredRows: view.FilteredRows,
		Statuses:     models.ValidStatuses,
	}
}

// formStateFromFlash restores form values and inline field errors from a
// failed submission carried over in the flash message.
func formStateFromFlash(fm fiber.Map) (map[string]string, map[string]string) {
	if fm == nil {
		return nil, nil
	}

	values := make(map[string]string)
	errs := make(map[string]string)
	for _, field := range []string{"id", "amount", "status", "email"} {
		if v, ok := fm["form_"+field].(string); ok {
			values[field] = v
		}
		if v, ok := fm["error_"+field].(string); ok {
			errs[field] = v
		}
	}

	if len(values) == 0 {
		values = nil
	}
	if len(errs) == 0 {
		errs = nil
	}
	return values, errs
}

// ============================================================================
// GLOBAL PAYMENT CONTROLLER INSTANCE - Singleton Pattern
// ============================================================================

var paymentController *PaymentController

// InitializePaymentController initializes the global payment controller
func InitializePaymentController() {
	paymentRepo := repository.GetGlobalFactory().GetPaymentRepository()
	paymentController = NewPaymentController(paymentRepo)
}

// GetPaymentController returns the global payment controller instance
func GetPaymentController() *PaymentController {
	if paymentController == nil {
		InitializePaymentController()
	}
	return paymentController
}
