package payment

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/reconcile"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// PaymentHandler handles fee payment intents.
type PaymentHandler struct {
	store      store.Storage
	reconciler *reconcile.Reconciler
	validator  *validation.Validator
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(st store.Storage, reconciler *reconcile.Reconciler) *PaymentHandler {
	return &PaymentHandler{
		store:      st,
		reconciler: reconciler,
		validator:  validation.NewValidator(),
	}
}

// RecordRequest is the payload for a new fee payment.
type RecordRequest struct {
	ApplicationID string  `json:"application_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	UPIID         string  `json:"upi_id"`
	ScreenshotURL string  `json:"screenshot_url"`
}

// Record handles POST /api/v1/payments
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	app, ok := h.store.GetApplication(req.ApplicationID)
	if !ok {
		return response.NotFound(c, "Application not found")
	}

	tx := h.reconciler.RecordPayment(model.PaymentTransaction{
		ApplicationID: app.ID,
		StudentID:     user.ID,
		StudentName:   user.Name,
		CollegeID:     app.CollegeID,
		CollegeName:   app.CollegeName,
		CourseName:    app.Course,
		Amount:        req.Amount,
		UPIID:         req.UPIID,
		ScreenshotURL: req.ScreenshotURL,
	})

	return response.Created(c, tx)
}

// ConfirmRequest carries the admin's verification remarks.
type ConfirmRequest struct {
	Remarks string `json:"remarks"`
}

// Confirm handles POST /api/v1/payments/:paymentId/confirm
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.reconciler.ConfirmPayment(c.Params("paymentId"), req.Remarks)
	if err != nil {
		if errors.Is(err, reconcile.ErrPaymentNotFound) {
			return response.NotFound(c, "Payment transaction not found")
		}
		return response.InternalServerError(c, "")
	}

	return response.SuccessWithMessage(c, "Payment confirmed", tx)
}

// List handles GET /api/v1/payments
// Students see their own transactions; admins see their college's.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var out []model.PaymentTransaction
	for _, tx := range h.store.ListPayments() {
		switch user.Role {
		case model.RoleCollegeAdmin:
			if tx.CollegeID == user.CollegeID {
				out = append(out, tx)
			}
		default:
			if tx.StudentID == user.ID {
				out = append(out, tx)
			}
		}
	}

	return response.Success(c, fiber.Map{
		"payments": out,
		"total":    len(out),
	})
}
