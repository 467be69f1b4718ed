package application

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/reconcile"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// ApplicationHandler handles application intents: submit, batch update
// (which drives the reconciler) and listing.
type ApplicationHandler struct {
	store      store.Storage
	reconciler *reconcile.Reconciler
	validator  *validation.Validator
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(st store.Storage, reconciler *reconcile.Reconciler) *ApplicationHandler {
	return &ApplicationHandler{
		store:      st,
		reconciler: reconciler,
		validator:  validation.NewValidator(),
	}
}

// SubmitRequest is the payload for a new application.
type SubmitRequest struct {
	CollegeID      string `json:"college_id" validate:"required"`
	Course         string `json:"course" validate:"required"`
	ApplicantName  string `json:"applicant_name" validate:"required"`
	ApplicantEmail string `json:"applicant_email" validate:"required,email"`
	ContactNumber  string `json:"contact_number" validate:"required"`
	Cert10thURL    string `json:"cert_10th_url"`
	Cert12thURL    string `json:"cert_12th_url"`
}

// Submit handles POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	college, ok := h.store.GetCollege(req.CollegeID)
	if !ok {
		return response.NotFound(c, "College not found")
	}

	app := h.reconciler.SubmitApplication(model.Application{
		UserID:         user.ID,
		CollegeID:      college.ID,
		CollegeName:    college.Name,
		Course:         req.Course,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ContactNumber:  req.ContactNumber,
		DocumentURLs: model.DocumentURLs{
			Cert10th: req.Cert10thURL,
			Cert12th: req.Cert12thURL,
		},
		CommunicationHistory: []model.CommunicationEntry{},
	})

	return response.Created(c, app)
}

// BatchUpdateRequest carries the full updated application batch from the
// admin lead-management screens.
type BatchUpdateRequest struct {
	Applications []model.Application `json:"applications" validate:"required,min=1"`
}

// BatchUpdate handles PUT /api/v1/applications
// The updated batch replaces the stored collection; the reconciler derives
// notifications and seat-count changes from the diff.
func (h *ApplicationHandler) BatchUpdate(c *fiber.Ctx) error {
	var req BatchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	result := h.reconciler.Reconcile(req.Applications)

	return response.SuccessWithMessage(c, "Applications updated", fiber.Map{
		"notified":    result.Notified,
		"seat_deltas": len(result.SeatDeltas),
	})
}

// List handles GET /api/v1/applications
// Students see their own applications; admins see their college's.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var out []model.Application
	for _, app := range h.store.ListApplications() {
		switch user.Role {
		case model.RoleCollegeAdmin:
			if app.CollegeID == user.CollegeID {
				out = append(out, app)
			}
		default:
			if app.UserID == user.ID {
				out = append(out, app)
			}
		}
	}

	return response.Success(c, fiber.Map{
		"applications": out,
		"total":        len(out),
	})
}
