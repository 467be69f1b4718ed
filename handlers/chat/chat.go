package chat

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/notify"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// ChatHandler serves the per-application chat threads between a student
// and the college's admissions staff.
type ChatHandler struct {
	store     store.Storage
	emitter   *notify.Emitter
	validator *validation.Validator
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(st store.Storage, emitter *notify.Emitter) *ChatHandler {
	return &ChatHandler{
		store:     st,
		emitter:   emitter,
		validator: validation.NewValidator(),
	}
}

// SendMessageRequest is the payload for one chat message.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// SendMessage handles POST /api/v1/chat/:applicationId/messages
// The sender side follows from the acting user's role; the counterparty
// gets a notification.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	app, ok := h.store.GetApplication(c.Params("applicationId"))
	if !ok {
		return response.NotFound(c, "Application not found")
	}

	sender := model.SenderStudent
	if user.Role == model.RoleCollegeAdmin {
		sender = model.SenderAdmin
	}

	// Admin-authored messages start read; the student side drives the
	// admin's unread badge, not the other way around.
	message := model.ChatMessage{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		Sender:        sender,
		Text:          req.Text,
		Timestamp:     time.Now(),
		Read:          sender == model.SenderAdmin,
	}
	h.store.AppendChatMessage(message)

	if sender == model.SenderStudent {
		h.emitter.EmitToCollegeAdmin(app.CollegeID,
			model.NotificationTypeStudent,
			"New Message",
			fmt.Sprintf("%s sent a message about their application.", user.Name),
			"/admin/chat")
	} else {
		h.emitter.Emit(app.UserID,
			model.NotificationTypeMessage,
			"New Message from Admin",
			fmt.Sprintf("New message regarding your %s application.", app.Course),
			"/chat/"+app.ID)
	}

	return response.Created(c, message)
}

// ListMessages handles GET /api/v1/chat/:applicationId/messages
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	applicationID := c.Params("applicationId")
	if _, ok := h.store.GetApplication(applicationID); !ok {
		return response.NotFound(c, "Application not found")
	}

	messages := h.store.ListChatMessages(applicationID)
	return response.Success(c, fiber.Map{
		"messages": messages,
		"total":    len(messages),
	})
}

// MarkAsRead handles POST /api/v1/chat/:applicationId/read
// Marks the counterparty's messages on the thread as read.
func (h *ChatHandler) MarkAsRead(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	applicationID := c.Params("applicationId")
	if _, ok := h.store.GetApplication(applicationID); !ok {
		return response.NotFound(c, "Application not found")
	}

	counterparty := model.SenderAdmin
	if user.Role == model.RoleCollegeAdmin {
		counterparty = model.SenderStudent
	}
	h.store.MarkChatMessagesRead(applicationID, counterparty)

	return response.SuccessWithMessage(c, "Messages marked as read", nil)
}
