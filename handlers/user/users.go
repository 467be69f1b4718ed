package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// UserHandler serves user profiles and favorites.
type UserHandler struct {
	store     store.Storage
	mirror    mirror.Notifier
	validator *validation.Validator
}

// NewUserHandler creates a new user handler.
func NewUserHandler(st store.Storage, m mirror.Notifier) *UserHandler {
	if m == nil {
		m = mirror.Nop()
	}
	return &UserHandler{
		store:     st,
		mirror:    m,
		validator: validation.NewValidator(),
	}
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, ok := h.store.GetUser(c.Params("id"))
	if !ok {
		return response.NotFound(c, "User not found")
	}
	return response.Success(c, user)
}

// UpdateProfileRequest is the editable part of a user profile.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

// UpdateProfile handles PUT /api/v1/users/me
// Profile updates are mirrored to the role-specific spreadsheet sink.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.ProfilePhotoURL = req.ProfilePhotoURL
	h.store.PutUser(user)

	eventType := "studentData"
	if user.Role == model.RoleCollegeAdmin {
		eventType = "adminData"
	}
	h.mirror.Notify(mirror.Event{Type: eventType, Data: map[string]any{
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  string(user.Role),
	}})

	return response.SuccessWithMessage(c, "Profile updated", user)
}

// ToggleFavorite handles POST /api/v1/users/me/favorites/:kind/:targetId
// Kind is one of "colleges", "courses" or "events". Toggling an id that is
// already present removes it.
func (h *UserHandler) ToggleFavorite(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	targetID := c.Params("targetId")
	var list *[]string
	switch c.Params("kind") {
	case "colleges":
		list = &user.FavoriteCollegeIDs
	case "courses":
		list = &user.FavoriteCourseIDs
	case "events":
		list = &user.FavoriteEventIDs
	default:
		return response.BadRequest(c, "kind must be colleges, courses or events")
	}

	*list = toggle(*list, targetID)
	h.store.PutUser(user)

	return response.SuccessWithMessage(c, "Favorites updated", fiber.Map{
		"favorite_college_ids": user.FavoriteCollegeIDs,
		"favorite_course_ids":  user.FavoriteCourseIDs,
		"favorite_event_ids":   user.FavoriteEventIDs,
	})
}

// toggle returns a new slice with id removed if present, appended
// otherwise.
func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
