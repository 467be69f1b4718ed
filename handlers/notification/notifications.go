package notification

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/cache"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
)

// unreadCountTTL bounds how stale the cached unread counter may get.
const unreadCountTTL = 30 * time.Second

// NotificationHandler serves each user's notification list. Lists are
// stored newest-first by the emitter; no sorting happens here.
type NotificationHandler struct {
	store store.Storage
	cache *cache.RedisCache // nil when redis is unavailable
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(st store.Storage, redisCache *cache.RedisCache) *NotificationHandler {
	return &NotificationHandler{
		store: st,
		cache: redisCache,
	}
}

// GetNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	unreadOnly := c.Query("unread_only") == "true"
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit > 100 {
		limit = 100
	}

	notifications := make([]model.Notification, 0, limit)
	unread := 0
	for _, n := range user.Notifications {
		if !n.IsRead {
			unread++
		}
		if unreadOnly && n.IsRead {
			continue
		}
		if len(notifications) < limit {
			notifications = append(notifications, n)
		}
	}

	return response.Success(c, fiber.Map{
		"notifications": notifications,
		"total":         len(user.Notifications),
		"unread_count":  unread,
	})
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count
// The count is cached briefly in redis; the store remains authoritative.
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	cacheKey := "notifications:unread:" + user.ID
	if h.cache != nil {
		if cached, err := h.cache.Get(c.Context(), cacheKey); err == nil {
			if count, err := strconv.Atoi(cached); err == nil {
				return response.Success(c, fiber.Map{"unread_count": count})
			}
		}
	}

	count := 0
	for _, n := range user.Notifications {
		if !n.IsRead {
			count++
		}
	}

	if h.cache != nil {
		_ = h.cache.Set(c.Context(), cacheKey, fmt.Sprint(count), unreadCountTTL)
	}

	return response.Success(c, fiber.Map{"unread_count": count})
}

// MarkAsRead handles PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	notificationID := c.Params("id")
	found := false

	updated := make([]model.Notification, len(user.Notifications))
	for i, n := range user.Notifications {
		if n.ID == notificationID {
			n.IsRead = true
			found = true
		}
		updated[i] = n
	}
	if !found {
		return response.NotFound(c, "Notification not found")
	}

	user.Notifications = updated
	h.store.PutUser(user)
	h.invalidateUnreadCount(c, user.ID)

	return response.SuccessWithMessage(c, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	updated := make([]model.Notification, len(user.Notifications))
	marked := 0
	for i, n := range user.Notifications {
		if !n.IsRead {
			n.IsRead = true
			marked++
		}
		updated[i] = n
	}

	user.Notifications = updated
	h.store.PutUser(user)
	h.invalidateUnreadCount(c, user.ID)

	return response.SuccessWithMessage(c, "All notifications marked as read", fiber.Map{
		"marked": marked,
	})
}

func (h *NotificationHandler) invalidateUnreadCount(c *fiber.Ctx, userID string) {
	if h.cache != nil {
		_ = h.cache.Delete(c.Context(), "notifications:unread:"+userID)
	}
}
