package forum

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/cache"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// ForumHandler serves the community forum: append-only posts and replies
// plus a view counter. View counts go through redis when available so a
// popular thread doesn't hammer the store mutex.
type ForumHandler struct {
	store     store.Storage
	cache     *cache.RedisCache // nil when redis is unavailable
	validator *validation.Validator
}

// NewForumHandler creates a new forum handler.
func NewForumHandler(st store.Storage, redisCache *cache.RedisCache) *ForumHandler {
	return &ForumHandler{
		store:     st,
		cache:     redisCache,
		validator: validation.NewValidator(),
	}
}

// CreatePostRequest is the payload for a new forum thread.
type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=200"`
	Content string   `json:"content" validate:"required,min=1"`
	Tags    []string `json:"tags"`
}

// CreatePost handles POST /api/v1/forum/posts
func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	now := time.Now()
	post := model.ForumPost{
		ID:             "post-" + uuid.NewString(),
		Title:          req.Title,
		AuthorID:       user.ID,
		AuthorName:     user.Name,
		AuthorPhotoURL: user.ProfilePhotoURL,
		Content:        req.Content,
		Tags:           req.Tags,
		Timestamp:      now,
		LastActivity:   now,
		Views:          0,
		Replies:        []model.ForumReply{},
	}
	h.store.AppendForumPost(post)

	return response.Created(c, post)
}

// ListPosts handles GET /api/v1/forum/posts
func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	posts := h.store.ListForumPosts()
	return response.Success(c, fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

// GetPost handles GET /api/v1/forum/posts/:id
// Reading a post bumps its view counter.
func (h *ForumHandler) GetPost(c *fiber.Ctx) error {
	post, ok := h.store.GetForumPost(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Post not found")
	}

	post.Views = h.bumpViews(c, post)
	h.store.PutForumPost(post)

	return response.Success(c, post)
}

// AddReplyRequest is the payload for a reply on a thread.
type AddReplyRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// AddReply handles POST /api/v1/forum/posts/:id/replies
func (h *ForumHandler) AddReply(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req AddReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	post, ok := h.store.GetForumPost(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Post not found")
	}

	reply := model.ForumReply{
		ID:             "reply-" + uuid.NewString(),
		PostID:         post.ID,
		AuthorID:       user.ID,
		AuthorName:     user.Name,
		AuthorPhotoURL: user.ProfilePhotoURL,
		Content:        req.Content,
		Timestamp:      time.Now(),
	}

	replies := make([]model.ForumReply, len(post.Replies), len(post.Replies)+1)
	copy(replies, post.Replies)
	post.Replies = append(replies, reply)
	post.LastActivity = reply.Timestamp
	h.store.PutForumPost(post)

	return response.Created(c, reply)
}

// bumpViews increments the view counter, preferring the redis counter so
// the count survives concurrent readers without store contention.
func (h *ForumHandler) bumpViews(c *fiber.Ctx, post model.ForumPost) int {
	if h.cache != nil {
		if views, err := h.cache.Increment(c.Context(), "forum:views:"+post.ID); err == nil {
			if int(views) > post.Views {
				return int(views)
			}
			return post.Views + 1
		}
	}
	return post.Views + 1
}
