package router

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/config"
	application_handlers "github.com/sahilchouksey/college-connect/handlers/application"
	chat_handlers "github.com/sahilchouksey/college-connect/handlers/chat"
	college_handlers "github.com/sahilchouksey/college-connect/handlers/college"
	forum_handlers "github.com/sahilchouksey/college-connect/handlers/forum"
	notification_handlers "github.com/sahilchouksey/college-connect/handlers/notification"
	payment_handlers "github.com/sahilchouksey/college-connect/handlers/payment"
	upload_handlers "github.com/sahilchouksey/college-connect/handlers/upload"
	user_handlers "github.com/sahilchouksey/college-connect/handlers/user"
	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/services/notify"
	"github.com/sahilchouksey/college-connect/services/reconcile"
	"github.com/sahilchouksey/college-connect/services/upload"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/cache"
	"github.com/sahilchouksey/college-connect/utils/middleware"
)

func SetupRoutes(app *fiber.App, st *store.MemoryStore, env *config.EnviornmentVariable, webhookMirror *mirror.WebhookMirror) {
	// Redis is optional: counters and cached reads degrade to the store
	// when it is unreachable.
	redisCache, err := cache.NewRedisCache(env.REDIS_URL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Counters will fall back to the store.", err)
		redisCache = nil
	}

	// Core services
	emitter := notify.NewEmitter(st)
	reconciler := reconcile.NewReconciler(st, emitter, webhookMirror)

	// Upload backends: Spaces when configured, otherwise the sheet
	// script endpoint handles the blob too.
	sheetClient := upload.NewSheetClient(env.SHEET_SCRIPT_URL)
	var blobs upload.BlobStore = sheetClient
	if env.DO_SPACES_BUCKET != "" {
		spaces, err := upload.NewSpacesStore(upload.SpacesConfig{
			AccessKey: env.DO_SPACES_KEY,
			SecretKey: env.DO_SPACES_SECRET,
			Bucket:    env.DO_SPACES_BUCKET,
			Region:    env.DO_SPACES_REGION,
			Endpoint:  env.DO_SPACES_ENDPOINT,
			CDNURL:    env.DO_SPACES_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to init Spaces client: %v. Uploads fall back to the sheet endpoint.", err)
		} else {
			blobs = spaces
		}
	}

	// Handlers
	applicationHandler := application_handlers.NewApplicationHandler(st, reconciler)
	collegeHandler := college_handlers.NewCollegeHandler(st, webhookMirror)
	paymentHandler := payment_handlers.NewPaymentHandler(st, reconciler)
	notificationHandler := notification_handlers.NewNotificationHandler(st, redisCache)
	chatHandler := chat_handlers.NewChatHandler(st, emitter)
	forumHandler := forum_handlers.NewForumHandler(st, redisCache)
	uploadHandler := upload_handlers.NewUploadHandler(blobs, sheetClient)
	userHandler := user_handlers.NewUserHandler(st, webhookMirror)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1", middleware.ActingUser(st))

	// Colleges (public browsing for any acting user; edits are admin-only)
	v1.Get("/colleges", collegeHandler.ListColleges)
	v1.Get("/colleges/:id", collegeHandler.GetCollege)
	adminOnly := middleware.RequireRole(model.RoleCollegeAdmin)
	v1.Put("/colleges/:id", adminOnly, collegeHandler.UpdateCollege)
	v1.Post("/colleges/:id/courses", adminOnly, collegeHandler.AddCourse)
	v1.Put("/colleges/:id/courses/:courseId", adminOnly, collegeHandler.UpdateCourse)

	// Applications
	v1.Post("/applications", middleware.RequireRole(model.RoleStudent), applicationHandler.Submit)
	v1.Put("/applications", adminOnly, applicationHandler.BatchUpdate)
	v1.Get("/applications", applicationHandler.List)

	// Payments
	v1.Post("/payments", middleware.RequireRole(model.RoleStudent), paymentHandler.Record)
	v1.Post("/payments/:paymentId/confirm", adminOnly, paymentHandler.Confirm)
	v1.Get("/payments", paymentHandler.List)

	// Notifications
	v1.Get("/notifications", notificationHandler.GetNotifications)
	v1.Get("/notifications/unread-count", notificationHandler.GetUnreadCount)
	v1.Patch("/notifications/:id/read", notificationHandler.MarkAsRead)
	v1.Post("/notifications/read-all", notificationHandler.MarkAllAsRead)

	// Chat
	v1.Get("/chat/:applicationId/messages", chatHandler.ListMessages)
	v1.Post("/chat/:applicationId/messages", chatHandler.SendMessage)
	v1.Post("/chat/:applicationId/read", chatHandler.MarkAsRead)

	// Forum
	v1.Get("/forum/posts", forumHandler.ListPosts)
	v1.Post("/forum/posts", forumHandler.CreatePost)
	v1.Get("/forum/posts/:id", forumHandler.GetPost)
	v1.Post("/forum/posts/:id/replies", forumHandler.AddReply)

	// Uploads
	v1.Post("/uploads", uploadHandler.Upload)
	v1.Post("/uploads/retry", uploadHandler.Retry)

	// Users
	v1.Get("/users/:id", userHandler.GetUser)
	v1.Put("/users/me", userHandler.UpdateProfile)
	v1.Post("/users/me/favorites/:kind/:targetId", userHandler.ToggleFavorite)
}
