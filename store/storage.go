package store

import "github.com/sahilchouksey/college-connect/model"

// Storage is the entity store owning every collection in the system. All
// state lives in memory for the lifetime of the process; a restart resets
// everything to the seed fixtures.
//
// Readers receive value copies; writers replace whole records or whole
// collections. Callers that mutate a record must rebuild the slices they
// touch rather than editing them in place, then put the record back.
type Storage interface {
	// Users
	GetUser(id string) (model.User, bool)
	ListUsers() []model.User
	PutUser(u model.User)

	// Colleges (with nested courses and events)
	GetCollege(id string) (model.College, bool)
	ListColleges() []model.College
	PutCollege(c model.College)
	ReplaceColleges(cs []model.College)

	// Applications
	GetApplication(id string) (model.Application, bool)
	ListApplications() []model.Application
	AppendApplication(app model.Application)
	ReplaceApplications(apps []model.Application)

	// Payment transactions
	GetPayment(paymentID string) (model.PaymentTransaction, bool)
	ListPayments() []model.PaymentTransaction
	AppendPayment(tx model.PaymentTransaction)
	PutPayment(tx model.PaymentTransaction)

	// Chat (append-only, keyed by application id)
	AppendChatMessage(m model.ChatMessage)
	ListChatMessages(applicationID string) []model.ChatMessage
	MarkChatMessagesRead(applicationID string, sender model.ChatSender)

	// Forum
	GetForumPost(id string) (model.ForumPost, bool)
	ListForumPosts() []model.ForumPost
	AppendForumPost(p model.ForumPost)
	PutForumPost(p model.ForumPost)

	Close() error
}
