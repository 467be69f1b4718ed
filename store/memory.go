package store

import (
	"sync"

	"github.com/sahilchouksey/college-connect/model"
)

// MemoryStore is the in-memory Storage implementation. A single mutex
// guards every collection so each put/replace is atomic; there is no
// isolation across separate intents (two rapid updates race, last write
// wins), matching the source's single-threaded replace semantics.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[string]model.User
	colleges     []model.College
	applications []model.Application
	payments     []model.PaymentTransaction
	chatMessages []model.ChatMessage
	forumPosts   []model.ForumPost
}

// NewMemoryStore creates an empty store. Call Seed to load fixtures.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]model.User),
	}
}

func (s *MemoryStore) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemoryStore) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// PutUser inserts or replaces the user record. There is exactly one record
// per user id.
func (s *MemoryStore) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *MemoryStore) GetCollege(id string) (model.College, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.colleges {
		if c.ID == id {
			return c, true
		}
	}
	return model.College{}, false
}

func (s *MemoryStore) ListColleges() []model.College {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.College, len(s.colleges))
	copy(out, s.colleges)
	return out
}

func (s *MemoryStore) PutCollege(c model.College) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.colleges {
		if s.colleges[i].ID == c.ID {
			s.colleges[i] = c
			return
		}
	}
	s.colleges = append(s.colleges, c)
}

func (s *MemoryStore) ReplaceColleges(cs []model.College) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colleges = cs
}

func (s *MemoryStore) GetApplication(id string) (model.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.applications {
		if a.ID == id {
			return a, true
		}
	}
	return model.Application{}, false
}

func (s *MemoryStore) ListApplications() []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

func (s *MemoryStore) AppendApplication(app model.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append(s.applications, app)
}

func (s *MemoryStore) ReplaceApplications(apps []model.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = apps
}

func (s *MemoryStore) GetPayment(paymentID string) (model.PaymentTransaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.payments {
		if tx.PaymentID == paymentID {
			return tx, true
		}
	}
	return model.PaymentTransaction{}, false
}

func (s *MemoryStore) ListPayments() []model.PaymentTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PaymentTransaction, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *MemoryStore) AppendPayment(tx model.PaymentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, tx)
}

func (s *MemoryStore) PutPayment(tx model.PaymentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == tx.PaymentID {
			s.payments[i] = tx
			return
		}
	}
	s.payments = append(s.payments, tx)
}

func (s *MemoryStore) AppendChatMessage(m model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatMessages = append(s.chatMessages, m)
}

func (s *MemoryStore) ListChatMessages(applicationID string) []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.ChatMessage
	for _, m := range s.chatMessages {
		if m.ApplicationID == applicationID {
			out = append(out, m)
		}
	}
	return out
}

// MarkChatMessagesRead marks all messages from the given sender on one
// application thread as read. Marking happens from the reader's side, so
// the sender argument is the counterparty.
func (s *MemoryStore) MarkChatMessagesRead(applicationID string, sender model.ChatSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chatMessages {
		if s.chatMessages[i].ApplicationID == applicationID && s.chatMessages[i].Sender == sender {
			s.chatMessages[i].Read = true
		}
	}
}

func (s *MemoryStore) GetForumPost(id string) (model.ForumPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.forumPosts {
		if p.ID == id {
			return p, true
		}
	}
	return model.ForumPost{}, false
}

func (s *MemoryStore) ListForumPosts() []model.ForumPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ForumPost, len(s.forumPosts))
	copy(out, s.forumPosts)
	return out
}

// AppendForumPost prepends so listings read newest-first, matching the
// notification ordering convention.
func (s *MemoryStore) AppendForumPost(p model.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forumPosts = append([]model.ForumPost{p}, s.forumPosts...)
}

func (s *MemoryStore) PutForumPost(p model.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.forumPosts {
		if s.forumPosts[i].ID == p.ID {
			s.forumPosts[i] = p
			return
		}
	}
	s.forumPosts = append([]model.ForumPost{p}, s.forumPosts...)
}

func (s *MemoryStore) Close() error {
	return nil
}
