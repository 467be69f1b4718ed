package store

import (
	"testing"

	"github.com/sahilchouksey/college-connect/model"
)

func TestPutUserUpserts(t *testing.T) {
	s := NewMemoryStore()

	s.PutUser(model.User{ID: "u1", Name: "Alex Doe", Role: model.RoleStudent})
	s.PutUser(model.User{ID: "u1", Name: "Alex D. Doe", Role: model.RoleStudent})

	if got := len(s.ListUsers()); got != 1 {
		t.Fatalf("expected 1 user, got %d", got)
	}
	u, ok := s.GetUser("u1")
	if !ok || u.Name != "Alex D. Doe" {
		t.Errorf("expected replaced record, got %+v", u)
	}
}

func TestListCollegesReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.ReplaceColleges([]model.College{{ID: "uni-1", Name: "Apex University of Technology"}})

	listed := s.ListColleges()
	listed[0].Name = "mutated"

	c, _ := s.GetCollege("uni-1")
	if c.Name != "Apex University of Technology" {
		t.Errorf("caller mutation leaked into the store: %q", c.Name)
	}
}

func TestReplaceApplicationsSwapsWholeCollection(t *testing.T) {
	s := NewMemoryStore()
	s.AppendApplication(model.Application{ID: "app-1", Status: model.StatusPending})
	s.AppendApplication(model.Application{ID: "app-2", Status: model.StatusPending})

	s.ReplaceApplications([]model.Application{{ID: "app-2", Status: model.StatusConfirmed}})

	if _, ok := s.GetApplication("app-1"); ok {
		t.Error("app-1 must be gone after replace")
	}
	a, ok := s.GetApplication("app-2")
	if !ok || a.Status != model.StatusConfirmed {
		t.Errorf("expected confirmed app-2, got %+v", a)
	}
}

func TestPutPaymentUpdatesInPlace(t *testing.T) {
	s := NewMemoryStore()
	s.AppendPayment(model.PaymentTransaction{PaymentID: "txn-1", Status: model.PaymentPending, VerifiedByCollege: "No"})

	s.PutPayment(model.PaymentTransaction{PaymentID: "txn-1", Status: model.PaymentConfirmed, VerifiedByCollege: "Yes"})

	if got := len(s.ListPayments()); got != 1 {
		t.Fatalf("expected 1 payment, got %d", got)
	}
	tx, _ := s.GetPayment("txn-1")
	if tx.Status != model.PaymentConfirmed || tx.VerifiedByCollege != "Yes" {
		t.Errorf("expected confirmed payment, got %+v", tx)
	}
}

func TestChatMessagesFilterAndMarkRead(t *testing.T) {
	s := NewMemoryStore()
	s.AppendChatMessage(model.ChatMessage{ID: "m1", ApplicationID: "app-1", Sender: model.SenderStudent, Text: "hello"})
	s.AppendChatMessage(model.ChatMessage{ID: "m2", ApplicationID: "app-1", Sender: model.SenderAdmin, Text: "hi"})
	s.AppendChatMessage(model.ChatMessage{ID: "m3", ApplicationID: "app-2", Sender: model.SenderStudent, Text: "other thread"})

	msgs := s.ListChatMessages("app-1")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages on app-1, got %d", len(msgs))
	}

	// The student reads the thread: only the admin's messages flip.
	s.MarkChatMessagesRead("app-1", model.SenderAdmin)

	for _, m := range s.ListChatMessages("app-1") {
		wantRead := m.Sender == model.SenderAdmin
		if m.Read != wantRead {
			t.Errorf("message %s read=%v, want %v", m.ID, m.Read, wantRead)
		}
	}
	if s.ListChatMessages("app-2")[0].Read {
		t.Error("other thread must be untouched")
	}
}

func TestForumPostsListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	s.AppendForumPost(model.ForumPost{ID: "p1", Title: "older"})
	s.AppendForumPost(model.ForumPost{ID: "p2", Title: "newer"})

	posts := s.ListForumPosts()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "p2" || posts[1].ID != "p1" {
		t.Errorf("expected newest-first order, got [%s, %s]", posts[0].ID, posts[1].ID)
	}

	// Updating in place keeps the position.
	s.PutForumPost(model.ForumPost{ID: "p1", Title: "older", Views: 5})
	posts = s.ListForumPosts()
	if posts[1].Views != 5 {
		t.Errorf("expected view count persisted, got %+v", posts[1])
	}
}

func TestSeedFixtures(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	if len(s.ListColleges()) == 0 {
		t.Fatal("seed must load colleges")
	}

	student, ok := s.GetUser("student-001")
	if !ok || student.Role != model.RoleStudent {
		t.Fatalf("expected seeded student, got %+v", student)
	}

	admin, ok := s.GetUser("admin-001")
	if !ok || !admin.IsAdminOf("uni-1") {
		t.Fatalf("expected seeded uni-1 admin, got %+v", admin)
	}
	if len(admin.Notifications) == 0 {
		t.Error("seeded admin must carry a starter notification")
	}

	college, ok := s.GetCollege("uni-1")
	if !ok {
		t.Fatal("expected seeded college uni-1")
	}
	ci := college.CourseByName("Computer Science")
	if ci < 0 {
		t.Fatal("expected Computer Science course at uni-1")
	}
	cs := college.Courses[ci]
	if cs.EnrollmentCount <= 0 || cs.EnrollmentCount > cs.TotalSeats {
		t.Errorf("implausible seed enrollment: %d/%d", cs.EnrollmentCount, cs.TotalSeats)
	}
}
