package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/sahilchouksey/college-connect/model"
)

// fakeUserStore is a minimal in-memory UserStore for emitter tests.
type fakeUserStore struct {
	users map[string]model.User
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]model.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetUser(id string) (model.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

func (s *fakeUserStore) ListUsers() []model.User {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *fakeUserStore) PutUser(u model.User) {
	s.users[u.ID] = u
}

func TestEmitPrependsNewestFirst(t *testing.T) {
	st := newFakeUserStore(model.User{ID: "u1", Role: model.RoleStudent})
	e := NewEmitter(st)

	clock := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	e.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	if _, ok := e.Emit("u1", model.NotificationTypeStatus, "First", "first message", "/status"); !ok {
		t.Fatal("first emit failed")
	}
	if _, ok := e.Emit("u1", model.NotificationTypeStatus, "Second", "second message", "/status"); !ok {
		t.Fatal("second emit failed")
	}

	u, _ := st.GetUser("u1")
	if len(u.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(u.Notifications))
	}
	if u.Notifications[0].Title != "Second" || u.Notifications[1].Title != "First" {
		t.Errorf("expected newest-first order, got [%q, %q]",
			u.Notifications[0].Title, u.Notifications[1].Title)
	}
	if u.Notifications[0].IsRead {
		t.Error("new notification must start unread")
	}
	if u.Notifications[0].ID == "" || u.Notifications[0].ID == u.Notifications[1].ID {
		t.Error("notification ids must be unique and non-empty")
	}
}

func TestEmitUnknownUserIsSilentNoOp(t *testing.T) {
	st := newFakeUserStore()
	e := NewEmitter(st)

	n, ok := e.Emit("nobody", model.NotificationTypeStatus, "T", "m", "/")
	if ok {
		t.Fatal("expected delivery to be skipped")
	}
	if n.ID != "" {
		t.Errorf("expected zero notification, got %+v", n)
	}
}

func TestEmitToCollegeAdmin(t *testing.T) {
	st := newFakeUserStore(
		model.User{ID: "s1", Role: model.RoleStudent},
		model.User{ID: "a1", Role: model.RoleCollegeAdmin, CollegeID: "uni-1"},
		model.User{ID: "a2", Role: model.RoleCollegeAdmin, CollegeID: "uni-2"},
	)
	e := NewEmitter(st)

	if _, ok := e.EmitToCollegeAdmin("uni-2", model.NotificationTypeApplication, "New Application", "m", "/admin/admissions"); !ok {
		t.Fatal("expected delivery to uni-2 admin")
	}

	a1, _ := st.GetUser("a1")
	a2, _ := st.GetUser("a2")
	if len(a1.Notifications) != 0 {
		t.Errorf("uni-1 admin must not be notified, got %d", len(a1.Notifications))
	}
	if len(a2.Notifications) != 1 {
		t.Errorf("expected 1 notification for uni-2 admin, got %d", len(a2.Notifications))
	}

	if _, ok := e.EmitToCollegeAdmin("uni-9", model.NotificationTypeApplication, "T", "m", "/"); ok {
		t.Error("expected no delivery for a college without an admin")
	}
}

func TestStatusMessageVariants(t *testing.T) {
	app := model.Application{
		Course:      "Data Science",
		CollegeName: "Apex University of Technology",
		Status:      model.StatusVerified,
	}
	if got := StatusMessage(app); got != "Your application for Data Science at Apex University of Technology is now 'Verified'." {
		t.Errorf("default variant: %q", got)
	}

	app.Status = model.StatusAppointmentScheduled
	app.AppointmentDetails = &model.AppointmentDetails{Date: "2024-08-01", Time: "10:00 AM", Location: "Admissions Office"}
	got := StatusMessage(app)
	if !strings.Contains(got, "2024-08-01") || !strings.Contains(got, "10:00 AM") || !strings.Contains(got, "Admissions Office") {
		t.Errorf("appointment variant missing details: %q", got)
	}

	// Appointment status without details falls through to the default text.
	app.AppointmentDetails = nil
	if got := StatusMessage(app); !strings.Contains(got, "is now 'Appointment Scheduled'.") {
		t.Errorf("appointment fallback: %q", got)
	}
}

func TestPaymentMessagesFormatWholeRupees(t *testing.T) {
	tx := model.PaymentTransaction{
		StudentName: "Jessica Martinez",
		CourseName:  "Computer Science",
		CollegeName: "Apex University of Technology",
		Amount:      500,
	}
	if got := PaymentReceivedMessage(tx); got != "Jessica Martinez paid ₹500 for Computer Science. Verification needed." {
		t.Errorf("received message: %q", got)
	}
	if got := PaymentConfirmedMessage(tx); !strings.Contains(got, "₹500") {
		t.Errorf("confirmed message: %q", got)
	}

	tx.Amount = 499.5
	if got := PaymentReceivedMessage(tx); !strings.Contains(got, "₹499.5") {
		t.Errorf("fractional amount: %q", got)
	}
}
