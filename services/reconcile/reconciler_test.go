package reconcile

import (
	"strings"
	"testing"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/notify"
	"github.com/sahilchouksey/college-connect/store"
)

func newTestStore() *store.MemoryStore {
	st := store.NewMemoryStore()

	st.PutUser(model.User{
		ID:   "student-jessica",
		Name: "Jessica Martinez",
		Role: model.RoleStudent,
	})
	st.PutUser(model.User{
		ID:        "admin-apex",
		Name:      "Dr. Evelyn Reed",
		Role:      model.RoleCollegeAdmin,
		CollegeID: "uni-1",
	})

	st.ReplaceColleges([]model.College{
		{
			ID:   "uni-1",
			Name: "Apex University of Technology",
			Courses: []model.Course{
				{ID: "c1-1", Name: "Computer Science", EnrollmentCount: 225, TotalSeats: 250},
				{ID: "c1-2", Name: "Electrical Engineering", EnrollmentCount: 178, TotalSeats: 180},
			},
		},
		{
			ID:   "uni-2",
			Name: "Veridian College of Arts",
			Courses: []model.Course{
				{ID: "c2-1", Name: "Computer Science", EnrollmentCount: 10, TotalSeats: 40},
			},
		},
	})

	return st
}

func newTestReconciler(st *store.MemoryStore) *Reconciler {
	return NewReconciler(st, notify.NewEmitter(st), nil)
}

func baseApplication() model.Application {
	return model.Application{
		ID:                   "app-1",
		UserID:               "student-jessica",
		CollegeID:            "uni-1",
		CollegeName:          "Apex University of Technology",
		Course:               "Computer Science",
		Status:               model.StatusPending,
		ApplicantName:        "Jessica Martinez",
		ApplicantEmail:       "jessica@example.com",
		ContactNumber:        "5551234567",
		CommunicationHistory: []model.CommunicationEntry{},
	}
}

func TestSubmitApplicationNotifiesAdmin(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	app := baseApplication()
	app.ID = ""
	submitted := r.SubmitApplication(app)

	if submitted.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if submitted.Status != model.StatusPending {
		t.Fatalf("expected status Pending, got %q", submitted.Status)
	}

	admin, _ := st.GetUser("admin-apex")
	if len(admin.Notifications) != 1 {
		t.Fatalf("expected 1 admin notification, got %d", len(admin.Notifications))
	}
	n := admin.Notifications[0]
	if n.Title != "New Application" {
		t.Errorf("expected title %q, got %q", "New Application", n.Title)
	}
	if !strings.Contains(n.Message, "Jessica Martinez applied for Computer Science.") {
		t.Errorf("unexpected message: %q", n.Message)
	}
	if n.IsRead {
		t.Error("new notification must be unread")
	}

	student, _ := st.GetUser("student-jessica")
	if len(student.ApplicationIDs) != 1 || student.ApplicationIDs[0] != submitted.ID {
		t.Errorf("student application refs not updated: %v", student.ApplicationIDs)
	}
}

func TestReconcileStatusChangeNotifiesStudent(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusVerified

	result := r.Reconcile([]model.Application{updated})

	if result.Notified != 1 {
		t.Fatalf("expected 1 notification, got %d", result.Notified)
	}
	student, _ := st.GetUser("student-jessica")
	if len(student.Notifications) != 1 {
		t.Fatalf("expected 1 student notification, got %d", len(student.Notifications))
	}
	n := student.Notifications[0]
	if n.IsRead {
		t.Error("new notification must be unread")
	}
	want := "Your application for Computer Science at Apex University of Technology is now 'Verified'."
	if n.Message != want {
		t.Errorf("message mismatch:\n got %q\nwant %q", n.Message, want)
	}
}

func TestReconcileNonStatusChangeDoesNotNotify(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.LeadScore = "Hot"

	result := r.Reconcile([]model.Application{updated})

	if result.Notified != 0 {
		t.Fatalf("expected no notifications, got %d", result.Notified)
	}
	student, _ := st.GetUser("student-jessica")
	if len(student.Notifications) != 0 {
		t.Fatalf("expected no student notifications, got %d", len(student.Notifications))
	}
}

func TestReconcileAppointmentScheduledMessage(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusAppointmentScheduled
	updated.AppointmentDetails = &model.AppointmentDetails{
		Date:     "2024-08-01",
		Time:     "10:00 AM",
		Location: "Admissions Office",
	}

	r.Reconcile([]model.Application{updated})

	student, _ := st.GetUser("student-jessica")
	if len(student.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(student.Notifications))
	}
	msg := student.Notifications[0].Message
	for _, part := range []string{"2024-08-01", "10:00 AM", "Admissions Office"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message missing %q: %q", part, msg)
		}
	}
}

func TestReconcileRejectedMessageUsesRejectionNote(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusRejected
	updated.CommunicationHistory = []model.CommunicationEntry{
		{ID: "h1", Action: "Documents Verified", Notes: "All good"},
		{ID: "h2", Action: "Application Rejected", Notes: "Seats are full for this intake."},
	}

	r.Reconcile([]model.Application{updated})

	student, _ := st.GetUser("student-jessica")
	msg := student.Notifications[0].Message
	if !strings.Contains(msg, "Seats are full for this intake.") {
		t.Errorf("expected rejection note in message, got %q", msg)
	}
}

func TestReconcileRejectedMessageFallback(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusRejected

	r.Reconcile([]model.Application{updated})

	student, _ := st.GetUser("student-jessica")
	msg := student.Notifications[0].Message
	if !strings.Contains(msg, "Please contact the admissions office for details.") {
		t.Errorf("expected fallback message, got %q", msg)
	}
}

func TestReconcileSeatDeltaOnConfirm(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusConfirmed

	result := r.Reconcile([]model.Application{updated})

	key := SeatKey{CollegeID: "uni-1", CourseName: "Computer Science"}
	if result.SeatDeltas[key] != 1 {
		t.Fatalf("expected delta +1, got %d", result.SeatDeltas[key])
	}

	college, _ := st.GetCollege("uni-1")
	if got := college.Courses[0].EnrollmentCount; got != 226 {
		t.Errorf("expected enrollment 226, got %d", got)
	}

	// The same-named course at the other college is untouched.
	other, _ := st.GetCollege("uni-2")
	if got := other.Courses[0].EnrollmentCount; got != 10 {
		t.Errorf("expected uni-2 enrollment unchanged at 10, got %d", got)
	}
}

func TestReconcileSeatDeltaOnLeaveConfirmed(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	prev := baseApplication()
	prev.Status = model.StatusConfirmed
	st.AppendApplication(prev)

	updated := baseApplication()
	updated.Status = model.StatusRejected

	r.Reconcile([]model.Application{updated})

	college, _ := st.GetCollege("uni-1")
	if got := college.Courses[0].EnrollmentCount; got != 224 {
		t.Errorf("expected enrollment 224, got %d", got)
	}
}

func TestReconcileBatchNetsToZero(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	entering := baseApplication()
	entering.ID = "app-in"
	entering.Status = model.StatusVerified
	leaving := baseApplication()
	leaving.ID = "app-out"
	leaving.Status = model.StatusConfirmed
	st.AppendApplication(entering)
	st.AppendApplication(leaving)

	updatedIn := entering
	updatedIn.Status = model.StatusConfirmed
	updatedOut := leaving
	updatedOut.Status = model.StatusRejected

	result := r.Reconcile([]model.Application{updatedIn, updatedOut})

	key := SeatKey{CollegeID: "uni-1", CourseName: "Computer Science"}
	if result.SeatDeltas[key] != 0 {
		t.Fatalf("expected net delta 0, got %d", result.SeatDeltas[key])
	}
	college, _ := st.GetCollege("uni-1")
	if got := college.Courses[0].EnrollmentCount; got != 225 {
		t.Errorf("expected enrollment unchanged at 225, got %d", got)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)
	st.AppendApplication(baseApplication())

	updated := baseApplication()
	updated.Status = model.StatusConfirmed
	batch := []model.Application{updated}

	first := r.Reconcile(batch)
	second := r.Reconcile(batch)

	if first.Notified != 1 {
		t.Fatalf("first pass: expected 1 notification, got %d", first.Notified)
	}
	if second.Notified != 0 || len(second.SeatDeltas) != 0 {
		t.Fatalf("second pass must be a no-op, got notified=%d deltas=%d",
			second.Notified, len(second.SeatDeltas))
	}
	college, _ := st.GetCollege("uni-1")
	if got := college.Courses[0].EnrollmentCount; got != 226 {
		t.Errorf("enrollment must only move once, got %d", got)
	}
}

func TestReconcileUnknownStudentSkipsSilently(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	orphan := baseApplication()
	orphan.UserID = "student-gone"
	st.AppendApplication(orphan)

	updated := orphan
	updated.Status = model.StatusVerified

	// Must not panic and must still replace the collection.
	result := r.Reconcile([]model.Application{updated})

	if result.Notified != 0 {
		t.Fatalf("undelivered notifications must not be counted, got %d", result.Notified)
	}

	stored, ok := st.GetApplication("app-1")
	if !ok || stored.Status != model.StatusVerified {
		t.Fatalf("collection not replaced: %+v", stored)
	}
}

func TestRecordPaymentNotifiesAdmin(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	tx := r.RecordPayment(model.PaymentTransaction{
		ApplicationID: "app-1",
		StudentID:     "student-jessica",
		StudentName:   "Jessica Martinez",
		CollegeID:     "uni-1",
		CollegeName:   "Apex University of Technology",
		CourseName:    "Computer Science",
		Amount:        500,
	})

	if tx.Status != model.PaymentPending {
		t.Fatalf("expected Pending, got %q", tx.Status)
	}
	if tx.VerifiedByCollege != "No" {
		t.Fatalf("expected VerifiedByCollege No, got %q", tx.VerifiedByCollege)
	}

	admin, _ := st.GetUser("admin-apex")
	if len(admin.Notifications) != 1 {
		t.Fatalf("expected 1 admin notification, got %d", len(admin.Notifications))
	}
	msg := admin.Notifications[0].Message
	if !strings.Contains(msg, "Jessica Martinez paid ₹500 for Computer Science. Verification needed.") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestConfirmPayment(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	tx := r.RecordPayment(model.PaymentTransaction{
		ApplicationID: "app-1",
		StudentID:     "student-jessica",
		StudentName:   "Jessica Martinez",
		CollegeID:     "uni-1",
		CollegeName:   "Apex University of Technology",
		CourseName:    "Computer Science",
		Amount:        500,
	})

	confirmed, err := r.ConfirmPayment(tx.PaymentID, "UTR matched")
	if err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	if confirmed.Status != model.PaymentConfirmed {
		t.Errorf("expected Confirmed, got %q", confirmed.Status)
	}
	if confirmed.VerifiedByCollege != "Yes" {
		t.Errorf("expected VerifiedByCollege Yes, got %q", confirmed.VerifiedByCollege)
	}
	if confirmed.Remarks != "UTR matched" {
		t.Errorf("expected remarks to be stored, got %q", confirmed.Remarks)
	}

	student, _ := st.GetUser("student-jessica")
	if len(student.Notifications) != 1 {
		t.Fatalf("expected 1 student notification, got %d", len(student.Notifications))
	}
	n := student.Notifications[0]
	if n.Title != "Payment Confirmed" {
		t.Errorf("expected title Payment Confirmed, got %q", n.Title)
	}
	if !strings.Contains(n.Message, "₹500") || !strings.Contains(n.Message, "Computer Science") {
		t.Errorf("expected amount and course in message, got %q", n.Message)
	}

	stored, _ := st.GetPayment(tx.PaymentID)
	if stored.Status != model.PaymentConfirmed {
		t.Errorf("store not updated, status %q", stored.Status)
	}
}

func TestConfirmPaymentUnknownID(t *testing.T) {
	st := newTestStore()
	r := newTestReconciler(st)

	if _, err := r.ConfirmPayment("txn-missing", ""); err != ErrPaymentNotFound {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
