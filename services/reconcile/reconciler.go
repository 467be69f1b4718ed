package reconcile

import (
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/services/notify"
)

// ErrPaymentNotFound is returned when a confirmation targets an unknown
// payment transaction.
var ErrPaymentNotFound = errors.New("payment transaction not found")

// Store is the slice of the entity store the reconciler mutates.
type Store interface {
	GetUser(id string) (model.User, bool)
	PutUser(u model.User)
	ListApplications() []model.Application
	AppendApplication(app model.Application)
	ReplaceApplications(apps []model.Application)
	ListColleges() []model.College
	ReplaceColleges(cs []model.College)
	GetPayment(paymentID string) (model.PaymentTransaction, bool)
	AppendPayment(tx model.PaymentTransaction)
	PutPayment(tx model.PaymentTransaction)
}

// SeatKey identifies the course whose enrollment count a batch touched.
// Keying includes the college id so equally named courses at different
// colleges never conflate.
type SeatKey struct {
	CollegeID  string
	CourseName string
}

// Result summarizes one reconcile pass.
type Result struct {
	Notified   int
	SeatDeltas map[SeatKey]int
}

// Reconciler compares application batches against the stored snapshot and
// derives student notifications and enrollment-count adjustments. It is
// the only mutator of Course.EnrollmentCount.
type Reconciler struct {
	store   Store
	emitter *notify.Emitter
	mirror  mirror.Notifier
	log     *logrus.Entry
	now     func() time.Time
}

// NewReconciler creates a reconciler over the given store. The mirror is a
// best-effort side channel; pass mirror.Nop() to disable it.
func NewReconciler(store Store, emitter *notify.Emitter, m mirror.Notifier) *Reconciler {
	if m == nil {
		m = mirror.Nop()
	}
	return &Reconciler{
		store:   store,
		emitter: emitter,
		mirror:  m,
		log:     logrus.WithField("component", "reconcile"),
		now:     time.Now,
	}
}

// SubmitApplication records a new application, links it to the owning
// student and alerts the college's admin.
func (r *Reconciler) SubmitApplication(app model.Application) model.Application {
	if app.ID == "" {
		app.ID = "app-" + uuid.NewString()
	}
	if app.Status == "" {
		app.Status = model.StatusPending
	}
	if app.SubmittedDate.IsZero() {
		app.SubmittedDate = r.now()
	}
	r.store.AppendApplication(app)

	if student, ok := r.store.GetUser(app.UserID); ok {
		student.ApplicationIDs = append(student.ApplicationIDs, app.ID)
		r.store.PutUser(student)
	}

	r.emitter.EmitToCollegeAdmin(app.CollegeID,
		model.NotificationTypeApplication,
		"New Application",
		notify.NewApplicationMessage(app.ApplicantName, app.Course),
		"/admin/admissions")

	r.mirror.Notify(mirror.Event{Type: "studentData", Data: map[string]any{
		"fullName":        app.ApplicantName,
		"email":           app.ApplicantEmail,
		"phone":           app.ContactNumber,
		"selectedCourse":  app.Course,
		"applicationDate": app.SubmittedDate.Format(time.RFC3339),
		"status":          string(app.Status),
	}})

	return app
}

// Reconcile replaces the application collection with the updated batch and
// propagates the side effects of every change: one notification per status
// change to the owning student, and enrollment-count deltas for every
// transition into or out of Confirmed.
func (r *Reconciler) Reconcile(updated []model.Application) Result {
	previous := r.store.ListApplications()
	changes, deltas := diff(previous, updated)

	notified := 0
	for _, app := range changes {
		if _, ok := r.emitter.Emit(app.UserID,
			model.NotificationTypeStatus,
			"Application Status Updated",
			notify.StatusMessage(app),
			"/status"); ok {
			notified++
		}
	}

	if len(deltas) > 0 {
		r.applySeatDeltas(deltas)
	}

	r.store.ReplaceApplications(updated)

	r.log.WithFields(logrus.Fields{
		"batch_size":  len(updated),
		"notified":    notified,
		"seat_deltas": len(deltas),
	}).Info("reconciled application batch")

	return Result{Notified: notified, SeatDeltas: deltas}
}

// diff compares the updated batch against the previous snapshot by id and
// value. It returns the applications whose status changed (in batch order)
// and the accumulated seat deltas. Applications without a previous
// snapshot, or equal to it, contribute nothing.
func diff(previous, updated []model.Application) ([]model.Application, map[SeatKey]int) {
	prevByID := make(map[string]model.Application, len(previous))
	for _, app := range previous {
		prevByID[app.ID] = app
	}

	var changed []model.Application
	deltas := make(map[SeatKey]int)

	for _, app := range updated {
		prev, ok := prevByID[app.ID]
		if !ok || reflect.DeepEqual(prev, app) {
			continue
		}
		if prev.Status == app.Status {
			continue
		}

		changed = append(changed, app)

		key := SeatKey{CollegeID: app.CollegeID, CourseName: app.Course}
		if app.Status == model.StatusConfirmed {
			deltas[key]++
		}
		if prev.Status == model.StatusConfirmed {
			deltas[key]--
		}
	}

	return changed, deltas
}

// applySeatDeltas folds the accumulated deltas into the matching courses
// in a single pass over colleges. Zero deltas and unknown courses are
// skipped without error.
func (r *Reconciler) applySeatDeltas(deltas map[SeatKey]int) {
	colleges := r.store.ListColleges()
	for ci := range colleges {
		courses := make([]model.Course, len(colleges[ci].Courses))
		copy(courses, colleges[ci].Courses)
		for i := range courses {
			key := SeatKey{CollegeID: colleges[ci].ID, CourseName: courses[i].Name}
			if change, ok := deltas[key]; ok && change != 0 {
				courses[i].EnrollmentCount += change
			}
		}
		colleges[ci].Courses = courses
	}
	r.store.ReplaceColleges(colleges)
}

// RecordPayment stores a new fee payment attempt and alerts the college's
// admin that verification is needed.
func (r *Reconciler) RecordPayment(tx model.PaymentTransaction) model.PaymentTransaction {
	if tx.PaymentID == "" {
		tx.PaymentID = "txn-" + uuid.NewString()
	}
	if tx.Status == "" {
		tx.Status = model.PaymentPending
	}
	if tx.VerifiedByCollege == "" {
		tx.VerifiedByCollege = "No"
	}
	if tx.PaymentDate.IsZero() {
		tx.PaymentDate = r.now()
	}
	r.store.AppendPayment(tx)

	r.emitter.EmitToCollegeAdmin(tx.CollegeID,
		model.NotificationTypePayment,
		"Payment Received",
		notify.PaymentReceivedMessage(tx),
		"/admin/payments")

	r.mirror.Notify(mirror.Event{Type: "paymentData", Data: map[string]any{
		"paymentId":   tx.PaymentID,
		"studentName": tx.StudentName,
		"courseName":  tx.CourseName,
		"amount":      tx.Amount,
		"status":      string(tx.Status),
	}})

	return tx
}

// ConfirmPayment marks a pending transaction as verified by the college
// and notifies the paying student.
func (r *Reconciler) ConfirmPayment(paymentID, remarks string) (model.PaymentTransaction, error) {
	tx, ok := r.store.GetPayment(paymentID)
	if !ok {
		return model.PaymentTransaction{}, ErrPaymentNotFound
	}

	tx.Status = model.PaymentConfirmed
	tx.VerifiedByCollege = "Yes"
	tx.Remarks = remarks
	r.store.PutPayment(tx)

	r.emitter.Emit(tx.StudentID,
		model.NotificationTypeStatus,
		"Payment Confirmed",
		notify.PaymentConfirmedMessage(tx),
		"/wallet")

	r.mirror.Notify(mirror.Event{Type: "paymentData", Data: map[string]any{
		"paymentId":         tx.PaymentID,
		"status":            string(tx.Status),
		"verifiedByCollege": tx.VerifiedByCollege,
		"remarks":           tx.Remarks,
	}})

	return tx, nil
}
