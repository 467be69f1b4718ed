package notify

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sahilchouksey/college-connect/model"
)

// UserStore is the slice of the entity store the emitter writes through.
type UserStore interface {
	GetUser(id string) (model.User, bool)
	ListUsers() []model.User
	PutUser(u model.User)
}

// Emitter constructs notification records and prepends them to the target
// user's list. It is the only writer of notifications in the system.
type Emitter struct {
	store UserStore
	log   *logrus.Entry
	now   func() time.Time
}

// NewEmitter creates a new emitter over the given user store.
func NewEmitter(store UserStore) *Emitter {
	return &Emitter{
		store: store,
		log:   logrus.WithField("component", "notify"),
		now:   time.Now,
	}
}

// Emit creates a notification for the target user and prepends it so the
// list stays newest-first. An unknown target user is skipped silently;
// the second return value reports whether the notification was delivered.
func (e *Emitter) Emit(targetUserID string, typ model.NotificationType, title, message, link string) (model.Notification, bool) {
	user, ok := e.store.GetUser(targetUserID)
	if !ok {
		e.log.WithField("user_id", targetUserID).Debug("notification target not found, skipping")
		return model.Notification{}, false
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		IsRead:    false,
		Timestamp: e.now(),
		Link:      link,
	}

	user.Notifications = append([]model.Notification{n}, user.Notifications...)
	e.store.PutUser(user)
	return n, true
}

// EmitToCollegeAdmin delivers a notification to the admin user of the
// given college. When no admin matches the college id, nothing happens.
func (e *Emitter) EmitToCollegeAdmin(collegeID string, typ model.NotificationType, title, message, link string) (model.Notification, bool) {
	for _, u := range e.store.ListUsers() {
		if u.IsAdminOf(collegeID) {
			return e.Emit(u.ID, typ, title, message, link)
		}
	}
	e.log.WithField("college_id", collegeID).Debug("no admin user for college, skipping")
	return model.Notification{}, false
}

// NewApplicationMessage is the admin-facing alert for a fresh application.
func NewApplicationMessage(applicantName, course string) string {
	return fmt.Sprintf("%s applied for %s.", applicantName, course)
}

// StatusMessage builds the student-facing message for a status change on
// the updated application.
func StatusMessage(app model.Application) string {
	switch {
	case app.Status == model.StatusAppointmentScheduled && app.AppointmentDetails != nil:
		d := app.AppointmentDetails
		return fmt.Sprintf("Your college visit for %s at %s has been scheduled for %s at %s, %s.",
			app.Course, app.CollegeName, d.Date, d.Time, d.Location)
	case app.Status == model.StatusRejected:
		reason := "Please contact the admissions office for details."
		if entry := app.LatestEntry("Application Rejected"); entry != nil && entry.Notes != "" {
			reason = entry.Notes
		}
		return fmt.Sprintf("We regret to inform you that your application for %s at %s has been rejected. %s",
			app.Course, app.CollegeName, reason)
	default:
		return fmt.Sprintf("Your application for %s at %s is now '%s'.",
			app.Course, app.CollegeName, app.Status)
	}
}

// PaymentReceivedMessage is the admin-facing alert for a new payment.
func PaymentReceivedMessage(tx model.PaymentTransaction) string {
	return fmt.Sprintf("%s paid ₹%s for %s. Verification needed.",
		tx.StudentName, formatAmount(tx.Amount), tx.CourseName)
}

// PaymentConfirmedMessage is the student-facing confirmation message.
func PaymentConfirmedMessage(tx model.PaymentTransaction) string {
	return fmt.Sprintf("Your payment of ₹%s for %s at %s has been confirmed.",
		formatAmount(tx.Amount), tx.CourseName, tx.CollegeName)
}

// formatAmount renders whole-rupee amounts without a decimal tail.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
