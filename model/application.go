package model

import "time"

// ApplicationStatus is the lifecycle stage of an application. The set is
// fixed but transitions are unconstrained; side effects key on transitions
// into and out of StatusConfirmed.
type ApplicationStatus string

const (
	StatusPending              ApplicationStatus = "Pending"
	StatusVerified             ApplicationStatus = "Verified"
	StatusAppointmentScheduled ApplicationStatus = "Appointment Scheduled"
	StatusConfirmed            ApplicationStatus = "Confirmed"
	StatusRejected             ApplicationStatus = "Rejected"
)

// CommunicationEntry is one append-only log line on an application.
type CommunicationEntry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	Notes  string    `json:"notes"`
}

// AppointmentDetails is present only while an application is in the
// Appointment Scheduled status.
type AppointmentDetails struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// DocumentURLs holds uploaded certificate links for an application.
type DocumentURLs struct {
	Cert10th string `json:"cert_10th,omitempty"`
	Cert12th string `json:"cert_12th,omitempty"`
}

// Application is one student's course application at one college.
// Course is a denormalized name string, matching the source data.
type Application struct {
	ID                   string               `json:"id"`
	UserID               string               `json:"user_id"`
	CollegeID            string               `json:"college_id"`
	CollegeName          string               `json:"college_name"`
	Course               string               `json:"course"`
	Status               ApplicationStatus    `json:"status"`
	SubmittedDate        time.Time            `json:"submitted_date"`
	ApplicantName        string               `json:"applicant_name"`
	ApplicantEmail       string               `json:"applicant_email"`
	ContactNumber        string               `json:"contact_number"`
	DocumentURLs         DocumentURLs         `json:"document_urls"`
	AppointmentDetails   *AppointmentDetails  `json:"appointment_details,omitempty"`
	LeadScore            string               `json:"lead_score,omitempty"` // Hot, Warm, Cold
	AssignedTo           string               `json:"assigned_to,omitempty"`
	CommunicationHistory []CommunicationEntry `json:"communication_history"`
}

// LatestEntry returns the most recent communication entry with the given
// action, or nil when none exists.
func (a *Application) LatestEntry(action string) *CommunicationEntry {
	for i := len(a.CommunicationHistory) - 1; i >= 0; i-- {
		if a.CommunicationHistory[i].Action == action {
			return &a.CommunicationHistory[i]
		}
	}
	return nil
}
