package model

import "time"

// PaymentStatus is the lifecycle of a fee payment attempt.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentConfirmed PaymentStatus = "Confirmed"
	PaymentFailed    PaymentStatus = "Failed"
)

// PaymentTransaction is one record per fee payment attempt. It is created
// when a student pays an admission fee and mutated only by an admin
// confirmation (Pending -> Confirmed).
type PaymentTransaction struct {
	PaymentID         string        `json:"payment_id"`
	ApplicationID     string        `json:"application_id"`
	StudentID         string        `json:"student_id"`
	StudentName       string        `json:"student_name"`
	CollegeID         string        `json:"college_id"`
	CollegeName       string        `json:"college_name"`
	CourseName        string        `json:"course_name"`
	Amount            float64       `json:"amount"`
	UPIID             string        `json:"upi_id,omitempty"`
	PaymentDate       time.Time     `json:"payment_date"`
	Status            PaymentStatus `json:"status"`
	ScreenshotURL     string        `json:"screenshot_url,omitempty"`
	VerifiedByCollege string        `json:"verified_by_college"` // "Yes" or "No"
	Remarks           string        `json:"remarks,omitempty"`
}
