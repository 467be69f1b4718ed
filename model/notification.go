package model

import "time"

// NotificationType tags a notification for client-side grouping.
type NotificationType string

const (
	// Admin-facing types
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeStudent     NotificationType = "student"
	NotificationTypeSystem      NotificationType = "system"
	NotificationTypePayment     NotificationType = "payment"
	// Student-facing types
	NotificationTypeStatus    NotificationType = "status"
	NotificationTypeMessage   NotificationType = "message"
	NotificationTypeOffer     NotificationType = "offer"
	NotificationTypeAdmission NotificationType = "admission"
	NotificationTypeUpdate    NotificationType = "update"
)

// Notification is immutable once created except for the read flag.
// Only the emitter creates notifications; they are never deleted.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	Timestamp time.Time        `json:"timestamp"`
	Link      string           `json:"link,omitempty"`
}
