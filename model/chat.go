package model

import "time"

// ChatSender distinguishes the two sides of an application chat thread.
type ChatSender string

const (
	SenderStudent ChatSender = "student"
	SenderAdmin   ChatSender = "admin"
)

// ChatMessage is one message in the per-application chat log. Messages are
// append-only; the only mutation is marking them read.
type ChatMessage struct {
	ID            string     `json:"id"`
	ApplicationID string     `json:"application_id"`
	Sender        ChatSender `json:"sender"`
	Text          string     `json:"text"`
	Timestamp     time.Time  `json:"timestamp"`
	Read          bool       `json:"read"`
}
