package model

import "time"

// ForumReply is one reply on a community forum post.
type ForumReply struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	AuthorPhotoURL string    `json:"author_photo_url,omitempty"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

// ForumPost is a community forum thread. Posts and replies are append-only;
// Views and LastActivity are the only counters that move.
type ForumPost struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	AuthorID       string       `json:"author_id"`
	AuthorName     string       `json:"author_name"`
	AuthorPhotoURL string       `json:"author_photo_url,omitempty"`
	Content        string       `json:"content"`
	Tags           []string     `json:"tags"`
	Timestamp      time.Time    `json:"timestamp"`
	LastActivity   time.Time    `json:"last_activity"`
	Views          int          `json:"views"`
	Replies        []ForumReply `json:"replies"`
}
