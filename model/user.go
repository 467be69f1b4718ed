package model

// Role identifies how a user interacts with the marketplace.
// There is no authentication; the role is selected client-side.
type Role string

const (
	RoleStudent      Role = "STUDENT"
	RoleCollegeAdmin Role = "COLLEGE_ADMIN"
)

// User represents a student or a college administrator.
// A user owns its notification list (newest first) and, for students,
// back-references into the central application collection.
type User struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone,omitempty"`
	Role               Role           `json:"role"`
	CollegeID          string         `json:"college_id,omitempty"` // set for COLLEGE_ADMIN only
	ProfilePhotoURL    string         `json:"profile_photo_url,omitempty"`
	FavoriteCollegeIDs []string       `json:"favorite_college_ids"`
	FavoriteCourseIDs  []string       `json:"favorite_course_ids"`
	FavoriteEventIDs   []string       `json:"favorite_event_ids"`
	ApplicationIDs     []string       `json:"application_ids"`
	Notifications      []Notification `json:"notifications"`
}

// IsAdminOf reports whether the user administers the given college.
func (u *User) IsAdminOf(collegeID string) bool {
	return u.Role == RoleCollegeAdmin && u.CollegeID == collegeID
}
