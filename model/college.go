package model

// Course is an academic program offered by a college.
// EnrollmentCount is owned by the reconciler: it changes only when an
// application transitions into or out of Confirmed, never by direct edit.
type Course struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Duration          string `json:"duration"`
	Fees              string `json:"fees"`
	Description       string `json:"description"`
	IsPremium         bool   `json:"is_premium,omitempty"`
	IsNew             bool   `json:"is_new,omitempty"`
	EnrollmentCount   int    `json:"enrollment_count"`
	TotalSeats        int    `json:"total_seats,omitempty"`
	Eligibility       string `json:"eligibility,omitempty"`
	AdmissionOpenDate string `json:"admission_open_date,omitempty"`
	AdmissionEndDate  string `json:"admission_end_date,omitempty"`
	CourseImage       string `json:"course_image,omitempty"`
}

// CollegeEvent is a campus event advertised on a college profile.
type CollegeEvent struct {
	ID          string `json:"id"`
	MediaURL    string `json:"media_url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location,omitempty"`
}

// College represents one institution and its nested courses and events.
type College struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Location           string         `json:"location"`
	Phone              string         `json:"phone,omitempty"`
	PhotoURL           string         `json:"photo_url"`
	LogoURL            string         `json:"logo_url"`
	Description        string         `json:"description"`
	ShortDescription   string         `json:"short_description"`
	Courses            []Course       `json:"courses"`
	AdmissionOpenDate  string         `json:"admission_open_date"`
	AdmissionCloseDate string         `json:"admission_close_date"`
	Events             []CollegeEvent `json:"events"`
	IsFeatured         bool           `json:"is_featured,omitempty"`
	AdmissionFee       float64        `json:"admission_fee,omitempty"`
	UPIID              string         `json:"upi_id,omitempty"`
}

// CourseByName returns the index of the named course, or -1.
func (cl *College) CourseByName(name string) int {
	for i := range cl.Courses {
		if cl.Courses[i].Name == name {
			return i
		}
	}
	return -1
}
