package college

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/middleware"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// CollegeHandler serves college browsing and the admin profile/course
// management screens. Profile changes are mirrored to the webhook sink.
type CollegeHandler struct {
	store     store.Storage
	mirror    mirror.Notifier
	validator *validation.Validator
}

// NewCollegeHandler creates a new college handler.
func NewCollegeHandler(st store.Storage, m mirror.Notifier) *CollegeHandler {
	if m == nil {
		m = mirror.Nop()
	}
	return &CollegeHandler{
		store:     st,
		mirror:    m,
		validator: validation.NewValidator(),
	}
}

// ListColleges handles GET /api/v1/colleges
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	colleges := h.store.ListColleges()
	return response.Success(c, fiber.Map{
		"colleges": colleges,
		"total":    len(colleges),
	})
}

// GetCollege handles GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	college, ok := h.store.GetCollege(c.Params("id"))
	if !ok {
		return response.NotFound(c, "College not found")
	}
	return response.Success(c, college)
}

// UpdateCollegeRequest is the editable part of a college profile. Courses
// are managed through the course endpoints, never replaced wholesale here.
type UpdateCollegeRequest struct {
	Name               string  `json:"name" validate:"required"`
	Location           string  `json:"location" validate:"required"`
	Phone              string  `json:"phone"`
	PhotoURL           string  `json:"photo_url"`
	LogoURL            string  `json:"logo_url"`
	Description        string  `json:"description"`
	ShortDescription   string  `json:"short_description"`
	AdmissionOpenDate  string  `json:"admission_open_date"`
	AdmissionCloseDate string  `json:"admission_close_date"`
	AdmissionFee       float64 `json:"admission_fee"`
	UPIID              string  `json:"upi_id"`
}

// UpdateCollege handles PUT /api/v1/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	college, found := h.store.GetCollege(c.Params("id"))
	if !found {
		return response.NotFound(c, "College not found")
	}
	if !user.IsAdminOf(college.ID) {
		return response.Forbidden(c, "You can only manage your own college")
	}

	var req UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	college.Name = req.Name
	college.Location = req.Location
	college.Phone = req.Phone
	college.PhotoURL = req.PhotoURL
	college.LogoURL = req.LogoURL
	college.Description = req.Description
	college.ShortDescription = req.ShortDescription
	college.AdmissionOpenDate = req.AdmissionOpenDate
	college.AdmissionCloseDate = req.AdmissionCloseDate
	college.AdmissionFee = req.AdmissionFee
	college.UPIID = req.UPIID
	h.store.PutCollege(college)

	h.mirror.Notify(mirror.Event{Type: "collegeData", Data: map[string]any{
		"collegeName":        college.Name,
		"location":           college.Location,
		"phone":              college.Phone,
		"upiId":              college.UPIID,
		"bannerImageURL":     college.PhotoURL,
		"logoURL":            college.LogoURL,
		"fullDescription":    college.Description,
		"shortDescription":   college.ShortDescription,
		"admissionOpenDate":  college.AdmissionOpenDate,
		"admissionCloseDate": college.AdmissionCloseDate,
	}})

	return response.SuccessWithMessage(c, "College profile updated", college)
}

// CourseRequest is the editable part of a course. EnrollmentCount is
// deliberately absent: only the reconciler moves it.
type CourseRequest struct {
	Name              string `json:"name" validate:"required"`
	Duration          string `json:"duration" validate:"required"`
	Fees              string `json:"fees"`
	Description       string `json:"description"`
	IsPremium         bool   `json:"is_premium"`
	IsNew             bool   `json:"is_new"`
	TotalSeats        int    `json:"total_seats"`
	Eligibility       string `json:"eligibility"`
	AdmissionOpenDate string `json:"admission_open_date"`
	AdmissionEndDate  string `json:"admission_end_date"`
	CourseImage       string `json:"course_image"`
}

// AddCourse handles POST /api/v1/colleges/:id/courses
func (h *CollegeHandler) AddCourse(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	college, found := h.store.GetCollege(c.Params("id"))
	if !found {
		return response.NotFound(c, "College not found")
	}
	if !user.IsAdminOf(college.ID) {
		return response.Forbidden(c, "You can only manage your own college")
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	course := model.Course{
		ID:                "course-" + uuid.NewString(),
		Name:              req.Name,
		Duration:          req.Duration,
		Fees:              req.Fees,
		Description:       req.Description,
		IsPremium:         req.IsPremium,
		IsNew:             req.IsNew,
		TotalSeats:        req.TotalSeats,
		Eligibility:       req.Eligibility,
		AdmissionOpenDate: req.AdmissionOpenDate,
		AdmissionEndDate:  req.AdmissionEndDate,
		CourseImage:       req.CourseImage,
	}

	courses := make([]model.Course, len(college.Courses), len(college.Courses)+1)
	copy(courses, college.Courses)
	college.Courses = append(courses, course)
	h.store.PutCollege(college)

	h.mirrorCourse(college, course)

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/colleges/:id/courses/:courseId
func (h *CollegeHandler) UpdateCourse(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	college, found := h.store.GetCollege(c.Params("id"))
	if !found {
		return response.NotFound(c, "College not found")
	}
	if !user.IsAdminOf(college.ID) {
		return response.Forbidden(c, "You can only manage your own college")
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	courseID := c.Params("courseId")
	courses := make([]model.Course, len(college.Courses))
	copy(courses, college.Courses)

	var updated *model.Course
	for i := range courses {
		if courses[i].ID == courseID {
			// EnrollmentCount is carried over untouched.
			courses[i].Name = req.Name
			courses[i].Duration = req.Duration
			courses[i].Fees = req.Fees
			courses[i].Description = req.Description
			courses[i].IsPremium = req.IsPremium
			courses[i].IsNew = req.IsNew
			courses[i].TotalSeats = req.TotalSeats
			courses[i].Eligibility = req.Eligibility
			courses[i].AdmissionOpenDate = req.AdmissionOpenDate
			courses[i].AdmissionEndDate = req.AdmissionEndDate
			courses[i].CourseImage = req.CourseImage
			updated = &courses[i]
			break
		}
	}
	if updated == nil {
		return response.NotFound(c, "Course not found")
	}

	college.Courses = courses
	h.store.PutCollege(college)

	h.mirrorCourse(college, *updated)

	return response.SuccessWithMessage(c, "Course updated", *updated)
}

func (h *CollegeHandler) mirrorCourse(college model.College, course model.Course) {
	h.mirror.Notify(mirror.Event{Type: "courseData", Data: map[string]any{
		"collegeName": college.Name,
		"courseName":  course.Name,
		"duration":    course.Duration,
		"fees":        course.Fees,
		"totalSeats":  course.TotalSeats,
		"eligibility": course.Eligibility,
	}})
}
