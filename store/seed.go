package store

import (
	"time"

	"github.com/sahilchouksey/college-connect/model"
)

// Seed loads the static fixtures the application boots with. The store is
// the only owner of these collections; everything resets on restart.
func (s *MemoryStore) Seed() {
	seededAt := time.Date(2024, time.July, 23, 11, 45, 0, 0, time.UTC)

	s.ReplaceColleges([]model.College{
		{
			ID:               "uni-1",
			Name:             "Apex University of Technology",
			Location:         "Bangalore, Karnataka",
			Phone:            "080-4455-6677",
			PhotoURL:         "https://picsum.photos/seed/uni-1/1200/400",
			LogoURL:          "https://picsum.photos/seed/uni-1-logo/200/200",
			Description:      "A premier institution for engineering and technology education.",
			ShortDescription: "Premier engineering and technology institution.",
			Courses: []model.Course{
				{
					ID: "c1-1", Name: "Computer Science", Duration: "4 Years",
					Fees:        "₹16,00,000/year",
					Description: "Explore the depths of algorithms, data structures, and artificial intelligence.",
					IsNew:       true, EnrollmentCount: 225, TotalSeats: 250,
					Eligibility:       "10+2 with Physics, Chemistry, Maths (PCM) with 60% aggregate",
					AdmissionOpenDate: "2024-06-01", AdmissionEndDate: "2024-08-31",
				},
				{
					ID: "c1-2", Name: "Electrical Engineering", Duration: "4 Years",
					Fees:            "₹15,50,000/year",
					Description:     "Design and build the electronic systems of the future.",
					EnrollmentCount: 178, TotalSeats: 180,
					Eligibility:       "10+2 with PCM with 55% aggregate",
					AdmissionOpenDate: "2024-06-01", AdmissionEndDate: "2024-08-31",
				},
				{
					ID: "c1-3", Name: "Data Science", Duration: "2 Years (Masters)",
					Fees:        "₹18,00,000/year",
					Description: "Unlock insights from massive datasets.",
					IsPremium:   true, EnrollmentCount: 120, TotalSeats: 120,
					Eligibility:       "Bachelor's degree in a quantitative field",
					AdmissionOpenDate: "2024-01-01", AdmissionEndDate: "2024-03-31",
				},
			},
			AdmissionOpenDate:  "2024-06-01",
			AdmissionCloseDate: "2024-08-31",
			AdmissionFee:       500,
			UPIID:              "apexuniversity@upi",
		},
		{
			ID:               "uni-2",
			Name:             "Veridian College of Arts",
			Location:         "Pune, Maharashtra",
			PhotoURL:         "https://picsum.photos/seed/uni-2/1200/400",
			LogoURL:          "https://picsum.photos/seed/uni-2-logo/200/200",
			Description:      "Nurturing creative minds across fine arts, design and performance.",
			ShortDescription: "Creative arts and design college.",
			Courses: []model.Course{
				{
					ID: "c2-1", Name: "Fine Arts", Duration: "3 Years",
					Fees:            "₹8,50,000/year",
					Description:     "Master painting, sculpture, and other traditional media.",
					EnrollmentCount: 95, TotalSeats: 100,
					Eligibility:       "10+2 in any stream",
					AdmissionOpenDate: "2024-07-01", AdmissionEndDate: "2024-09-30",
				},
				{
					ID: "c2-2", Name: "Graphic Design", Duration: "3 Years",
					Fees:            "₹9,00,000/year",
					Description:     "Learn the principles of visual communication and digital design.",
					EnrollmentCount: 150, TotalSeats: 150,
					Eligibility:       "10+2 with a portfolio submission",
					AdmissionOpenDate: "2024-07-01", AdmissionEndDate: "2024-09-30",
				},
				{
					ID: "c2-3", Name: "Performing Arts", Duration: "4 Years",
					Fees:            "₹9,75,000/year",
					Description:     "Train in theatre, dance, and music performance.",
					EnrollmentCount: 50, TotalSeats: 80,
				},
			},
			AdmissionOpenDate:  "2024-07-01",
			AdmissionCloseDate: "2024-09-30",
			AdmissionFee:       350,
			UPIID:              "veridianarts@upi",
		},
		{
			ID:               "uni-3",
			Name:             "Sterling Business School",
			Location:         "Mumbai, Maharashtra",
			PhotoURL:         "https://picsum.photos/seed/uni-3/1200/400",
			LogoURL:          "https://picsum.photos/seed/uni-3-logo/200/200",
			Description:      "Shaping the next generation of business leaders.",
			ShortDescription: "Top-tier business school.",
			Courses: []model.Course{
				{
					ID: "c3-1", Name: "MBA", Duration: "2 Years",
					Fees:        "₹25,00,000/year",
					Description: "A comprehensive program for aspiring business leaders.",
					IsPremium:   true, EnrollmentCount: 15, TotalSeats: 200,
					Eligibility:       "Bachelors degree + 2 years work experience",
					AdmissionOpenDate: "2024-09-01", AdmissionEndDate: "2025-01-15",
				},
				{
					ID: "c3-2", Name: "Finance", Duration: "4 Years",
					Fees:            "₹12,00,000/year",
					Description:     "Specialize in corporate finance, investments, and financial markets.",
					EnrollmentCount: 175, TotalSeats: 175,
					Eligibility:       "10+2 with Commerce or Maths",
					AdmissionOpenDate: "2024-07-15", AdmissionEndDate: "2024-10-30",
				},
				{
					ID: "c3-3", Name: "Marketing", Duration: "4 Years",
					Fees:            "₹11,50,000/year",
					Description:     "Understand consumer behavior and modern marketing strategies.",
					EnrollmentCount: 158, TotalSeats: 160,
					Eligibility:       "10+2 in any stream with 50% aggregate",
					AdmissionOpenDate: "2024-07-15", AdmissionEndDate: "2024-10-30",
				},
			},
			AdmissionOpenDate:  "2024-09-01",
			AdmissionCloseDate: "2025-01-15",
			AdmissionFee:       750,
			UPIID:              "sterlingbiz@upi",
		},
	})

	s.PutUser(model.User{
		ID:                 "student-001",
		Name:               "Alex Doe",
		Email:              "student@cguide.com",
		Phone:              "1234567890",
		Role:               model.RoleStudent,
		ProfilePhotoURL:    "https://i.pravatar.cc/150?u=student-001",
		FavoriteCollegeIDs: []string{},
		FavoriteCourseIDs:  []string{},
		FavoriteEventIDs:   []string{},
		ApplicationIDs:     []string{},
		Notifications: []model.Notification{
			{
				ID: "s-n1", Type: model.NotificationTypeStatus, Title: "Application Confirmed",
				Message:   "Your application for Computer Science at Apex University has been confirmed!",
				Timestamp: seededAt.Add(21 * time.Hour), Link: "/status",
			},
			{
				ID: "s-n2", Type: model.NotificationTypeMessage, Title: "New Message from Admin",
				Message:   "Hi Alex, thanks for reaching out. We are currently reviewing your documents...",
				Timestamp: seededAt.Add(-24 * time.Hour), Link: "/chat/app-1",
			},
			{
				ID: "s-n3", Type: model.NotificationTypeOffer, Title: "Early Bird Scholarship!",
				Message:   "Apply before Aug 1st to get a 10% scholarship on your first semester fees.",
				Timestamp: seededAt.Add(-44 * time.Hour), Link: "/ads",
			},
		},
	})

	s.PutUser(model.User{
		ID:                 "admin-001",
		Name:               "Dr. Evelyn Reed",
		Email:              "admin@college.com",
		Phone:              "9876543210",
		Role:               model.RoleCollegeAdmin,
		CollegeID:          "uni-1",
		ProfilePhotoURL:    "https://i.pravatar.cc/150?u=admin-001",
		FavoriteCollegeIDs: []string{},
		FavoriteCourseIDs:  []string{},
		FavoriteEventIDs:   []string{},
		ApplicationIDs:     []string{},
		Notifications: []model.Notification{
			{
				ID: "n1", Type: model.NotificationTypeApplication, Title: "New Application",
				Message:   "Jessica Martinez applied for Computer Science.",
				Timestamp: seededAt, Link: "/admin/admissions",
			},
			{
				ID: "n2", Type: model.NotificationTypeApplication, Title: "New Application",
				Message:   "Chris Green applied for Data Science.",
				Timestamp: seededAt.Add(-95 * time.Minute), Link: "/admin/admissions",
			},
			{
				ID: "n3", Type: model.NotificationTypeStudent, Title: "New Message",
				Message:   "Alex Doe sent a message about their application.",
				Timestamp: seededAt.Add(-21 * time.Hour), Link: "/admin/chat",
			},
		},
	})
}
