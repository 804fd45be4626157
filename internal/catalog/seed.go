// Package catalog holds the static seed data the portal starts from.
package catalog

import "github.com/jonathan/placement-portal/internal/types"

// Account pairs a demo user record with its plaintext demo secret.
type Account struct {
	User   *types.User
	Secret string
}

// Accounts returns fresh copies of the demo accounts, keyed by identity.
func Accounts() map[string]Account {
	return map[string]Account{
		"student@college.edu": {
			Secret: "student123",
			User: &types.User{
				Identity:       "student@college.edu",
				Role:           types.RoleStudent,
				DisplayName:    "Arjun Sharma",
				Email:          "student@college.edu",
				RollNumber:     "21CS001",
				Department:     "Computer Science",
				Year:           "3rd Year",
				CGPA:           8.7,
				Phone:          "+91-9876543210",
				Address:        "Hostel-B-102, Campus Rd, Bangalore",
				Skills:         []string{"Python", "JavaScript", "React", "Machine Learning", "SQL"},
				Certifications: []string{"AWS Cloud Practitioner", "Google Analytics"},
				// seeded; see profile.CompletionSeeded
				ProfileCompletion: 92,
				Preferences: &types.Preferences{
					JobTypes:    []string{"Full-time", "Internship"},
					Locations:   "Bangalore, Mumbai, Remote",
					SalaryRange: "8-15 LPA",
				},
			},
		},
		"faculty@college.edu": {
			Secret: "faculty123",
			User: &types.User{
				Identity:    "faculty@college.edu",
				Role:        types.RoleFaculty,
				DisplayName: "Dr. Priya Mehta",
				Department:  "Computer Science",
				Email:       "faculty@college.edu",
			},
		},
		"staff@college.edu": {
			Secret: "staff123",
			User: &types.User{
				Identity:    "staff@college.edu",
				Role:        types.RoleStaff,
				DisplayName: "Rajesh Kumar",
				Title:       "Placement Officer",
				Email:       "staff@college.edu",
			},
		},
		"admin@college.edu": {
			Secret: "admin123",
			User: &types.User{
				Identity:    "admin@college.edu",
				Role:        types.RoleAdmin,
				DisplayName: "Dr. Vikram Singh",
				Title:       "Dean - Placements",
				Email:       "admin@college.edu",
			},
		},
		"company@techcorp.com": {
			Secret: "company123",
			User: &types.User{
				Identity:    "company@techcorp.com",
				Role:        types.RoleCompany,
				DisplayName: "TechCorp HR",
				CompanyName: "TechCorp Solutions",
				Email:       "company@techcorp.com",
			},
		},
	}
}

// Notifications returns the notifications seeded at process start.
func Notifications() []types.Notification {
	return []types.Notification{
		{
			ID:          1,
			Title:       "System Update",
			Message:     "Welcome to the new AI-powered placement portal!",
			DisplayTime: "Just now",
			Category:    types.CategoryInfo,
		},
	}
}

// Job is a posted opening. The demo catalog starts empty.
type Job struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
}

// Jobs returns the seeded job list.
func Jobs() []Job {
	return []Job{}
}
