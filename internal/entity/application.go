package entity

import "time"

// ApplicationStatus tracks where an application is in the funnel.
type ApplicationStatus string

const (
	StatusWishlist     ApplicationStatus = "wishlist"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
	StatusAccepted     ApplicationStatus = "accepted"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusWishlist, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application is one tracked job application.
type Application struct {
	ID             string            `json:"id"`
	Company        string            `json:"company"`
	Role           string            `json:"role"`
	URL            string            `json:"url,omitempty"`
	JobDescription string            `json:"jobDescription,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      *time.Time        `json:"appliedAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
