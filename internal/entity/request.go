package entity

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// AccessRequest tracks onboarding. Approved and Rejected are terminal; only
// Pending requests may transition.
type AccessRequest struct {
	ID          int           `yaml:"id" json:"id"`
	UserName    string        `yaml:"userName" json:"user_name"`
	UserEmail   string        `yaml:"userEmail" json:"user_email"`
	UserRole    string        `yaml:"userRole" json:"user_role"`
	RequestedAt time.Time     `yaml:"requestedAt" json:"requested_at"`
	Status      RequestStatus `yaml:"status" json:"status"`
}
