package entities

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// IsValid reports whether the status is one of the accepted values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// ServiceRequest is a contact-form submission asking for one of the
// agency services.
type ServiceRequest struct {
	ID        int64
	Name      string
	Email     valueobjects.Email
	Phone     string
	Service   string
	Message   string
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
