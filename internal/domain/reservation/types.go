package reservation

type Status string

const (
	StatusPendingOnSite Status = "PENDING_ON_SITE"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingOnSite, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CancelSource tags who initiated a cancellation; it decides whether the
// admin inbox is notified.
type CancelSource string

const (
	CancelSourceUser       CancelSource = "USER"
	CancelSourceAdmin      CancelSource = "ADMIN"
	CancelSourceAutoNoShow CancelSource = "AUTO_NO_SHOW"
)
