package queries

import "time"

// Read models returned to handlers. Prices are decimal strings; computed
// fields (current price, remaining minutes) are filled by the query services
// using the injected clock, never read stale from storage.

type AuctionView struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StartPrice       string     `json:"start_price"`
	FloorPrice       string     `json:"floor_price"`
	CurrentPrice     string     `json:"current_price"`
	DropAmount       string     `json:"drop_amount"`
	DropIntervalMins int        `json:"drop_interval_mins"`
	TurboEnabled     bool       `json:"turbo_enabled"`
	TurboActive      bool       `json:"turbo_active"`
	TurboStartedAt   *time.Time `json:"turbo_started_at,omitempty"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	AllowedGender    string     `json:"allowed_gender"`
	Status           string     `json:"status"`
	RemainingMinutes int64      `json:"remaining_minutes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ReservationView struct {
	ID           int64      `json:"id"`
	AuctionID    int64      `json:"auction_id"`
	AuctionTitle string     `json:"auction_title"`
	UserID       int64      `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	BookingCode  string     `json:"booking_code"`
	LockedPrice  string     `json:"locked_price"`
	Status       string     `json:"status"`
	CancelSource *string    `json:"cancel_source,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	ServiceTime  time.Time  `json:"service_time"`
	ReservedAt   time.Time  `json:"reserved_at"`
}

type NotificationView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	AuctionID     int64     `json:"auction_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Role   string `json:"role"`
}
