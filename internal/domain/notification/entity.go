// Package notification holds the admin inbox records written when a booking
// is cancelled. One copy is created per administrator account.
package notification

import "time"

type Type string

const (
	TypeUserCancelled Type = "USER_CANCELLED_BY_CUSTOMER"
	TypeAutoNoShow    Type = "AUTO_CANCEL_NO_SHOW"
)

func (t Type) String() string {
	return string(t)
}

type Notification struct {
	id            int64
	userID        int64
	reservationID int64
	auctionID     int64
	notifType     Type
	title         string
	message       string
	isRead        bool
	createdAt     time.Time
}

func NewNotification(adminID, reservationID, auctionID int64, t Type, title, message string) *Notification {
	return &Notification{
		userID:        adminID,
		reservationID: reservationID,
		auctionID:     auctionID,
		notifType:     t,
		title:         title,
		message:       message,
	}
}

func ReconstructNotification(
	id, userID, reservationID, auctionID int64,
	t Type,
	title, message string,
	isRead bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:            id,
		userID:        userID,
		reservationID: reservationID,
		auctionID:     auctionID,
		notifType:     t,
		title:         title,
		message:       message,
		isRead:        isRead,
		createdAt:     createdAt,
	}
}

func (n *Notification) ID() int64            { return n.id }
func (n *Notification) UserID() int64        { return n.userID }
func (n *Notification) ReservationID() int64 { return n.reservationID }
func (n *Notification) AuctionID() int64     { return n.auctionID }
func (n *Notification) Type() Type           { return n.notifType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
