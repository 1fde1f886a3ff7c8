package domain

import "time"

type Booking struct {
	ID        int64
	SpotID    int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpotBooking is a booking joined with its renter (name-and-id only),
// as read for the bookings-of-spot projection.
type SpotBooking struct {
	Booking
	Renter UserRef
}
