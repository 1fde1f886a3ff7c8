package app

import (
	"time"

	"spotstay/internal/domain"
)

// BookingView is either an OwnerBookingView or a RenterBookingView. Two
// explicit structs, rather than one struct with fields deleted per role,
// so that adding a field forces a decision about which view carries it.
type BookingView interface {
	bookingView()
}

// OwnerBookingView is the full record, shown only to the spot's owner.
type OwnerBookingView struct {
	ID        int64       `json:"id"`
	SpotID    int64       `json:"spotId"`
	UserID    int64       `json:"userId"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	User      UserRefView `json:"User"`
}

// RenterBookingView is what any other authenticated requester sees: the
// occupied date range with no booking id, renter identity, or timestamps.
type RenterBookingView struct {
	SpotID    int64     `json:"spotId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

func (OwnerBookingView) bookingView()  {}
func (RenterBookingView) bookingView() {}

type BookingsPayload struct {
	Bookings []BookingView `json:"Bookings"`
}

// RedactBooking projects one booking row for the given viewer. The spot
// join is consumed here (it decides the role) and never serialized.
func RedactBooking(b domain.SpotBooking, spotOwnerID, viewerID int64) BookingView {
	if viewerID == spotOwnerID {
		return OwnerBookingView{
			ID:        b.ID,
			SpotID:    b.SpotID,
			UserID:    b.UserID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
			User:      userRefView(b.Renter),
		}
	}
	return RenterBookingView{
		SpotID:    b.SpotID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}
