package domain

import "time"

type Spot struct {
	ID          int64
	OwnerID     int64
	Address     string
	City        string
	State       string
	Country     string
	Lat         float64
	Lng         float64
	Name        string
	Description *string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SpotImage belongs to one spot. The store does not enforce a single
// preview image per spot; zero or several rows may carry Preview=true.
type SpotImage struct {
	ID      int64
	SpotID  int64
	URL     string
	Preview bool
}
