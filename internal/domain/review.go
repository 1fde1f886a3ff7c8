package domain

import "time"

type Review struct {
	ID        int64
	SpotID    int64
	UserID    int64
	Review    string
	Stars     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewImage is cascade-deleted with its parent review.
type ReviewImage struct {
	ID       int64
	ReviewID int64
	URL      string
}

// SpotReview is a review joined with its author (name-and-id only)
// and its images, as read for the reviews-of-spot projection.
type SpotReview struct {
	Review
	User   UserRef
	Images []ReviewImage
}
