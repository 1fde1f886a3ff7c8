package domain

import (
	"context"
	"time"
)

type SpotRepository interface {
	// Write paths
	CreateSpot(ctx context.Context, s Spot) (Spot, error)
	CreateReview(ctx context.Context, r Review) (Review, error)
	DeleteReviewImage(ctx context.Context, id int64) error

	// Read paths
	ListSpots(ctx context.Context) ([]Spot, error)
	ListSpotsByOwner(ctx context.Context, ownerID int64) ([]Spot, error)
	GetSpot(ctx context.Context, id int64) (Spot, error)
	ListSpotImages(ctx context.Context, spotID int64) ([]SpotImage, error)
	ListReviewStars(ctx context.Context, spotID int64) ([]int, error)
	ListSpotReviews(ctx context.Context, spotID int64) ([]SpotReview, error)
	ListSpotBookings(ctx context.Context, spotID int64) ([]SpotBooking, error)
	GetReviewImage(ctx context.Context, id int64) (ReviewImage, error)
	GetReview(ctx context.Context, id int64) (Review, error)
	GetUserRef(ctx context.Context, id int64) (UserRef, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u User) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	// GetUserByCredential matches either email or username.
	GetUserByCredential(ctx context.Context, credential string) (User, error)
}

// SessionStore tracks live session ids so tokens can be revoked before
// their signed expiry.
type SessionStore interface {
	Put(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	Resolve(ctx context.Context, sid string) (int64, bool, error)
	Revoke(ctx context.Context, sid string) error
}

// TokenManager issues and resolves the bearer tokens that carry the
// requester identity.
type TokenManager interface {
	Issue(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
}
