package app

import (
	"time"

	"spotstay/internal/domain"
)

// View models. These are the only shapes serialized to clients; raw rows
// and the intermediate joins used to derive aggregates never leave this
// package.

type UserRefView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SpotView struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpotSummary is the list/current row: spot fields plus the two derived
// fields, with the image and review joins already stripped.
type SpotSummary struct {
	SpotView
	AvgRating    *float64 `json:"avgRating"`
	PreviewImage string   `json:"previewImage"`
}

type SpotsPayload struct {
	Spots []SpotSummary `json:"Spots"`
}

type SpotImageView struct {
	ID      int64  `json:"id"`
	SpotID  int64  `json:"spotId"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

type SpotDetail struct {
	SpotView
	NumReviews    int             `json:"numReviews"`
	AvgStarRating *float64        `json:"avgStarRating"`
	SpotImages    []SpotImageView `json:"SpotImages"`
	Owner         UserRefView     `json:"Owner"`
}

type ReviewView struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	UserID    int64     `json:"userId"`
	Review    string    `json:"review"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SpotReviewView struct {
	ReviewView
	User         UserRefView       `json:"User"`
	ReviewImages []ReviewImageView `json:"ReviewImages"`
}

type ReviewImageView struct {
	ID       int64  `json:"id"`
	ReviewID int64  `json:"reviewId"`
	URL      string `json:"url"`
}

type ReviewsPayload struct {
	Reviews []SpotReviewView `json:"Reviews"`
}

type UserView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

func userRefView(u domain.UserRef) UserRefView {
	return UserRefView{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

func spotView(s domain.Spot) SpotView {
	return SpotView{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func reviewView(r domain.Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		SpotID:    r.SpotID,
		UserID:    r.UserID,
		Review:    r.Review,
		Stars:     r.Stars,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func userView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
	}
}
