package app

import (
	"context"

	"spotstay/internal/domain"
)

// QueryService builds the read view-models: it fetches the entity graph
// from the repository, derives the aggregate fields, and strips the join
// collections before anything is serialized. Repository results are
// copied into fresh view structs, never annotated in place.
type QueryService struct {
	repo domain.SpotRepository
}

func NewQueryService(r domain.SpotRepository) *QueryService {
	return &QueryService{repo: r}
}

// ListSpots returns every spot with its average rating and preview image.
func (s *QueryService) ListSpots(ctx context.Context) (SpotsPayload, error) {
	spots, err := s.repo.ListSpots(ctx)
	if err != nil {
		return SpotsPayload{}, err
	}
	return s.summarize(ctx, spots)
}

// ListSpotsByOwner returns the requester's own spots in the same shape.
func (s *QueryService) ListSpotsByOwner(ctx context.Context, ownerID int64) (SpotsPayload, error) {
	spots, err := s.repo.ListSpotsByOwner(ctx, ownerID)
	if err != nil {
		return SpotsPayload{}, err
	}
	return s.summarize(ctx, spots)
}

func (s *QueryService) summarize(ctx context.Context, spots []domain.Spot) (SpotsPayload, error) {
	out := SpotsPayload{Spots: make([]SpotSummary, 0, len(spots))}
	for _, sp := range spots {
		images, err := s.repo.ListSpotImages(ctx, sp.ID)
		if err != nil {
			return SpotsPayload{}, err
		}
		stars, err := s.repo.ListReviewStars(ctx, sp.ID)
		if err != nil {
			return SpotsPayload{}, err
		}
		rating := SummarizeStars(stars)
		out.Spots = append(out.Spots, SpotSummary{
			SpotView:     spotView(sp),
			AvgRating:    rating.Average,
			PreviewImage: PreviewImageURL(images),
		})
	}
	return out, nil
}

// GetSpotDetail returns the single-spot view. A missing spot id
// short-circuits before any aggregate is computed.
func (s *QueryService) GetSpotDetail(ctx context.Context, id int64) (SpotDetail, error) {
	sp, err := s.repo.GetSpot(ctx, id)
	if err != nil {
		return SpotDetail{}, err
	}

	images, err := s.repo.ListSpotImages(ctx, sp.ID)
	if err != nil {
		return SpotDetail{}, err
	}
	stars, err := s.repo.ListReviewStars(ctx, sp.ID)
	if err != nil {
		return SpotDetail{}, err
	}
	owner, err := s.repo.GetUserRef(ctx, sp.OwnerID)
	if err != nil {
		return SpotDetail{}, err
	}

	rating := SummarizeStars(stars)
	detail := SpotDetail{
		SpotView:      spotView(sp),
		NumReviews:    rating.Count,
		AvgStarRating: rating.Average,
		SpotImages:    make([]SpotImageView, 0, len(images)),
		Owner:         userRefView(owner),
	}
	for _, img := range images {
		detail.SpotImages = append(detail.SpotImages, SpotImageView{
			ID: img.ID, SpotID: img.SpotID, URL: img.URL, Preview: img.Preview,
		})
	}
	return detail, nil
}

// ListSpotReviews returns the reviews of a spot with each author's
// name-and-id view and the review's images.
func (s *QueryService) ListSpotReviews(ctx context.Context, spotID int64) (ReviewsPayload, error) {
	if _, err := s.repo.GetSpot(ctx, spotID); err != nil {
		return ReviewsPayload{}, err
	}
	reviews, err := s.repo.ListSpotReviews(ctx, spotID)
	if err != nil {
		return ReviewsPayload{}, err
	}
	out := ReviewsPayload{Reviews: make([]SpotReviewView, 0, len(reviews))}
	for _, rv := range reviews {
		view := SpotReviewView{
			ReviewView:   reviewView(rv.Review),
			User:         userRefView(rv.User),
			ReviewImages: make([]ReviewImageView, 0, len(rv.Images)),
		}
		for _, img := range rv.Images {
			view.ReviewImages = append(view.ReviewImages, ReviewImageView{
				ID: img.ID, ReviewID: img.ReviewID, URL: img.URL,
			})
		}
		out.Reviews = append(out.Reviews, view)
	}
	return out, nil
}

// ListSpotBookings returns the spot's bookings redacted for the viewer:
// the owner sees full records, anyone else only the occupied ranges.
func (s *QueryService) ListSpotBookings(ctx context.Context, spotID, viewerID int64) (BookingsPayload, error) {
	sp, err := s.repo.GetSpot(ctx, spotID)
	if err != nil {
		return BookingsPayload{}, err
	}
	bookings, err := s.repo.ListSpotBookings(ctx, spotID)
	if err != nil {
		return BookingsPayload{}, err
	}
	out := BookingsPayload{Bookings: make([]BookingView, 0, len(bookings))}
	for _, b := range bookings {
		out.Bookings = append(out.Bookings, RedactBooking(b, sp.OwnerID, viewerID))
	}
	return out, nil
}
