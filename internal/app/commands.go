package app

import (
	"context"

	"spotstay/internal/domain"
)

// CommandService owns the mutation paths: creating spots and reviews
// (with validation collected up front) and the ownership-guarded delete
// of a review image.
type CommandService struct {
	repo domain.SpotRepository
}

func NewCommandService(r domain.SpotRepository) *CommandService {
	return &CommandService{repo: r}
}

func (s *CommandService) CreateSpot(ctx context.Context, ownerID int64, in NewSpotInput) (SpotView, error) {
	if errs := ValidateNewSpot(in); len(errs) > 0 {
		return SpotView{}, &domain.ValidationError{Errors: errs}
	}
	var desc *string
	if in.Description != "" {
		desc = &in.Description
	}
	created, err := s.repo.CreateSpot(ctx, domain.Spot{
		OwnerID:     ownerID,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		Lat:         *in.Lat,
		Lng:         *in.Lng,
		Name:        in.Name,
		Description: desc,
		Price:       *in.Price,
	})
	if err != nil {
		return SpotView{}, err
	}
	return spotView(created), nil
}

func (s *CommandService) CreateReview(ctx context.Context, userID, spotID int64, in NewReviewInput) (ReviewView, error) {
	if errs := ValidateNewReview(in); len(errs) > 0 {
		return ReviewView{}, &domain.ValidationError{Errors: errs}
	}
	created, err := s.repo.CreateReview(ctx, domain.Review{
		SpotID: spotID,
		UserID: userID,
		Review: in.Review,
		Stars:  *in.Stars,
	})
	if err != nil {
		return ReviewView{}, err
	}
	return reviewView(created), nil
}

// DeleteReviewImage walks the ownership chain image -> review -> author
// before touching anything. A broken link fails NotFound before the
// identity comparison; a mismatched author fails Forbidden with the
// image intact.
func (s *CommandService) DeleteReviewImage(ctx context.Context, viewerID, imageID int64) error {
	img, err := s.repo.GetReviewImage(ctx, imageID)
	if err != nil {
		return err
	}
	rev, err := s.repo.GetReview(ctx, img.ReviewID)
	if err != nil {
		return err
	}
	if rev.UserID != viewerID {
		return domain.ErrForbidden
	}
	return s.repo.DeleteReviewImage(ctx, imageID)
}
