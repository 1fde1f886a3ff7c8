package app_test

import (
	"context"
	"errors"
	"testing"

	"spotstay/internal/app"
	"spotstay/internal/domain"
)

func pfloat(f float64) *float64 { return &f }
func pint(i int) *int           { return &i }

func validSpotInput() app.NewSpotInput {
	return app.NewSpotInput{
		Address:     "123 Shore Rd",
		City:        "Astoria",
		State:       "OR",
		Country:     "USA",
		Lat:         pfloat(46.19),
		Lng:         pfloat(-123.83),
		Name:        "Lighthouse Loft",
		Description: "Sea view",
		Price:       pfloat(120),
	}
}

func TestCreateSpot(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo)

	created, err := c.CreateSpot(context.Background(), 7, validSpotInput())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created.ID == 0 || created.OwnerID != 7 || created.Name != "Lighthouse Loft" {
		t.Fatalf("unexpected created spot: %+v", created)
	}
	if _, ok := repo.spots[created.ID]; !ok {
		t.Fatal("spot not persisted")
	}
}

func TestCreateSpot_CollectsAllViolations(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo)

	in := validSpotInput()
	in.Address = ""
	in.City = ""
	in.Price = nil

	_, err := c.CreateSpot(context.Background(), 7, in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Errors["address"] != "Street address is required" {
		t.Fatalf("missing address message: %+v", ve.Errors)
	}
	if ve.Errors["city"] != "City is required" {
		t.Fatalf("missing city message: %+v", ve.Errors)
	}
	if ve.Errors["price"] != "Price per day is required" {
		t.Fatalf("missing price message: %+v", ve.Errors)
	}
	if len(repo.spots) != 0 {
		t.Fatal("spot persisted despite validation failure")
	}
}

func TestCreateReview(t *testing.T) {
	repo := newFakeRepo()
	repo.spots[1] = domain.Spot{ID: 1, OwnerID: 7}
	c := app.NewCommandService(repo)

	rv, err := c.CreateReview(context.Background(), 9, 1, app.NewReviewInput{Review: "Lovely", Stars: pint(5)})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rv.SpotID != 1 || rv.UserID != 9 || rv.Stars != 5 {
		t.Fatalf("unexpected review: %+v", rv)
	}
}

func TestCreateReview_Invalid(t *testing.T) {
	c := app.NewCommandService(newFakeRepo())

	_, err := c.CreateReview(context.Background(), 9, 1, app.NewReviewInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Errors["review"] != "Review text is required" {
		t.Fatalf("missing review message: %+v", ve.Errors)
	}
	if ve.Errors["stars"] != "Stars must be an integer from 1 to 5" {
		t.Fatalf("missing stars message: %+v", ve.Errors)
	}
}

func TestDeleteReviewImage_AuthorSucceeds(t *testing.T) {
	repo := newFakeRepo()
	repo.revByID[3] = domain.Review{ID: 3, SpotID: 1, UserID: 9}
	repo.revImages[4] = domain.ReviewImage{ID: 4, ReviewID: 3, URL: "u"}
	c := app.NewCommandService(repo)

	if err := c.DeleteReviewImage(context.Background(), 9, 4); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := repo.revImages[4]; ok {
		t.Fatal("image still present after delete")
	}
}

func TestDeleteReviewImage_NonAuthorForbidden(t *testing.T) {
	repo := newFakeRepo()
	repo.revByID[3] = domain.Review{ID: 3, SpotID: 1, UserID: 9}
	repo.revImages[4] = domain.ReviewImage{ID: 4, ReviewID: 3, URL: "u"}
	c := app.NewCommandService(repo)

	err := c.DeleteReviewImage(context.Background(), 8, 4)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, ok := repo.revImages[4]; !ok {
		t.Fatal("image removed despite forbidden")
	}
}

func TestDeleteReviewImage_MissingImage(t *testing.T) {
	c := app.NewCommandService(newFakeRepo())

	err := c.DeleteReviewImage(context.Background(), 9, 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Review Image couldn't be found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
