package app_test

import (
	"testing"

	"spotstay/internal/app"
	"spotstay/internal/domain"
)

func TestSummarizeStars(t *testing.T) {
	cases := []struct {
		name  string
		stars []int
		avg   *float64
		count int
	}{
		{"empty", nil, nil, 0},
		{"single", []int{3}, pfloat(3), 1},
		{"mixed", []int{5, 3, 4}, pfloat(4), 3},
		{"fractional", []int{5, 4}, pfloat(4.5), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := app.SummarizeStars(tc.stars)
			if got.Count != tc.count {
				t.Fatalf("count: want %d got %d", tc.count, got.Count)
			}
			if (got.Average == nil) != (tc.avg == nil) {
				t.Fatalf("average nil-ness: want %v got %v", tc.avg, got.Average)
			}
			if got.Average != nil && *got.Average != *tc.avg {
				t.Fatalf("average: want %v got %v", *tc.avg, *got.Average)
			}
		})
	}
}

func TestPreviewImageURL(t *testing.T) {
	flagged := domain.SpotImage{ID: 2, URL: "https://img/front.jpg", Preview: true}
	other := domain.SpotImage{ID: 1, URL: "https://img/side.jpg"}

	if got := app.PreviewImageURL(nil); got != app.NoPreviewImage {
		t.Fatalf("no images: got %q", got)
	}
	if got := app.PreviewImageURL([]domain.SpotImage{other}); got != app.NoPreviewImage {
		t.Fatalf("no flagged image: got %q", got)
	}
	// flag position in the slice must not matter
	if got := app.PreviewImageURL([]domain.SpotImage{other, flagged}); got != flagged.URL {
		t.Fatalf("flag last: got %q", got)
	}
	if got := app.PreviewImageURL([]domain.SpotImage{flagged, other}); got != flagged.URL {
		t.Fatalf("flag first: got %q", got)
	}
	// several flagged rows: first match wins
	second := domain.SpotImage{ID: 3, URL: "https://img/back.jpg", Preview: true}
	if got := app.PreviewImageURL([]domain.SpotImage{flagged, second}); got != flagged.URL {
		t.Fatalf("multiple flags: got %q", got)
	}
}
