package app

import "spotstay/internal/domain"

// NoPreviewImage is returned in place of a URL when no image of the spot
// is flagged as the preview.
const NoPreviewImage = "No preview image"

// PreviewImageURL scans the spot's images for the preview flag and
// returns the URL of the first flagged row. The store does not guarantee
// a single flagged image per spot, so first-match is a policy here, not
// an invariant; arrival order of unflagged rows is irrelevant.
func PreviewImageURL(images []domain.SpotImage) string {
	for _, img := range images {
		if img.Preview {
			return img.URL
		}
	}
	return NoPreviewImage
}
