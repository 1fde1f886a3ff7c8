package app

// RatingSummary is the aggregate over a spot's review stars. Average is
// nil, not zero, when there are no reviews; the two cases must stay
// distinguishable in the serialized view.
type RatingSummary struct {
	Average *float64
	Count   int
}

// SummarizeStars computes the arithmetic mean and count of the given
// star ratings.
func SummarizeStars(stars []int) RatingSummary {
	if len(stars) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, s := range stars {
		sum += s
	}
	avg := float64(sum) / float64(len(stars))
	return RatingSummary{Average: &avg, Count: len(stars)}
}
