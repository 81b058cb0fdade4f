package booking

import "math"

// RatingStats summarises the review set of a restaurant. Average is nil when
// there are no reviews so that clients can render "no rating yet" instead of
// a misleading zero. Distribution always contains all five star buckets,
// including those with a zero count.
type RatingStats struct {
	Average      *float64    `json:"averageRating"`
	Count        int         `json:"totalReviews"`
	Distribution map[int]int `json:"ratingDistribution"`
}

// AggregateRatings computes the simple arithmetic mean of the ratings,
// rounded to one decimal place, together with the per-star distribution.
// The full set is recomputed on every call; at current dataset sizes this is
// cheaper than maintaining incremental counters.
func AggregateRatings(ratings []int) RatingStats {
	stats := RatingStats{
		Count:        len(ratings),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(ratings) == 0 {
		return stats
	}
	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= 1 && r <= 5 {
			stats.Distribution[r]++
		}
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	stats.Average = &avg
	return stats
}
