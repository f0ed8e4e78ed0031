package catalog

import "math"

const maxStars = 5

// RatingBucket is one row of the rating breakdown.
type RatingBucket struct {
	Stars   int
	Count   int
	Percent int
}

// FilledStars returns how many of the five stars render filled. Partial stars round down.
func FilledStars(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	stars := int(math.Floor(rating))
	if stars > maxStars {
		return maxStars
	}
	return stars
}

// AverageRating returns the mean review rating, or 0 with no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// RatingDistribution buckets reviews by star count, five stars first. Ratings are
// clamped into 1..5 and percentages round down.
func RatingDistribution(reviews []Review) []RatingBucket {
	counts := make([]int, maxStars+1)
	for _, r := range reviews {
		stars := FilledStars(float64(r.Rating))
		if stars < 1 {
			stars = 1
		}
		counts[stars]++
	}

	out := make([]RatingBucket, 0, maxStars)
	for stars := maxStars; stars >= 1; stars-- {
		bucket := RatingBucket{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			bucket.Percent = counts[stars] * 100 / len(reviews)
		}
		out = append(out, bucket)
	}
	return out
}
