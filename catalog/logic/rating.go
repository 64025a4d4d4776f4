package logic

import "math"

// Stars is the star breakdown used to render a rating out of five.
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// RatingStars renders floor(rating) full stars, one half star when the
// fractional part is at least 0.5, and empty stars for the rest.
func RatingStars(rating float64) Stars {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > MaxRating {
		rating = MaxRating
	}

	whole := math.Floor(rating)
	stars := Stars{Full: int(whole)}
	if rating-whole >= 0.5 {
		stars.Half = 1
	}
	stars.Empty = MaxRating - stars.Full - stars.Half
	return stars
}
