// Package ownership derives per-resource permission flags by comparing the
// current session identity against resource metadata. All functions are pure
// and must be recomputed on every render; caching them independently of the
// session or resource state would go stale.
package ownership

import "kickitup/internal/models"

// IsOwnListing reports whether the sneaker is listed by the given user.
// False when user is absent or the listing carries no seller.
func IsOwnListing(user *models.Profile, sneaker models.Sneaker) bool {
	if user == nil || sneaker.Seller == nil {
		return false
	}
	return user.Username == sneaker.Seller.Username
}

// HasReviewed reports whether the given user already authored one of reviews.
// False when user is absent.
func HasReviewed(user *models.Profile, reviews []models.Review) bool {
	if user == nil {
		return false
	}
	for _, r := range reviews {
		if r.Username == user.Username {
			return true
		}
	}
	return false
}
