package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kickitup/internal/api"
	"kickitup/internal/models"
	"kickitup/internal/ownership"
)

// Show renders a single sneaker with its reviews and the actions available
// to the current user.
func (a *App) Show(ctx context.Context, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	sneaker, err := a.api.Sneaker(ctx, id)
	if err != nil {
		printlnFn("could not load sneaker: " + failureMessage(err))
		return nil
	}
	reviews, err := a.api.Reviews(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "loading reviews failed", "sneaker", id, "error", err)
	}

	a.renderDetails(sneaker, reviews)
	return nil
}

func (a *App) renderDetails(s models.Sneaker, reviews []models.Review) {
	printlnFn(fmt.Sprintf("%s %s  $%s", s.Brand, s.Name, s.Price.StringFixed(2)))
	printlnFn(fmt.Sprintf("size %s, %s, %s, stock %d", s.Size, s.Color, s.Condition, s.Stock))
	if s.Status == models.SneakerSold {
		printlnFn("status: SOLD")
	}
	if s.Seller != nil {
		printlnFn("seller: " + s.Seller.Username)
	}
	if s.Description != "" {
		printlnFn(s.Description)
	}
	for _, url := range s.ImageURLs {
		printlnFn("image: " + url)
	}

	if len(reviews) == 0 {
		printlnFn("no reviews yet")
	} else {
		printlnFn(fmt.Sprintf("reviews (%d), average %.1f/5:", len(reviews), s.AverageRating))
		for _, r := range reviews {
			printlnFn(fmt.Sprintf("  %d/5 %s: %s", r.Rating, r.Username, r.Comment))
		}
	}

	if actions := detailActions(a.session.User(), s, reviews); len(actions) > 0 {
		printlnFn(fmt.Sprintf("actions: %s %d", strings.Join(actions, "/"), s.ID))
	} else if !a.session.LoggedIn() {
		printlnFn("log in to order, review or favorite")
	}
}

// detailActions computes which commands the detail view offers. Buying and
// favoriting are hidden on the viewer's own listings, buying additionally
// requires stock left, and the review form disappears once the viewer has a
// review on record.
func detailActions(user *models.Profile, s models.Sneaker, reviews []models.Review) []string {
	if user == nil {
		return nil
	}

	var actions []string
	if !ownership.IsOwnListing(user, s) {
		if s.Status == models.SneakerAvailable && s.Stock > 0 {
			actions = append(actions, "order")
		}
		actions = append(actions, "fav")
		if !ownership.HasReviewed(user, reviews) {
			actions = append(actions, "review")
		}
	}
	return actions
}

// Order places a purchase and then shows the updated order list, mirroring
// the post-checkout navigation of the storefront.
func (a *App) Order(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	sneaker, err := a.api.Sneaker(ctx, id)
	if err != nil {
		printlnFn("could not load sneaker: " + failureMessage(err))
		return nil
	}
	if ownership.IsOwnListing(a.session.User(), sneaker) {
		printlnFn("you cannot buy your own listing")
		return nil
	}
	if sneaker.Status != models.SneakerAvailable || sneaker.Stock < 1 {
		printlnFn("this sneaker is no longer available")
		return nil
	}

	req := api.OrderRequest{SneakerID: id}
	user := a.session.User()
	if req.ShippingAddress, err = GetTextWithDefault(a.reader, "Shipping address", user.Address, os.Stdout); err != nil {
		return err
	}
	if req.PhoneNumber, err = GetTextWithDefault(a.reader, "Phone number", user.PhoneNumber, os.Stdout); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		printlnFn(err.Error())
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		_, err := a.api.CreateOrder(ctx, req)
		return err
	}, fmt.Sprintf("order placed for %s", sneaker.Name), a.Orders)
	return nil
}

// Review collects a rating and comment for a sneaker the user has not
// reviewed yet, then re-renders the detail view with the fresh review list.
func (a *App) Review(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	reviews, err := a.api.Reviews(ctx, id)
	if err != nil {
		printlnFn("could not load reviews: " + failureMessage(err))
		return nil
	}
	if ownership.HasReviewed(a.session.User(), reviews) {
		printlnFn("you have already reviewed this sneaker")
		return nil
	}

	ratingText, err := GetSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(strings.TrimSpace(ratingText))
	if err != nil {
		printlnFn("rating must be a number between 1 and 5")
		return nil
	}
	comment, err := GetMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	req := api.ReviewRequest{SneakerID: id, Rating: rating, Comment: comment}
	if err := req.Validate(); err != nil {
		printlnFn(err.Error())
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		_, err := a.api.CreateReview(ctx, req)
		return err
	}, "review submitted", func(ctx context.Context) error {
		return a.Show(ctx, idArg)
	})
	return nil
}

// Favorite adds a sneaker to the user's favorites.
func (a *App) Favorite(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		return a.api.AddFavorite(ctx, id)
	}, "added to favorites")
	return nil
}
