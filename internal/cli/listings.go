package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"kickitup/internal/api"
	"kickitup/internal/catalog"
	"kickitup/internal/models"
)

// Listings shows the sneakers the current user is selling.
func (a *App) Listings(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items, err := a.api.MySneakers(ctx)
	if err != nil {
		printlnFn("could not load your listings: " + failureMessage(err))
		return nil
	}
	if len(items) == 0 {
		printlnFn("you have no listings yet (sell to create one)")
		return nil
	}
	for _, s := range items {
		printlnFn(formatSneakerLine(s, false))
	}
	return nil
}

// Sell collects a new listing and creates it.
func (a *App) Sell(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	req, err := a.promptSneaker(api.SneakerRequest{Stock: 1})
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		_, err := a.api.CreateSneaker(ctx, *req)
		return err
	}, fmt.Sprintf("%s listed for sale", req.Name), a.Listings)
	return nil
}

// Edit updates one of the user's listings. Every prompt defaults to the
// current value so Enter keeps a field unchanged.
func (a *App) Edit(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	current, ok, err := a.findOwnListing(ctx, id)
	if err != nil {
		printlnFn("could not load your listings: " + failureMessage(err))
		return nil
	}
	if !ok {
		printlnFn(fmt.Sprintf("listing %d not found among your sneakers", id))
		return nil
	}

	req, err := a.promptSneaker(api.SneakerRequest{
		Name:        current.Name,
		Brand:       current.Brand,
		Description: current.Description,
		Price:       current.Price,
		Size:        current.Size,
		Color:       current.Color,
		Condition:   current.Condition,
		Stock:       current.Stock,
		ImageURLs:   current.ImageURLs,
	})
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		_, err := a.api.UpdateSneaker(ctx, id, *req)
		return err
	}, fmt.Sprintf("%s updated", req.Name), a.Listings)
	return nil
}

// Delete removes one of the user's listings after a confirmation prompt.
func (a *App) Delete(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	current, ok, err := a.findOwnListing(ctx, id)
	if err != nil {
		printlnFn("could not load your listings: " + failureMessage(err))
		return nil
	}
	if !ok {
		printlnFn(fmt.Sprintf("listing %d not found among your sneakers", id))
		return nil
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %q? This cannot be undone (y/N)", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("cancelled")
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		return a.api.DeleteSneaker(ctx, id)
	}, fmt.Sprintf("%s deleted", current.Name), a.Listings)
	return nil
}

// findOwnListing looks a sneaker up in the user's own listings so edit and
// delete never touch someone else's inventory.
func (a *App) findOwnListing(ctx context.Context, id int64) (models.Sneaker, bool, error) {
	items, err := a.api.MySneakers(ctx)
	if err != nil {
		return models.Sneaker{}, false, err
	}
	for _, s := range items {
		if s.ID == id {
			return s, true, nil
		}
	}
	return models.Sneaker{}, false, nil
}

// promptSneaker collects listing fields, seeding each prompt from defaults.
// Returns nil without error when validation rejects the input.
func (a *App) promptSneaker(defaults api.SneakerRequest) (*api.SneakerRequest, error) {
	req := defaults
	var err error
	w := os.Stdout

	if req.Name, err = GetTextWithDefault(a.reader, "Name", defaults.Name, w); err != nil {
		return nil, err
	}
	if req.Brand, err = GetTextWithDefault(a.reader, "Brand ("+strings.Join(catalog.Brands, ", ")+")", defaults.Brand, w); err != nil {
		return nil, err
	}
	req.Brand = strings.ToUpper(strings.TrimSpace(req.Brand))

	priceDefault := ""
	if defaults.Price.IsPositive() {
		priceDefault = defaults.Price.StringFixed(2)
	}
	priceText, err := GetTextWithDefault(a.reader, "Price", priceDefault, w)
	if err != nil {
		return nil, err
	}
	if req.Price, err = decimal.NewFromString(strings.TrimSpace(priceText)); err != nil {
		printlnFn("price must be a number")
		return nil, nil
	}

	if req.Size, err = GetTextWithDefault(a.reader, "Size", defaults.Size, w); err != nil {
		return nil, err
	}
	if req.Color, err = GetTextWithDefault(a.reader, "Color", defaults.Color, w); err != nil {
		return nil, err
	}
	if req.Condition, err = GetTextWithDefault(a.reader, "Condition (NEW, LIKE NEW, USED)", defaults.Condition, w); err != nil {
		return nil, err
	}
	req.Condition = strings.ToUpper(strings.TrimSpace(req.Condition))

	stockText, err := GetTextWithDefault(a.reader, "Stock", strconv.Itoa(defaults.Stock), w)
	if err != nil {
		return nil, err
	}
	if req.Stock, err = strconv.Atoi(strings.TrimSpace(stockText)); err != nil {
		printlnFn("stock must be a whole number")
		return nil, nil
	}

	if req.Description, err = GetMultiline(a.reader, "Description", w); err != nil {
		return nil, err
	}
	if req.Description == "" {
		req.Description = defaults.Description
	}

	urls, err := GetMultiline(a.reader, "Image URLs, one per line", w)
	if err != nil {
		return nil, err
	}
	if req.ImageURLs = splitImageURLs(urls); req.ImageURLs == nil {
		req.ImageURLs = defaults.ImageURLs
	}

	if err := req.Validate(); err != nil {
		printlnFn(err.Error())
		return nil, nil
	}
	return &req, nil
}

// splitImageURLs drops blank lines so the payload never carries empty urls.
func splitImageURLs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
