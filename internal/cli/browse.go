package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kickitup/internal/catalog"
	"kickitup/internal/models"
	"kickitup/internal/ownership"
)

// Browse fetches the catalog and renders it through the current filter.
func (a *App) Browse(ctx context.Context) error {
	if err := a.refreshCatalog(ctx); err != nil {
		printlnFn("could not load sneakers: " + failureMessage(err))
		return nil
	}
	a.renderCatalog()
	return nil
}

// refreshCatalog reloads the sneaker list. Each refresh bumps a generation
// counter; a refresh that finishes after a newer one started is discarded so
// its result never clobbers fresher state.
func (a *App) refreshCatalog(ctx context.Context) error {
	a.sneakersGen++
	gen := a.sneakersGen
	a.sneakers.Start()

	items, err := a.api.Sneakers(ctx)
	return a.applyCatalog(gen, items, err)
}

// applyCatalog commits a fetch result unless a newer refresh has started
// since gen was taken. A canceled fetch is discarded the same way.
func (a *App) applyCatalog(gen int, items []models.Sneaker, err error) error {
	if gen != a.sneakersGen {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		a.sneakers.Fail(err)
		return err
	}
	a.sneakers.Set(items)
	return nil
}

func (a *App) renderCatalog() {
	items, ok := a.sneakers.Get()
	if !ok {
		printlnFn("catalog not loaded yet, run browse")
		return
	}

	filtered := catalog.Apply(items, a.filter)
	if desc := a.filter.Describe(); desc != "" {
		printlnFn("filters: " + desc)
	}
	if len(filtered) == 0 {
		printlnFn("no sneakers match the current filters (clear to reset)")
		return
	}

	user := a.session.User()
	for _, s := range filtered {
		printlnFn(formatSneakerLine(s, ownership.IsOwnListing(user, s)))
	}
	printlnFn(fmt.Sprintf("%d of %d sneakers", len(filtered), len(items)))
}

func formatSneakerLine(s models.Sneaker, own bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %s %s  $%s  size %s  %s", s.ID, s.Brand, s.Name, s.Price.StringFixed(2), s.Size, s.Condition)
	if s.AverageRating > 0 {
		fmt.Fprintf(&b, "  %.1f/5", s.AverageRating)
	}
	if s.Status == models.SneakerSold {
		b.WriteString("  [SOLD]")
	}
	if own {
		b.WriteString("  [your listing]")
	}
	return b.String()
}

// Search sets the free-text filter and re-renders without refetching.
func (a *App) Search(ctx context.Context, term string) error {
	a.filter.Search = term
	return a.showFiltered(ctx)
}

// Brand toggles a brand in the multi-select filter.
func (a *App) Brand(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		printlnFn("brands: " + strings.Join(catalog.Brands, ", "))
		return nil
	}
	a.filter = a.filter.ToggleBrand(name)
	return a.showFiltered(ctx)
}

// Condition sets the single-select condition filter.
func (a *App) Condition(ctx context.Context, name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		printlnFn("conditions: " + strings.Join(catalog.Conditions, ", "))
		return nil
	}
	if name != catalog.ConditionAll && !containsFold(catalog.Conditions, name) {
		printlnFn(fmt.Sprintf("unknown condition %q", name))
		return nil
	}
	a.filter.Condition = name
	return a.showFiltered(ctx)
}

// ClearFilters resets every filter at once.
func (a *App) ClearFilters(ctx context.Context) error {
	a.filter = catalog.Filter{}
	return a.showFiltered(ctx)
}

// showFiltered re-renders the already fetched catalog, fetching only when
// nothing has been loaded yet.
func (a *App) showFiltered(ctx context.Context) error {
	if _, ok := a.sneakers.Get(); !ok {
		return a.Browse(ctx)
	}
	a.renderCatalog()
	return nil
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
