package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"kickitup/internal/models"
)

// Dashboard shows the seller's aggregate stats and incoming orders. Both
// fetches run concurrently; either failing fails the view.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	var (
		stats  models.SellerStats
		orders []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = a.api.SellerStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = a.api.SellerOrders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		printlnFn("could not load dashboard: " + failureMessage(err))
		return nil
	}

	printlnFn(fmt.Sprintf("listings: %d total, %d active", stats.TotalListings, stats.ActiveSneakers))
	printlnFn(fmt.Sprintf("orders:   %d, revenue $%s", stats.TotalOrders, stats.TotalRevenue.StringFixed(2)))

	if len(orders) == 0 {
		printlnFn("no incoming orders")
		return nil
	}
	printlnFn("incoming orders:")
	for _, o := range orders {
		line := fmt.Sprintf("  #%-4d %s  buyer %s  $%s  %s",
			o.ID, o.SneakerName, o.BuyerUsername, o.TotalPrice.StringFixed(2), o.Status)
		if next, ok := o.Status.Next(); ok {
			line += fmt.Sprintf("  (advance %d to mark %s)", o.ID, next)
		}
		printlnFn(line)
	}
	return nil
}

// Advance moves a seller order to its single permitted next status. Orders
// already delivered or cancelled have no next status and are left alone.
func (a *App) Advance(ctx context.Context, idArg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(idArg)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	orders, err := a.api.SellerOrders(ctx)
	if err != nil {
		printlnFn("could not load orders: " + failureMessage(err))
		return nil
	}

	var found *models.Order
	for i := range orders {
		if orders[i].ID == id {
			found = &orders[i]
			break
		}
	}
	if found == nil {
		printlnFn(fmt.Sprintf("order %d not found among your sales", id))
		return nil
	}
	next, ok := found.Status.Next()
	if !ok {
		printlnFn(fmt.Sprintf("order %d is %s and cannot be advanced", id, found.Status))
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		return a.api.UpdateOrderStatus(ctx, id, next)
	}, fmt.Sprintf("order %d marked %s", id, next), a.Dashboard)
	return nil
}
