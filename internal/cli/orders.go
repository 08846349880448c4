package cli

import (
	"context"
	"fmt"

	"kickitup/internal/models"
)

// Orders shows the user's purchases grouped into active and completed.
func (a *App) Orders(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	orders, err := a.api.MyOrders(ctx)
	if err != nil {
		printlnFn("could not load orders: " + failureMessage(err))
		return nil
	}
	if len(orders) == 0 {
		printlnFn("you have no orders yet")
		return nil
	}

	var active, completed []models.Order
	for _, o := range orders {
		if o.Status.Active() {
			active = append(active, o)
		} else {
			completed = append(completed, o)
		}
	}

	if len(active) > 0 {
		printlnFn("active:")
		for _, o := range active {
			printlnFn("  " + formatOrderLine(o))
		}
	}
	if len(completed) > 0 {
		printlnFn("completed:")
		for _, o := range completed {
			printlnFn("  " + formatOrderLine(o))
		}
	}
	return nil
}

func formatOrderLine(o models.Order) string {
	return fmt.Sprintf("#%-4d %s  $%s  %s  %s",
		o.ID, o.SneakerName, o.TotalPrice.StringFixed(2), o.Status, o.CreatedAt.Format("2006-01-02"))
}
