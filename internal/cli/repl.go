package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the set of commands the REPL can dispatch. *App implements it;
// tests substitute a fake.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Browse(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Brand(ctx context.Context, name string) error
	Condition(ctx context.Context, name string) error
	ClearFilters(ctx context.Context) error

	Show(ctx context.Context, id string) error
	Order(ctx context.Context, id string) error
	Review(ctx context.Context, id string) error
	Favorite(ctx context.Context, id string) error

	Listings(ctx context.Context) error
	Sell(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	Orders(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Advance(ctx context.Context, id string) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

func printHelp(loggedIn bool) {
	printlnFn("Commands:")
	printlnFn("  browse                 list sneakers")
	printlnFn("  search <text>          filter by name or brand")
	printlnFn("  brand <name>           toggle a brand filter")
	printlnFn("  cond <condition>       filter by condition (ALL to reset)")
	printlnFn("  clear                  clear all filters")
	printlnFn("  show <id>              sneaker details and reviews")
	if loggedIn {
		printlnFn("  order <id>             buy a sneaker")
		printlnFn("  review <id>            leave a review")
		printlnFn("  fav <id>               add to favorites")
		printlnFn("  listings               your listings")
		printlnFn("  sell                   list a sneaker for sale")
		printlnFn("  edit <id>              edit a listing")
		printlnFn("  delete <id>            delete a listing")
		printlnFn("  orders                 your purchases")
		printlnFn("  dashboard              seller dashboard")
		printlnFn("  advance <id>           move a sold order forward")
		printlnFn("  profile | editprofile | passwd")
		printlnFn("  logout")
	} else {
		printlnFn("  login | register")
	}
	printlnFn("  help | exit")
}

// runREPL reads commands line by line and dispatches them until exit, EOF or
// context cancellation. after runs once per dispatched command; the app uses
// it to flush pending notifications.
func runREPL(ctx context.Context, e execIface, status func() string, scanner *bufio.Scanner, after func()) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn(fmt.Sprintf("[%s] enter a command (help for a list):", status()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToLower(cmd) {
		case "exit", "quit":
			return
		case "help":
			printHelp(e.isLoggedIn())
		case "login":
			err = e.Login(ctx)
		case "register":
			err = e.Register(ctx)
		case "logout":
			err = e.Logout(ctx)
		case "browse":
			err = e.Browse(ctx)
		case "search":
			err = e.Search(ctx, arg)
		case "brand":
			err = e.Brand(ctx, arg)
		case "cond":
			err = e.Condition(ctx, arg)
		case "clear":
			err = e.ClearFilters(ctx)
		case "show":
			err = e.Show(ctx, arg)
		case "order":
			err = e.Order(ctx, arg)
		case "review":
			err = e.Review(ctx, arg)
		case "fav":
			err = e.Favorite(ctx, arg)
		case "listings":
			err = e.Listings(ctx)
		case "sell":
			err = e.Sell(ctx)
		case "edit":
			err = e.Edit(ctx, arg)
		case "delete":
			err = e.Delete(ctx, arg)
		case "orders":
			err = e.Orders(ctx)
		case "dashboard":
			err = e.Dashboard(ctx)
		case "advance":
			err = e.Advance(ctx, arg)
		case "profile":
			err = e.Profile(ctx)
		case "editprofile":
			err = e.EditProfile(ctx)
		case "passwd":
			err = e.ChangePassword(ctx)
		default:
			printlnFn(fmt.Sprintf("unknown command: %s", cmd))
		}

		if err != nil {
			printlnFn(fmt.Sprintf("error: %v", err))
		}
		if after != nil {
			after()
		}
	}
}
