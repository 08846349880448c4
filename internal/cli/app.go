package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"kickitup/internal/api"
	"kickitup/internal/catalog"
	"kickitup/internal/config"
	"kickitup/internal/logging"
	"kickitup/internal/models"
	"kickitup/internal/notify"
	"kickitup/internal/resource"
	"kickitup/internal/session"
	"kickitup/internal/store"
)

// App wires the api client, session store, notification queue and the
// catalog state behind the REPL commands.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     *api.Client
	session *session.Store
	notes   *notify.Queue
	reader  *bufio.Reader

	sneakers    resource.Resource[[]models.Sneaker]
	filter      catalog.Filter
	sneakersGen int
}

// NewApp opens the local store, runs migrations and wires the session on top
// of the api client.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	client := api.New(cfg.BaseURL, cfg.RequestTimeout, log)
	sess := session.New(client, store.NewMetadata(db), log)

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		api:     client,
		session: sess,
		notes:   notify.NewQueue(cfg.NotificationTTL),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.db.Close()
}

// Run restores the session and serves the REPL until exit or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.session.Initialize(ctx)

	printlnFn("KickItUp marketplace")
	if user := a.session.User(); user != nil {
		printlnFn(fmt.Sprintf("welcome back, %s", user.Username))
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader), a.flushNotifications)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) status() string {
	if user := a.session.User(); user != nil {
		return user.Username
	}
	return "guest"
}

// flushNotifications prints and drains everything still alive in the queue.
// Called after every REPL command so feedback lands next to the action.
func (a *App) flushNotifications() {
	for _, n := range a.notes.Drain() {
		printlnFn(fmt.Sprintf("[%s] %s", n.Kind, n.Message))
	}
}

// requireLogin gates commands that only make sense with a session.
func (a *App) requireLogin() bool {
	if a.session.LoggedIn() {
		return true
	}
	printlnFn("please log in first (login or register)")
	return false
}
