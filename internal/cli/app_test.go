package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kickitup/internal/api"
	"kickitup/internal/logging"
	"kickitup/internal/models"
	"kickitup/internal/notify"
	"kickitup/internal/session"
	"kickitup/internal/store"
)

// marketBackend fakes the marketplace endpoints the app commands touch and
// keeps one seller order whose status the PATCH handler mutates.
type marketBackend struct {
	order    models.Order
	patched  []string
	sneakers []models.Sneaker
}

func (b *marketBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AuthResponse{Token: "tok", Username: "alice"})
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Profile{Username: "alice", Email: "a@b.c"})
	})
	mux.HandleFunc("GET /api/sneakers/all", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(b.sneakers)
	})
	mux.HandleFunc("GET /api/dashboard/seller/stats", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.SellerStats{TotalListings: 1, TotalOrders: 1})
	})
	mux.HandleFunc("GET /api/dashboard/seller/orders", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Order{b.order})
	})
	mux.HandleFunc("PATCH /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		b.patched = append(b.patched, status)
		b.order.Status = models.OrderStatus(status)
		_ = json.NewEncoder(w).Encode(b.order)
	})
	return mux
}

func newGuestApp(t *testing.T, b *marketBackend) *App {
	t.Helper()
	muteOutput(t)

	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := api.New(srv.URL, 5*time.Second, logging.Nop())
	sess := session.New(client, store.NewMetadata(db), logging.Nop())

	return &App{
		log:     logging.Nop(),
		db:      db,
		api:     client,
		session: sess,
		notes:   notify.NewQueue(time.Minute),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func newTestApp(t *testing.T, b *marketBackend) *App {
	t.Helper()
	a := newGuestApp(t, b)
	require.NoError(t, a.session.Login(context.Background(), "alice", "pw"))
	return a
}

func TestAdvance_PendingOrderMovesToShipped(t *testing.T) {
	b := &marketBackend{order: models.Order{
		ID:          7,
		SneakerName: "Air Max 90",
		Status:      models.OrderPending,
		TotalPrice:  decimal.NewFromInt(120),
	}}
	a := newTestApp(t, b)

	require.NoError(t, a.Advance(context.Background(), "7"))

	require.Equal(t, []string{"SHIPPED"}, b.patched)
	notes := a.notes.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindSuccess, notes[0].Kind)
	assert.Contains(t, notes[0].Message, "SHIPPED")
}

func TestAdvance_ShippedThenDeliveredThenStops(t *testing.T) {
	b := &marketBackend{order: models.Order{ID: 7, Status: models.OrderShipped}}
	a := newTestApp(t, b)

	require.NoError(t, a.Advance(context.Background(), "7"))
	require.Equal(t, []string{"DELIVERED"}, b.patched)
	a.notes.Drain()

	// Delivered is terminal, a second advance must not touch the backend.
	require.NoError(t, a.Advance(context.Background(), "7"))
	assert.Equal(t, []string{"DELIVERED"}, b.patched)
	assert.Empty(t, a.notes.Drain())
}

func TestAdvance_UnknownOrder(t *testing.T) {
	b := &marketBackend{order: models.Order{ID: 7, Status: models.OrderPending}}
	a := newTestApp(t, b)

	require.NoError(t, a.Advance(context.Background(), "99"))
	assert.Empty(t, b.patched)
}

func TestBrowse_RendersThroughFilter(t *testing.T) {
	b := &marketBackend{sneakers: []models.Sneaker{
		{ID: 1, Name: "Air Max", Brand: "NIKE", Status: models.SneakerAvailable},
		{ID: 2, Name: "Samba", Brand: "ADIDAS", Status: models.SneakerAvailable},
	}}
	a := newTestApp(t, b)

	require.NoError(t, a.Browse(context.Background()))
	got, ok := a.sneakers.Get()
	require.True(t, ok)
	assert.Len(t, got, 2)

	// Filter changes re-render without another fetch.
	require.NoError(t, a.Search(context.Background(), "samba"))
	got, _ = a.sneakers.Get()
	assert.Len(t, got, 2, "filtering must not mutate the fetched set")
}
