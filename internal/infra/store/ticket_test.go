//go:build unit

package store_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"service-desk/internal/domain/ticket"
	"service-desk/internal/infra/store"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"
	"service-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var ticketIDPattern = regexp.MustCompile(`^TICKET-[0-9A-F]{8}$`)

func newTicketStore(t *testing.T) (*store.TicketStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.json")
	return store.NewTicketStore(path, clock.NewMockClock(t0), discardLogger()), path
}

func TestTicketStore_Create(t *testing.T) {
	t.Run("round trip through getStatus", func(t *testing.T) {
		s, path := newTicketStore(t)

		created, err := s.Create(builder.NewTicketBuilder().WithPhone(" +977   1234567 ").BuildParams())
		require.NoError(t, err)
		assert.Regexp(t, ticketIDPattern, created.TicketID)
		assert.Equal(t, "+977 1234567", created.Phone)
		assert.Equal(t, ticket.StatusReceived, created.Status)
		assert.Equal(t, ticket.DefaultPriority, created.Priority)
		assert.Equal(t, t0, created.CreatedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, []string{}, created.Notes)

		got, err := s.GetStatus(created.TicketID)
		require.NoError(t, err)
		assert.False(t, got.PartialMatch)
		assert.Equal(t, created, got.Ticket)

		reopened := store.NewTicketStore(path, clock.NewMockClock(t0), discardLogger())
		got, err = reopened.GetStatus(strings.ToLower(created.TicketID))
		require.NoError(t, err)
		assert.Equal(t, created, got.Ticket)
	})

	t.Run("required fields", func(t *testing.T) {
		s, path := newTicketStore(t)
		cases := []struct {
			name string
			b    *builder.TicketBuilder
		}{
			{"customer name", builder.NewTicketBuilder().WithCustomerName("  ")},
			{"device", builder.NewTicketBuilder().WithDevice("")},
			{"issue", builder.NewTicketBuilder().WithIssue("\t")},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := s.Create(tc.b.BuildParams())
				assert.ErrorIs(t, err, errs.ErrValidation)
			})
		}
		assert.Empty(t, s.List())
		assert.NoFileExists(t, path)
	})

	t.Run("ids are unique in bulk", func(t *testing.T) {
		s := store.NewTicketStore("", clock.NewMockClock(t0), discardLogger())
		seen := map[string]struct{}{}
		for i := 0; i < 500; i++ {
			created, err := s.Create(builder.NewTicketBuilder().BuildParams())
			require.NoError(t, err)
			_, dup := seen[created.TicketID]
			require.False(t, dup, "duplicate id %s", created.TicketID)
			seen[created.TicketID] = struct{}{}
		}
		assert.Len(t, s.List(), 500)
	})

	t.Run("write failure is returned", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
		s := store.NewTicketStore(filepath.Join(blocker, "tickets.json"), clock.NewMockClock(t0), discardLogger())

		_, err := s.Create(builder.NewTicketBuilder().BuildParams())
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestTicketStore_GetStatus(t *testing.T) {
	s, path := newTicketStore(t)
	stored := []byte(`{"tickets": [
		{"ticket_id": "TICKET-ABCDEF12", "customer_name": "Sita", "device": "XPS", "issue": "boot", "status": "in_progress"},
		{"ticket_id": "TICKET-ABCDEF99", "customer_name": "Ram", "device": "T14", "issue": "fan", "status": "received"},
	]}`)
	require.NoError(t, os.WriteFile(path, stored, 0o644))

	t.Run("exact match ignores case", func(t *testing.T) {
		got, err := s.GetStatus(" ticket-abcdef99 ")
		require.NoError(t, err)
		assert.False(t, got.PartialMatch)
		assert.Equal(t, "Ram", got.Ticket.CustomerName)
	})

	t.Run("partial match returns the first hit", func(t *testing.T) {
		got, err := s.GetStatus("ABCDEF")
		require.NoError(t, err)
		assert.True(t, got.PartialMatch)
		assert.Equal(t, "TICKET-ABCDEF12", got.Ticket.TicketID)
		assert.Equal(t, "in_progress", got.Ticket.Status)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetStatus("ZZZZ")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := s.GetStatus("  ")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestTicketStore_ConcurrentCreate(t *testing.T) {
	s, path := newTicketStore(t)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := s.Create(builder.NewTicketBuilder().BuildParams())
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, s.List(), 20)
	reopened := store.NewTicketStore(path, clock.NewMockClock(t0), discardLogger())
	assert.Len(t, reopened.List(), 20)
}

func TestTicketStore_ListReturnsCopies(t *testing.T) {
	s := store.NewTicketStore("", clock.NewMockClock(t0), discardLogger())
	_, err := s.Create(builder.NewTicketBuilder().BuildParams())
	require.NoError(t, err)

	list := s.List()
	list[0].Notes = append(list[0].Notes, "scribble")
	list[0].Status = "closed"

	again := s.List()
	assert.Empty(t, again[0].Notes)
	assert.Equal(t, ticket.StatusReceived, again[0].Status)
}

func TestTicketStore_CreateKeepsHandEditedTickets(t *testing.T) {
	s, path := newTicketStore(t)
	stored := []byte(`[
		{"ticket_id": "TICKET-ABCDEF12", "customer_name": "Sita", "device": "XPS", "issue": "boot",
		 "status": "received", "created_at": "2025-01-02T03:04:05", "updated_at": "2025-01-02T03:04:05.250000"},
		{"ticket_id": "TICKET-BROKEN01", "customer_name": "Ram", "device": "T14", "issue": "fan", "notes": "not a list"}
	]`)
	require.NoError(t, os.WriteFile(path, stored, 0o644))

	got, err := s.GetStatus("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), got.Ticket.CreatedAt)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 250_000_000, time.UTC), got.Ticket.UpdatedAt)

	created, err := s.Create(builder.NewTicketBuilder().BuildParams())
	require.NoError(t, err)

	reopened := store.NewTicketStore(path, clock.NewMockClock(t0), discardLogger())
	ids := make([]string, 0, 2)
	for _, tk := range reopened.List() {
		ids = append(ids, tk.TicketID)
	}
	assert.Equal(t, []string{"TICKET-ABCDEF12", created.TicketID}, ids)
}
