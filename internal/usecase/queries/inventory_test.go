//go:build unit

package queries_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/infra/store"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"
	"service-desk/internal/usecase/queries"
	"service-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seeded(t *testing.T) *store.InventoryStore {
	t.Helper()
	s := store.NewInventoryStore("", false, clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), discardLogger())
	for _, b := range []*builder.InventoryBuilder{
		builder.NewInventoryBuilder(),
		builder.NewInventoryBuilder().AsPrinter(),
		builder.NewInventoryBuilder().WithSerial("SN-1002").AllocatedTo("Ram"),
	} {
		_, err := s.Add(b.BuildDomain())
		require.NoError(t, err)
	}
	return s
}

func TestInventoryQueries_ListItems(t *testing.T) {
	q := queries.NewInventoryQueries(seeded(t), 10)

	cases := []struct {
		name    string
		filters queries.InventoryFilters
		want    []string
	}{
		{"no filters", queries.InventoryFilters{}, []string{"SN-1001", "PR-2002", "SN-1002"}},
		{"by status", queries.InventoryFilters{Status: inventory.StatusAllocated}, []string{"SN-1002"}},
		{"by tag", queries.InventoryFilters{Tag: "laptop"}, []string{"SN-1001", "SN-1002"}},
		{"by text", queries.InventoryFilters{Query: "  RAM "}, []string{"SN-1002"}},
		{"combined", queries.InventoryFilters{Tag: "laptop", Status: inventory.StatusAvailable}, []string{"SN-1001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := q.ListItems(tc.filters)
			got := make([]string, len(items))
			for i, it := range items {
				got[i] = it.Serial
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInventoryQueries_GetItem(t *testing.T) {
	q := queries.NewInventoryQueries(seeded(t), 10)

	item, err := q.GetItem("pr-2002")
	require.NoError(t, err)
	assert.Equal(t, "LaserJet 1020", item.Model)

	_, err = q.GetItem("nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestInventoryQueries_LookupDefaultLimit(t *testing.T) {
	q := queries.NewInventoryQueries(seeded(t), 1)

	matches, err := q.Lookup("laptop", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = q.Lookup("laptop", 5)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
