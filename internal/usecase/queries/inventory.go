package queries

import (
	"strings"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/pkg/errs"
)

type InventoryReader interface {
	Get(serial string) (inventory.Item, bool)
	List(filter inventory.Filter) []inventory.Item
	Lookup(query string, limit int) ([]inventory.Match, error)
	Summarize() inventory.Summary
}

// InventoryFilters narrow a listing. Zero values mean "any".
type InventoryFilters struct {
	Query  string
	Tag    string
	Status inventory.Status
}

type InventoryQueries interface {
	GetItem(serial string) (inventory.Item, error)
	ListItems(filters InventoryFilters) []inventory.Item
	Lookup(query string, limit int) ([]inventory.Match, error)
	Summary() inventory.Summary
}

type inventoryQueriesImpl struct {
	store        InventoryReader
	defaultLimit int
}

func NewInventoryQueries(store InventoryReader, defaultLimit int) InventoryQueries {
	return &inventoryQueriesImpl{store: store, defaultLimit: defaultLimit}
}

func (q *inventoryQueriesImpl) GetItem(serial string) (inventory.Item, error) {
	item, ok := q.store.Get(serial)
	if !ok {
		return inventory.Item{}, errs.Wrapf(errs.ErrNotFound, "inventory item %s", inventory.NormalizeSerial(serial))
	}
	return item, nil
}

func (q *inventoryQueriesImpl) ListItems(filters InventoryFilters) []inventory.Item {
	return q.store.List(filters.match)
}

func (q *inventoryQueriesImpl) Lookup(query string, limit int) ([]inventory.Match, error) {
	if limit <= 0 {
		limit = q.defaultLimit
	}
	return q.store.Lookup(query, limit)
}

func (q *inventoryQueriesImpl) Summary() inventory.Summary {
	return q.store.Summarize()
}

func (f InventoryFilters) match(it inventory.Item) bool {
	if f.Status != "" && it.Status != f.Status {
		return false
	}
	if f.Tag != "" && !it.HasTag(f.Tag) {
		return false
	}
	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" && !strings.Contains(it.SearchText(), query) {
		return false
	}
	return true
}
