package store

import (
	"log/slog"
	"sync"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/infra/recordstore"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"
)

// InventoryStore keeps inventory items in memory, keyed by normalized serial,
// and mirrors them to a JSON file. Every exported method takes the store
// lock; the *Locked helpers expect it held so batches can compose them.
//
// Items are replaced, never modified in place, so a snapshot of the map and
// order slice is enough to roll back a failed mutation.
type InventoryStore struct {
	mu       sync.Mutex
	records  *recordstore.Store[inventory.Item]
	items    map[string]*inventory.Item
	order    []string
	autosave bool
	clock    clock.Clock
	logger   *slog.Logger
}

// NewInventoryStore loads path (if any) and returns the store. An empty path
// gives a memory-only store whose Save fails.
func NewInventoryStore(path string, autosave bool, clk clock.Clock, logger *slog.Logger) *InventoryStore {
	s := &InventoryStore{
		records: recordstore.New(path, logger,
			recordstore.WithListKey[inventory.Item]("inventory"),
			recordstore.WithKeyedObjects(func(key string, it *inventory.Item) { it.Serial = key }),
		),
		items:    map[string]*inventory.Item{},
		autosave: autosave,
		clock:    clk,
		logger:   logger,
	}
	s.load()
	return s
}

func (s *InventoryStore) load() {
	if s.records.Path() == "" {
		return
	}
	for _, it := range s.records.Read() {
		it.Serial = inventory.NormalizeSerial(it.Serial)
		if it.Serial == "" {
			s.logger.Warn("skipping inventory record without serial", "path", s.records.Path())
			continue
		}
		if _, dup := s.items[it.Serial]; dup {
			s.logger.Warn("skipping duplicate inventory serial", "serial", it.Serial, "path", s.records.Path())
			continue
		}
		if it.Status == "" {
			it.Status = inventory.StatusAvailable
		}
		item := it
		s.items[it.Serial] = &item
		s.order = append(s.order, it.Serial)
	}
	s.logger.Info("inventory loaded", "path", s.records.Path(), "items", len(s.order))
}

func (s *InventoryStore) SetAutosave(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autosave = on
}

// Save writes the whole inventory regardless of the autosave setting.
func (s *InventoryStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *InventoryStore) Add(item inventory.Item) (inventory.Item, error) {
	return s.mutate(func() (inventory.Item, error) { return s.addLocked(item) })
}

func (s *InventoryStore) Update(serial string, p inventory.Patch) (inventory.Item, error) {
	return s.mutate(func() (inventory.Item, error) { return s.updateLocked(serial, p) })
}

func (s *InventoryStore) Remove(serial string) (inventory.Item, error) {
	return s.mutate(func() (inventory.Item, error) { return s.removeLocked(serial) })
}

func (s *InventoryStore) Allocate(serial, user, reason string) (inventory.Item, error) {
	return s.mutate(func() (inventory.Item, error) { return s.allocateLocked(serial, user, reason) })
}

func (s *InventoryStore) Release(serial string) (inventory.Item, error) {
	return s.mutate(func() (inventory.Item, error) { return s.releaseLocked(serial) })
}

func (s *InventoryStore) Get(serial string) (inventory.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(serial)
}

// List returns copies in insertion order. A nil filter keeps everything.
func (s *InventoryStore) List(filter inventory.Filter) []inventory.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(filter)
}

func (s *InventoryStore) FindByTag(tag string) []inventory.Item {
	return s.List(func(it inventory.Item) bool { return it.HasTag(tag) })
}

func (s *InventoryStore) Summarize() inventory.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := inventory.Summary{
		Total:       len(s.order),
		ByStatus:    map[string]int{},
		ByModel:     map[string]int{},
		GeneratedAt: clock.Stamp(s.clock),
	}
	for _, serial := range s.order {
		it := s.items[serial]
		sum.ByStatus[string(it.Status)]++
		model := it.Model
		if model == "" {
			model = "unknown"
		}
		sum.ByModel[model]++
	}
	return sum
}

// Import adds items in one batch. With skipExisting, serials already present
// are left alone instead of failing the batch.
func (s *InventoryStore) Import(items []inventory.Item, skipExisting bool) (int, error) {
	added := 0
	err := s.Batch(func(tx *InventoryTx) error {
		for _, it := range items {
			if skipExisting {
				if _, ok := tx.Get(it.Serial); ok {
					continue
				}
			}
			if _, err := tx.Add(it); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// InventoryTx exposes the store operations inside Batch. It must not be
// used after the callback returns.
type InventoryTx struct {
	s *InventoryStore
}

func (tx *InventoryTx) Add(item inventory.Item) (inventory.Item, error) {
	return tx.s.addLocked(item)
}

func (tx *InventoryTx) Update(serial string, p inventory.Patch) (inventory.Item, error) {
	return tx.s.updateLocked(serial, p)
}

func (tx *InventoryTx) Remove(serial string) (inventory.Item, error) {
	return tx.s.removeLocked(serial)
}

func (tx *InventoryTx) Allocate(serial, user, reason string) (inventory.Item, error) {
	return tx.s.allocateLocked(serial, user, reason)
}

func (tx *InventoryTx) Release(serial string) (inventory.Item, error) {
	return tx.s.releaseLocked(serial)
}

func (tx *InventoryTx) Get(serial string) (inventory.Item, bool) {
	return tx.s.getLocked(serial)
}

func (tx *InventoryTx) List(filter inventory.Filter) []inventory.Item {
	return tx.s.listLocked(filter)
}

// Batch runs fn under a single lock acquisition and persists once at the
// end (when autosave is on). If fn or the save fails, every change made in
// fn is rolled back.
func (s *InventoryStore) Batch(fn func(tx *InventoryTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	if err := fn(&InventoryTx{s: s}); err != nil {
		s.restoreLocked(snap)
		return err
	}
	if err := s.autosaveLocked(); err != nil {
		s.restoreLocked(snap)
		return err
	}
	return nil
}

func (s *InventoryStore) mutate(fn func() (inventory.Item, error)) (inventory.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	out, err := fn()
	if err != nil {
		return inventory.Item{}, err
	}
	if err := s.autosaveLocked(); err != nil {
		s.restoreLocked(snap)
		return inventory.Item{}, err
	}
	return out, nil
}

func (s *InventoryStore) addLocked(item inventory.Item) (inventory.Item, error) {
	it := item.Clone()
	if err := it.Prepare(clock.Stamp(s.clock)); err != nil {
		return inventory.Item{}, err
	}
	if _, exists := s.items[it.Serial]; exists {
		return inventory.Item{}, errs.Wrapf(errs.ErrDuplicateKey, "inventory item %s", it.Serial)
	}
	s.items[it.Serial] = &it
	s.order = append(s.order, it.Serial)
	s.logger.Info("inventory item added", "serial", it.Serial)
	return it.Clone(), nil
}

func (s *InventoryStore) updateLocked(serial string, p inventory.Patch) (inventory.Item, error) {
	cur, err := s.lookupLocked(serial)
	if err != nil {
		return inventory.Item{}, err
	}
	next := cur.Clone()
	if err := next.Apply(p, clock.Stamp(s.clock)); err != nil {
		return inventory.Item{}, err
	}
	s.items[next.Serial] = &next
	return next.Clone(), nil
}

func (s *InventoryStore) removeLocked(serial string) (inventory.Item, error) {
	cur, err := s.lookupLocked(serial)
	if err != nil {
		return inventory.Item{}, err
	}
	delete(s.items, cur.Serial)
	order := make([]string, 0, len(s.order))
	for _, k := range s.order {
		if k != cur.Serial {
			order = append(order, k)
		}
	}
	s.order = order
	s.logger.Info("inventory item removed", "serial", cur.Serial)
	return cur.Clone(), nil
}

func (s *InventoryStore) allocateLocked(serial, user, reason string) (inventory.Item, error) {
	cur, err := s.lookupLocked(serial)
	if err != nil {
		return inventory.Item{}, err
	}
	next := cur.Clone()
	if err := next.Allocate(user, reason, clock.Stamp(s.clock)); err != nil {
		return inventory.Item{}, errs.Wrapf(err, "allocate %s", cur.Serial)
	}
	s.items[next.Serial] = &next
	s.logger.Info("inventory item allocated", "serial", next.Serial, "owner", *next.Owner)
	return next.Clone(), nil
}

func (s *InventoryStore) releaseLocked(serial string) (inventory.Item, error) {
	cur, err := s.lookupLocked(serial)
	if err != nil {
		return inventory.Item{}, err
	}
	next := cur.Clone()
	next.Release(clock.Stamp(s.clock))
	s.items[next.Serial] = &next
	s.logger.Info("inventory item released", "serial", next.Serial)
	return next.Clone(), nil
}

func (s *InventoryStore) getLocked(serial string) (inventory.Item, bool) {
	it, ok := s.items[inventory.NormalizeSerial(serial)]
	if !ok {
		return inventory.Item{}, false
	}
	return it.Clone(), true
}

func (s *InventoryStore) listLocked(filter inventory.Filter) []inventory.Item {
	out := make([]inventory.Item, 0, len(s.order))
	for _, serial := range s.order {
		it := s.items[serial]
		if filter != nil && !filter(*it) {
			continue
		}
		out = append(out, it.Clone())
	}
	return out
}

func (s *InventoryStore) lookupLocked(serial string) (*inventory.Item, error) {
	key := inventory.NormalizeSerial(serial)
	it, ok := s.items[key]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "inventory item %s", key)
	}
	return it, nil
}

type inventorySnapshot struct {
	items map[string]*inventory.Item
	order []string
}

func (s *InventoryStore) snapshotLocked() inventorySnapshot {
	items := make(map[string]*inventory.Item, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	return inventorySnapshot{items: items, order: append([]string(nil), s.order...)}
}

func (s *InventoryStore) restoreLocked(snap inventorySnapshot) {
	s.items = snap.items
	s.order = snap.order
}

func (s *InventoryStore) autosaveLocked() error {
	if !s.autosave || s.records.Path() == "" {
		return nil
	}
	return s.saveLocked()
}

func (s *InventoryStore) saveLocked() error {
	out := make([]inventory.Item, 0, len(s.order))
	for _, serial := range s.order {
		out = append(out, *s.items[serial])
	}
	return s.records.Write(out)
}
