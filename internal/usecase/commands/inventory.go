package commands

import (
	"log/slog"
	"sort"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrImportFormat = errs.Wrap(errs.ErrValidation, "import file must hold a list of items, an inventory list or a mapping by serial")

type InventoryWriter interface {
	Add(item inventory.Item) (inventory.Item, error)
	Update(serial string, p inventory.Patch) (inventory.Item, error)
	Remove(serial string) (inventory.Item, error)
	Allocate(serial, user, reason string) (inventory.Item, error)
	Release(serial string) (inventory.Item, error)
	Import(items []inventory.Item, skipExisting bool) (int, error)
}

type ImportResult struct {
	Read  int `json:"read"`
	Added int `json:"added"`
}

type InventoryCommands interface {
	AddItem(item inventory.Item) (inventory.Item, error)
	UpdateItem(serial string, p inventory.Patch) (inventory.Item, error)
	RemoveItem(serial string) (inventory.Item, error)
	Allocate(serial, user, reason string) (inventory.Item, error)
	Release(serial string) (inventory.Item, error)
	ImportFile(data []byte, skipExisting bool) (*ImportResult, error)
}

type inventoryCommandsImpl struct {
	store  InventoryWriter
	logger *slog.Logger
}

func NewInventoryCommands(store InventoryWriter, logger *slog.Logger) InventoryCommands {
	return &inventoryCommandsImpl{store: store, logger: logger}
}

func (uc *inventoryCommandsImpl) AddItem(item inventory.Item) (inventory.Item, error) {
	return uc.store.Add(item)
}

func (uc *inventoryCommandsImpl) UpdateItem(serial string, p inventory.Patch) (inventory.Item, error) {
	return uc.store.Update(serial, p)
}

func (uc *inventoryCommandsImpl) RemoveItem(serial string) (inventory.Item, error) {
	return uc.store.Remove(serial)
}

func (uc *inventoryCommandsImpl) Allocate(serial, user, reason string) (inventory.Item, error) {
	return uc.store.Allocate(serial, user, reason)
}

func (uc *inventoryCommandsImpl) Release(serial string) (inventory.Item, error) {
	return uc.store.Release(serial)
}

// ImportFile loads items from YAML or JSON (JSON parses as YAML) and adds
// them in one batch.
func (uc *inventoryCommandsImpl) ImportFile(data []byte, skipExisting bool) (*ImportResult, error) {
	items, err := DecodeInventory(data)
	if err != nil {
		return nil, err
	}
	added, err := uc.store.Import(items, skipExisting)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("inventory imported", "read", len(items), "added", added)
	return &ImportResult{Read: len(items), Added: added}, nil
}

// DecodeInventory accepts the same shapes as the inventory file: a list, an
// {"inventory": [...]} wrapper or a mapping from serial to item.
func DecodeInventory(data []byte) ([]inventory.Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(ErrImportFormat, err.Error())
	}
	if len(doc.Content) == 0 {
		return []inventory.Item{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return decodeItemList(root)
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "inventory" && root.Content[i+1].Kind == yaml.SequenceNode {
				return decodeItemList(root.Content[i+1])
			}
		}
		var bySerial map[string]inventory.Item
		if err := root.Decode(&bySerial); err != nil {
			return nil, errs.Wrap(ErrImportFormat, err.Error())
		}
		serials := make([]string, 0, len(bySerial))
		for k := range bySerial {
			serials = append(serials, k)
		}
		sort.Strings(serials)
		items := make([]inventory.Item, 0, len(serials))
		for _, serial := range serials {
			it := bySerial[serial]
			it.Serial = serial
			items = append(items, it)
		}
		return items, nil
	}
	return nil, ErrImportFormat
}

func decodeItemList(node *yaml.Node) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := node.Decode(&items); err != nil {
		return nil, errs.Wrap(ErrImportFormat, err.Error())
	}
	if items == nil {
		items = []inventory.Item{}
	}
	return items, nil
}
