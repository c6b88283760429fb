package request

import (
	"service-desk/internal/domain/inventory"

	"github.com/jinzhu/copier"
)

type CreateInventoryItemRequest struct {
	Serial   string         `json:"serial" binding:"required,max=64"`
	Model    string         `json:"model" binding:"max=128"`
	Make     string         `json:"make" binding:"max=128"`
	Status   string         `json:"status,omitempty" binding:"omitempty,oneof=available allocated"`
	Owner    *string        `json:"owner,omitempty"`
	Location string         `json:"location" binding:"max=256"`
	Tags     []string       `json:"tags"`
	Metadata map[string]any `json:"metadata"`
}

func (r CreateInventoryItemRequest) ToDomain() (inventory.Item, error) {
	var item inventory.Item
	if err := copier.Copy(&item, &r); err != nil {
		return inventory.Item{}, err
	}
	item.Status = inventory.Status(r.Status)
	return item, nil
}

// UpdateInventoryItemRequest is a partial update; omitted fields keep their value.
type UpdateInventoryItemRequest struct {
	Model    *string        `json:"model" binding:"omitempty,max=128"`
	Make     *string        `json:"make" binding:"omitempty,max=128"`
	Status   *string        `json:"status" binding:"omitempty,oneof=available allocated"`
	Owner    *string        `json:"owner"`
	Location *string        `json:"location" binding:"omitempty,max=256"`
	Tags     []string       `json:"tags"`
	Metadata map[string]any `json:"metadata"`
}

func (r UpdateInventoryItemRequest) ToPatch() inventory.Patch {
	p := inventory.Patch{
		Model:    r.Model,
		Make:     r.Make,
		Owner:    r.Owner,
		Location: r.Location,
		Tags:     r.Tags,
		Metadata: r.Metadata,
	}
	if r.Status != nil {
		s := inventory.Status(*r.Status)
		p.Status = &s
	}
	return p
}

type AllocateRequest struct {
	User   string `json:"user" binding:"required,max=128"`
	Reason string `json:"reason" binding:"max=512"`
}
