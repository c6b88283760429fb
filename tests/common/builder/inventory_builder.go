//go:build unit || e2e

package builder

import (
	"time"

	"service-desk/internal/domain/inventory"
	reqdto "service-desk/internal/handler/dto/request"
)

type InventoryBuilder struct {
	Serial   string
	Model    string
	Make     string
	Status   inventory.Status
	Owner    *string
	Location string
	Tags     []string
	Metadata map[string]any
	AddedAt  time.Time
}

func NewInventoryBuilder() *InventoryBuilder {
	return &InventoryBuilder{
		Serial:   "SN-1001",
		Model:    "XPS 13",
		Make:     "Dell",
		Status:   inventory.StatusAvailable,
		Location: "Kathmandu store",
		Tags:     []string{"laptop"},
		Metadata: map[string]any{"price": 1200},
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) BuildDomain() inventory.Item {
	var owner *string
	if b.Owner != nil {
		o := *b.Owner
		owner = &o
	}
	metadata := make(map[string]any, len(b.Metadata))
	for k, v := range b.Metadata {
		metadata[k] = v
	}
	return inventory.Item{
		Serial:   b.Serial,
		Model:    b.Model,
		Make:     b.Make,
		Status:   b.Status,
		Owner:    owner,
		Location: b.Location,
		Tags:     append([]string(nil), b.Tags...),
		Metadata: metadata,
		AddedAt:  b.AddedAt,
	}
}

func (b *InventoryBuilder) BuildCreateRequestDTO() reqdto.CreateInventoryItemRequest {
	return reqdto.CreateInventoryItemRequest{
		Serial:   b.Serial,
		Model:    b.Model,
		Make:     b.Make,
		Location: b.Location,
		Tags:     append([]string(nil), b.Tags...),
		Metadata: b.Metadata,
	}
}

// Fluent builder methods
func (b *InventoryBuilder) WithSerial(serial string) *InventoryBuilder {
	b.Serial = serial
	return b
}

func (b *InventoryBuilder) WithModel(model string) *InventoryBuilder {
	b.Model = model
	return b
}

func (b *InventoryBuilder) WithMake(mk string) *InventoryBuilder {
	b.Make = mk
	return b
}

func (b *InventoryBuilder) WithTags(tags ...string) *InventoryBuilder {
	b.Tags = tags
	return b
}

func (b *InventoryBuilder) WithLocation(location string) *InventoryBuilder {
	b.Location = location
	return b
}

func (b *InventoryBuilder) WithMetadata(metadata map[string]any) *InventoryBuilder {
	b.Metadata = metadata
	return b
}

func (b *InventoryBuilder) AllocatedTo(owner string) *InventoryBuilder {
	b.Status = inventory.StatusAllocated
	b.Owner = &owner
	return b
}

func (b *InventoryBuilder) AsPrinter() *InventoryBuilder {
	b.Serial = "PR-2002"
	b.Model = "LaserJet 1020"
	b.Make = "HP"
	b.Tags = []string{"printer"}
	b.Metadata = map[string]any{"price": 180}
	return b
}
