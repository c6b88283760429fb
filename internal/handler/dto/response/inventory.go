package response

import (
	"time"

	"service-desk/internal/domain/inventory"

	"github.com/jinzhu/copier"
)

type InventoryItemResponse struct {
	Serial      string               `json:"serial"`
	Model       string               `json:"model"`
	Make        string               `json:"make"`
	Status      string               `json:"status"`
	Owner       *string              `json:"owner"`
	Location    string               `json:"location"`
	Tags        []string             `json:"tags"`
	Metadata    map[string]any       `json:"metadata"`
	AddedAt     time.Time            `json:"added_at"`
	LastUpdated time.Time            `json:"last_updated"`
	Allocations []AllocationResponse `json:"allocations"`
	Releases    []ReleaseResponse    `json:"releases"`
}

type AllocationResponse struct {
	User        string    `json:"user"`
	Reason      string    `json:"reason,omitempty"`
	AllocatedAt time.Time `json:"allocated_at"`
}

type ReleaseResponse struct {
	PreviousOwner *string   `json:"previous_owner"`
	ReleasedAt    time.Time `json:"released_at"`
}

type InventoryMatchResponse struct {
	Item  *InventoryItemResponse `json:"item"`
	Score int                    `json:"score"`
}

type LookupResponse struct {
	Query   string                    `json:"query"`
	Count   int                       `json:"count"`
	Results []*InventoryMatchResponse `json:"results"`
}

type InventorySummaryResponse struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByModel     map[string]int `json:"by_model"`
	GeneratedAt time.Time      `json:"generated_at"`
}

func FromInventoryItem(it inventory.Item) *InventoryItemResponse {
	res := &InventoryItemResponse{}
	// field names line up one to one; Status converts from inventory.Status
	_ = copier.Copy(res, &it)
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if res.Allocations == nil {
		res.Allocations = []AllocationResponse{}
	}
	if res.Releases == nil {
		res.Releases = []ReleaseResponse{}
	}
	return res
}

func FromInventoryItems(items []inventory.Item) []*InventoryItemResponse {
	res := make([]*InventoryItemResponse, len(items))
	for i, it := range items {
		res[i] = FromInventoryItem(it)
	}
	return res
}

func FromLookup(query string, matches []inventory.Match) *LookupResponse {
	res := &LookupResponse{Query: query, Count: len(matches), Results: make([]*InventoryMatchResponse, len(matches))}
	for i, m := range matches {
		res.Results[i] = &InventoryMatchResponse{Item: FromInventoryItem(m.Item), Score: m.Score}
	}
	return res
}

func FromInventorySummary(s inventory.Summary) *InventorySummaryResponse {
	return &InventorySummaryResponse{
		Total:       s.Total,
		ByStatus:    s.ByStatus,
		ByModel:     s.ByModel,
		GeneratedAt: s.GeneratedAt,
	}
}
