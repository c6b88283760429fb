package inventory

import (
	"encoding/json"
	"strings"
	"time"

	"service-desk/internal/pkg/patch"
)

type Item struct {
	Serial      string         `json:"serial" yaml:"serial"`
	Model       string         `json:"model" yaml:"model"`
	Make        string         `json:"make" yaml:"make"`
	Status      Status         `json:"status" yaml:"status"`
	Owner       *string        `json:"owner" yaml:"owner"`
	Location    string         `json:"location" yaml:"location"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Metadata    map[string]any `json:"metadata" yaml:"metadata"`
	AddedAt     time.Time      `json:"added_at" yaml:"added_at"`
	LastUpdated time.Time      `json:"last_updated" yaml:"last_updated"`
	Allocations []Allocation   `json:"allocations" yaml:"allocations"`
	Releases    []Release      `json:"releases" yaml:"releases"`
}

type Allocation struct {
	User        string    `json:"user" yaml:"user"`
	Reason      string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	AllocatedAt time.Time `json:"allocated_at" yaml:"allocated_at"`
}

type Release struct {
	PreviousOwner *string   `json:"previous_owner" yaml:"previous_owner"`
	ReleasedAt    time.Time `json:"released_at" yaml:"released_at"`
}

// Patch carries the fields an update may change. Nil means "leave as is".
// Serial is accepted for wire compatibility and always ignored.
type Patch struct {
	Serial   *string
	Model    *string
	Make     *string
	Status   *Status
	Owner    *string
	Location *string
	Tags     []string
	Metadata map[string]any
}

type Filter func(Item) bool

// Match is one scored lookup hit.
type Match struct {
	Item  Item `json:"item"`
	Score int  `json:"score"`
}

type Summary struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByModel     map[string]int `json:"by_model"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Prepare normalizes a new item and fills defaults. now is used for any
// timestamp the caller did not supply.
func (it *Item) Prepare(now time.Time) error {
	it.Serial = NormalizeSerial(it.Serial)
	if it.Serial == "" {
		return ErrSerialRequired
	}
	if it.Status == "" {
		it.Status = StatusAvailable
	}
	if err := it.checkStatus(); err != nil {
		return err
	}
	it.Tags = NormalizeTags(it.Tags)
	if it.Metadata == nil {
		it.Metadata = map[string]any{}
	}
	if it.AddedAt.IsZero() {
		it.AddedAt = now
	}
	it.LastUpdated = now
	return nil
}

// Apply merges p into the item and refreshes LastUpdated.
func (it *Item) Apply(p Patch, now time.Time) error {
	next := *it
	next.Model = patch.Coalesce(p.Model, it.Model)
	next.Make = patch.Coalesce(p.Make, it.Make)
	next.Location = patch.Coalesce(p.Location, it.Location)
	next.Status = patch.Coalesce(p.Status, it.Status)
	if p.Owner != nil {
		owner := *p.Owner
		next.Owner = &owner
	}
	next.Tags = NormalizeTags(patch.CoalesceSlice(p.Tags, it.Tags))
	next.Metadata = patch.MergeMap(it.Metadata, p.Metadata)

	if next.Status == StatusAvailable {
		next.Owner = nil
	}
	if err := next.checkStatus(); err != nil {
		return err
	}
	next.LastUpdated = now
	*it = next
	return nil
}

func (it *Item) Allocate(user, reason string, now time.Time) error {
	if it.Status == StatusAllocated {
		return ErrAlreadyAssigned
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return ErrUserRequired
	}
	it.Status = StatusAllocated
	it.Owner = &user
	it.Allocations = append(it.Allocations, Allocation{User: user, Reason: reason, AllocatedAt: now})
	it.LastUpdated = now
	return nil
}

// Release frees the item. Releasing an available item still records the event.
func (it *Item) Release(now time.Time) {
	it.Releases = append(it.Releases, Release{PreviousOwner: it.Owner, ReleasedAt: now})
	it.Status = StatusAvailable
	it.Owner = nil
	it.LastUpdated = now
}

func (it *Item) checkStatus() error {
	if !it.Status.Valid() {
		return ErrInvalidStatus
	}
	if it.Status == StatusAllocated && (it.Owner == nil || strings.TrimSpace(*it.Owner) == "") {
		return ErrOwnerRequired
	}
	if it.Status == StatusAvailable {
		it.Owner = nil
	}
	return nil
}

// SearchText is the lower-cased haystack used by substring search.
func (it Item) SearchText() string {
	parts := []string{it.Serial, it.Model, it.Make}
	if it.Owner != nil {
		parts = append(parts, *it.Owner)
	}
	parts = append(parts, it.Tags...)
	parts = append(parts, it.MetadataJSON())
	return strings.ToLower(strings.Join(parts, " "))
}

func (it Item) MetadataJSON() string {
	if len(it.Metadata) == 0 {
		return ""
	}
	b, err := json.Marshal(it.Metadata)
	if err != nil {
		return ""
	}
	return string(b)
}

func (it Item) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range it.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable state with it.
func (it Item) Clone() Item {
	out := it
	out.Owner = cloneString(it.Owner)
	if it.Tags != nil {
		out.Tags = append([]string(nil), it.Tags...)
	}
	if it.Metadata != nil {
		out.Metadata = cloneValue(it.Metadata).(map[string]any)
	}
	if it.Allocations != nil {
		out.Allocations = append([]Allocation(nil), it.Allocations...)
	}
	if it.Releases != nil {
		out.Releases = make([]Release, len(it.Releases))
		for i, r := range it.Releases {
			out.Releases[i] = Release{PreviousOwner: cloneString(r.PreviousOwner), ReleasedAt: r.ReleasedAt}
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// cloneValue copies the nested maps and slices JSON decoding produces.
func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(x))
		for i, val := range x {
			s[i] = cloneValue(val)
		}
		return s
	default:
		return v
	}
}
