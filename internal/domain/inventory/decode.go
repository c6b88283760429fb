package inventory

import (
	"encoding/json"

	"service-desk/internal/pkg/clock"
)

// The decoders below accept zone-less ISO-8601 timestamps (read as UTC) so
// a single hand-edited record does not make the whole file unreadable.

func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		AddedAt     clock.Timestamp `json:"added_at"`
		LastUpdated clock.Timestamp `json:"last_updated"`
	}{plain: (*plain)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	it.AddedAt = aux.AddedAt.Time
	it.LastUpdated = aux.LastUpdated.Time
	return nil
}

func (a *Allocation) UnmarshalJSON(data []byte) error {
	type plain Allocation
	aux := struct {
		*plain
		AllocatedAt clock.Timestamp `json:"allocated_at"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.AllocatedAt = aux.AllocatedAt.Time
	return nil
}

func (r *Release) UnmarshalJSON(data []byte) error {
	type plain Release
	aux := struct {
		*plain
		ReleasedAt clock.Timestamp `json:"released_at"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ReleasedAt = aux.ReleasedAt.Time
	return nil
}
