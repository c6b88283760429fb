package inventory

import (
	"strings"

	"service-desk/internal/pkg/errs"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusAllocated Status = "allocated"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusAllocated
}

var (
	ErrSerialRequired  = errs.Wrap(errs.ErrValidation, "serial is required")
	ErrInvalidStatus   = errs.Wrap(errs.ErrValidation, "status must be available or allocated")
	ErrOwnerRequired   = errs.Wrap(errs.ErrValidation, "allocated items need an owner")
	ErrUserRequired    = errs.Wrap(errs.ErrValidation, "user is required to allocate")
	ErrQueryRequired   = errs.Wrap(errs.ErrValidation, "search query is required")
	ErrAlreadyAssigned = errs.Wrap(errs.ErrConflict, "item is already allocated")
)

// NormalizeSerial makes serials comparable regardless of case and padding.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// NormalizeTags drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
