package store

import (
	"regexp"
	"sort"
	"strings"

	"service-desk/internal/domain/inventory"
)

const DefaultLookupMax = 10

var nonWord = regexp.MustCompile(`\W+`)

// Search returns copies of items whose search text contains query, in
// storage order. An empty query matches every item.
func (s *InventoryStore) Search(query string) []inventory.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	return s.List(func(it inventory.Item) bool {
		return strings.Contains(it.SearchText(), q)
	})
}

// Lookup scores every item against the words of query and returns the best
// limit hits, highest score first. Equal scores keep storage order.
func (s *InventoryStore) Lookup(query string, limit int) ([]inventory.Match, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, inventory.ErrQueryRequired
	}
	if limit <= 0 {
		limit = DefaultLookupMax
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var hits []inventory.Match
	for _, serial := range s.order {
		it := s.items[serial]
		if score := scoreItem(*it, terms); score > 0 {
			hits = append(hits, inventory.Match{Item: it.Clone(), Score: score})
		}
	}
	// Nothing scored: fall back to the wider search text, which also covers
	// the current owner.
	if len(hits) == 0 {
		for _, serial := range s.order {
			it := s.items[serial]
			if containsAnyTerm(it.SearchText(), terms) {
				hits = append(hits, inventory.Match{Item: it.Clone(), Score: 1})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	if hits == nil {
		hits = []inventory.Match{}
	}
	return hits, nil
}

func queryTerms(query string) []string {
	var terms []string
	for _, t := range nonWord.Split(strings.ToLower(strings.TrimSpace(query)), -1) {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// scoreItem weighs each term by where it appears: serial 4, model 3, make
// or tag 2, location or metadata 1, plus 1 when it is a whole word.
func scoreItem(it inventory.Item, terms []string) int {
	serial := strings.ToLower(it.Serial)
	model := strings.ToLower(it.Model)
	mk := strings.ToLower(it.Make)
	tags := strings.ToLower(strings.Join(it.Tags, " "))
	details := strings.ToLower(it.Location + " " + it.MetadataJSON())

	tokens := map[string]struct{}{}
	for _, tok := range nonWord.Split(strings.Join([]string{serial, model, mk, tags, details}, " "), -1) {
		if tok != "" {
			tokens[tok] = struct{}{}
		}
	}

	score := 0
	for _, term := range terms {
		if strings.Contains(serial, term) {
			score += 4
		}
		if strings.Contains(model, term) {
			score += 3
		}
		if strings.Contains(mk, term) || strings.Contains(tags, term) {
			score += 2
		}
		if strings.Contains(details, term) {
			score++
		}
		if _, ok := tokens[term]; ok {
			score++
		}
	}
	return score
}

func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
