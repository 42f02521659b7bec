package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// MaxID is the highest national dex id the browser pages through.
const MaxID = 1200

type Entry struct {
	ID    int
	Name  string
	Types []model.TypeID
}

func (e Entry) DisplayName() string {
	return model.DisplayName(e.Name)
}

func EntriesFromList(items []model.ListItem) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{ID: item.ID(), Name: item.Name}
	}

	return entries
}

// WithType returns a copy of entries where every entry named in members also
// carries typ.
func WithType(entries []Entry, typ model.TypeID, members []string) []Entry {
	names := make(map[string]bool, len(members))
	for _, name := range members {
		names[name] = true
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e
		if names[e.Name] && !hasAny(e.Types, []model.TypeID{typ}) {
			out[i].Types = append(append([]model.TypeID(nil), e.Types...), typ)
		}
	}

	return out
}

// Search keeps entries whose name contains query, ignoring case. A numeric
// query also matches the entry with that id.
func Search(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Entry(nil), entries...)
	}

	id, err := strconv.Atoi(query)
	isID := err == nil

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if (isID && e.ID == id) || strings.Contains(strings.ToLower(e.Name), query) {
			out = append(out, e)
		}
	}

	return out
}

// FilterByTypes keeps entries that have any of the given types. No types keeps
// everything.
func FilterByTypes(entries []Entry, types []model.TypeID) []Entry {
	if len(types) == 0 {
		return append([]Entry(nil), entries...)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if hasAny(e.Types, types) {
			out = append(out, e)
		}
	}

	return out
}

func hasAny(have []model.TypeID, want []model.TypeID) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}

	return false
}

type SortField string

const (
	SortByID   SortField = "id"
	SortByName SortField = "name"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

var (
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrUnknownOrder     = errors.New("unknown sort order")
)

func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(s)) {
	case "", SortByID:
		return SortByID, nil
	case SortByName:
		return SortByName, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownSortField)
	}
}

func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(s)) {
	case "", Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownOrder)
	}
}

// Sort returns a sorted copy of entries. Ties keep their input order.
func Sort(entries []Entry, field SortField, order Order) []Entry {
	out := append([]Entry(nil), entries...)

	less := func(a, b Entry) bool { return a.ID < b.ID }
	if field == SortByName {
		less = func(a, b Entry) bool { return a.Name < b.Name }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

type Query struct {
	Search string
	SortBy SortField
	Order  Order
	Types  []model.TypeID
}

func (q Query) Apply(entries []Entry) []Entry {
	out := Search(entries, q.Search)
	out = FilterByTypes(out, q.Types)
	return Sort(out, q.SortBy, q.Order)
}

// Page slices entries for display and reports whether more follow.
func Page(entries []Entry, offset, limit int) ([]Entry, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) || limit <= 0 {
		return []Entry{}, false
	}

	end := offset + limit
	if end >= len(entries) {
		return entries[offset:], false
	}

	return entries[offset:end], true
}

// Neighbors returns the ids on either side of id within [1, MaxID].
func Neighbors(id int) (prev int, hasPrev bool, next int, hasNext bool) {
	if id > 1 {
		prev, hasPrev = id-1, true
	}
	if id < MaxID {
		next, hasNext = id+1, true
	}

	return prev, hasPrev, next, hasNext
}
