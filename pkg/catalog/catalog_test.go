package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/notjagan/dexbrowser/pkg/model"
)

func testEntries() []Entry {
	return []Entry{
		{ID: 4, Name: "charmander", Types: []model.TypeID{model.TypeFire}},
		{ID: 1, Name: "bulbasaur", Types: []model.TypeID{model.TypeGrass, model.TypePoison}},
		{ID: 7, Name: "squirtle", Types: []model.TypeID{model.TypeWater}},
		{ID: 6, Name: "charizard", Types: []model.TypeID{model.TypeFire, model.TypeFlying}},
		{ID: 25, Name: "pikachu"},
	}
}

func ids(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}

	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{4, 1, 7, 6, 25}},
		{"char", []int{4, 6}},
		{"  CHAR ", []int{4, 6}},
		{"saur", []int{1}},
		{"25", []int{25}},
		{"mew", []int{}},
	}

	for _, tt := range tests {
		if got := ids(Search(testEntries(), tt.query)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterByTypes(t *testing.T) {
	tests := []struct {
		types []model.TypeID
		want  []int
	}{
		{nil, []int{4, 1, 7, 6, 25}},
		{[]model.TypeID{model.TypeFire}, []int{4, 6}},
		{[]model.TypeID{model.TypeWater, model.TypePoison}, []int{1, 7}},
		{[]model.TypeID{model.TypeDragon}, []int{}},
	}

	for _, tt := range tests {
		if got := ids(FilterByTypes(testEntries(), tt.types)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FilterByTypes(%v) = %v, want %v", tt.types, got, tt.want)
		}
	}
}

func TestWithType(t *testing.T) {
	entries := testEntries()
	tagged := WithType(entries, model.TypeElectric, []string{"pikachu", "raichu"})

	if got := ids(FilterByTypes(tagged, []model.TypeID{model.TypeElectric})); !reflect.DeepEqual(got, []int{25}) {
		t.Errorf("electric entries = %v", got)
	}
	if len(entries[4].Types) != 0 {
		t.Errorf("input was modified: %v", entries[4].Types)
	}

	again := WithType(tagged, model.TypeElectric, []string{"pikachu"})
	if len(again[4].Types) != 1 {
		t.Errorf("type added twice: %v", again[4].Types)
	}
}

func TestSort(t *testing.T) {
	entries := testEntries()

	if got := ids(Sort(entries, SortByID, Ascending)); !reflect.DeepEqual(got, []int{1, 4, 6, 7, 25}) {
		t.Errorf("id asc = %v", got)
	}
	if got := ids(Sort(entries, SortByID, Descending)); !reflect.DeepEqual(got, []int{25, 7, 6, 4, 1}) {
		t.Errorf("id desc = %v", got)
	}
	if got := ids(Sort(entries, SortByName, Ascending)); !reflect.DeepEqual(got, []int{1, 6, 4, 25, 7}) {
		t.Errorf("name asc = %v", got)
	}
	if got := ids(Sort(entries, SortByName, Descending)); !reflect.DeepEqual(got, []int{7, 25, 4, 6, 1}) {
		t.Errorf("name desc = %v", got)
	}

	if !reflect.DeepEqual(entries, testEntries()) {
		t.Errorf("Sort modified its input")
	}
}

func TestParseSortAndOrder(t *testing.T) {
	if f, err := ParseSortField("Name"); err != nil || f != SortByName {
		t.Errorf("ParseSortField(Name) = %v, %v", f, err)
	}
	if f, err := ParseSortField(""); err != nil || f != SortByID {
		t.Errorf("ParseSortField() = %v, %v", f, err)
	}
	if _, err := ParseSortField("weight"); !errors.Is(err, ErrUnknownSortField) {
		t.Errorf("expected ErrUnknownSortField, got %v", err)
	}

	if o, err := ParseOrder("DESC"); err != nil || o != Descending {
		t.Errorf("ParseOrder(DESC) = %v, %v", o, err)
	}
	if _, err := ParseOrder("sideways"); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("expected ErrUnknownOrder, got %v", err)
	}
}

func TestQueryApply(t *testing.T) {
	q := Query{
		Search: "char",
		SortBy: SortByName,
		Order:  Ascending,
		Types:  []model.TypeID{model.TypeFire},
	}

	if got := ids(q.Apply(testEntries())); !reflect.DeepEqual(got, []int{6, 4}) {
		t.Errorf("Apply = %v", got)
	}
}

func TestPage(t *testing.T) {
	entries := Sort(testEntries(), SortByID, Ascending)

	page, more := Page(entries, 0, 2)
	if !reflect.DeepEqual(ids(page), []int{1, 4}) || !more {
		t.Errorf("first page = %v, %v", ids(page), more)
	}

	page, more = Page(entries, 4, 2)
	if !reflect.DeepEqual(ids(page), []int{25}) || more {
		t.Errorf("last page = %v, %v", ids(page), more)
	}

	page, more = Page(entries, 10, 2)
	if len(page) != 0 || more {
		t.Errorf("past the end = %v, %v", ids(page), more)
	}
}

func TestNeighbors(t *testing.T) {
	prev, hasPrev, next, hasNext := Neighbors(1)
	if hasPrev || !hasNext || next != 2 {
		t.Errorf("Neighbors(1) = %d %v %d %v", prev, hasPrev, next, hasNext)
	}

	prev, hasPrev, next, hasNext = Neighbors(MaxID)
	if !hasPrev || prev != MaxID-1 || hasNext {
		t.Errorf("Neighbors(MaxID) = %d %v %d %v", prev, hasPrev, next, hasNext)
	}

	prev, hasPrev, next, hasNext = Neighbors(25)
	if prev != 24 || next != 26 || !hasPrev || !hasNext {
		t.Errorf("Neighbors(25) = %d %v %d %v", prev, hasPrev, next, hasNext)
	}
}

func TestEntriesFromList(t *testing.T) {
	entries := EntriesFromList([]model.ListItem{
		{Name: "mr-mime", URL: "https://pokeapi.co/api/v2/pokemon/122/"},
	})
	if len(entries) != 1 || entries[0].ID != 122 || entries[0].DisplayName() != "Mr Mime" {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func stats(values ...int) []model.PokemonStat {
	names := []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}
	out := make([]model.PokemonStat, len(values))
	for i, v := range values {
		out[i] = model.PokemonStat{BaseStat: v, Stat: model.NamedResource{Name: names[i]}}
	}

	return out
}

func TestCompare(t *testing.T) {
	bulbasaur := &model.Pokemon{Name: "bulbasaur", Stats: stats(45, 49, 49, 65, 65, 45)}
	charmander := &model.Pokemon{Name: "charmander", Stats: stats(39, 52, 43, 60, 50, 65)}

	c := Compare(bulbasaur, charmander)
	if c.FirstTotal != 318 || c.SecondTotal != 309 {
		t.Errorf("totals = %d, %d", c.FirstTotal, c.SecondTotal)
	}
	if len(c.Rows) != 6 {
		t.Fatalf("rows = %d", len(c.Rows))
	}

	wantWinners := []int{-1, 1, -1, -1, -1, 1}
	for i, row := range c.Rows {
		if row.Winner() != wantWinners[i] {
			t.Errorf("%s winner = %d, want %d", row.Name, row.Winner(), wantWinners[i])
		}
	}
	if c.Rows[3].DisplayName() != "Sp. Attack" {
		t.Errorf("display name = %q", c.Rows[3].DisplayName())
	}
}

func TestCompareMismatchedStats(t *testing.T) {
	first := &model.Pokemon{Stats: stats(10)}
	second := &model.Pokemon{Stats: stats(10, 20)}

	c := Compare(first, second)
	if len(c.Rows) != 2 || c.Rows[0].Winner() != 0 || c.Rows[1].First != 0 || c.Rows[1].Second != 20 {
		t.Errorf("unexpected rows %+v", c.Rows)
	}
}
