package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/notjagan/dexbrowser/pkg/cache"
)

type fakeAPI struct {
	hits   sync.Map
	server *httptest.Server
}

func (f *fakeAPI) count(path string) int64 {
	v, ok := f.hits.Load(path)
	if !ok {
		return 0
	}

	return v.(*atomic.Int64).Load()
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{}
	mux := http.NewServeMux()
	routes := map[string]string{
		"/pokemon": `{"count": 2, "results": [
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
		]}`,
		"/pokemon/25": `{"id": 25, "name": "pikachu", "types": [{"slot": 1, "type": {"name": "electric"}}],
			"species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"}}`,
		"/pokemon/pikachu": `{"id": 25, "name": "pikachu"}`,
		"/pokemon-species/25": `{"id": 25, "name": "pikachu", "flavor_text_entries": [
			{"flavor_text": "When several of\fthese POKéMON gather", "language": {"name": "en"}}
		]}`,
		"/type/ground": `{"id": 5, "name": "ground", "damage_relations": {
			"double_damage_from": [{"name": "water"}, {"name": "grass"}, {"name": "ice"}],
			"half_damage_from": [{"name": "poison"}, {"name": "rock"}],
			"no_damage_from": [{"name": "electric"}]
		}, "moves": [{"name": "earthquake"}], "pokemon": [
			{"slot": 1, "pokemon": {"name": "sandshrew", "url": "https://pokeapi.co/api/v2/pokemon/27/"}},
			{"slot": 2, "pokemon": {"name": "nidoqueen", "url": "https://pokeapi.co/api/v2/pokemon/31/"}}
		]}`,
		"/type/broken":     `{"name": `,
		"/type/nameless":   `{"id": 99, "damage_relations": {}}`,
		"/pokemon/garbled": `{"id": "twenty-five"}`,
	}
	for path, body := range routes {
		path, body := path, body
		counter := &atomic.Int64{}
		f.hits.Store(path, counter)
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		})
	}
	mux.HandleFunc("/pokemon/missingno", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/pokemon/overloaded", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/pokemon/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func newTestClient(t *testing.T, f *fakeAPI, opts ...Option) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.BaseURL = f.server.URL + "/"
	return New(cfg, opts...)
}

func TestAllPokemon(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	items, err := c.AllPokemon(context.Background())
	if err != nil {
		t.Fatalf("failed to list pokemon: %v", err)
	}
	if len(items) != 2 || items[1].Name != "ivysaur" || items[1].ID() != 2 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestPokemonNormalizesName(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	pokemon, err := c.Pokemon(context.Background(), "  Pikachu ")
	if err != nil {
		t.Fatalf("failed to get pokemon: %v", err)
	}
	if pokemon.ID != 25 {
		t.Fatalf("unexpected pokemon %+v", pokemon)
	}

	pokemon, err = c.PokemonByID(context.Background(), 25)
	if err != nil || pokemon.TypeNames()[0] != "electric" {
		t.Fatalf("unexpected pokemon %+v, %v", pokemon, err)
	}
}

func TestSpecies(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	species, err := c.Species(context.Background(), 25)
	if err != nil {
		t.Fatalf("failed to get species: %v", err)
	}

	text, ok := species.FlavorText("en")
	if !ok || text != "When several of these POKéMON gather" {
		t.Fatalf("flavor text = %q, %v", text, ok)
	}
}

func TestType(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	td, err := c.Type(context.Background(), " Ground ")
	if err != nil {
		t.Fatalf("failed to get type: %v", err)
	}

	if td.ID != 5 || td.Name != "ground" {
		t.Errorf("type = %d %q", td.ID, td.Name)
	}
	if !reflect.DeepEqual(td.WeakTo(), []string{"water", "grass", "ice"}) {
		t.Errorf("weak to = %v", td.WeakTo())
	}
	if !reflect.DeepEqual(td.ResistantTo(), []string{"poison", "rock"}) {
		t.Errorf("resistant to = %v", td.ResistantTo())
	}
	if !reflect.DeepEqual(td.ImmuneTo(), []string{"electric"}) {
		t.Errorf("immune to = %v", td.ImmuneTo())
	}
	if !reflect.DeepEqual(td.MemberNames(), []string{"sandshrew", "nidoqueen"}) {
		t.Errorf("members = %v", td.MemberNames())
	}
	if td.Pokemon[1].Slot != 2 || td.Pokemon[1].Pokemon.URL != "https://pokeapi.co/api/v2/pokemon/31/" {
		t.Errorf("member = %+v", td.Pokemon[1])
	}
}

func TestTypeWithoutName(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	td, err := c.Type(context.Background(), "nameless")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error for type without a name, got %v (%+v)", err, td)
	}
}

func TestErrorClassification(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)
	ctx := context.Background()

	_, err := c.Pokemon(ctx, "missingno")
	if !errors.Is(err, ErrNotFound) || IsRetryable(err) {
		t.Errorf("expected not found, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound || apiErr.Op != "get" {
		t.Errorf("expected *Error with status, got %#v", apiErr)
	}

	_, err = c.Pokemon(ctx, "overloaded")
	if !errors.Is(err, ErrUnavailable) || !IsRetryable(err) {
		t.Errorf("expected retryable unavailable, got %v", err)
	}

	_, err = c.Pokemon(ctx, "teapot")
	if !errors.Is(err, ErrUnexpectedStatus) || IsRetryable(err) {
		t.Errorf("expected unexpected status, got %v", err)
	}

	_, err = c.Type(ctx, "broken")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected decode error, got %v", err)
	}

	_, err = c.Pokemon(ctx, "   ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found for empty name, got %v", err)
	}
}

func TestNetworkFailureIsRetryable(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)
	f.server.Close()

	_, err := c.AllPokemon(context.Background())
	if !IsRetryable(err) {
		t.Fatalf("expected retryable error, got %v", err)
	}
}

func TestCanceledContextIsNotRetryable(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AllPokemon(ctx)
	if !errors.Is(err, context.Canceled) || IsRetryable(err) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 20 * time.Millisecond
	c := New(cfg)

	_, err := c.PokemonByID(context.Background(), 1)
	if !IsRetryable(err) {
		t.Fatalf("expected retryable timeout error, got %v", err)
	}
}

func TestResponsesAreCached(t *testing.T) {
	f := newFakeAPI(t)
	mem, err := cache.NewMemory(context.Background())
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer mem.Close()

	c := newTestClient(t, f, WithCache(mem))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.PokemonByID(ctx, 25); err != nil {
			t.Fatalf("failed to get pokemon: %v", err)
		}
		if _, err := c.Species(ctx, 25); err != nil {
			t.Fatalf("failed to get species: %v", err)
		}
		if _, err := c.AllPokemon(ctx); err != nil {
			t.Fatalf("failed to list pokemon: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := c.Type(ctx, "ground"); err != nil {
			t.Fatalf("failed to get type: %v", err)
		}
	}

	for path, want := range map[string]int64{
		"/pokemon/25":         1,
		"/pokemon-species/25": 1,
		"/pokemon":            1,
		"/type/ground":        1,
	} {
		if got := f.count(path); got != want {
			t.Errorf("%s fetched %d times, want %d", path, got, want)
		}
	}

	for _, key := range []string{"pokemon-25", "species-25", "all-pokemon", "type-ground"} {
		if _, ok, _ := mem.Get(ctx, key); !ok {
			t.Errorf("expected cache entry %q", key)
		}
	}
}

func TestFailuresAreNotCached(t *testing.T) {
	f := newFakeAPI(t)
	mem, err := cache.NewMemory(context.Background())
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer mem.Close()

	c := newTestClient(t, f, WithCache(mem))
	ctx := context.Background()

	c.Pokemon(ctx, "missingno")
	if _, ok, _ := mem.Get(ctx, "pokemon-missingno"); ok {
		t.Fatalf("not found response should not be cached")
	}
}

func TestUndecodableResponsesAreEvicted(t *testing.T) {
	f := newFakeAPI(t)
	mem, err := cache.NewMemory(context.Background())
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer mem.Close()

	c := newTestClient(t, f, WithCache(mem))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.Type(ctx, "broken"); !errors.Is(err, ErrDecode) {
			t.Fatalf("expected decode error, got %v", err)
		}
		if _, err := c.Pokemon(ctx, "garbled"); !errors.Is(err, ErrDecode) {
			t.Fatalf("expected decode error, got %v", err)
		}
	}

	for path, key := range map[string]string{
		"/type/broken":     "type-broken",
		"/pokemon/garbled": "pokemon-garbled",
	} {
		if _, ok, _ := mem.Get(ctx, key); ok {
			t.Errorf("undecodable body %q should not stay cached", key)
		}
		if got := f.count(path); got != 2 {
			t.Errorf("%s fetched %d times, want 2", path, got)
		}
	}
}
