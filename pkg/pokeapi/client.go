package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// Cache stores raw response bodies by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
	Delete(ctx context.Context, key string) error
}

type Client struct {
	baseURL   string
	listLimit int
	http      *http.Client
	cache     Cache
	logger    *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.http = client }
}

func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = def.ListLimit
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		listLimit: cfg.ListLimit,
		http:      newHTTPClient(cfg),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) get(ctx context.Context, op, resource, key, path string) ([]byte, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.WarnContext(ctx, "pokeapi.cache_read_failed", "key", key, "err", err)
		} else if ok {
			c.logger.DebugContext(ctx, "pokeapi.cache_hit", "key", key)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &Error{Op: op, Resource: resource, Err: fmt.Errorf("could not build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &Error{Op: op, Resource: resource, Err: ctx.Err()}
		}
		return nil, &Error{Op: op, Resource: resource, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Op: op, Resource: resource, Status: resp.StatusCode, Err: ErrNotFound}
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &Error{Op: op, Resource: resource, Status: resp.StatusCode, Err: ErrUnavailable}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &Error{Op: op, Resource: resource, Status: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, Resource: resource, Status: resp.StatusCode, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}

	if c.cache != nil {
		err = c.cache.Set(ctx, key, body)
		if err != nil {
			c.logger.WarnContext(ctx, "pokeapi.cache_write_failed", "key", key, "err", err)
		}
	}

	return body, nil
}

func (c *Client) fetch(ctx context.Context, op, resource, key, path string, v any) error {
	body, err := c.get(ctx, op, resource, key, path)
	if err != nil {
		c.logger.ErrorContext(ctx, "pokeapi.request_failed", "op", op, "resource", resource, "err", err)
		return err
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return c.decodeFailed(ctx, op, resource, key, err)
	}

	return nil
}

// decodeFailed drops the cached body so the next request refetches it.
func (c *Client) decodeFailed(ctx context.Context, op, resource, key string, cause error) error {
	err := &Error{Op: op, Resource: resource, Err: fmt.Errorf("%w: %w", ErrDecode, cause)}
	c.logger.ErrorContext(ctx, "pokeapi.decode_failed", "op", op, "resource", resource, "err", err)

	if c.cache != nil {
		derr := c.cache.Delete(ctx, key)
		if derr != nil {
			c.logger.WarnContext(ctx, "pokeapi.cache_evict_failed", "key", key, "err", derr)
		}
	}

	return err
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AllPokemon lists every pokemon up to the configured list limit.
func (c *Client) AllPokemon(ctx context.Context) ([]model.ListItem, error) {
	var page model.ListPage
	path := fmt.Sprintf("/pokemon?limit=%d", c.listLimit)
	err := c.fetch(ctx, "list", "pokemon", "all-pokemon", path, &page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon list: %w", err)
	}

	return page.Results, nil
}

func (c *Client) Pokemon(ctx context.Context, nameOrID string) (*model.Pokemon, error) {
	key := normalizeName(nameOrID)
	if key == "" {
		return nil, &Error{Op: "get", Resource: "pokemon", Err: ErrNotFound}
	}

	var pokemon model.Pokemon
	err := c.fetch(ctx, "get", "pokemon/"+key, "pokemon-"+key, "/pokemon/"+url.PathEscape(key), &pokemon)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon %q: %w", nameOrID, err)
	}

	return &pokemon, nil
}

func (c *Client) PokemonByID(ctx context.Context, id int) (*model.Pokemon, error) {
	return c.Pokemon(ctx, strconv.Itoa(id))
}

func (c *Client) Species(ctx context.Context, id int) (*model.Species, error) {
	var species model.Species
	resource := fmt.Sprintf("pokemon-species/%d", id)
	err := c.fetch(ctx, "get", resource, fmt.Sprintf("species-%d", id), "/"+resource, &species)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch species %d: %w", id, err)
	}

	return &species, nil
}

// Type fetches a /type payload. Only the damage relations and the member list
// are extracted; the rest of the document (moves, names, past relations) is
// skipped rather than decoded.
func (c *Client) Type(ctx context.Context, name string) (*model.TypeDetail, error) {
	name = normalizeName(name)
	resource, key := "type/"+name, "type-"+name

	body, err := c.get(ctx, "get", resource, key, "/type/"+url.PathEscape(name))
	if err != nil {
		c.logger.ErrorContext(ctx, "pokeapi.request_failed", "op", "get", "resource", resource, "err", err)
		return nil, fmt.Errorf("failed to fetch type %q: %w", name, err)
	}

	td, err := parseType(body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch type %q: %w", name, c.decodeFailed(ctx, "get", resource, key, err))
	}

	return td, nil
}

var errMalformedType = errors.New("malformed type document")

func parseType(body []byte) (*model.TypeDetail, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json: %w", errMalformedType)
	}

	doc := gjson.ParseBytes(body)
	name := doc.Get("name")
	if name.Type != gjson.String {
		return nil, fmt.Errorf("missing type name: %w", errMalformedType)
	}

	td := &model.TypeDetail{ID: int(doc.Get("id").Int()), Name: name.String()}
	td.DamageRelations.DoubleDamageFrom = namedResources(doc.Get("damage_relations.double_damage_from"))
	td.DamageRelations.HalfDamageFrom = namedResources(doc.Get("damage_relations.half_damage_from"))
	td.DamageRelations.NoDamageFrom = namedResources(doc.Get("damage_relations.no_damage_from"))

	doc.Get("pokemon").ForEach(func(_, member gjson.Result) bool {
		td.Pokemon = append(td.Pokemon, model.TypeMember{
			Slot:    int(member.Get("slot").Int()),
			Pokemon: namedResource(member.Get("pokemon")),
		})
		return true
	})

	return td, nil
}

func namedResource(r gjson.Result) model.NamedResource {
	return model.NamedResource{Name: r.Get("name").String(), URL: r.Get("url").String()}
}

func namedResources(list gjson.Result) []model.NamedResource {
	out := []model.NamedResource{}
	list.ForEach(func(_, r gjson.Result) bool {
		out = append(out, namedResource(r))
		return true
	})

	return out
}
