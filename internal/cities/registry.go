package cities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/moggisen/World-Clock/internal/store"
	"github.com/moggisen/World-Clock/internal/wallclock"
)

// DefaultKey is the storage key the city list is saved under.
const DefaultKey = "cities"

var (
	ErrNotFound        = errors.New("city not found")
	ErrDuplicate       = errors.New("city already exists")
	ErrEmptyName       = errors.New("city name is required")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// Storage is the get/set key-value interface the registry persists through.
// Get returns an error matching store.ErrNotFound for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Registry owns the saved city list. Every mutation is written back to
// storage before it returns.
type Registry struct {
	storage Storage
	key     string

	// mu serializes read-modify-write cycles against storage.
	mu sync.Mutex
}

// NewRegistry creates a Registry saving under key. An empty key uses DefaultKey.
func NewRegistry(s Storage, key string) *Registry {
	if key == "" {
		key = DefaultKey
	}
	return &Registry{storage: s, key: key}
}

// Key returns the storage key the list is saved under.
func (r *Registry) Key() string {
	return r.key
}

// List returns the saved cities in insertion order.
func (r *Registry) List(ctx context.Context) ([]City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Add saves a new city. The name and timezone are trimmed; the timezone must
// resolve, and a city with the same name (case-insensitive) and timezone must
// not already exist.
func (r *Registry) Add(ctx context.Context, name, timezone string) (City, error) {
	name = strings.TrimSpace(name)
	timezone = strings.TrimSpace(timezone)
	if name == "" {
		return City{}, ErrEmptyName
	}
	if err := wallclock.Validate(timezone); err != nil {
		return City{}, fmt.Errorf("%w: %s", ErrInvalidTimezone, wallclock.InvalidTimezoneMessage)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return City{}, err
	}
	for _, c := range list {
		if strings.EqualFold(c.Name, name) && c.Timezone == timezone {
			return City{}, fmt.Errorf("%w: %s (%s)", ErrDuplicate, c.Name, c.Timezone)
		}
	}

	city := City{ID: uuid.NewString(), Name: name, Timezone: timezone}
	if err := r.save(ctx, append(list, city)); err != nil {
		return City{}, err
	}
	return city, nil
}

// Remove deletes the city with the given ID.
func (r *Registry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(list, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.save(ctx, append(list[:i], list[i+1:]...))
}

// Find returns the city with the given ID and its position in the list.
func (r *Registry) Find(ctx context.Context, id string) (City, int, error) {
	list, err := r.List(ctx)
	if err != nil {
		return City{}, -1, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return City{}, -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return list[i], i, nil
}

// Next returns the city after id, wrapping from the last city to the first.
func (r *Registry) Next(ctx context.Context, id string) (City, error) {
	return r.step(ctx, id, 1)
}

// Prev returns the city before id, wrapping from the first city to the last.
func (r *Registry) Prev(ctx context.Context, id string) (City, error) {
	return r.step(ctx, id, -1)
}

// Seed saves the common cities if the registry is empty. It reports how
// many cities were added.
func (r *Registry) Seed(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	if len(list) > 0 {
		return 0, nil
	}
	for _, c := range commonCities {
		list = append(list, City{ID: uuid.NewString(), Name: c.Name, Timezone: c.Timezone})
	}
	if err := r.save(ctx, list); err != nil {
		return 0, err
	}
	return len(list), nil
}

func (r *Registry) step(ctx context.Context, id string, delta int) (City, error) {
	list, err := r.List(ctx)
	if err != nil {
		return City{}, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return City{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	n := len(list)
	return list[((i+delta)%n+n)%n], nil
}

// load reads the list from storage. A missing key or an undecodable value
// yields an empty list.
func (r *Registry) load(ctx context.Context) ([]City, error) {
	data, err := r.storage.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []City{}, nil
		}
		return nil, fmt.Errorf("load cities: %w", err)
	}

	var list []City
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("ERROR: decode saved cities under %q, starting empty: %v", r.key, err)
		return []City{}, nil
	}
	if list == nil {
		list = []City{}
	}
	return list, nil
}

func (r *Registry) save(ctx context.Context, list []City) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode cities: %w", err)
	}
	if err := r.storage.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("save cities: %w", err)
	}
	return nil
}

func indexOf(list []City, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}
