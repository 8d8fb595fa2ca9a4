package cities

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/moggisen/World-Clock/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *store.Store) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewRegistry(st, ""), st
}

type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStorage) Set(context.Context, string, []byte) error   { return f.err }

func TestRegistryEmpty(t *testing.T) {
	r, _ := newTestRegistry(t)
	list, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("List() = %v, want empty non-nil", list)
	}
	if r.Key() != DefaultKey {
		t.Errorf("Key() = %q, want %q", r.Key(), DefaultKey)
	}
}

func TestRegistryAdd(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	c, err := r.Add(ctx, "  Bangkok ", " Asia/Bangkok")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if c.ID == "" {
		t.Error("Add() returned city without ID")
	}
	if c.Name != "Bangkok" || c.Timezone != "Asia/Bangkok" {
		t.Errorf("Add() = %+v, want trimmed name and timezone", c)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 1 || list[0] != c {
		t.Errorf("List() = %+v, want [%+v]", list, c)
	}
}

func TestRegistryAddValidation(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		city     string
		timezone string
		want     error
	}{
		{"empty name", "", "Europe/Paris", ErrEmptyName},
		{"blank name", "   ", "Europe/Paris", ErrEmptyName},
		{"invalid timezone", "Nowhere", "Not/AZone", ErrInvalidTimezone},
		{"empty timezone", "Nowhere", "", ErrInvalidTimezone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Add(ctx, tt.city, tt.timezone)
			if !errors.Is(err, tt.want) {
				t.Errorf("Add(%q, %q) error = %v, want %v", tt.city, tt.timezone, err, tt.want)
			}
		})
	}
}

func TestRegistryAddDuplicate(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	if _, err := r.Add(ctx, "Paris", "Europe/Paris"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(ctx, "PARIS", "Europe/Paris"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add() duplicate error = %v, want ErrDuplicate", err)
	}
	// same name in another timezone is a different clock
	if _, err := r.Add(ctx, "Paris", "America/Chicago"); err != nil {
		t.Errorf("Add() same name other timezone error: %v", err)
	}

	list, _ := r.List(ctx)
	if len(list) != 2 {
		t.Errorf("List() returned %d cities, want 2", len(list))
	}
}

func TestRegistryRemove(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a, _ := r.Add(ctx, "London", "Europe/London")
	b, _ := r.Add(ctx, "Tokyo", "Asia/Tokyo")

	if err := r.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	list, _ := r.List(ctx)
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("List() after Remove = %+v, want only %s", list, b.Name)
	}
	if err := r.Remove(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() twice error = %v, want ErrNotFound", err)
	}
}

func TestRegistryFind(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	r.Add(ctx, "London", "Europe/London")
	b, _ := r.Add(ctx, "Tokyo", "Asia/Tokyo")

	got, idx, err := r.Find(ctx, b.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if got != b || idx != 1 {
		t.Errorf("Find() = %+v, %d; want %+v, 1", got, idx, b)
	}
	if _, _, err := r.Find(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryCarousel(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a, _ := r.Add(ctx, "Stockholm", "Europe/Stockholm")
	b, _ := r.Add(ctx, "Paris", "Europe/Paris")
	c, _ := r.Add(ctx, "Tokyo", "Asia/Tokyo")

	tests := []struct {
		name string
		fn   func(context.Context, string) (City, error)
		from City
		want City
	}{
		{"next middle", r.Next, a, b},
		{"next wraps", r.Next, c, a},
		{"prev middle", r.Prev, c, b},
		{"prev wraps", r.Prev, a, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(ctx, tt.from.ID)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got.ID != tt.want.ID {
				t.Errorf("from %s got %s, want %s", tt.from.Name, got.Name, tt.want.Name)
			}
		})
	}

	if _, err := r.Next(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Next(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryCarouselSingleCity(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	a, _ := r.Add(ctx, "Sydney", "Australia/Sydney")
	for _, fn := range []func(context.Context, string) (City, error){r.Next, r.Prev} {
		got, err := fn(ctx, a.ID)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if got.ID != a.ID {
			t.Errorf("single city carousel moved to %s", got.Name)
		}
	}
}

func TestRegistryCorruptValueStartsEmpty(t *testing.T) {
	r, st := newTestRegistry(t)
	ctx := context.Background()

	if err := st.Set(ctx, DefaultKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %+v, want empty", list)
	}
	if _, err := r.Add(ctx, "Rome", "Europe/Rome"); err != nil {
		t.Errorf("Add() after corrupt value error: %v", err)
	}
}

func TestRegistryStorageError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := NewRegistry(failingStorage{err: boom}, "")

	if _, err := r.List(context.Background()); !errors.Is(err, boom) {
		t.Errorf("List() error = %v, want %v", err, boom)
	}
	if _, err := r.Add(context.Background(), "Rome", "Europe/Rome"); !errors.Is(err, boom) {
		t.Errorf("Add() error = %v, want %v", err, boom)
	}
}

func TestRegistryPersists(t *testing.T) {
	r, st := newTestRegistry(t)
	ctx := context.Background()

	c, _ := r.Add(ctx, "Cairo", "Africa/Cairo")

	again := NewRegistry(st, DefaultKey)
	got, _, err := again.Find(ctx, c.ID)
	if err != nil {
		t.Fatalf("Find() on fresh registry error: %v", err)
	}
	if got != c {
		t.Errorf("Find() = %+v, want %+v", got, c)
	}
}

func TestRegistrySeed(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	n, err := r.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if n != len(CommonCities()) {
		t.Errorf("Seed() added %d, want %d", n, len(CommonCities()))
	}
	n, err = r.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	if n != 0 {
		t.Errorf("second Seed() added %d, want 0", n)
	}
}
