package daybookRepo

import (
	"context"
	"errors"
	"testing"
)

// memRepo is a minimal in-memory day book for composition tests.
type memRepo struct {
	book  map[string][]string
	calls int
}

func newMemRepo() *memRepo {
	return &memRepo{book: make(map[string][]string)}
}

func (r *memRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	r.calls++
	out := make(map[string][]string, len(r.book))
	for d, s := range r.book {
		out[d] = append([]string(nil), s...)
	}
	return out, nil
}

func (r *memRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	r.calls++
	slots, ok := r.book[date]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), slots...), nil
}

func (r *memRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	r.calls++
	r.book[date] = []string{slot}
	return nil
}

func (r *memRepo) AppendSlot(ctx context.Context, date, slot string) error {
	r.calls++
	r.book[date] = append(r.book[date], slot)
	return nil
}

func (r *memRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	r.calls++
	kept := r.book[date][:0]
	for _, s := range r.book[date] {
		if s != slot {
			kept = append(kept, s)
		}
	}
	r.book[date] = kept
	return nil
}

func (r *memRepo) DeleteDay(ctx context.Context, date string) error {
	r.calls++
	delete(r.book, date)
	return nil
}

func (r *memRepo) DeleteAll(ctx context.Context) error {
	r.calls++
	r.book = make(map[string][]string)
	return nil
}

// brokenRepo fails every call with the given error.
type brokenRepo struct {
	err error
}

func (r brokenRepo) FetchAll(ctx context.Context) (map[string][]string, error) { return nil, r.err }
func (r brokenRepo) Fetch(ctx context.Context, date string) ([]string, error)  { return nil, r.err }
func (r brokenRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	return r.err
}
func (r brokenRepo) AppendSlot(ctx context.Context, date, slot string) error { return r.err }
func (r brokenRepo) RemoveSlot(ctx context.Context, date, slot string) error { return r.err }
func (r brokenRepo) DeleteDay(ctx context.Context, date string) error        { return r.err }
func (r brokenRepo) DeleteAll(ctx context.Context) error                     { return r.err }

func TestFailoverPrefersRemote(t *testing.T) {
	ctx := context.Background()
	remote := newMemRepo()
	local := newMemRepo()
	repo := NewFailoverRepo(remote, local)

	if err := repo.CreateWithSlot(ctx, "2025-03-10", "14:00"); err != nil {
		t.Fatalf("CreateWithSlot errored: %v", err)
	}
	if _, ok := remote.book["2025-03-10"]; !ok {
		t.Fatal("write should land on the remote store")
	}
	if local.calls != 0 {
		t.Fatalf("local store should be untouched, saw %d calls", local.calls)
	}
}

func TestFailoverFallsBackOnUnavailability(t *testing.T) {
	ctx := context.Background()
	local := newMemRepo()
	down := brokenRepo{err: &UnavailableError{Op: "Fetch", Err: errors.New("deadline exceeded")}}
	repo := NewFailoverRepo(down, local)

	if err := repo.CreateWithSlot(ctx, "2025-03-10", "14:00"); err != nil {
		t.Fatalf("fallback write errored: %v", err)
	}
	slots, err := repo.Fetch(ctx, "2025-03-10")
	if err != nil || len(slots) != 1 || slots[0] != "14:00" {
		t.Fatalf("fallback read = (%v, %v)", slots, err)
	}
}

func TestFailoverPassesNotFoundThrough(t *testing.T) {
	ctx := context.Background()
	local := newMemRepo()
	local.book["2025-03-10"] = []string{"14:00"}
	repo := NewFailoverRepo(newMemRepo(), local)

	// The remote answered authoritatively: no fallback to the local copy.
	if _, err := repo.Fetch(ctx, "2025-03-10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound from the remote, got %v", err)
	}
}

func TestFailoverSurfacesOtherErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("permission denied")
	repo := NewFailoverRepo(brokenRepo{err: boom}, newMemRepo())

	if err := repo.DeleteDay(ctx, "2025-03-10"); !errors.Is(err, boom) {
		t.Fatalf("non-availability errors must not fall back, got %v", err)
	}
}

func TestIsUnavailable(t *testing.T) {
	wrapped := &UnavailableError{Op: "FetchAll", Err: errors.New("unreachable")}
	if !IsUnavailable(wrapped) {
		t.Fatal("IsUnavailable should match the wrapper")
	}
	if IsUnavailable(ErrNotFound) {
		t.Fatal("ErrNotFound is not an outage")
	}
	if IsUnavailable(nil) {
		t.Fatal("nil is not an outage")
	}
}
