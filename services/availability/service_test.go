package availability

import (
	"context"
	"errors"
	"sync"
	"testing"

	daybookRepo "github.com/proyectosweblym/barberbook/database/repository/daybook"
)

// fakeRepo is an in-memory day book used in place of the real stores.
type fakeRepo struct {
	mu   sync.Mutex
	book map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{book: make(map[string][]string)}
}

func (r *fakeRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]string, len(r.book))
	for d, s := range r.book {
		c := make([]string, len(s))
		copy(c, s)
		out[d] = c
	}
	return out, nil
}

func (r *fakeRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.book[date]
	if !ok {
		return nil, daybookRepo.ErrNotFound
	}
	c := make([]string, len(slots))
	copy(c, slots)
	return c, nil
}

func (r *fakeRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.book[date] = []string{slot}
	return nil
}

func (r *fakeRepo) AppendSlot(ctx context.Context, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.book[date] {
		if s == slot {
			return nil
		}
	}
	r.book[date] = append(r.book[date], slot)
	return nil
}

func (r *fakeRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.book[date]
	if !ok {
		return daybookRepo.ErrNotFound
	}
	kept := slots[:0]
	for _, s := range slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(r.book, date)
	} else {
		r.book[date] = kept
	}
	return nil
}

func (r *fakeRepo) DeleteDay(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.book[date]; !ok {
		return daybookRepo.ErrNotFound
	}
	delete(r.book, date)
	return nil
}

func (r *fakeRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.book = make(map[string][]string)
	return nil
}

// downRepo simulates an unreachable remote store: every call fails with an
// unavailability error.
type downRepo struct{}

func (downRepo) unavailable(op string) error {
	return &daybookRepo.UnavailableError{Op: op, Err: errors.New("connection refused")}
}

func (d downRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	return nil, d.unavailable("FetchAll")
}
func (d downRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	return nil, d.unavailable("Fetch")
}
func (d downRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	return d.unavailable("CreateWithSlot")
}
func (d downRepo) AppendSlot(ctx context.Context, date, slot string) error {
	return d.unavailable("AppendSlot")
}
func (d downRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	return d.unavailable("RemoveSlot")
}
func (d downRepo) DeleteDay(ctx context.Context, date string) error {
	return d.unavailable("DeleteDay")
}
func (d downRepo) DeleteAll(ctx context.Context) error {
	return d.unavailable("DeleteAll")
}

func newService(repo daybookRepo.Repository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Repo: repo, Cache: NewCache()}
}

func TestReserveThenUnavailableUntilCancel(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeRepo())

	ok, err := svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	if err != nil || !ok {
		t.Fatalf("ReserveSlot = (%v, %v), want (true, nil)", ok, err)
	}
	if svc.IsSlotAvailable(ctx, "2025-03-10", "14:00") {
		t.Fatal("slot should be unavailable after reservation")
	}

	ok, err = svc.CancelSlot(ctx, "2025-03-10", "14:00")
	if err != nil || !ok {
		t.Fatalf("CancelSlot = (%v, %v), want (true, nil)", ok, err)
	}
	if !svc.IsSlotAvailable(ctx, "2025-03-10", "14:00") {
		t.Fatal("slot should be available again after cancellation")
	}
}

func TestReserveIdempotentFalseOnRepeat(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeRepo())

	ok, _ := svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	if !ok {
		t.Fatal("first reservation should succeed")
	}
	ok, err := svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	if err != nil {
		t.Fatalf("second reservation errored: %v", err)
	}
	if ok {
		t.Fatal("second reservation of the same slot should return false")
	}
}

func TestCancelLastSlotDeletesDayRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)

	svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	ok, err := svc.CancelSlot(ctx, "2025-03-10", "14:00")
	if err != nil || !ok {
		t.Fatalf("CancelSlot = (%v, %v), want (true, nil)", ok, err)
	}

	if _, err := repo.Fetch(ctx, "2025-03-10"); !errors.Is(err, daybookRepo.ErrNotFound) {
		t.Fatalf("day record should be deleted, Fetch err = %v", err)
	}
	for _, slot := range []string{"09:00", "14:00", "19:00"} {
		if !svc.IsSlotAvailable(ctx, "2025-03-10", slot) {
			t.Fatalf("slot %s should be available on the emptied date", slot)
		}
	}
	if got := svc.ListBookedDays(); len(got) != 0 {
		t.Fatalf("emptied date must not appear in the listing, got %v", got)
	}
}

func TestCancelAbsentSlotReturnsFalse(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeRepo())

	ok, err := svc.CancelSlot(ctx, "2025-03-10", "14:00")
	if err != nil {
		t.Fatalf("CancelSlot errored: %v", err)
	}
	if ok {
		t.Fatal("cancelling a never-reserved slot should return false")
	}

	svc.ReserveSlot(ctx, "2025-03-10", "10:00")
	ok, _ = svc.CancelSlot(ctx, "2025-03-10", "14:00")
	if ok {
		t.Fatal("cancelling an absent slot on a booked date should return false")
	}
}

func TestPurgeExpiredDaysIsStrictlyBefore(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)

	svc.ReserveSlot(ctx, "2025-03-08", "09:00")
	svc.ReserveSlot(ctx, "2025-03-09", "10:00")
	svc.ReserveSlot(ctx, "2025-03-10", "11:00")
	svc.ReserveSlot(ctx, "2025-03-11", "12:00")

	svc.PurgeExpiredDays(ctx, "2025-03-10")

	records := svc.ListBookedDays()
	if len(records) != 2 {
		t.Fatalf("want 2 surviving day records, got %d", len(records))
	}
	if records[0].Date != "2025-03-10" || records[1].Date != "2025-03-11" {
		t.Fatalf("records dated on or after the reference must survive, got %v", records)
	}
	if _, err := repo.Fetch(ctx, "2025-03-09"); !errors.Is(err, daybookRepo.ErrNotFound) {
		t.Fatal("purge must delete the backing record too")
	}
}

func TestClearAllEmptiesTheBook(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeRepo())

	svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	svc.ReserveSlot(ctx, "2025-03-11", "09:00")

	if err := svc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll errored: %v", err)
	}
	if got := svc.ListBookedDays(); len(got) != 0 {
		t.Fatalf("book should be empty after ClearAll, got %v", got)
	}
	if !svc.IsSlotAvailable(ctx, "2025-03-10", "14:00") {
		t.Fatal("cleared slot should be available")
	}
}

func TestBookCancelRebookScenario(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)

	if ok, _ := svc.ReserveSlot(ctx, "2025-03-10", "14:00"); !ok {
		t.Fatal("initial booking should succeed")
	}
	if ok, _ := svc.ReserveSlot(ctx, "2025-03-10", "14:00"); ok {
		t.Fatal("immediate re-booking of the same pair should fail")
	}
	if ok, _ := svc.CancelSlot(ctx, "2025-03-10", "14:00"); !ok {
		t.Fatal("cancellation should succeed")
	}
	if ok, _ := svc.ReserveSlot(ctx, "2025-03-10", "14:00"); !ok {
		t.Fatal("re-booking after cancellation should succeed")
	}

	slots, err := repo.Fetch(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("Fetch errored: %v", err)
	}
	if len(slots) != 1 || slots[0] != "14:00" {
		t.Fatalf("day record should contain exactly the re-booked slot, got %v", slots)
	}
}

func TestReserveFallsBackWhenRemoteIsDown(t *testing.T) {
	ctx := context.Background()
	local := newFakeRepo()
	svc := newService(daybookRepo.NewFailoverRepo(downRepo{}, local))

	ok, err := svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	if err != nil {
		t.Fatalf("reservation with the remote down must not fail hard: %v", err)
	}
	if !ok {
		t.Fatal("reservation should fall back to the local store and succeed")
	}

	slots, err := local.Fetch(ctx, "2025-03-10")
	if err != nil || len(slots) != 1 || slots[0] != "14:00" {
		t.Fatalf("local store should hold the fallback write, got (%v, %v)", slots, err)
	}

	ok, err = svc.ReserveSlot(ctx, "2025-03-10", "14:00")
	if err != nil || ok {
		t.Fatalf("conflict detection must keep working locally, got (%v, %v)", ok, err)
	}
	if svc.IsSlotAvailable(ctx, "2025-03-10", "14:00") {
		t.Fatal("fallback-reserved slot should read as occupied")
	}
}

func TestIsSlotAvailableDegradesToCachedView(t *testing.T) {
	ctx := context.Background()
	svc := newService(downRepo{})
	svc.Cache.SetDay("2025-03-10", []string{"14:00"})

	if svc.IsSlotAvailable(ctx, "2025-03-10", "14:00") {
		t.Fatal("cached occupied slot must read unavailable when the store errors")
	}
	if !svc.IsSlotAvailable(ctx, "2025-03-10", "15:00") {
		t.Fatal("uncached slot must read available when the store errors")
	}
}

func TestRealtimeChangesUpdateCache(t *testing.T) {
	svc := newService(newFakeRepo())
	notified := 0
	svc.OnChange = func() { notified++ }

	svc.applyChanges([]daybookRepo.Change{
		{Kind: daybookRepo.ChangeSet, Date: "2025-03-10", Slots: []string{"09:00", "14:00"}},
		{Kind: daybookRepo.ChangeSet, Date: "2025-03-11", Slots: []string{"10:00"}},
	})
	if !svc.Cache.Contains("2025-03-10", "14:00") || !svc.Cache.Contains("2025-03-11", "10:00") {
		t.Fatal("added documents should populate the cache")
	}

	// A modified document replaces the slot list wholesale.
	svc.applyChanges([]daybookRepo.Change{
		{Kind: daybookRepo.ChangeSet, Date: "2025-03-10", Slots: []string{"09:00"}},
	})
	if svc.Cache.Contains("2025-03-10", "14:00") {
		t.Fatal("replaced slot list should drop slots absent from the document")
	}

	svc.applyChanges([]daybookRepo.Change{
		{Kind: daybookRepo.ChangeRemoved, Date: "2025-03-11"},
	})
	if svc.Cache.Contains("2025-03-11", "10:00") {
		t.Fatal("removed document should delete the cache entry")
	}

	if notified != 3 {
		t.Fatalf("OnChange should fire once per batch, got %d", notified)
	}
}

func TestColdLoadReplacesCacheAndPurges(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.book["2000-01-01"] = []string{"09:00"}
	repo.book["2999-12-31"] = []string{"14:00"}

	svc := newService(repo)
	svc.Cache.SetDay("1999-01-01", []string{"10:00"})

	svc.ColdLoad(ctx)

	records := svc.ListBookedDays()
	if len(records) != 1 || records[0].Date != "2999-12-31" {
		t.Fatalf("cold load should keep only unexpired store records, got %v", records)
	}
	if _, err := repo.Fetch(ctx, "2000-01-01"); !errors.Is(err, daybookRepo.ErrNotFound) {
		t.Fatal("cold load should purge expired records from the store")
	}
}
