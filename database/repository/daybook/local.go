// File: database/repository/daybook/local.go
package daybookRepo

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// appointmentsKey is the fixed namespace the whole day book is stored under,
// as a single JSON blob (carried over from the original deployment).
const appointmentsKey = "alexBarberAppointments"

// load deserializes the blob. Missing or corrupt data yields an empty book:
// corruption is swallowed and self-heals on the next successful save.
func (r *redisDayBookRepo) load(ctx context.Context) map[string][]string {
	raw, err := r.client.Get(ctx, appointmentsKey).Result()
	if err != nil {
		return make(map[string][]string)
	}
	return decodeDayBook([]byte(raw))
}

// decodeDayBook never fails: a blob that does not parse as date→slots is
// treated as an empty book.
func decodeDayBook(raw []byte) map[string][]string {
	book := make(map[string][]string)
	if err := json.Unmarshal(raw, &book); err != nil {
		zap.L().Warn("daybook: corrupt local blob, treating as empty", zap.Error(err))
		return make(map[string][]string)
	}
	return book
}

// save serializes and writes the blob synchronously. A write failure is
// reported but not retried and does not fail the caller: the in-memory view
// stays authoritative until the next successful save.
func (r *redisDayBookRepo) save(ctx context.Context, book map[string][]string) {
	raw, err := json.Marshal(book)
	if err != nil {
		zap.L().Error("daybook: failed to serialize local blob", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, appointmentsKey, raw, 0).Err(); err != nil {
		zap.L().Error("daybook: failed to persist local blob", zap.Error(err))
	}
}

func (r *redisDayBookRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.load(ctx), nil
}

func (r *redisDayBookRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	slots, ok := r.load(ctx)[date]
	if !ok {
		return nil, ErrNotFound
	}
	return slots, nil
}

func (r *redisDayBookRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	return r.AppendSlot(ctx, date, slot)
}

// AppendSlot is an unconditional check-then-write over the blob. Two local
// writers can race here; local mode implies single-user offline use, so the
// weaker guarantee is accepted.
func (r *redisDayBookRepo) AppendSlot(ctx context.Context, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	book := r.load(ctx)
	for _, s := range book[date] {
		if s == slot {
			return nil
		}
	}
	book[date] = append(book[date], slot)
	r.save(ctx, book)
	return nil
}

func (r *redisDayBookRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	book := r.load(ctx)
	slots, ok := book[date]
	if !ok {
		return ErrNotFound
	}
	kept := slots[:0]
	for _, s := range slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(book, date)
	} else {
		book[date] = kept
	}
	r.save(ctx, book)
	return nil
}

func (r *redisDayBookRepo) DeleteDay(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	book := r.load(ctx)
	if _, ok := book[date]; !ok {
		return ErrNotFound
	}
	delete(book, date)
	r.save(ctx, book)
	return nil
}

func (r *redisDayBookRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	r.save(ctx, make(map[string][]string))
	return nil
}
