// File: database/repository/daybook/failover.go
package daybookRepo

import (
	"context"

	"go.uber.org/zap"
)

// failoverRepo tries the remote store first and degrades to the local store
// when the remote is unreachable. Remote unavailability is logged, never
// surfaced to callers as a hard failure. ErrNotFound passes through untouched:
// "does not exist" is an answer, not an outage.
type failoverRepo struct {
	remote Repository
	local  Repository
}

// NewFailoverRepo composes the remote and local day books.
func NewFailoverRepo(remote, local Repository) Repository {
	return &failoverRepo{remote: remote, local: local}
}

func (f *failoverRepo) fallthroughErr(op string, err error) bool {
	if IsUnavailable(err) {
		zap.L().Warn("daybook: remote unavailable, falling back to local store",
			zap.String("op", op), zap.Error(err))
		return true
	}
	return false
}

func (f *failoverRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	book, err := f.remote.FetchAll(ctx)
	if f.fallthroughErr("FetchAll", err) {
		return f.local.FetchAll(ctx)
	}
	return book, err
}

func (f *failoverRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	slots, err := f.remote.Fetch(ctx, date)
	if f.fallthroughErr("Fetch", err) {
		return f.local.Fetch(ctx, date)
	}
	return slots, err
}

func (f *failoverRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	err := f.remote.CreateWithSlot(ctx, date, slot)
	if f.fallthroughErr("CreateWithSlot", err) {
		return f.local.CreateWithSlot(ctx, date, slot)
	}
	return err
}

func (f *failoverRepo) AppendSlot(ctx context.Context, date, slot string) error {
	err := f.remote.AppendSlot(ctx, date, slot)
	if f.fallthroughErr("AppendSlot", err) {
		return f.local.AppendSlot(ctx, date, slot)
	}
	return err
}

func (f *failoverRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	err := f.remote.RemoveSlot(ctx, date, slot)
	if f.fallthroughErr("RemoveSlot", err) {
		return f.local.RemoveSlot(ctx, date, slot)
	}
	return err
}

func (f *failoverRepo) DeleteDay(ctx context.Context, date string) error {
	err := f.remote.DeleteDay(ctx, date)
	if f.fallthroughErr("DeleteDay", err) {
		return f.local.DeleteDay(ctx, date)
	}
	return err
}

func (f *failoverRepo) DeleteAll(ctx context.Context) error {
	err := f.remote.DeleteAll(ctx)
	if f.fallthroughErr("DeleteAll", err) {
		return f.local.DeleteAll(ctx)
	}
	return err
}
