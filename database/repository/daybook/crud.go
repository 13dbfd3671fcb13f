// File: database/repository/daybook/crud.go
package daybookRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// dayDoc is the remote document shape: {horas: [...], createdAt, updatedAt}.
type dayDoc struct {
	Horas []string `firestore:"horas"`
}

func (r *firestoreDayBookRepo) FetchAll(ctx context.Context) (map[string][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	book := make(map[string][]string)
	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapRemoteErr("FetchAll", err)
		}
		var d dayDoc
		if err := doc.DataTo(&d); err != nil {
			// A malformed document is skipped, not fatal to the load.
			continue
		}
		if len(d.Horas) > 0 {
			book[doc.Ref.ID] = d.Horas
		}
	}
	return book, nil
}

func (r *firestoreDayBookRepo) Fetch(ctx context.Context, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc, err := r.coll.Doc(date).Get(ctx)
	if err != nil {
		return nil, wrapRemoteErr("Fetch", err)
	}
	var d dayDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, &UnavailableError{Op: "Fetch", Err: err}
	}
	return d.Horas, nil
}

func (r *firestoreDayBookRepo) CreateWithSlot(ctx context.Context, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(date).Set(ctx, map[string]interface{}{
		"horas":     []string{slot},
		"createdAt": firestore.ServerTimestamp,
		"updatedAt": firestore.ServerTimestamp,
	})
	return wrapRemoteErr("CreateWithSlot", err)
}

// AppendSlot relies on the store's native set-union merge: concurrent appends
// from other clients are preserved rather than overwritten. This is not a
// compare-and-swap; the conflict check stays with the caller.
func (r *firestoreDayBookRepo) AppendSlot(ctx context.Context, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(date).Update(ctx, []firestore.Update{
		{Path: "horas", Value: firestore.ArrayUnion(slot)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return wrapRemoteErr("AppendSlot", err)
}

func (r *firestoreDayBookRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(date).Update(ctx, []firestore.Update{
		{Path: "horas", Value: firestore.ArrayRemove(slot)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return wrapRemoteErr("RemoveSlot", err)
}

func (r *firestoreDayBookRepo) DeleteDay(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(date).Delete(ctx)
	return wrapRemoteErr("DeleteDay", err)
}

func (r *firestoreDayBookRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return wrapRemoteErr("DeleteAll", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return wrapRemoteErr("DeleteAll", err)
		}
	}
	return nil
}

// Ping probes the remote store with a minimal read, for health reporting.
func (r *firestoreDayBookRepo) Ping(ctx context.Context) error {
	iter := r.coll.Limit(1).Documents(ctx)
	defer iter.Stop()
	_, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	return wrapRemoteErr("Ping", err)
}
