// File: database/repository/daybook/watch.go
package daybookRepo

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// Watch streams snapshot batches from the remote collection until ctx is
// cancelled or the stream fails. Each batch is handed to apply as
// document-granularity changes: an added or modified document fully replaces
// that date's slot list (last-writer-wins), a removed document deletes it.
// Changes missed while disconnected are not replayed; the next cold load
// reconciles.
func (r *firestoreDayBookRepo) Watch(ctx context.Context, apply func(changes []Change)) error {
	snaps := r.coll.Snapshots(ctx)
	defer snaps.Stop()

	logger := zap.L()
	for {
		snap, err := snaps.Next()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return wrapRemoteErr("Watch", err)
		}

		changes := make([]Change, 0, len(snap.Changes))
		for _, dc := range snap.Changes {
			date := dc.Doc.Ref.ID
			switch dc.Kind {
			case firestore.DocumentAdded, firestore.DocumentModified:
				var d dayDoc
				if err := dc.Doc.DataTo(&d); err != nil {
					logger.Warn("daybook: skipping malformed watched document",
						zap.String("date", date), zap.Error(err))
					continue
				}
				changes = append(changes, Change{Kind: ChangeSet, Date: date, Slots: d.Horas})
			case firestore.DocumentRemoved:
				changes = append(changes, Change{Kind: ChangeRemoved, Date: date})
			}
		}
		if len(changes) > 0 {
			apply(changes)
		}
	}
}
