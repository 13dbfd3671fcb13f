// File: database/repository/daybook/interface.go
package daybookRepo

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
)

// Repository maps DayRecords to a backing store, one record per appointment
// date. Implementations: Firestore (one document per date), Redis (one JSON
// blob for the whole book), and a failover decorator composing the two.
type Repository interface {
	// FetchAll returns the occupied slots of every stored date.
	FetchAll(ctx context.Context) (map[string][]string, error)
	// Fetch returns the occupied slots for one date, or ErrNotFound.
	Fetch(ctx context.Context, date string) ([]string, error)
	// CreateWithSlot creates the date's record with a single initial slot.
	CreateWithSlot(ctx context.Context, date, slot string) error
	// AppendSlot adds a slot to an existing record without overwriting
	// concurrent additions (set-union on the remote store).
	AppendSlot(ctx context.Context, date, slot string) error
	// RemoveSlot removes a slot from the date's record (set-difference).
	RemoveSlot(ctx context.Context, date, slot string) error
	// DeleteDay removes the date's record entirely.
	DeleteDay(ctx context.Context, date string) error
	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) error
}

// ChangeKind classifies a watched document change.
type ChangeKind int

const (
	// ChangeSet means the date's slot list was created or fully replaced.
	ChangeSet ChangeKind = iota
	// ChangeRemoved means the date's record was deleted.
	ChangeRemoved
)

// Change is one document-granularity change streamed by a Watcher.
type Change struct {
	Kind  ChangeKind
	Date  string
	Slots []string
}

// Watcher streams remote change notifications in batches. Only the remote
// store implements it; there is no acknowledgement or replay protocol.
type Watcher interface {
	Watch(ctx context.Context, apply func(changes []Change)) error
}

// collectionName is the remote collection holding one document per date.
// The name and the "horas" field are the original deployment's wire format.
const collectionName = "reservas"

type firestoreDayBookRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreRepo constructs the Firestore-backed day book.
func NewFirestoreRepo(client *firestore.Client) *firestoreDayBookRepo {
	return &firestoreDayBookRepo{
		coll: client.Collection(collectionName),
	}
}

type redisDayBookRepo struct {
	client *redis.Client
}

// NewRedisRepo constructs the local-fallback day book over a Redis blob.
func NewRedisRepo(client *redis.Client) Repository {
	return &redisDayBookRepo{client: client}
}
