// File: database/repository/settings/mirror.go
package settingsRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/proyectosweblym/barberbook/models"
)

// Remote location of the settings singleton. The original deployment's
// collection and document names are preserved.
const (
	collectionName = "configuracion"
	documentName   = "general"
)

// Mirror pushes the settings singleton to the remote store. The local copy
// stays authoritative; mirroring is best effort.
type Mirror interface {
	Push(ctx context.Context, settings models.AdminSettings) error
}

type firestoreSettingsMirror struct {
	doc *firestore.DocumentRef
}

// NewFirestoreMirror constructs the Firestore-backed settings mirror.
func NewFirestoreMirror(client *firestore.Client) Mirror {
	return &firestoreSettingsMirror{
		doc: client.Collection(collectionName).Doc(documentName),
	}
}

// Push merge-writes the settings so fields written by other clients survive.
func (m *firestoreSettingsMirror) Push(ctx context.Context, settings models.AdminSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.doc.Set(ctx, map[string]interface{}{
		"openingTime":    settings.OpeningTime,
		"closingTime":    settings.ClosingTime,
		"whatsappNumber": settings.WhatsAppNumber,
		"updatedAt":      firestore.ServerTimestamp,
	}, firestore.MergeAll)
	return err
}
