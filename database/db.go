package database

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/proyectosweblym/barberbook/config"
)

// FirestoreClient is the global Firestore client instance. It stays nil when
// the remote store cannot be initialized; callers then run in local-only mode.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection through the Firebase app.
// Unlike a primary database, failure here is not fatal: the booking system
// degrades to the local store when the remote is unreachable.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	fbConfig := &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Printf("firebase: error initializing app, running local-only: %v", err)
		return
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Printf("firebase: error getting Firestore client, running local-only: %v", err)
		return
	}

	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// RemoteAvailable reports whether the Firestore client was initialized.
func RemoteAvailable() bool {
	return FirestoreClient != nil
}
